package reports

import (
	"context"
	"time"

	"github.com/itsales/pos-api/internal/application/dto"
	"github.com/itsales/pos-api/internal/domain"
	"github.com/itsales/pos-api/internal/domain/repository"
)

// Formatos de exportación soportados.
const (
	FormatExcel = "excel"
	FormatPDF   = "pdf"
	FormatCSV   = "csv"
)

// Tipos de reporte exportables.
const (
	ReportSales = "sales"
	ReportStock = "stock"
)

// Exporter es el puerto de exportación de reportes en un formato concreto.
// Lo implementan los adaptadores de infraestructura (excelize, maroto, csv).
type Exporter interface {
	ContentType() string
	FileExtension() string
	ExportSalesReport(report *dto.SalesReportResponse) ([]byte, error)
	ExportStockReport(report *dto.StockReportResponse) ([]byte, error)
}

// ExportFile archivo exportado listo para servir.
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

// UseCase reportes de ventas y stock por rango de fechas, dashboard y export.
type UseCase struct {
	reportRepo repository.ReportRepository
	exporters  map[string]Exporter
}

// NewUseCase construye el caso de uso; exporters mapea formato → adaptador.
func NewUseCase(reportRepo repository.ReportRepository, exporters map[string]Exporter) *UseCase {
	return &UseCase{reportRepo: reportRepo, exporters: exporters}
}

// DashboardStats agregados para la pantalla principal.
func (uc *UseCase) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	stats, err := uc.reportRepo.GetDashboardStats(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatsResponse{
		TotalSales:    stats.TotalSales,
		TotalRevenue:  stats.TotalRevenue,
		TotalProducts: stats.TotalProducts,
		LowStockCount: stats.LowStockCount,
		TodaySales:    stats.TodaySales,
		TodayRevenue:  stats.TodayRevenue,
	}, nil
}

// SalesReport reporte de ventas agrupado por día dentro del rango.
func (uc *UseCase) SalesReport(ctx context.Context, startDate, endDate time.Time) (*dto.SalesReportResponse, error) {
	if endDate.Before(startDate) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.reportRepo.GetSalesReport(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	out := &dto.SalesReportResponse{
		StartDate: startDate,
		EndDate:   endDate,
		Rows:      make([]dto.SalesReportRowResponse, 0, len(rows)),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, dto.SalesReportRowResponse{
			Day:       r.Day,
			SaleCount: r.SaleCount,
			UnitsSold: r.UnitsSold,
			Revenue:   r.Revenue,
			TaxTotal:  r.TaxTotal,
		})
	}
	return out, nil
}

// StockReport reporte de stock por producto con los movimientos del rango.
func (uc *UseCase) StockReport(ctx context.Context, startDate, endDate time.Time) (*dto.StockReportResponse, error) {
	if endDate.Before(startDate) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.reportRepo.GetStockReport(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	out := &dto.StockReportResponse{
		StartDate: startDate,
		EndDate:   endDate,
		Rows:      make([]dto.StockReportRowResponse, 0, len(rows)),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, dto.StockReportRowResponse{
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			StockQuantity: r.StockQuantity,
			MinThreshold:  r.MinThreshold,
			LowStock:      r.StockQuantity <= r.MinThreshold,
			StockValue:    r.StockValue,
			QtyIn:         r.QtyIn,
			QtyOut:        r.QtyOut,
		})
	}
	return out, nil
}

// Export genera el reporte pedido en el formato pedido (excel, pdf, csv).
func (uc *UseCase) Export(ctx context.Context, reportType, format string, startDate, endDate time.Time) (*ExportFile, error) {
	exporter, ok := uc.exporters[format]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	var (
		content []byte
		err     error
	)
	switch reportType {
	case ReportSales:
		report, rerr := uc.SalesReport(ctx, startDate, endDate)
		if rerr != nil {
			return nil, rerr
		}
		content, err = exporter.ExportSalesReport(report)
	case ReportStock:
		report, rerr := uc.StockReport(ctx, startDate, endDate)
		if rerr != nil {
			return nil, rerr
		}
		content, err = exporter.ExportStockReport(report)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}
	filename := reportType + "_" + startDate.Format("2006-01-02") + "_" + endDate.Format("2006-01-02") + "." + exporter.FileExtension()
	return &ExportFile{
		Content:     content,
		ContentType: exporter.ContentType(),
		Filename:    filename,
	}, nil
}
