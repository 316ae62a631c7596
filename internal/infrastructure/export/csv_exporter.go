package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/itsales/pos-api/internal/application/dto"
	"github.com/itsales/pos-api/internal/application/reports"
)

var _ reports.Exporter = (*CSVExporter)(nil)

// CSVExporter genera reportes en CSV plano (UTF-8, separador coma).
type CSVExporter struct{}

// NewCSVExporter construye el exportador.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// ContentType devuelve el MIME type de CSV.
func (e *CSVExporter) ContentType() string { return "text/csv" }

// FileExtension devuelve la extensión sin punto.
func (e *CSVExporter) FileExtension() string { return "csv" }

// ExportSalesReport escribe el reporte de ventas por día.
func (e *CSVExporter) ExportSalesReport(report *dto.SalesReportResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"day", "sale_count", "units_sold", "revenue", "tax_total"}); err != nil {
		return nil, fmt.Errorf("export: escribir csv: %w", err)
	}
	for _, row := range report.Rows {
		record := []string{
			row.Day.Format("2006-01-02"),
			strconv.Itoa(row.SaleCount),
			strconv.Itoa(row.UnitsSold),
			row.Revenue.StringFixed(2),
			row.TaxTotal.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export: escribir csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: escribir csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportStockReport escribe el reporte de stock por producto.
func (e *CSVExporter) ExportStockReport(report *dto.StockReportResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"product_id", "product_name", "stock_quantity", "min_threshold", "low_stock", "stock_value", "qty_in", "qty_out"}); err != nil {
		return nil, fmt.Errorf("export: escribir csv: %w", err)
	}
	for _, row := range report.Rows {
		record := []string{
			row.ProductID,
			row.ProductName,
			strconv.Itoa(row.StockQuantity),
			strconv.Itoa(row.MinThreshold),
			strconv.FormatBool(row.LowStock),
			row.StockValue.StringFixed(2),
			strconv.Itoa(row.QtyIn),
			strconv.Itoa(row.QtyOut),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export: escribir csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: escribir csv: %w", err)
	}
	return buf.Bytes(), nil
}
