// Package export implementa los adaptadores de exportación de reportes
// (Excel, PDF y CSV) detrás del puerto reports.Exporter.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/itsales/pos-api/internal/application/dto"
	"github.com/itsales/pos-api/internal/application/reports"
)

var _ reports.Exporter = (*ExcelExporter)(nil)

// ExcelExporter genera reportes en formato .xlsx con excelize.
type ExcelExporter struct{}

// NewExcelExporter construye el exportador.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

// ContentType devuelve el MIME type de los archivos .xlsx.
func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExtension devuelve la extensión sin punto.
func (e *ExcelExporter) FileExtension() string { return "xlsx" }

// ExportSalesReport genera la hoja de ventas por día.
func (e *ExcelExporter) ExportSalesReport(report *dto.SalesReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"Día", "Ventas", "Unidades", "Ingresos", "Impuestos"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue("Sheet1", cell, h)
	}
	for i, row := range report.Rows {
		f.SetCellValue("Sheet1", "A"+fmt.Sprint(i+2), row.Day.Format("2006-01-02"))
		f.SetCellValue("Sheet1", "B"+fmt.Sprint(i+2), row.SaleCount)
		f.SetCellValue("Sheet1", "C"+fmt.Sprint(i+2), row.UnitsSold)
		f.SetCellValue("Sheet1", "D"+fmt.Sprint(i+2), row.Revenue.InexactFloat64())
		f.SetCellValue("Sheet1", "E"+fmt.Sprint(i+2), row.TaxTotal.InexactFloat64())
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportStockReport genera la hoja de stock por producto.
func (e *ExcelExporter) ExportStockReport(report *dto.StockReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"Producto", "Stock", "Umbral", "Bajo stock", "Valor", "Entradas", "Salidas"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue("Sheet1", cell, h)
	}
	for i, row := range report.Rows {
		f.SetCellValue("Sheet1", "A"+fmt.Sprint(i+2), row.ProductName)
		f.SetCellValue("Sheet1", "B"+fmt.Sprint(i+2), row.StockQuantity)
		f.SetCellValue("Sheet1", "C"+fmt.Sprint(i+2), row.MinThreshold)
		f.SetCellValue("Sheet1", "D"+fmt.Sprint(i+2), row.LowStock)
		f.SetCellValue("Sheet1", "E"+fmt.Sprint(i+2), row.StockValue.InexactFloat64())
		f.SetCellValue("Sheet1", "F"+fmt.Sprint(i+2), row.QtyIn)
		f.SetCellValue("Sheet1", "G"+fmt.Sprint(i+2), row.QtyOut)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
