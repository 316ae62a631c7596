package export

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/itsales/pos-api/internal/application/dto"
	"github.com/itsales/pos-api/internal/application/reports"
)

var _ reports.Exporter = (*PDFExporter)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PDFExporter genera reportes en PDF con Maroto v2.
type PDFExporter struct {
	companyName string
}

// NewPDFExporter construye el exportador; companyName aparece en la cabecera.
func NewPDFExporter(companyName string) *PDFExporter {
	return &PDFExporter{companyName: companyName}
}

// ContentType devuelve el MIME type de PDF.
func (e *PDFExporter) ContentType() string { return "application/pdf" }

// FileExtension devuelve la extensión sin punto.
func (e *PDFExporter) FileExtension() string { return "pdf" }

// ExportSalesReport genera el PDF del reporte de ventas por día.
func (e *PDFExporter) ExportSalesReport(report *dto.SalesReportResponse) ([]byte, error) {
	m := e.newDocument()
	m.AddRows(e.headerRows("REPORTE DE VENTAS",
		report.StartDate.Format("02/01/2006")+" — "+report.EndDate.Format("02/01/2006"))...)

	m.AddRows(tableHeaderRow(
		headerCell("Día", 3, align.Left),
		headerCell("Ventas", 2, align.Center),
		headerCell("Unidades", 2, align.Center),
		headerCell("Ingresos", 3, align.Right),
		headerCell("Impuestos", 2, align.Right),
	))
	for _, r := range report.Rows {
		m.AddRows(row.New(6).Add(
			bodyCell(r.Day.Format("2006-01-02"), 3, align.Left),
			bodyCell(fmt.Sprint(r.SaleCount), 2, align.Center),
			bodyCell(fmt.Sprint(r.UnitsSold), 2, align.Center),
			bodyCell(r.Revenue.StringFixed(2), 3, align.Right),
			bodyCell(r.TaxTotal.StringFixed(2), 2, align.Right),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("export: generar pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

// ExportStockReport genera el PDF del reporte de stock por producto.
func (e *PDFExporter) ExportStockReport(report *dto.StockReportResponse) ([]byte, error) {
	m := e.newDocument()
	m.AddRows(e.headerRows("REPORTE DE STOCK",
		report.StartDate.Format("02/01/2006")+" — "+report.EndDate.Format("02/01/2006"))...)

	m.AddRows(tableHeaderRow(
		headerCell("Producto", 4, align.Left),
		headerCell("Stock", 1, align.Center),
		headerCell("Umbral", 1, align.Center),
		headerCell("Valor", 3, align.Right),
		headerCell("Entradas", 1, align.Center),
		headerCell("Salidas", 2, align.Center),
	))
	for _, r := range report.Rows {
		name := r.ProductName
		if r.LowStock {
			name += " (!)"
		}
		m.AddRows(row.New(6).Add(
			bodyCell(name, 4, align.Left),
			bodyCell(fmt.Sprint(r.StockQuantity), 1, align.Center),
			bodyCell(fmt.Sprint(r.MinThreshold), 1, align.Center),
			bodyCell(r.StockValue.StringFixed(2), 3, align.Right),
			bodyCell(fmt.Sprint(r.QtyIn), 1, align.Center),
			bodyCell(fmt.Sprint(r.QtyOut), 2, align.Center),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("export: generar pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func (e *PDFExporter) newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithAuthor(e.companyName, true).
		Build()
	return maroto.New(cfg)
}

// headerRows: nombre de la empresa + título del reporte + rango de fechas.
func (e *PDFExporter) headerRows(title, dateRange string) []core.Row {
	return []core.Row{
		row.New(16).Add(
			col.New(7).Add(
				text.New(e.companyName, props.Text{
					Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
				}),
			),
			col.New(5).Add(
				text.New(title, props.Text{
					Style: fontstyle.Bold, Size: 10, Align: align.Right,
					Color: colorPrimary, Top: 1,
				}),
				text.New(dateRange, props.Text{
					Size: 8, Align: align.Right, Top: 8, Color: colorGray,
				}),
			),
		),
		line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}),
	}
}

func tableHeaderRow(cols ...core.Col) core.Row {
	return row.New(8).Add(cols...)
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 2, Left: 1, Right: 1,
	}))
}

func bodyCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}
