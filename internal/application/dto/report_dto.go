package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStatsResponse agregados para la pantalla principal.
type DashboardStatsResponse struct {
	TotalSales    int             `json:"total_sales"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalProducts int             `json:"total_products"`
	LowStockCount int             `json:"low_stock_count"`
	TodaySales    int             `json:"today_sales"`
	TodayRevenue  decimal.Decimal `json:"today_revenue"`
}

// ReportRequest rango de fechas de un reporte (query params).
type ReportRequest struct {
	StartDate string `query:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate   string `query:"end_date" validate:"required"`
}

// SalesReportRowResponse fila del reporte de ventas por día.
type SalesReportRowResponse struct {
	Day       time.Time       `json:"day"`
	SaleCount int             `json:"sale_count"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
	TaxTotal  decimal.Decimal `json:"tax_total"`
}

// StockReportRowResponse fila del reporte de stock por producto.
type StockReportRowResponse struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	StockQuantity int             `json:"stock_quantity"`
	MinThreshold  int             `json:"min_threshold"`
	LowStock      bool            `json:"low_stock"`
	StockValue    decimal.Decimal `json:"stock_value"`
	QtyIn         int             `json:"qty_in"`
	QtyOut        int             `json:"qty_out"`
}

// SalesReportResponse reporte de ventas de un rango.
type SalesReportResponse struct {
	StartDate time.Time                `json:"start_date"`
	EndDate   time.Time                `json:"end_date"`
	Rows      []SalesReportRowResponse `json:"rows"`
}

// StockReportResponse reporte de stock de un rango.
type StockReportResponse struct {
	StartDate time.Time                `json:"start_date"`
	EndDate   time.Time                `json:"end_date"`
	Rows      []StockReportRowResponse `json:"rows"`
}
