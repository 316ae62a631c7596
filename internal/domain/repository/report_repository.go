package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats agregados para la pantalla principal.
type DashboardStats struct {
	TotalSales    int
	TotalRevenue  decimal.Decimal
	TotalProducts int
	LowStockCount int
	TodaySales    int
	TodayRevenue  decimal.Decimal
}

// SalesReportRow fila del reporte de ventas agrupado por día.
type SalesReportRow struct {
	Day       time.Time
	SaleCount int
	UnitsSold int
	Revenue   decimal.Decimal
	TaxTotal  decimal.Decimal
}

// StockReportRow fila del reporte de stock por producto, con los movimientos
// del rango consultado.
type StockReportRow struct {
	ProductID     string
	ProductName   string
	StockQuantity int
	MinThreshold  int
	StockValue    decimal.Decimal // stock × precio de compra
	QtyIn         int
	QtyOut        int
}

// ReportRepository consultas de solo lectura para dashboard y reportes.
type ReportRepository interface {
	GetDashboardStats(ctx context.Context, now time.Time) (*DashboardStats, error)
	GetSalesReport(ctx context.Context, startDate, endDate time.Time) ([]SalesReportRow, error)
	GetStockReport(ctx context.Context, startDate, endDate time.Time) ([]StockReportRow, error)
}
