package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/itsales/pos-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para dashboard y reportes.
// Las ventas eliminadas (status = 'deleted') no cuentan en ningún agregado.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetDashboardStats agregados para la pantalla principal. "Hoy" se calcula
// con la fecha local de now truncada a medianoche.
func (r *ReportRepo) GetDashboardStats(ctx context.Context, now time.Time) (*repository.DashboardStats, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var stats repository.DashboardStats
	err := r.q.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(grand_total), 0),
			COUNT(*) FILTER (WHERE sold_at >= $1),
			COALESCE(SUM(grand_total) FILTER (WHERE sold_at >= $1), 0)
		FROM sales
		WHERE status <> 'deleted'`,
		dayStart,
	).Scan(&stats.TotalSales, &stats.TotalRevenue, &stats.TodaySales, &stats.TodayRevenue)
	if err != nil {
		return nil, fmt.Errorf("dashboard sales stats: %w", err)
	}

	err = r.q.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE stock_quantity <= min_threshold)
		FROM products
		WHERE status = 'active'`,
	).Scan(&stats.TotalProducts, &stats.LowStockCount)
	if err != nil {
		return nil, fmt.Errorf("dashboard product stats: %w", err)
	}
	return &stats, nil
}

// GetSalesReport agrupa las ventas por día dentro del rango [startDate, endDate].
func (r *ReportRepo) GetSalesReport(ctx context.Context, startDate, endDate time.Time) ([]repository.SalesReportRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT day, COUNT(*), COALESCE(SUM(units), 0), COALESCE(SUM(grand_total), 0), COALESCE(SUM(tax_amount), 0)
		FROM (
			SELECT
				date_trunc('day', s.sold_at) AS day,
				s.grand_total,
				s.tax_amount,
				(SELECT COALESCE(SUM(l.quantity), 0) FROM sale_lines l WHERE l.sale_id = s.id) AS units
			FROM sales s
			WHERE s.status <> 'deleted' AND s.sold_at >= $1 AND s.sold_at < $2 + interval '1 day'
		) per_sale
		GROUP BY day
		ORDER BY day`,
		startDate, endDate,
	)
	if err != nil {
		return nil, fmt.Errorf("sales report: %w", err)
	}
	defer rows.Close()
	var out []repository.SalesReportRow
	for rows.Next() {
		var row repository.SalesReportRow
		if err := rows.Scan(&row.Day, &row.SaleCount, &row.UnitsSold, &row.Revenue, &row.TaxTotal); err != nil {
			return nil, fmt.Errorf("scan sales report row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetStockReport devuelve una fila por producto con su stock actual y los
// movimientos de entrada/salida dentro del rango.
func (r *ReportRepo) GetStockReport(ctx context.Context, startDate, endDate time.Time) ([]repository.StockReportRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT
			p.id,
			p.name,
			p.stock_quantity,
			p.min_threshold,
			p.stock_quantity * p.purchase_price,
			COALESCE(SUM(m.quantity) FILTER (WHERE m.type IN ('in', 'return')), 0),
			COALESCE(SUM(m.quantity) FILTER (WHERE m.type IN ('out', 'loss')), 0)
		FROM products p
		LEFT JOIN stock_movements m
			ON m.product_id = p.id
			AND m.created_at >= $1 AND m.created_at < $2 + interval '1 day'
		WHERE p.status <> 'deleted'
		GROUP BY p.id, p.name, p.stock_quantity, p.min_threshold, p.purchase_price
		ORDER BY p.name`,
		startDate, endDate,
	)
	if err != nil {
		return nil, fmt.Errorf("stock report: %w", err)
	}
	defer rows.Close()
	var out []repository.StockReportRow
	for rows.Next() {
		var row repository.StockReportRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.StockQuantity,
			&row.MinThreshold, &row.StockValue, &row.QtyIn, &row.QtyOut); err != nil {
			return nil, fmt.Errorf("scan stock report row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
