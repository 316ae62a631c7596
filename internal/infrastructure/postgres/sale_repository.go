package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/itsales/pos-api/internal/domain"
	"github.com/itsales/pos-api/internal/domain/entity"
	"github.com/itsales/pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, cashier_id, subtotal, discount_pct, discount_amount, net_before_tax, tax_pct, tax_amount, grand_total, payment_method, status, sold_at, created_at`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta con sus líneas. Debe llamarse dentro de una
// transacción (TxRunner) para que cabecera y líneas entren juntas.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CashierID, sale.Subtotal, sale.DiscountPct, sale.DiscountAmount,
		sale.NetBeforeTax, sale.TaxPct, sale.TaxAmount, sale.GrandTotal,
		sale.PaymentMethod, sale.Status, sale.SoldAt, sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	for i := range sale.Lines {
		l := &sale.Lines[i]
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO sale_lines (id, sale_id, product_id, quantity, unit_price, line_total)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			l.ID, l.SaleID, l.ProductID, l.Quantity, l.UnitPrice, l.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("insert sale line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta por ID con sus líneas.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CashierID, &s.Subtotal, &s.DiscountPct, &s.DiscountAmount,
		&s.NetBeforeTax, &s.TaxPct, &s.TaxAmount, &s.GrandTotal,
		&s.PaymentMethod, &s.Status, &s.SoldAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	lines, err := r.loadLines(id)
	if err != nil {
		return nil, err
	}
	s.Lines = lines
	return &s, nil
}

func (r *SaleRepo) loadLines(saleID string) ([]entity.SaleLine, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, sale_id, product_id, quantity, unit_price, line_total
		FROM sale_lines WHERE sale_id = $1 ORDER BY id`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.LineTotal); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// UpdateStatus cambia el estado de ciclo de vida de la venta.
func (r *SaleRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	return nil
}

// List lista ventas con paginación, más recientes primero. Sin líneas:
// el detalle se carga con GetByID.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY sold_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByCashier lista las ventas de un cajero concreto.
func (r *SaleRepo) ListByCashier(cashierID string, limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE cashier_id = $1 ORDER BY sold_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, cashierID, limit, offset)
}

func (r *SaleRepo) list(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.CashierID, &s.Subtotal, &s.DiscountPct, &s.DiscountAmount,
			&s.NetBeforeTax, &s.TaxPct, &s.TaxAmount, &s.GrandTotal,
			&s.PaymentMethod, &s.Status, &s.SoldAt, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
