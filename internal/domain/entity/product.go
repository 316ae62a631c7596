package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con su stock on-hand.
// StockQuantity solo se modifica vía movimientos de stock, nunca por edición directa.
type Product struct {
	ID            string
	Name          string
	Description   string
	CategoryID    string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	StockQuantity int
	MinThreshold  int    // umbral de alerta de bajo stock
	Status        string // active, pending_deletion, deleted
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LowStock indica si el producto está en o por debajo de su umbral mínimo.
// Es puramente informativo: nunca bloquea una mutación.
func (p *Product) LowStock() bool {
	return p.StockQuantity <= p.MinThreshold
}
