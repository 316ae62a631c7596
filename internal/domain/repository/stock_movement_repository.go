package repository

import "github.com/itsales/pos-api/internal/domain/entity"

// StockMovementRepository define el puerto del libro de movimientos.
// Append-only: no expone Update ni Delete a propósito.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List(limit, offset int) ([]*entity.StockMovement, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
}
