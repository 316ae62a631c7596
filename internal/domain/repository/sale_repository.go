package repository

import "github.com/itsales/pos-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale.
// Las ventas son inmutables tras Create salvo el campo de estado.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	UpdateStatus(id, status string) error
	List(limit, offset int) ([]*entity.Sale, error)
	ListByCashier(cashierID string, limit, offset int) ([]*entity.Sale, error)
}
