package repository

import "github.com/itsales/pos-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// El stock solo se toca con UpdateStock, siempre dentro de una transacción
// que antes bloqueó la fila con GetForUpdate.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStatus(id, status string) error
	UpdateStock(id string, quantity int) error
	List(limit, offset int) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
}
