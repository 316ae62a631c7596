package repository

import "github.com/itsales/pos-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	UpdateStatus(id, status string) error
	List(limit, offset int) ([]*entity.Category, error)
}
