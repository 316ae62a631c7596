package repository

import (
	"time"

	"github.com/itsales/pos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los usuarios nunca se eliminan: solo se deshabilitan vía Update.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateLastLogin(id string, at time.Time) error
	List(limit, offset int) ([]*entity.User, error)
}
