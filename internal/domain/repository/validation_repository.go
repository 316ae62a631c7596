package repository

import (
	"time"

	"github.com/itsales/pos-api/internal/domain/entity"
)

// ValidationRepository define el puerto de persistencia para Validation.
type ValidationRepository interface {
	Create(validation *entity.Validation) error
	GetByID(id string) (*entity.Validation, error)
	// GetPendingByTarget devuelve la validación pendiente sobre el objetivo,
	// o nil si no hay ninguna. Como máximo existe una por (tipo, id).
	GetPendingByTarget(targetType, targetID string) (*entity.Validation, error)
	// MarkResolved pasa la validación a approved/rejected de forma condicional
	// (UPDATE ... WHERE status = 'pending'). Devuelve false si otra resolución
	// ganó la carrera y no se afectó ninguna fila.
	MarkResolved(id, status, resolverID string, at time.Time) (bool, error)
	List(limit, offset int) ([]*entity.Validation, error)
	ListByStatus(status string, limit, offset int) ([]*entity.Validation, error)
}
