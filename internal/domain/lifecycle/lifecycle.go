package lifecycle

import "github.com/itsales/pos-api/internal/domain/entity"

// Estados de ciclo de vida de Category, Product y Sale.
// Las ventas usan "valid" como estado activo; el resto "active".
const (
	StatusActive          = "active"
	StatusValid           = "valid"
	StatusPendingDeletion = "pending_deletion"
	StatusDeleted         = "deleted"
)

// transitions enumera las aristas válidas del ciclo de vida.
// active/valid → pending_deletion (solicitud), → deleted (borrado directo admin);
// pending_deletion → deleted (aprobación), → active/valid (rechazo);
// deleted → active/valid (restauración aprobada).
var transitions = map[string][]string{
	StatusActive:          {StatusPendingDeletion, StatusDeleted},
	StatusValid:           {StatusPendingDeletion, StatusDeleted},
	StatusPendingDeletion: {StatusDeleted, StatusActive, StatusValid},
	StatusDeleted:         {StatusActive, StatusValid},
}

// CanTransition indica si la arista from→to está enumerada.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ActiveStatus devuelve el estado activo inicial según el tipo de entidad.
func ActiveStatus(targetType string) string {
	if targetType == entity.TargetSale {
		return StatusValid
	}
	return StatusActive
}

// IsActive indica si el estado es el activo de su tipo (active o valid).
func IsActive(status string) bool {
	return status == StatusActive || status == StatusValid
}

// IsDeleted indica si el estado es el terminal deleted.
func IsDeleted(status string) bool {
	return status == StatusDeleted
}
