package permission

import (
	"github.com/itsales/pos-api/internal/domain/entity"
	"github.com/itsales/pos-api/internal/domain/lifecycle"
)

// Acciones evaluables sobre una entidad.
const (
	ActionCreate        = "create"
	ActionEdit          = "edit"
	ActionDelete        = "delete" // borrado directo, sin aprobación
	ActionRequestDelete = "request_delete"
)

// Actor es quien intenta la acción.
type Actor struct {
	ID   string
	Role string
}

// Target describe la entidad objetivo de forma homogénea para todas las pantallas.
type Target struct {
	Type    string // entity.TargetCategory, TargetProduct, TargetSale, TargetUser
	OwnerID string // ID del usuario creador
	Status  string
}

// CanPerform es el evaluador único de permisos: predicado puro, sin efectos.
// Tabla de reglas:
//
//	admin:         crea, edita y borra directamente cualquier tipo.
//	stock_manager: crea categorías/productos, edita los propios, nunca borra
//	               directo; el borrado pasa por solicitud de aprobación.
//	cashier:       crea ventas, borra directo solo sus ventas en estado valid,
//	               solicita borrado de sus ventas; solo lectura en el resto.
func CanPerform(actor Actor, action string, target Target) bool {
	switch actor.Role {
	case entity.RoleAdmin:
		switch action {
		case ActionCreate, ActionEdit, ActionDelete, ActionRequestDelete:
			return true
		}
		return false

	case entity.RoleStockManager:
		if target.Type != entity.TargetCategory && target.Type != entity.TargetProduct {
			return false
		}
		switch action {
		case ActionCreate, ActionRequestDelete:
			return true
		case ActionEdit:
			return target.OwnerID == actor.ID
		}
		return false

	case entity.RoleCashier:
		if target.Type != entity.TargetSale {
			return false
		}
		switch action {
		case ActionCreate:
			return true
		case ActionDelete:
			return target.OwnerID == actor.ID && target.Status == lifecycle.StatusValid
		case ActionRequestDelete:
			return target.OwnerID == actor.ID
		}
		return false
	}
	return false
}
