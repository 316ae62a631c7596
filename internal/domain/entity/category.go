package entity

import "time"

// Category agrupa productos del catálogo.
type Category struct {
	ID          string
	Name        string
	Description string
	Status      string // active, pending_deletion, deleted
	CreatedBy   string // ID del usuario creador (propietario para permisos)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
