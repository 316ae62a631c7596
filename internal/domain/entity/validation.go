package entity

import "time"

// Acciones solicitables en una Validation.
const (
	ActionDeletion    = "deletion"
	ActionRestoration = "restoration"
)

// Estados de una Validation. approved y rejected son terminales.
const (
	ValidationPending  = "pending"
	ValidationApproved = "approved"
	ValidationRejected = "rejected"
)

// Tipos de entidad objetivo de una Validation.
const (
	TargetUser     = "user"
	TargetCategory = "category"
	TargetProduct  = "product"
	TargetSale     = "sale"
)

// Validation es una solicitud de aprobación que liga una acción diferida a una
// entidad objetivo. La crea un actor sin permiso de borrado directo y la
// resuelve un admin; al aprobarse se aplica la acción original al objetivo.
type Validation struct {
	ID          string
	TargetType  string // user, category, product, sale
	TargetID    string
	Action      string // deletion, restoration
	Status      string // pending, approved, rejected
	RequesterID string
	ResolverID  *string
	RequestedAt time.Time
	ResolvedAt  *time.Time
}

// Resolved indica si la validación alcanzó un estado terminal.
func (v *Validation) Resolved() bool {
	return v.Status != ValidationPending
}
