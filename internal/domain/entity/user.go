package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin        = "admin"
	RoleStockManager = "stock_manager"
	RoleCashier      = "cashier"
)

// Estados de cuenta de usuario.
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// User representa un usuario del sistema. Nunca se elimina físicamente:
// deshabilitar la cuenta (status=disabled) la saca de circulación.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Role         string // admin, stock_manager, cashier
	Status       string // active, disabled
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole verifica que el rol pertenezca al conjunto conocido.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleStockManager, RoleCashier:
		return true
	}
	return false
}
