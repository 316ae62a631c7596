package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn     = "in"     // recepción de mercancía
	MovementTypeOut    = "out"    // venta o retiro
	MovementTypeReturn = "return" // devolución de cliente
	MovementTypeLoss   = "loss"   // rotura, robo, caducidad
)

// StockMovement es una entrada del libro de movimientos.
// Append-only: una vez registrada nunca se edita ni se borra.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // in, out, return, loss
	Quantity  int    // siempre positivo; el signo lo determina el tipo
	UserID    string
	Comment   string
	CreatedAt time.Time
}

// ValidMovementType verifica que el tipo pertenezca al conjunto conocido.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeReturn, MovementTypeLoss:
		return true
	}
	return false
}

// Direction devuelve +1 para movimientos que suman stock (in, return)
// y -1 para los que restan (out, loss).
func (m *StockMovement) Direction() int {
	switch m.Type {
	case MovementTypeIn, MovementTypeReturn:
		return 1
	default:
		return -1
	}
}
