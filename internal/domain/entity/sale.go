package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en punto de venta.
const (
	PaymentCash        = "cash"
	PaymentCard        = "card"
	PaymentMobileMoney = "mobile_money"
)

// Sale es una venta de punto de venta. Inmutable tras crearse salvo Status.
type Sale struct {
	ID             string
	CashierID      string
	Subtotal       decimal.Decimal
	DiscountPct    decimal.Decimal
	DiscountAmount decimal.Decimal
	NetBeforeTax   decimal.Decimal
	TaxPct         decimal.Decimal
	TaxAmount      decimal.Decimal
	GrandTotal     decimal.Decimal
	PaymentMethod  string // cash, card, mobile_money
	Status         string // valid, pending_deletion, deleted
	Lines          []SaleLine
	SoldAt         time.Time
	CreatedAt      time.Time
}

// SaleLine línea de detalle de una venta.
type SaleLine struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// ValidPaymentMethod verifica que el método de pago sea uno de los aceptados.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobileMoney:
		return true
	}
	return false
}
