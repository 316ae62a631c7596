package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Setting configuración de la tienda (fila única en persistencia).
type Setting struct {
	CompanyName        string
	DefaultTaxRate     decimal.Decimal // porcentaje, ej. 20 = 20%
	Currency           string          // código ISO 4217, ej. EUR
	MaxDiscountPercent decimal.Decimal
	UpdatedAt          time.Time
}

// DefaultSetting configuración por defecto cuando la fila aún no existe
// (base sin sembrar). Son los mismos valores que crea cmd/seed.
func DefaultSetting(companyName string) *Setting {
	return &Setting{
		CompanyName:        companyName,
		DefaultTaxRate:     decimal.NewFromInt(20),
		Currency:           "EUR",
		MaxDiscountPercent: decimal.NewFromInt(50),
	}
}
