package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateSettingRequest entrada para actualizar la configuración (solo admin).
type UpdateSettingRequest struct {
	CompanyName        *string          `json:"company_name"`
	DefaultTaxRate     *decimal.Decimal `json:"default_tax_rate"`
	Currency           *string          `json:"currency" validate:"omitempty,len=3"`
	MaxDiscountPercent *decimal.Decimal `json:"max_discount_percent"`
}

// SettingResponse configuración vigente de la tienda.
type SettingResponse struct {
	CompanyName        string          `json:"company_name"`
	DefaultTaxRate     decimal.Decimal `json:"default_tax_rate"`
	Currency           string          `json:"currency"`
	MaxDiscountPercent decimal.Decimal `json:"max_discount_percent"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
