package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest línea de venta en la creación.
type SaleLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateSaleRequest entrada para registrar una venta. Los precios y totales
// se calculan en servidor a partir del catálogo; el cliente solo manda
// producto/cantidad, descuento, IVA y método de pago.
type CreateSaleRequest struct {
	Lines         []SaleLineRequest `json:"lines" validate:"required,min=1,dive"`
	DiscountPct   decimal.Decimal   `json:"discount_pct"`
	TaxPct        *decimal.Decimal  `json:"tax_pct"` // nil = tasa por defecto de settings
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=cash card mobile_money"`
}

// SaleLineResponse línea de detalle en la salida.
type SaleLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// SaleResponse salida de una venta con su desglose.
type SaleResponse struct {
	ID             string             `json:"id"`
	CashierID      string             `json:"cashier_id"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	DiscountPct    decimal.Decimal    `json:"discount_pct"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	NetBeforeTax   decimal.Decimal    `json:"net_before_tax"`
	TaxPct         decimal.Decimal    `json:"tax_pct"`
	TaxAmount      decimal.Decimal    `json:"tax_amount"`
	GrandTotal     decimal.Decimal    `json:"grand_total"`
	PaymentMethod  string             `json:"payment_method"`
	Status         string             `json:"status"`
	Lines          []SaleLineResponse `json:"lines"`
	SoldAt         time.Time          `json:"sold_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
