package sale

import "github.com/shopspring/decimal"

// LineInput cantidad y precio unitario de una línea para el cálculo de totales.
type LineInput struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

// Totals desglose monetario de una venta.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	NetBeforeTax   decimal.Decimal
	TaxAmount      decimal.Decimal
	GrandTotal     decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// LineTotal devuelve cantidad × precio unitario redondeado a 2 decimales.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// ComputeTotals calcula el desglose de una venta. Función pura.
// Convención de redondeo: half-up a 2 decimales en cada importe derivado
// (descuento e IVA); los agregados se obtienen de los importes ya redondeados.
//
//	subtotal     = Σ cantidad × precio unitario
//	descuento    = subtotal × discountPct / 100
//	neto         = subtotal − descuento
//	iva          = neto × taxPct / 100
//	total        = neto + iva
func ComputeTotals(lines []LineInput, discountPct, taxPct decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(LineTotal(l.Quantity, l.UnitPrice))
	}
	discount := subtotal.Mul(discountPct).Div(hundred).Round(2)
	net := subtotal.Sub(discount)
	tax := net.Mul(taxPct).Div(hundred).Round(2)
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		NetBeforeTax:   net,
		TaxAmount:      tax,
		GrandTotal:     net.Add(tax),
	}
}
