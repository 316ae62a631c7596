package sale_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/itsales/pos-api/internal/domain/sale"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Vector de referencia: 2 × 100.00, 10% de descuento, 20% de IVA.
// subtotal 200.00, descuento 20.00, neto 180.00, iva 36.00, total 216.00.
func TestComputeTotals_VectorReferencia(t *testing.T) {
	totals := sale.ComputeTotals(
		[]sale.LineInput{{Quantity: 2, UnitPrice: d("100.00")}},
		d("10"), d("20"),
	)

	assert.True(t, totals.Subtotal.Equal(d("200.00")), "subtotal: %s", totals.Subtotal)
	assert.True(t, totals.DiscountAmount.Equal(d("20.00")), "descuento: %s", totals.DiscountAmount)
	assert.True(t, totals.NetBeforeTax.Equal(d("180.00")), "neto: %s", totals.NetBeforeTax)
	assert.True(t, totals.TaxAmount.Equal(d("36.00")), "iva: %s", totals.TaxAmount)
	assert.True(t, totals.GrandTotal.Equal(d("216.00")), "total: %s", totals.GrandTotal)
}

// El descuento y el IVA se redondean half-up a 2 decimales por separado, y el
// total sale de los importes ya redondeados.
func TestComputeTotals_RedondeoHalfUp(t *testing.T) {
	// subtotal 10.01, 5% descuento = 0.5005 → 0.50
	totals := sale.ComputeTotals(
		[]sale.LineInput{{Quantity: 1, UnitPrice: d("10.01")}},
		d("5"), d("0"),
	)
	assert.True(t, totals.DiscountAmount.Equal(d("0.50")), "descuento: %s", totals.DiscountAmount)
	assert.True(t, totals.NetBeforeTax.Equal(d("9.51")))
	assert.True(t, totals.GrandTotal.Equal(d("9.51")))

	// neto 9.51, 21% iva = 1.9971 → 2.00
	totals = sale.ComputeTotals(
		[]sale.LineInput{{Quantity: 1, UnitPrice: d("10.01")}},
		d("5"), d("21"),
	)
	assert.True(t, totals.TaxAmount.Equal(d("2.00")), "iva: %s", totals.TaxAmount)
	assert.True(t, totals.GrandTotal.Equal(d("11.51")))
}

func TestComputeTotals_VariasLineas(t *testing.T) {
	totals := sale.ComputeTotals(
		[]sale.LineInput{
			{Quantity: 3, UnitPrice: d("2.50")},
			{Quantity: 1, UnitPrice: d("12.99")},
		},
		decimal.Zero, d("20"),
	)
	assert.True(t, totals.Subtotal.Equal(d("20.49")))
	assert.True(t, totals.DiscountAmount.Equal(d("0.00")))
	assert.True(t, totals.TaxAmount.Equal(d("4.10")), "iva: %s", totals.TaxAmount)
	assert.True(t, totals.GrandTotal.Equal(d("24.59")))
}

func TestComputeTotals_SinLineas(t *testing.T) {
	totals := sale.ComputeTotals(nil, d("10"), d("20"))
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}

func TestLineTotal(t *testing.T) {
	assert.True(t, sale.LineTotal(4, d("1.105")).Equal(d("4.42")))
	assert.True(t, sale.LineTotal(1, d("0.999")).Equal(d("1.00")))
}
