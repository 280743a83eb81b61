package quote_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crm-api/internal/domain/quote"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func line(qty, price, disc, tax string) quote.Line {
	return quote.Line{
		Quantity:    dec(qty),
		UnitPrice:   dec(price),
		DiscountPct: dec(disc),
		TaxRate:     dec(tax),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeLine — orden descuento→impuesto
// ──────────────────────────────────────────────────────────────────────────────

// Vector de referencia: qty=2, precio=50, desc=10%, IVA=7%.
// subtotal=100, descuento=10, después=90, impuesto=6.30, line_total=90.
func TestComputeLine_VectorReferencia(t *testing.T) {
	a := quote.ComputeLine(line("2", "50", "10", "7"))

	assert.True(t, a.Subtotal.Equal(dec("100")), "subtotal: %s", a.Subtotal)
	assert.True(t, a.Discount.Equal(dec("10")), "descuento: %s", a.Discount)
	assert.True(t, a.AfterDiscount.Equal(dec("90")), "después de descuento: %s", a.AfterDiscount)
	assert.True(t, a.Tax.Equal(dec("6.3")), "impuesto: %s", a.Tax)
}

// El line_total excluye el impuesto: este solo entra al gran total.
func TestComputeLine_LineTotalSinImpuesto(t *testing.T) {
	a := quote.ComputeLine(line("1", "100", "0", "19"))
	assert.True(t, a.AfterDiscount.Equal(dec("100")))
	assert.True(t, a.Tax.Equal(dec("19")))
}

func TestComputeLine_EntradasFueraDeDominioSeNormalizan(t *testing.T) {
	// Cantidad negativa cuenta como cero; descuento >100 se trunca a 100.
	a := quote.ComputeLine(line("-3", "50", "150", "7"))
	assert.True(t, a.Subtotal.IsZero())
	assert.True(t, a.Tax.IsZero())

	b := quote.ComputeLine(line("2", "50", "100", "7"))
	assert.True(t, b.AfterDiscount.IsZero(), "descuento del 100%% deja la línea en cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeTotals — redondeo único en la agregación
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTotals_VectorReferencia(t *testing.T) {
	totals := quote.ComputeTotals([]quote.Line{line("2", "50", "10", "7")})

	assert.Equal(t, "90.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "10.00", totals.DiscountTotal.StringFixed(2))
	assert.Equal(t, "6.30", totals.TaxTotal.StringFixed(2))
	assert.Equal(t, "96.30", totals.GrandTotal.StringFixed(2))
}

// El redondeo a 2 decimales ocurre una vez por agregado, no por línea:
// tres líneas de 0.333... no deben acumular error de redondeo intermedio.
func TestComputeTotals_RedondeoSoloAlAgregar(t *testing.T) {
	lines := []quote.Line{
		line("1", "10.004", "0", "0"),
		line("1", "10.004", "0", "0"),
	}
	totals := quote.ComputeTotals(lines)
	// Por línea redondeada sería 10.00+10.00=20.00; agregada es 20.008 → 20.01.
	assert.Equal(t, "20.01", totals.Subtotal.StringFixed(2))
}

func TestComputeTotals_SinLineas(t *testing.T) {
	totals := quote.ComputeTotals(nil)
	assert.True(t, totals.GrandTotal.IsZero())
	assert.True(t, totals.Subtotal.IsZero())
}

func TestComputeTotals_VariasLineas(t *testing.T) {
	lines := []quote.Line{
		line("2", "50", "10", "7"),  // 90 + 6.30
		line("3", "20", "0", "7"),   // 60 + 4.20
		line("1", "500", "20", "0"), // 400 + 0
	}
	totals := quote.ComputeTotals(lines)
	assert.Equal(t, "550.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "110.00", totals.DiscountTotal.StringFixed(2))
	assert.Equal(t, "10.50", totals.TaxTotal.StringFixed(2))
	assert.Equal(t, "560.50", totals.GrandTotal.StringFixed(2))
}

// ──────────────────────────────────────────────────────────────────────────────
// FoldDiscount — transformación cotización→contrato
// ──────────────────────────────────────────────────────────────────────────────

func TestFoldDiscount_VectorReferencia(t *testing.T) {
	// precio=100, desc=20% → precio final 80.00.
	final := quote.FoldDiscount(dec("100"), dec("20"))
	assert.Equal(t, "80.00", final.StringFixed(2))
}

func TestFoldDiscount_RedondeaADosDecimales(t *testing.T) {
	// 99.99 × (1−12.5%) = 87.49125 → 87.49
	final := quote.FoldDiscount(dec("99.99"), dec("12.5"))
	assert.Equal(t, "87.49", final.StringFixed(2))
}

func TestFoldDiscount_SinDescuentoNoAltera(t *testing.T) {
	final := quote.FoldDiscount(dec("45.50"), decimal.Zero)
	assert.Equal(t, "45.50", final.StringFixed(2))
}
