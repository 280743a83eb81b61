// Package quote implementa los servicios de dominio de cotizaciones:
// el cálculo monetario de líneas (descuento antes de impuesto) y la
// reconciliación de ubicaciones de servicio contra el catálogo.
// Todo es puro y síncrono; las entradas fuera de dominio se normalizan
// al valor más conservador en lugar de fallar.
package quote

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Line es la vista mínima de una línea para el cálculo monetario.
type Line struct {
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal // porcentaje [0,100]
	TaxRate     decimal.Decimal // porcentaje [0,100]
}

// LineFromItem construye la vista de cálculo desde una línea de cotización.
func LineFromItem(it *entity.QuoteItem) Line {
	return Line{
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		DiscountPct: it.DiscountPct,
		TaxRate:     it.TaxRate,
	}
}

// Amounts son los montos derivados de una línea, sin redondear: el redondeo
// a 2 decimales ocurre una sola vez, al agregar (ComputeTotals), para no
// acumular error por línea.
type Amounts struct {
	Subtotal      decimal.Decimal // qty × precio
	Discount      decimal.Decimal // subtotal × desc%/100
	AfterDiscount decimal.Decimal // subtotal − descuento; este es el line_total
	Tax           decimal.Decimal // after_discount × tax%/100
}

// Totals son los agregados de la cotización, redondeados a 2 decimales.
// GrandTotal = Subtotal + TaxTotal (el line_total excluye impuesto).
type Totals struct {
	Subtotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	GrandTotal    decimal.Decimal
}

// ComputeLine calcula los montos de una línea con el orden descuento→impuesto.
// Cantidades o precios negativos y porcentajes fuera de [0,100] se normalizan.
func ComputeLine(l Line) Amounts {
	qty := clampMin(l.Quantity, decimal.Zero)
	price := clampMin(l.UnitPrice, decimal.Zero)
	disc := clampPct(l.DiscountPct)
	tax := clampPct(l.TaxRate)

	subtotal := qty.Mul(price)
	discount := subtotal.Mul(disc).Div(hundred)
	afterDiscount := subtotal.Sub(discount)
	taxAmount := afterDiscount.Mul(tax).Div(hundred)

	return Amounts{
		Subtotal:      subtotal,
		Discount:      discount,
		AfterDiscount: afterDiscount,
		Tax:           taxAmount,
	}
}

// ComputeTotals suma los montos de todas las líneas y redondea cada agregado
// a 2 decimales, una única vez (half-up vía decimal.Round).
func ComputeTotals(lines []Line) Totals {
	var sub, disc, tax decimal.Decimal
	for _, l := range lines {
		a := ComputeLine(l)
		sub = sub.Add(a.AfterDiscount)
		disc = disc.Add(a.Discount)
		tax = tax.Add(a.Tax)
	}
	sub = sub.Round(2)
	disc = disc.Round(2)
	tax = tax.Round(2)
	return Totals{
		Subtotal:      sub,
		DiscountTotal: disc,
		TaxTotal:      tax,
		GrandTotal:    sub.Add(tax),
	}
}

// FoldDiscount pliega el descuento en el precio unitario:
// precioFinal = precio × (1 − desc/100), redondeado a 2 decimales.
// Es la transformación única de cotización→contrato; tras aplicarla el
// descuento de la línea queda en 0 y no debe usarse en ningún otro flujo.
func FoldDiscount(unitPrice, discountPct decimal.Decimal) decimal.Decimal {
	price := clampMin(unitPrice, decimal.Zero)
	disc := clampPct(discountPct)
	factor := decimal.NewFromInt(1).Sub(disc.Div(hundred))
	return price.Mul(factor).Round(2)
}

func clampMin(d, min decimal.Decimal) decimal.Decimal {
	if d.LessThan(min) {
		return min
	}
	return d
}

func clampPct(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if d.GreaterThan(hundred) {
		return hundred
	}
	return d
}
