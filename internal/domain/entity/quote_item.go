package entity

import "github.com/shopspring/decimal"

// QuoteItem representa una línea de una cotización.
// LineTotal es función pura de los demás campos: qty × precio menos descuento,
// sin impuesto (el impuesto solo entra al GrandTotal de la cabecera).
type QuoteItem struct {
	ID          string
	QuoteID     string
	ProductID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal // porcentaje [0,100]
	TaxRate     decimal.Decimal // porcentaje [0,100]
	LineTotal   decimal.Decimal // derivado, nunca asignado por el usuario
	Position    int             // orden estable dentro de la cotización
}
