package entity

import "github.com/shopspring/decimal"

// InvoiceDetail representa una línea de detalle de una factura (snapshot del contrato).
type InvoiceDetail struct {
	ID          string
	InvoiceID   string
	ProductID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
	LineTotal   decimal.Decimal
	Position    int
}
