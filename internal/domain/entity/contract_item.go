package entity

import "github.com/shopspring/decimal"

// ContractItem representa una línea de contrato. UnitPrice ya incluye el
// descuento de la cotización original (DiscountPct siempre queda en 0).
type ContractItem struct {
	ID          string
	ContractID  string
	ProductID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal // precio final, descuento ya plegado y redondeado a 2 decimales
	DiscountPct decimal.Decimal // siempre 0 tras la conversión
	TaxRate     decimal.Decimal
	LineTotal   decimal.Decimal
	Position    int
}
