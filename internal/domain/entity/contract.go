package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un contrato.
const (
	ContractStatusActive     = "active"
	ContractStatusExpired    = "expired"
	ContractStatusTerminated = "terminated"
)

// Contract representa un contrato comercial originado en una cotización aceptada.
// Sus líneas se copian de la cotización con el descuento plegado en el precio
// unitario (transformación única de cotización→contrato).
type Contract struct {
	ID         string
	QuoteID    string
	CompanyID  string
	UserID     string
	Number     string
	Status     string
	Subtotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
	StartDate  time.Time
	EndDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
