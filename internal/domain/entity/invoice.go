package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusDraft  = "draft"
	InvoiceStatusIssued = "issued"
	InvoiceStatusPaid   = "paid"
	InvoiceStatusVoided = "voided"
)

// Invoice representa la cabecera de una factura emitida desde un contrato.
// Las líneas son un snapshot de las líneas del contrato al momento de emitir.
type Invoice struct {
	ID         string
	ContractID string
	CompanyID  string
	Number     string
	Date       time.Time
	Subtotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
