package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una cotización.
const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"
)

// Quote representa la cabecera de una cotización comercial.
// Los totales son siempre derivados de las líneas (calculador de dominio);
// nunca se asignan de forma independiente.
type Quote struct {
	ID            string
	CompanyID     string
	UserID        string // vendedor dueño de la cotización
	Number        string
	Status        string
	Subtotal      decimal.Decimal // Σ después de descuento, redondeado a 2 decimales
	DiscountTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	GrandTotal    decimal.Decimal // Subtotal + TaxTotal
	ValidUntil    *time.Time
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
