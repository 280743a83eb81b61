package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConvertQuoteRequest body para POST /api/contracts/from-quote/:quoteID.
type ConvertQuoteRequest struct {
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// ContractItemResponse línea de contrato (descuento ya plegado en el precio).
type ContractItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"` // precio final con descuento incluido
	DiscountPct decimal.Decimal `json:"discount_percentage"` // siempre 0
	TaxRate     decimal.Decimal `json:"tax_rate"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// ContractResponse contrato con sus líneas.
type ContractResponse struct {
	ID         string                 `json:"id"`
	QuoteID    string                 `json:"quote_id"`
	CompanyID  string                 `json:"company_id"`
	Number     string                 `json:"number"`
	Status     string                 `json:"status"`
	Subtotal   decimal.Decimal        `json:"subtotal"`
	TaxTotal   decimal.Decimal        `json:"tax_total"`
	GrandTotal decimal.Decimal        `json:"grand_total"`
	StartDate  time.Time              `json:"start_date"`
	EndDate    *time.Time             `json:"end_date,omitempty"`
	Items      []ContractItemResponse `json:"items"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// ContractListResponse listado paginado de contratos.
type ContractListResponse struct {
	Items []ContractResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
