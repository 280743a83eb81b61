package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteItemRequest línea de cotización tal como la envía el formulario.
// line_total NO se acepta del cliente: siempre lo deriva el calculador.
type QuoteItemRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	DiscountPct decimal.Decimal `json:"discount_percentage"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// ServiceLocationRequest ubicación de servicio enviada por el formulario.
// El ID viaja de vuelta para que la reconciliación preserve identidad y nombre.
type ServiceLocationRequest struct {
	ID       string `json:"id,omitempty"`
	Platform string `json:"platform"`
	Name     string `json:"name"`
}

// SaveQuoteRequest body para POST /api/quotes y PUT /api/quotes/:id.
type SaveQuoteRequest struct {
	CompanyID  string                   `json:"company_id" validate:"required,uuid"`
	ValidUntil *time.Time               `json:"valid_until,omitempty"`
	Notes      string                   `json:"notes,omitempty"`
	Items      []QuoteItemRequest       `json:"items" validate:"required,min=1"`
	Locations  []ServiceLocationRequest `json:"service_locations,omitempty"`
}

// QuoteItemResponse línea en respuestas, con el line_total derivado.
type QuoteItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	DiscountPct decimal.Decimal `json:"discount_percentage"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// ServiceLocationResponse ubicación en respuestas.
type ServiceLocationResponse struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Name     string `json:"name"`
}

// QuoteResponse cotización completa.
// NamedLocationsDropped es el aviso no fatal de la reconciliación: cuántas
// ubicaciones con nombre se eliminaron en este guardado. El front debe
// mostrarlo; el resultado se aplica igual.
type QuoteResponse struct {
	ID                    string                    `json:"id"`
	CompanyID             string                    `json:"company_id"`
	UserID                string                    `json:"user_id"`
	Number                string                    `json:"number"`
	Status                string                    `json:"status"`
	Subtotal              decimal.Decimal           `json:"subtotal"`
	DiscountTotal         decimal.Decimal           `json:"discount_total"`
	TaxTotal              decimal.Decimal           `json:"tax_total"`
	GrandTotal            decimal.Decimal           `json:"grand_total"`
	ValidUntil            *time.Time                `json:"valid_until,omitempty"`
	Notes                 string                    `json:"notes,omitempty"`
	Items                 []QuoteItemResponse       `json:"items"`
	Locations             []ServiceLocationResponse `json:"service_locations"`
	NamedLocationsDropped int                       `json:"named_locations_dropped,omitempty"`
	CreatedAt             time.Time                 `json:"created_at"`
	UpdatedAt             time.Time                 `json:"updated_at"`
}

// QuoteListResponse listado paginado de cotizaciones (solo cabeceras).
type QuoteListResponse struct {
	Items []QuoteResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// UpdateQuoteStatusRequest body para PATCH /api/quotes/:id/status.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft sent accepted rejected"`
}
