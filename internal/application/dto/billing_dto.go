package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IssueInvoiceRequest body para POST /api/invoices/from-contract/:contractID.
type IssueInvoiceRequest struct {
	Number string     `json:"number,omitempty"` // opcional; vacío = se genera
	Date   *time.Time `json:"date,omitempty"`   // opcional; vacío = hoy
}

// InvoiceDetailResponse línea de detalle en la respuesta.
type InvoiceDetailResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// InvoiceResponse factura con detalle para GET /api/invoices/:id.
type InvoiceResponse struct {
	ID          string                  `json:"id"`
	ContractID  string                  `json:"contract_id"`
	CompanyID   string                  `json:"company_id"`
	CompanyName string                  `json:"company_name,omitempty"`
	Number      string                  `json:"number"`
	Date        string                  `json:"date"`
	Subtotal    decimal.Decimal         `json:"subtotal"`
	TaxTotal    decimal.Decimal         `json:"tax_total"`
	GrandTotal  decimal.Decimal         `json:"grand_total"`
	Status      string                  `json:"status"`
	Details     []InvoiceDetailResponse `json:"details"`
}

// InvoiceListResponse listado paginado de facturas (sin detalle).
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// UpdateInvoiceStatusRequest body para PATCH /api/invoices/:id/status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft issued paid voided"`
}
