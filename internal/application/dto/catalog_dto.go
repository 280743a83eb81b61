package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCatalogProductRequest body para POST /api/catalog.
type CreateCatalogProductRequest struct {
	Code         string          `json:"code" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description,omitempty"`
	Platform     string          `json:"platform,omitempty" validate:"omitempty,oneof=soundtrack beatbreeze"`
	ThailandOnly bool            `json:"thailand_only"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
}

// UpdateCatalogProductRequest body para PUT /api/catalog/:id.
type UpdateCatalogProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Platform     *string          `json:"platform,omitempty"`
	ThailandOnly *bool            `json:"thailand_only,omitempty"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"`
	TaxRate      *decimal.Decimal `json:"tax_rate,omitempty"`
	Status       *string          `json:"status,omitempty" validate:"omitempty,oneof=active discontinued"`
}

// CatalogProductResponse producto del catálogo en respuestas.
type CatalogProductResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Platform     string          `json:"platform,omitempty"`
	ThailandOnly bool            `json:"thailand_only"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CatalogProductListResponse listado paginado del catálogo.
type CatalogProductListResponse struct {
	Items []CatalogProductResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}
