package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plataformas de música asociables a un producto del catálogo.
// Un producto sin plataforma no genera ubicaciones de servicio.
const (
	PlatformSoundtrack = "soundtrack"
	PlatformBeatbreeze = "beatbreeze"
	PlatformNone       = ""
)

// CatalogProduct representa un producto o servicio vendible del catálogo.
// Platform decide cuántas ubicaciones de servicio implica cada unidad vendida.
type CatalogProduct struct {
	ID           string
	Code         string // código único del catálogo
	Name         string
	Description  string
	Platform     string          // soundtrack, beatbreeze o vacío
	ThailandOnly bool            // solo vendible a clientes en Tailandia
	UnitPrice    decimal.Decimal // precio de lista
	TaxRate      decimal.Decimal // porcentaje de impuesto por defecto (ej. 7 = VAT 7%)
	Status       string          // active, discontinued
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
