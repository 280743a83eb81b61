package entity

import "time"

// Company representa una empresa cliente del CRM (cuenta comercial).
type Company struct {
	ID          string
	Name        string
	TaxID       string // identificación tributaria del cliente
	Zone        string // zona comercial asignada (ej. "bangkok", "phuket")
	Address     string
	Phone       string
	Email       string
	ContactName string
	Status      string // active, prospect, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Estados válidos para Company.
const (
	CompanyStatusActive   = "active"
	CompanyStatusProspect = "prospect"
	CompanyStatusInactive = "inactive"
)
