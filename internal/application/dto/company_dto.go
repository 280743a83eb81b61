package dto

import "time"

// CreateCompanyRequest body para POST /api/companies.
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	TaxID       string `json:"tax_id" validate:"required"`
	Zone        string `json:"zone,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	ContactName string `json:"contact_name,omitempty"`
}

// UpdateCompanyRequest body para PUT /api/companies/:id.
type UpdateCompanyRequest struct {
	Name        *string `json:"name,omitempty"`
	Zone        *string `json:"zone,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	ContactName *string `json:"contact_name,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active prospect inactive"`
}

// CompanyResponse empresa cliente en respuestas.
type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	TaxID       string    `json:"tax_id"`
	Zone        string    `json:"zone,omitempty"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	ContactName string    `json:"contact_name,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
