package dto

import "time"

// CreateTicketRequest body para POST /api/tickets.
type CreateTicketRequest struct {
	CompanyID   string `json:"company_id" validate:"required,uuid"`
	Subject     string `json:"subject" validate:"required,min=1,max=300"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	AssigneeID  string `json:"assignee_id,omitempty"`
}

// UpdateTicketRequest body para PUT /api/tickets/:id (requiere edit_tickets).
type UpdateTicketRequest struct {
	Subject     *string `json:"subject,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=open in_progress resolved closed"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
}

// TicketResponse ticket de soporte en respuestas.
type TicketResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	Subject     string     `json:"subject"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	AssigneeID  string     `json:"assignee_id,omitempty"`
	CreatedBy   string     `json:"created_by"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TicketListResponse listado paginado de tickets.
type TicketListResponse struct {
	Items []TicketResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
