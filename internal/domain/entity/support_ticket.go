package entity

import "time"

// Estados y prioridades de tickets de soporte técnico.
const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"

	TicketPriorityLow    = "low"
	TicketPriorityMedium = "medium"
	TicketPriorityHigh   = "high"
	TicketPriorityUrgent = "urgent"
)

// SupportTicket representa un registro de soporte técnico asociado a una empresa cliente.
type SupportTicket struct {
	ID          string
	CompanyID   string
	Subject     string
	Description string
	Priority    string // low, medium, high, urgent
	Status      string // open, in_progress, resolved, closed
	AssigneeID  string // usuario de soporte asignado (vacío = sin asignar)
	CreatedBy   string
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
