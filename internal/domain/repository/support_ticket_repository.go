package repository

import "github.com/jhoicas/crm-api/internal/domain/entity"

// SupportTicketRepository define el puerto de persistencia para SupportTicket.
type SupportTicketRepository interface {
	Create(ticket *entity.SupportTicket) error
	GetByID(id string) (*entity.SupportTicket, error)
	Update(ticket *entity.SupportTicket) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.SupportTicket, error)
	ListByStatus(status string, limit, offset int) ([]*entity.SupportTicket, error)
	List(limit, offset int) ([]*entity.SupportTicket, error)
}
