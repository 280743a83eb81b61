package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// TicketUseCase registros de soporte técnico.
type TicketUseCase struct {
	repo        repository.SupportTicketRepository
	companyRepo repository.CompanyRepository
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(repo repository.SupportTicketRepository, companyRepo repository.CompanyRepository) *TicketUseCase {
	return &TicketUseCase{repo: repo, companyRepo: companyRepo}
}

// Create abre un ticket para una empresa cliente existente.
func (uc *TicketUseCase) Create(actorID string, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if in.CompanyID == "" || in.Subject == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.TicketPriorityMedium
	}
	now := time.Now()
	t := &entity.SupportTicket{
		ID:          uuid.New().String(),
		CompanyID:   in.CompanyID,
		Subject:     in.Subject,
		Description: in.Description,
		Priority:    priority,
		Status:      entity.TicketStatusOpen,
		AssigneeID:  in.AssigneeID,
		CreatedBy:   actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return ticketToResponse(t), nil
}

// GetByID obtiene un ticket por ID.
func (uc *TicketUseCase) GetByID(id string) (*dto.TicketResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return ticketToResponse(t), nil
}

// Update aplica cambios parciales; al pasar a resolved/closed fija ResolvedAt.
func (uc *TicketUseCase) Update(id string, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if in.Subject != nil {
		t.Subject = *in.Subject
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.AssigneeID != nil {
		t.AssigneeID = *in.AssigneeID
	}
	if in.Status != nil && *in.Status != t.Status {
		t.Status = *in.Status
		if t.Status == entity.TicketStatusResolved || t.Status == entity.TicketStatusClosed {
			now := time.Now()
			t.ResolvedAt = &now
		} else {
			t.ResolvedAt = nil
		}
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return ticketToResponse(t), nil
}

// List lista tickets; companyID y status son filtros opcionales excluyentes.
func (uc *TicketUseCase) List(companyID, status string, limit, offset int) (*dto.TicketListResponse, error) {
	var list []*entity.SupportTicket
	var err error
	switch {
	case companyID != "":
		list, err = uc.repo.ListByCompany(companyID, limit, offset)
	case status != "":
		list, err = uc.repo.ListByStatus(status, limit, offset)
	default:
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.TicketResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *ticketToResponse(t))
	}
	return &dto.TicketListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func ticketToResponse(t *entity.SupportTicket) *dto.TicketResponse {
	return &dto.TicketResponse{
		ID:          t.ID,
		CompanyID:   t.CompanyID,
		Subject:     t.Subject,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		AssigneeID:  t.AssigneeID,
		CreatedBy:   t.CreatedBy,
		ResolvedAt:  t.ResolvedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
