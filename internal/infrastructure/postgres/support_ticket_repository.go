package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.SupportTicketRepository = (*SupportTicketRepo)(nil)

// SupportTicketRepo implementación de SupportTicketRepository (usable con pool o tx).
type SupportTicketRepo struct {
	q Querier
}

// NewSupportTicketRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupportTicketRepository(q Querier) *SupportTicketRepo {
	return &SupportTicketRepo{q: q}
}

// Create persiste un nuevo ticket.
func (r *SupportTicketRepo) Create(ticket *entity.SupportTicket) error {
	query := `
		INSERT INTO support_tickets (id, company_id, subject, description, priority, status,
			assignee_id, created_by, resolved_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		ticket.ID, ticket.CompanyID, ticket.Subject, ticket.Description, ticket.Priority,
		ticket.Status, ticket.AssigneeID, ticket.CreatedBy, ticket.ResolvedAt,
		ticket.CreatedAt, ticket.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert support ticket: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket por ID.
func (r *SupportTicketRepo) GetByID(id string) (*entity.SupportTicket, error) {
	query := `
		SELECT id, company_id, subject, description, priority, status, assignee_id,
			created_by, resolved_at, created_at, updated_at
		FROM support_tickets WHERE id = $1`
	var t entity.SupportTicket
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.CompanyID, &t.Subject, &t.Description, &t.Priority, &t.Status,
		&t.AssigneeID, &t.CreatedBy, &t.ResolvedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get support ticket: %w", err)
	}
	return &t, nil
}

// Update actualiza un ticket.
func (r *SupportTicketRepo) Update(ticket *entity.SupportTicket) error {
	query := `
		UPDATE support_tickets SET subject = $2, description = $3, priority = $4, status = $5,
			assignee_id = $6, resolved_at = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ticket.ID, ticket.Subject, ticket.Description, ticket.Priority, ticket.Status,
		ticket.AssigneeID, ticket.ResolvedAt, ticket.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update support ticket: %w", err)
	}
	return nil
}

// ListByCompany lista tickets de una empresa con paginación.
func (r *SupportTicketRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.SupportTicket, error) {
	query := `
		SELECT id, company_id, subject, description, priority, status, assignee_id,
			created_by, resolved_at, created_at, updated_at
		FROM support_tickets WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tickets by company: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// ListByStatus lista tickets por estado con paginación.
func (r *SupportTicketRepo) ListByStatus(status string, limit, offset int) ([]*entity.SupportTicket, error) {
	query := `
		SELECT id, company_id, subject, description, priority, status, assignee_id,
			created_by, resolved_at, created_at, updated_at
		FROM support_tickets WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tickets by status: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// List lista tickets con paginación.
func (r *SupportTicketRepo) List(limit, offset int) ([]*entity.SupportTicket, error) {
	query := `
		SELECT id, company_id, subject, description, priority, status, assignee_id,
			created_by, resolved_at, created_at, updated_at
		FROM support_tickets ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

func (r *SupportTicketRepo) scanList(rows pgx.Rows) ([]*entity.SupportTicket, error) {
	var list []*entity.SupportTicket
	for rows.Next() {
		var t entity.SupportTicket
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Subject, &t.Description, &t.Priority,
			&t.Status, &t.AssigneeID, &t.CreatedBy, &t.ResolvedAt,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan support ticket: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
