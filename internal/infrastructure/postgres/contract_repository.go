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

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementación de ContractRepository (usable con pool o tx).
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

// Create persiste la cabecera del contrato. quote_id tiene constraint único:
// una cotización genera a lo sumo un contrato.
func (r *ContractRepo) Create(contract *entity.Contract) error {
	query := `
		INSERT INTO contracts (id, quote_id, company_id, user_id, number, status, subtotal,
			tax_total, grand_total, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.QuoteID, contract.CompanyID, contract.UserID, contract.Number,
		contract.Status, contract.Subtotal, contract.TaxTotal, contract.GrandTotal,
		contract.StartDate, contract.EndDate, contract.CreatedAt, contract.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de contrato.
func (r *ContractRepo) CreateItem(item *entity.ContractItem) error {
	query := `
		INSERT INTO contract_items (id, contract_id, product_id, description, quantity,
			unit_price, discount_pct, tax_rate, line_total, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ContractID, item.ProductID, item.Description, item.Quantity,
		item.UnitPrice, item.DiscountPct, item.TaxRate, item.LineTotal, item.Position,
	)
	if err != nil {
		return fmt.Errorf("insert contract item: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID.
func (r *ContractRepo) GetByID(id string) (*entity.Contract, error) {
	query := `
		SELECT id, quote_id, company_id, user_id, number, status, subtotal, tax_total,
			grand_total, start_date, end_date, created_at, updated_at
		FROM contracts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByQuoteID obtiene el contrato originado en una cotización, si existe.
func (r *ContractRepo) GetByQuoteID(quoteID string) (*entity.Contract, error) {
	query := `
		SELECT id, quote_id, company_id, user_id, number, status, subtotal, tax_total,
			grand_total, start_date, end_date, created_at, updated_at
		FROM contracts WHERE quote_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, quoteID))
}

func (r *ContractRepo) scanOne(row pgx.Row) (*entity.Contract, error) {
	var c entity.Contract
	err := row.Scan(
		&c.ID, &c.QuoteID, &c.CompanyID, &c.UserID, &c.Number, &c.Status, &c.Subtotal,
		&c.TaxTotal, &c.GrandTotal, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return &c, nil
}

// GetItems obtiene las líneas del contrato en orden estable.
func (r *ContractRepo) GetItems(contractID string) ([]*entity.ContractItem, error) {
	query := `
		SELECT id, contract_id, product_id, description, quantity, unit_price, discount_pct,
			tax_rate, line_total, position
		FROM contract_items WHERE contract_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, contractID)
	if err != nil {
		return nil, fmt.Errorf("get contract items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ContractItem
	for rows.Next() {
		var it entity.ContractItem
		if err := rows.Scan(&it.ID, &it.ContractID, &it.ProductID, &it.Description, &it.Quantity,
			&it.UnitPrice, &it.DiscountPct, &it.TaxRate, &it.LineTotal, &it.Position); err != nil {
			return nil, fmt.Errorf("scan contract item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza la cabecera del contrato.
func (r *ContractRepo) Update(contract *entity.Contract) error {
	query := `
		UPDATE contracts SET status = $2, end_date = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.Status, contract.EndDate, contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	return nil
}

// ListByCompany lista contratos de una empresa con paginación.
func (r *ContractRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Contract, error) {
	query := `
		SELECT id, quote_id, company_id, user_id, number, status, subtotal, tax_total,
			grand_total, start_date, end_date, created_at, updated_at
		FROM contracts WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contracts by company: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// List lista contratos con paginación.
func (r *ContractRepo) List(limit, offset int) ([]*entity.Contract, error) {
	query := `
		SELECT id, quote_id, company_id, user_id, number, status, subtotal, tax_total,
			grand_total, start_date, end_date, created_at, updated_at
		FROM contracts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

func (r *ContractRepo) scanList(rows pgx.Rows) ([]*entity.Contract, error) {
	var list []*entity.Contract
	for rows.Next() {
		var c entity.Contract
		if err := rows.Scan(&c.ID, &c.QuoteID, &c.CompanyID, &c.UserID, &c.Number, &c.Status,
			&c.Subtotal, &c.TaxTotal, &c.GrandTotal, &c.StartDate, &c.EndDate,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
