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

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación de QuoteRepository (usable con pool o tx).
// Líneas y ubicaciones se reemplazan en bloque: delete + insert con el estado
// completo del formulario.
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persiste la cabecera de una cotización.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, company_id, user_id, number, status, subtotal, discount_total,
			tax_total, grand_total, valid_until, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.CompanyID, quote.UserID, quote.Number, quote.Status,
		quote.Subtotal, quote.DiscountTotal, quote.TaxTotal, quote.GrandTotal,
		quote.ValidUntil, quote.Notes, quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una cotización.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `
		SELECT id, company_id, user_id, number, status, subtotal, discount_total,
			tax_total, grand_total, valid_until, notes, created_at, updated_at
		FROM quotes WHERE id = $1`
	var q entity.Quote
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.CompanyID, &q.UserID, &q.Number, &q.Status, &q.Subtotal, &q.DiscountTotal,
		&q.TaxTotal, &q.GrandTotal, &q.ValidUntil, &q.Notes, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &q, nil
}

// Update actualiza la cabecera de una cotización.
func (r *QuoteRepo) Update(quote *entity.Quote) error {
	query := `
		UPDATE quotes SET status = $2, subtotal = $3, discount_total = $4, tax_total = $5,
			grand_total = $6, valid_until = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.Status, quote.Subtotal, quote.DiscountTotal, quote.TaxTotal,
		quote.GrandTotal, quote.ValidUntil, quote.Notes, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	return nil
}

// ListByCompany lista cotizaciones de una empresa con paginación.
func (r *QuoteRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Quote, error) {
	query := `
		SELECT id, company_id, user_id, number, status, subtotal, discount_total,
			tax_total, grand_total, valid_until, notes, created_at, updated_at
		FROM quotes WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotes by company: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// List lista cotizaciones con paginación.
func (r *QuoteRepo) List(limit, offset int) ([]*entity.Quote, error) {
	query := `
		SELECT id, company_id, user_id, number, status, subtotal, discount_total,
			tax_total, grand_total, valid_until, notes, created_at, updated_at
		FROM quotes ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

func (r *QuoteRepo) scanList(rows pgx.Rows) ([]*entity.Quote, error) {
	var list []*entity.Quote
	for rows.Next() {
		var q entity.Quote
		if err := rows.Scan(&q.ID, &q.CompanyID, &q.UserID, &q.Number, &q.Status, &q.Subtotal,
			&q.DiscountTotal, &q.TaxTotal, &q.GrandTotal, &q.ValidUntil, &q.Notes,
			&q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// Delete elimina una cotización; las líneas y ubicaciones caen por cascada.
func (r *QuoteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}

// GetItems obtiene las líneas de una cotización en orden estable.
func (r *QuoteRepo) GetItems(quoteID string) ([]*entity.QuoteItem, error) {
	query := `
		SELECT id, quote_id, product_id, description, quantity, unit_price, discount_pct,
			tax_rate, line_total, position
		FROM quote_items WHERE quote_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("get quote items: %w", err)
	}
	defer rows.Close()
	var list []*entity.QuoteItem
	for rows.Next() {
		var it entity.QuoteItem
		if err := rows.Scan(&it.ID, &it.QuoteID, &it.ProductID, &it.Description, &it.Quantity,
			&it.UnitPrice, &it.DiscountPct, &it.TaxRate, &it.LineTotal, &it.Position); err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ReplaceItems reemplaza todas las líneas de la cotización.
func (r *QuoteRepo) ReplaceItems(quoteID string, items []*entity.QuoteItem) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM quote_items WHERE quote_id = $1`, quoteID); err != nil {
		return fmt.Errorf("delete quote items: %w", err)
	}
	query := `
		INSERT INTO quote_items (id, quote_id, product_id, description, quantity, unit_price,
			discount_pct, tax_rate, line_total, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, it := range items {
		_, err := r.q.Exec(ctx, query,
			it.ID, quoteID, it.ProductID, it.Description, it.Quantity, it.UnitPrice,
			it.DiscountPct, it.TaxRate, it.LineTotal, it.Position,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidInput
			}
			return fmt.Errorf("insert quote item: %w", err)
		}
	}
	return nil
}

// GetLocations obtiene las ubicaciones de servicio en orden estable.
func (r *QuoteRepo) GetLocations(quoteID string) ([]entity.ServiceLocation, error) {
	query := `
		SELECT id, quote_id, platform, name, position
		FROM service_locations WHERE quote_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("get service locations: %w", err)
	}
	defer rows.Close()
	var list []entity.ServiceLocation
	for rows.Next() {
		var l entity.ServiceLocation
		if err := rows.Scan(&l.ID, &l.QuoteID, &l.Platform, &l.Name, &l.Position); err != nil {
			return nil, fmt.Errorf("scan service location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// ReplaceLocations reemplaza todas las ubicaciones de servicio de la cotización.
func (r *QuoteRepo) ReplaceLocations(quoteID string, locations []entity.ServiceLocation) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM service_locations WHERE quote_id = $1`, quoteID); err != nil {
		return fmt.Errorf("delete service locations: %w", err)
	}
	query := `
		INSERT INTO service_locations (id, quote_id, platform, name, position)
		VALUES ($1, $2, $3, $4, $5)`
	for _, l := range locations {
		_, err := r.q.Exec(ctx, query, l.ID, quoteID, l.Platform, l.Name, l.Position)
		if err != nil {
			return fmt.Errorf("insert service location: %w", err)
		}
	}
	return nil
}
