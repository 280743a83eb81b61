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

var _ repository.CatalogProductRepository = (*CatalogProductRepo)(nil)

// CatalogProductRepo implementación de CatalogProductRepository (usable con pool o tx).
type CatalogProductRepo struct {
	q Querier
}

// NewCatalogProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogProductRepository(q Querier) *CatalogProductRepo {
	return &CatalogProductRepo{q: q}
}

// Create persiste un nuevo producto de catálogo.
func (r *CatalogProductRepo) Create(product *entity.CatalogProduct) error {
	query := `
		INSERT INTO catalog_products (id, code, name, description, platform, thailand_only, unit_price, tax_rate, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.Description, product.Platform,
		product.ThailandOnly, product.UnitPrice, product.TaxRate, product.Status,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert catalog product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *CatalogProductRepo) GetByID(id string) (*entity.CatalogProduct, error) {
	query := `
		SELECT id, code, name, description, platform, thailand_only, unit_price, tax_rate, status, created_at, updated_at
		FROM catalog_products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCode obtiene un producto por código de catálogo.
func (r *CatalogProductRepo) GetByCode(code string) (*entity.CatalogProduct, error) {
	query := `
		SELECT id, code, name, description, platform, thailand_only, unit_price, tax_rate, status, created_at, updated_at
		FROM catalog_products WHERE code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code))
}

func (r *CatalogProductRepo) scanOne(row pgx.Row) (*entity.CatalogProduct, error) {
	var p entity.CatalogProduct
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Description, &p.Platform, &p.ThailandOnly,
		&p.UnitPrice, &p.TaxRate, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalog product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto de catálogo.
func (r *CatalogProductRepo) Update(product *entity.CatalogProduct) error {
	query := `
		UPDATE catalog_products SET code = $2, name = $3, description = $4, platform = $5,
			thailand_only = $6, unit_price = $7, tax_rate = $8, status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.Description, product.Platform,
		product.ThailandOnly, product.UnitPrice, product.TaxRate, product.Status, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update catalog product: %w", err)
	}
	return nil
}

// List lista productos con paginación.
func (r *CatalogProductRepo) List(limit, offset int) ([]*entity.CatalogProduct, error) {
	query := `
		SELECT id, code, name, description, platform, thailand_only, unit_price, tax_rate, status, created_at, updated_at
		FROM catalog_products ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list catalog products: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// ListAll devuelve el catálogo completo (alimenta la reconciliación de ubicaciones).
func (r *CatalogProductRepo) ListAll() ([]*entity.CatalogProduct, error) {
	query := `
		SELECT id, code, name, description, platform, thailand_only, unit_price, tax_rate, status, created_at, updated_at
		FROM catalog_products ORDER BY code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all catalog products: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

func (r *CatalogProductRepo) scanList(rows pgx.Rows) ([]*entity.CatalogProduct, error) {
	var list []*entity.CatalogProduct
	for rows.Next() {
		var p entity.CatalogProduct
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.Platform, &p.ThailandOnly,
			&p.UnitPrice, &p.TaxRate, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan catalog product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
