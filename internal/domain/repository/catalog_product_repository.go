package repository

import "github.com/jhoicas/crm-api/internal/domain/entity"

// CatalogProductRepository define el puerto de persistencia del catálogo.
type CatalogProductRepository interface {
	Create(product *entity.CatalogProduct) error
	GetByID(id string) (*entity.CatalogProduct, error)
	GetByCode(code string) (*entity.CatalogProduct, error)
	Update(product *entity.CatalogProduct) error
	List(limit, offset int) ([]*entity.CatalogProduct, error)
	// ListAll devuelve el catálogo completo (para construir quote.Catalog
	// antes de reconciliar ubicaciones).
	ListAll() ([]*entity.CatalogProduct, error)
}
