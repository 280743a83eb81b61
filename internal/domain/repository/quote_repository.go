package repository

import "github.com/jhoicas/crm-api/internal/domain/entity"

// QuoteRepository define el puerto de persistencia para Quote y sus agregados
// (líneas y ubicaciones de servicio). Las líneas y ubicaciones se reemplazan
// en bloque al guardar: son estado del formulario, no entidades independientes.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	Update(quote *entity.Quote) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Quote, error)
	List(limit, offset int) ([]*entity.Quote, error)
	Delete(id string) error

	GetItems(quoteID string) ([]*entity.QuoteItem, error)
	ReplaceItems(quoteID string, items []*entity.QuoteItem) error

	GetLocations(quoteID string) ([]entity.ServiceLocation, error)
	ReplaceLocations(quoteID string, locations []entity.ServiceLocation) error
}
