package repository

import "github.com/jhoicas/crm-api/internal/domain/entity"

// ContractRepository define el puerto de persistencia para Contract.
type ContractRepository interface {
	Create(contract *entity.Contract) error
	CreateItem(item *entity.ContractItem) error
	GetByID(id string) (*entity.Contract, error)
	GetByQuoteID(quoteID string) (*entity.Contract, error)
	GetItems(contractID string) ([]*entity.ContractItem, error)
	Update(contract *entity.Contract) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Contract, error)
	List(limit, offset int) ([]*entity.Contract, error)
}
