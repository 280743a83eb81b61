package contracts

import (
	"time"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ContractUseCase consultas y cambios de estado sobre contratos existentes.
type ContractUseCase struct {
	contractRepo repository.ContractRepository
}

func NewContractUseCase(contractRepo repository.ContractRepository) *ContractUseCase {
	return &ContractUseCase{contractRepo: contractRepo}
}

// GetByID obtiene un contrato con sus líneas.
func (uc *ContractUseCase) GetByID(id string) (*dto.ContractResponse, error) {
	c, err := uc.contractRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	items, err := uc.contractRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return toContractResponse(c, items), nil
}

// UpdateStatus cambia el estado del contrato (active→expired/terminated).
func (uc *ContractUseCase) UpdateStatus(id, status string) (*dto.ContractResponse, error) {
	c, err := uc.contractRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	switch status {
	case entity.ContractStatusActive, entity.ContractStatusExpired,
		entity.ContractStatusTerminated:
	default:
		return nil, domain.ErrInvalidInput
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	if err := uc.contractRepo.Update(c); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// List lista contratos; companyID opcional filtra por empresa.
func (uc *ContractUseCase) List(companyID string, limit, offset int) (*dto.ContractListResponse, error) {
	var list []*entity.Contract
	var err error
	if companyID != "" {
		list, err = uc.contractRepo.ListByCompany(companyID, limit, offset)
	} else {
		list, err = uc.contractRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContractResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContractResponse(c, nil))
	}
	return &dto.ContractListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
