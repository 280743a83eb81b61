package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// CatalogUseCase administra el catálogo de productos/servicios vendibles.
type CatalogUseCase struct {
	repo repository.CatalogProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Create agrega un producto al catálogo. Devuelve ErrDuplicate si el código existe.
func (uc *CatalogUseCase) Create(in dto.CreateCatalogProductRequest) (*dto.CatalogProductResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.CatalogProduct{
		ID:           uuid.New().String(),
		Code:         in.Code,
		Name:         in.Name,
		Description:  in.Description,
		Platform:     in.Platform,
		ThailandOnly: in.ThailandOnly,
		UnitPrice:    in.UnitPrice,
		TaxRate:      in.TaxRate,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toCatalogResponse(p), nil
}

// GetByID obtiene un producto por ID.
func (uc *CatalogUseCase) GetByID(id string) (*dto.CatalogProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toCatalogResponse(p), nil
}

// Update aplica cambios parciales a un producto del catálogo.
func (uc *CatalogUseCase) Update(id string, in dto.UpdateCatalogProductRequest) (*dto.CatalogProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Platform != nil {
		p.Platform = *in.Platform
	}
	if in.ThailandOnly != nil {
		p.ThailandOnly = *in.ThailandOnly
	}
	if in.UnitPrice != nil {
		p.UnitPrice = *in.UnitPrice
	}
	if in.TaxRate != nil {
		p.TaxRate = *in.TaxRate
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toCatalogResponse(p), nil
}

// List lista el catálogo con paginación.
func (uc *CatalogUseCase) List(limit, offset int) (*dto.CatalogProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toCatalogResponse(p))
	}
	return &dto.CatalogProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toCatalogResponse(p *entity.CatalogProduct) *dto.CatalogProductResponse {
	if p == nil {
		return nil
	}
	return &dto.CatalogProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		Platform:     p.Platform,
		ThailandOnly: p.ThailandOnly,
		UnitPrice:    p.UnitPrice,
		TaxRate:      p.TaxRate,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
