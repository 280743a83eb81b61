package quotes

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	domquote "github.com/jhoicas/crm-api/internal/domain/quote"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// QuoteUseCase crea y actualiza cotizaciones: deriva totales con el calculador
// de dominio y reconcilia las ubicaciones de servicio contra el catálogo en
// cada guardado. El aviso de nombradas eliminadas se propaga en la respuesta.
type QuoteUseCase struct {
	quoteRepo   repository.QuoteRepository
	companyRepo repository.CompanyRepository
	catalogRepo repository.CatalogProductRepository
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(
	quoteRepo repository.QuoteRepository,
	companyRepo repository.CompanyRepository,
	catalogRepo repository.CatalogProductRepository,
) *QuoteUseCase {
	return &QuoteUseCase{
		quoteRepo:   quoteRepo,
		companyRepo: companyRepo,
		catalogRepo: catalogRepo,
	}
}

// Create crea una cotización en borrador para una empresa cliente.
func (uc *QuoteUseCase) Create(userID string, in dto.SaveQuoteRequest) (*dto.QuoteResponse, error) {
	if in.CompanyID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	q := &entity.Quote{
		ID:         uuid.New().String(),
		CompanyID:  in.CompanyID,
		UserID:     userID,
		Number:     fmt.Sprintf("Q-%d", now.Unix()),
		Status:     entity.QuoteStatusDraft,
		ValidUntil: in.ValidUntil,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	items, locations, dropped, err := uc.deriveState(q.ID, in)
	if err != nil {
		return nil, err
	}
	applyTotals(q, items)

	if err := uc.quoteRepo.Create(q); err != nil {
		return nil, err
	}
	if err := uc.quoteRepo.ReplaceItems(q.ID, items); err != nil {
		return nil, err
	}
	if err := uc.quoteRepo.ReplaceLocations(q.ID, locations); err != nil {
		return nil, err
	}
	return uc.toResponse(q, items, locations, dropped), nil
}

// Update reemplaza líneas y ubicaciones de una cotización en borrador y
// recalcula todos los derivados. Cotizaciones enviadas/aceptadas no se editan.
func (uc *QuoteUseCase) Update(id string, in dto.SaveQuoteRequest) (*dto.QuoteResponse, error) {
	q, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if q.Status != entity.QuoteStatusDraft {
		return nil, domain.ErrInvalidState
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	items, locations, dropped, err := uc.deriveState(q.ID, in)
	if err != nil {
		return nil, err
	}
	applyTotals(q, items)
	q.Notes = in.Notes
	q.ValidUntil = in.ValidUntil
	q.UpdatedAt = time.Now()

	if err := uc.quoteRepo.Update(q); err != nil {
		return nil, err
	}
	if err := uc.quoteRepo.ReplaceItems(q.ID, items); err != nil {
		return nil, err
	}
	if err := uc.quoteRepo.ReplaceLocations(q.ID, locations); err != nil {
		return nil, err
	}
	return uc.toResponse(q, items, locations, dropped), nil
}

// deriveState valida los productos, materializa las líneas con su line_total
// derivado y reconcilia las ubicaciones enviadas por el formulario.
func (uc *QuoteUseCase) deriveState(quoteID string, in dto.SaveQuoteRequest) ([]*entity.QuoteItem, []entity.ServiceLocation, int, error) {
	// 1) Catálogo completo: valida productos y alimenta la reconciliación.
	products, err := uc.catalogRepo.ListAll()
	if err != nil {
		return nil, nil, 0, err
	}
	catalog := domquote.NewCatalog(products)

	// 2) Líneas: precio de lista del catálogo si el formulario no trae precio.
	items := make([]*entity.QuoteItem, 0, len(in.Items))
	for i, reqItem := range in.Items {
		product, ok := catalog[reqItem.ProductID]
		if !ok {
			return nil, nil, 0, domain.ErrInvalidInput
		}
		unitPrice := reqItem.UnitPrice
		if unitPrice.IsZero() {
			unitPrice = product.UnitPrice
		}
		description := reqItem.Description
		if description == "" {
			description = product.Name
		}
		it := &entity.QuoteItem{
			ID:          uuid.New().String(),
			QuoteID:     quoteID,
			ProductID:   reqItem.ProductID,
			Description: description,
			Quantity:    reqItem.Quantity,
			UnitPrice:   unitPrice,
			DiscountPct: reqItem.DiscountPct,
			TaxRate:     reqItem.TaxRate,
			Position:    i,
		}
		it.LineTotal = domquote.ComputeLine(domquote.LineFromItem(it)).AfterDiscount
		items = append(items, it)
	}

	// 3) Ubicaciones previas del formulario (identidad preservada vía ID).
	existing := make([]entity.ServiceLocation, 0, len(in.Locations))
	for _, l := range in.Locations {
		existing = append(existing, entity.ServiceLocation{
			ID:       l.ID,
			QuoteID:  quoteID,
			Platform: l.Platform,
			Name:     l.Name,
		})
	}

	// 4) Reconciliar: el generador de IDs lo aporta este caller (uuid).
	locations, dropped := domquote.ReconcileLocations(items, existing, catalog, uuid.NewString)
	for i := range locations {
		locations[i].QuoteID = quoteID
	}
	return items, locations, dropped, nil
}

// applyTotals escribe en la cabecera los agregados derivados de las líneas.
func applyTotals(q *entity.Quote, items []*entity.QuoteItem) {
	lines := make([]domquote.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, domquote.LineFromItem(it))
	}
	totals := domquote.ComputeTotals(lines)
	q.Subtotal = totals.Subtotal
	q.DiscountTotal = totals.DiscountTotal
	q.TaxTotal = totals.TaxTotal
	q.GrandTotal = totals.GrandTotal
}

// GetByID obtiene una cotización completa (cabecera, líneas y ubicaciones).
func (uc *QuoteUseCase) GetByID(id string) (*dto.QuoteResponse, error) {
	q, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, nil
	}
	items, err := uc.quoteRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	locations, err := uc.quoteRepo.GetLocations(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(q, items, locations, 0), nil
}

// UpdateStatus cambia el estado del ciclo de vida (draft→sent→accepted/rejected).
func (uc *QuoteUseCase) UpdateStatus(id, status string) (*dto.QuoteResponse, error) {
	q, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	switch status {
	case entity.QuoteStatusDraft, entity.QuoteStatusSent,
		entity.QuoteStatusAccepted, entity.QuoteStatusRejected:
	default:
		return nil, domain.ErrInvalidInput
	}
	q.Status = status
	q.UpdatedAt = time.Now()
	if err := uc.quoteRepo.Update(q); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// List lista cabeceras de cotización; companyID opcional filtra por empresa.
func (uc *QuoteUseCase) List(companyID string, limit, offset int) (*dto.QuoteListResponse, error) {
	var list []*entity.Quote
	var err error
	if companyID != "" {
		list, err = uc.quoteRepo.ListByCompany(companyID, limit, offset)
	} else {
		list, err = uc.quoteRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *uc.toResponse(q, nil, nil, 0))
	}
	return &dto.QuoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *QuoteUseCase) toResponse(q *entity.Quote, items []*entity.QuoteItem, locations []entity.ServiceLocation, dropped int) *dto.QuoteResponse {
	resp := &dto.QuoteResponse{
		ID:                    q.ID,
		CompanyID:             q.CompanyID,
		UserID:                q.UserID,
		Number:                q.Number,
		Status:                q.Status,
		Subtotal:              q.Subtotal,
		DiscountTotal:         q.DiscountTotal,
		TaxTotal:              q.TaxTotal,
		GrandTotal:            q.GrandTotal,
		ValidUntil:            q.ValidUntil,
		Notes:                 q.Notes,
		Items:                 make([]dto.QuoteItemResponse, 0, len(items)),
		Locations:             make([]dto.ServiceLocationResponse, 0, len(locations)),
		NamedLocationsDropped: dropped,
		CreatedAt:             q.CreatedAt,
		UpdatedAt:             q.UpdatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.QuoteItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			DiscountPct: it.DiscountPct,
			TaxRate:     it.TaxRate,
			LineTotal:   it.LineTotal,
		})
	}
	for _, l := range locations {
		resp.Locations = append(resp.Locations, dto.ServiceLocationResponse{
			ID:       l.ID,
			Platform: l.Platform,
			Name:     l.Name,
		})
	}
	return resp
}
