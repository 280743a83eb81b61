package contracts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	domquote "github.com/jhoicas/crm-api/internal/domain/quote"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ConvertQuoteUseCase convierte una cotización aceptada en contrato. El
// descuento de cada línea se pliega en el precio unitario en este único punto;
// a partir de aquí el contrato no conserva porcentajes de descuento.
type ConvertQuoteUseCase struct {
	quoteRepo    repository.QuoteRepository
	contractRepo repository.ContractRepository
	txRunner     ConversionTxRunner
}

func NewConvertQuoteUseCase(
	quoteRepo repository.QuoteRepository,
	contractRepo repository.ContractRepository,
	txRunner ConversionTxRunner,
) *ConvertQuoteUseCase {
	return &ConvertQuoteUseCase{
		quoteRepo:    quoteRepo,
		contractRepo: contractRepo,
		txRunner:     txRunner,
	}
}

// Execute crea el contrato a partir de la cotización indicada.
func (uc *ConvertQuoteUseCase) Execute(ctx context.Context, quoteID, userID string, in dto.ConvertQuoteRequest) (*dto.ContractResponse, error) {
	// 1. La cotización debe existir y estar aceptada.
	q, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if q.Status != entity.QuoteStatusAccepted {
		return nil, domain.ErrInvalidState
	}

	// 2. Una cotización genera a lo sumo un contrato.
	existing, err := uc.contractRepo.GetByQuoteID(quoteID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	items, err := uc.quoteRepo.GetItems(quoteID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrInvalidState
	}

	now := time.Now()
	startDate := now
	if !in.StartDate.IsZero() {
		startDate = in.StartDate
	}

	// 3. Plegar descuentos: precio final por unidad, descuento en 0.
	contractID := uuid.New().String()
	contractItems := make([]*entity.ContractItem, 0, len(items))
	lines := make([]domquote.Line, 0, len(items))
	for i, it := range items {
		folded := domquote.FoldDiscount(it.UnitPrice, it.DiscountPct)
		ci := &entity.ContractItem{
			ID:          uuid.New().String(),
			ContractID:  contractID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   folded,
			DiscountPct: decimal.Zero,
			TaxRate:     it.TaxRate,
			LineTotal:   it.Quantity.Mul(folded),
			Position:    i,
		}
		contractItems = append(contractItems, ci)
		lines = append(lines, domquote.Line{
			Quantity:  ci.Quantity,
			UnitPrice: ci.UnitPrice,
			TaxRate:   ci.TaxRate,
		})
	}

	// 4. Totales del contrato sobre las líneas ya plegadas.
	totals := domquote.ComputeTotals(lines)
	contract := &entity.Contract{
		ID:         contractID,
		QuoteID:    q.ID,
		CompanyID:  q.CompanyID,
		UserID:     userID,
		Number:     fmt.Sprintf("C-%d", now.Unix()),
		Status:     entity.ContractStatusActive,
		Subtotal:   totals.Subtotal,
		TaxTotal:   totals.TaxTotal,
		GrandTotal: totals.GrandTotal,
		StartDate:  startDate,
		EndDate:    in.EndDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// 5. Todo en una transacción: contrato, líneas y nada más a medias.
	err = uc.txRunner.RunConversion(ctx, func(
		quoteRepo repository.QuoteRepository,
		contractRepo repository.ContractRepository,
	) error {
		if err := contractRepo.Create(contract); err != nil {
			return err
		}
		for _, ci := range contractItems {
			if err := contractRepo.CreateItem(ci); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toContractResponse(contract, contractItems), nil
}

func toContractResponse(c *entity.Contract, items []*entity.ContractItem) *dto.ContractResponse {
	resp := &dto.ContractResponse{
		ID:         c.ID,
		QuoteID:    c.QuoteID,
		CompanyID:  c.CompanyID,
		Number:     c.Number,
		Status:     c.Status,
		Subtotal:   c.Subtotal,
		TaxTotal:   c.TaxTotal,
		GrandTotal: c.GrandTotal,
		StartDate:  c.StartDate,
		EndDate:    c.EndDate,
		Items:      make([]dto.ContractItemResponse, 0, len(items)),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.ContractItemResponse{
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
	return resp
}
