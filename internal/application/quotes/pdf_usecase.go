package quotes

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// QuotePDFUseCase arma el documento imprimible de una cotización.
type QuotePDFUseCase struct {
	quoteRepo   repository.QuoteRepository
	companyRepo repository.CompanyRepository
	generator   QuotePDFGenerator
}

func NewQuotePDFUseCase(
	quoteRepo repository.QuoteRepository,
	companyRepo repository.CompanyRepository,
	generator QuotePDFGenerator,
) *QuotePDFUseCase {
	return &QuotePDFUseCase{
		quoteRepo:   quoteRepo,
		companyRepo: companyRepo,
		generator:   generator,
	}
}

// Generate carga la cotización completa y delega en el generador PDF.
func (uc *QuotePDFUseCase) Generate(ctx context.Context, quoteID string) ([]byte, error) {
	q, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(q.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.quoteRepo.GetItems(quoteID)
	if err != nil {
		return nil, err
	}
	locations, err := uc.quoteRepo.GetLocations(quoteID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateQuotePDF(ctx, q, company, items, locations)
}
