package quotes

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// QuotePDFGenerator puerto para la representación imprimible de la cotización.
// La implementación (Maroto) vive en infrastructure/pdf.
type QuotePDFGenerator interface {
	GenerateQuotePDF(
		ctx context.Context,
		quote *entity.Quote,
		company *entity.Company,
		items []*entity.QuoteItem,
		locations []entity.ServiceLocation,
	) ([]byte, error)
}
