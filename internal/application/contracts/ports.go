package contracts

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ConversionTxRunner ejecuta la conversión cotización→contrato dentro de una
// transacción que incluye ambos repos: o se crea el contrato completo con sus
// líneas y se marca la cotización, o no se escribe nada.
type ConversionTxRunner interface {
	RunConversion(ctx context.Context, fn func(
		quoteRepo repository.QuoteRepository,
		contractRepo repository.ContractRepository,
	) error) error
}

// BillingTxRunner ejecuta la emisión de factura dentro de una transacción que
// incluye contratos y facturas.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		contractRepo repository.ContractRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}
