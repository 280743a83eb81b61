package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-api/internal/application/contracts"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// Ensure TxRunner implements contracts.ConversionTxRunner and contracts.BillingTxRunner.
var _ contracts.ConversionTxRunner = (*TxRunner)(nil)
var _ contracts.BillingTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunConversion inicia una transacción con repos de cotizaciones y contratos
// atados a la tx, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) RunConversion(ctx context.Context, fn func(
	quoteRepo repository.QuoteRepository,
	contractRepo repository.ContractRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	quoteRepo := NewQuoteRepository(tx)
	contractRepo := NewContractRepository(tx)

	if err := fn(quoteRepo, contractRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBilling inicia una transacción con repos de contratos y facturas (para emisión).
func (r *TxRunner) RunBilling(ctx context.Context, fn func(
	contractRepo repository.ContractRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	contractRepo := NewContractRepository(tx)
	invoiceRepo := NewInvoiceRepository(tx)

	if err := fn(contractRepo, invoiceRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
