package contracts_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/contracts"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeQuoteRepo struct {
	quote *entity.Quote
	items []*entity.QuoteItem
}

func (f *fakeQuoteRepo) Create(q *entity.Quote) error  { f.quote = q; return nil }
func (f *fakeQuoteRepo) GetByID(id string) (*entity.Quote, error) {
	if f.quote == nil || f.quote.ID != id {
		return nil, nil
	}
	return f.quote, nil
}
func (f *fakeQuoteRepo) Update(q *entity.Quote) error { f.quote = q; return nil }
func (f *fakeQuoteRepo) ListByCompany(string, int, int) ([]*entity.Quote, error) {
	return nil, nil
}
func (f *fakeQuoteRepo) List(int, int) ([]*entity.Quote, error) { return nil, nil }
func (f *fakeQuoteRepo) Delete(string) error                    { return nil }
func (f *fakeQuoteRepo) GetItems(string) ([]*entity.QuoteItem, error) {
	return f.items, nil
}
func (f *fakeQuoteRepo) ReplaceItems(_ string, items []*entity.QuoteItem) error {
	f.items = items
	return nil
}
func (f *fakeQuoteRepo) GetLocations(string) ([]entity.ServiceLocation, error) {
	return nil, nil
}
func (f *fakeQuoteRepo) ReplaceLocations(string, []entity.ServiceLocation) error {
	return nil
}

type fakeContractRepo struct {
	contract *entity.Contract
	items    []*entity.ContractItem
}

func (f *fakeContractRepo) Create(c *entity.Contract) error { f.contract = c; return nil }
func (f *fakeContractRepo) CreateItem(it *entity.ContractItem) error {
	f.items = append(f.items, it)
	return nil
}
func (f *fakeContractRepo) GetByID(id string) (*entity.Contract, error) {
	if f.contract == nil || f.contract.ID != id {
		return nil, nil
	}
	return f.contract, nil
}
func (f *fakeContractRepo) GetByQuoteID(quoteID string) (*entity.Contract, error) {
	if f.contract == nil || f.contract.QuoteID != quoteID {
		return nil, nil
	}
	return f.contract, nil
}
func (f *fakeContractRepo) GetItems(string) ([]*entity.ContractItem, error) {
	return f.items, nil
}
func (f *fakeContractRepo) Update(c *entity.Contract) error { f.contract = c; return nil }
func (f *fakeContractRepo) ListByCompany(string, int, int) ([]*entity.Contract, error) {
	return nil, nil
}
func (f *fakeContractRepo) List(int, int) ([]*entity.Contract, error) { return nil, nil }

// fakeTxRunner ejecuta el callback directamente sin transacción real.
type fakeTxRunner struct {
	quoteRepo    repository.QuoteRepository
	contractRepo repository.ContractRepository
	invoiceRepo  repository.InvoiceRepository
}

func (f *fakeTxRunner) RunConversion(_ context.Context, fn func(
	quoteRepo repository.QuoteRepository,
	contractRepo repository.ContractRepository,
) error) error {
	return fn(f.quoteRepo, f.contractRepo)
}

func (f *fakeTxRunner) RunBilling(_ context.Context, fn func(
	contractRepo repository.ContractRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	return fn(f.contractRepo, f.invoiceRepo)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func acceptedQuote() (*fakeQuoteRepo, *fakeContractRepo, *contracts.ConvertQuoteUseCase) {
	qr := &fakeQuoteRepo{
		quote: &entity.Quote{
			ID:        "q1",
			CompanyID: "co1",
			Status:    entity.QuoteStatusAccepted,
		},
		items: []*entity.QuoteItem{
			{
				ID:          "i1",
				QuoteID:     "q1",
				ProductID:   "p1",
				Description: "Soundtrack Essential",
				Quantity:    dec("2"),
				UnitPrice:   dec("100"),
				DiscountPct: dec("10"),
				TaxRate:     dec("7"),
			},
		},
	}
	cr := &fakeContractRepo{}
	tx := &fakeTxRunner{quoteRepo: qr, contractRepo: cr}
	return qr, cr, contracts.NewConvertQuoteUseCase(qr, cr, tx)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ConvertQuote
// ──────────────────────────────────────────────────────────────────────────────

// La conversión pliega el descuento en el precio unitario: 100 con 10% de
// descuento queda en 90.00, y la línea del contrato no conserva porcentaje.
func TestConvertQuote_PliegaDescuentoEnPrecioUnitario(t *testing.T) {
	_, cr, uc := acceptedQuote()

	resp, err := uc.Execute(context.Background(), "q1", "u1", dto.ConvertQuoteRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.Len(t, resp.Items, 1)

	item := resp.Items[0]
	assert.True(t, dec("90.00").Equal(item.UnitPrice),
		"precio unitario debe incluir el descuento: esperado 90.00, obtenido %s", item.UnitPrice)
	assert.True(t, item.DiscountPct.IsZero(),
		"el contrato no debe conservar porcentaje de descuento")
	assert.True(t, dec("180.00").Equal(item.LineTotal),
		"total de línea 2 × 90.00: obtenido %s", item.LineTotal)

	// Totales sobre las líneas ya plegadas
	assert.True(t, dec("180.00").Equal(resp.Subtotal), "subtotal: %s", resp.Subtotal)
	assert.True(t, dec("12.60").Equal(resp.TaxTotal), "impuesto 7%% de 180: %s", resp.TaxTotal)
	assert.True(t, dec("192.60").Equal(resp.GrandTotal), "gran total: %s", resp.GrandTotal)

	// Persistencia dentro de la transacción
	require.NotNil(t, cr.contract)
	assert.Equal(t, entity.ContractStatusActive, cr.contract.Status)
	assert.Equal(t, "q1", cr.contract.QuoteID)
	assert.Equal(t, "u1", cr.contract.UserID)
	require.Len(t, cr.items, 1)
}

// Solo cotizaciones aceptadas pueden convertirse.
func TestConvertQuote_CotizacionNoAceptada_RetornaInvalidState(t *testing.T) {
	qr, _, uc := acceptedQuote()
	qr.quote.Status = entity.QuoteStatusSent

	_, err := uc.Execute(context.Background(), "q1", "u1", dto.ConvertQuoteRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestConvertQuote_CotizacionInexistente_RetornaNotFound(t *testing.T) {
	_, _, uc := acceptedQuote()

	_, err := uc.Execute(context.Background(), "no-existe", "u1", dto.ConvertQuoteRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Una cotización genera a lo sumo un contrato.
func TestConvertQuote_ConversionDuplicada_RetornaConflict(t *testing.T) {
	_, _, uc := acceptedQuote()

	_, err := uc.Execute(context.Background(), "q1", "u1", dto.ConvertQuoteRequest{})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), "q1", "u1", dto.ConvertQuoteRequest{})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestConvertQuote_SinLineas_RetornaInvalidState(t *testing.T) {
	qr, _, uc := acceptedQuote()
	qr.items = nil

	_, err := uc.Execute(context.Background(), "q1", "u1", dto.ConvertQuoteRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestConvertQuote_FechaInicioExplicita(t *testing.T) {
	_, cr, uc := acceptedQuote()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), "q1", "u1", dto.ConvertQuoteRequest{StartDate: start})
	require.NoError(t, err)

	assert.Equal(t, start, resp.StartDate)
	assert.Equal(t, start, cr.contract.StartDate)
}
