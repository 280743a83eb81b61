package contracts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/contracts"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

type fakeInvoiceRepo struct {
	invoice *entity.Invoice
	details []*entity.InvoiceDetail
}

func (f *fakeInvoiceRepo) Create(inv *entity.Invoice) error { f.invoice = inv; return nil }
func (f *fakeInvoiceRepo) CreateDetail(d *entity.InvoiceDetail) error {
	f.details = append(f.details, d)
	return nil
}
func (f *fakeInvoiceRepo) Update(inv *entity.Invoice) error { f.invoice = inv; return nil }
func (f *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	if f.invoice == nil || f.invoice.ID != id {
		return nil, nil
	}
	return f.invoice, nil
}
func (f *fakeInvoiceRepo) GetDetailsByInvoiceID(string) ([]*entity.InvoiceDetail, error) {
	return f.details, nil
}
func (f *fakeInvoiceRepo) ListByCompany(string, int, int) ([]*entity.Invoice, error) {
	return nil, nil
}
func (f *fakeInvoiceRepo) List(int, int) ([]*entity.Invoice, error) { return nil, nil }

type fakeCompanyRepo struct {
	company *entity.Company
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error { f.company = c; return nil }
func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	if f.company == nil || f.company.ID != id {
		return nil, nil
	}
	return f.company, nil
}
func (f *fakeCompanyRepo) GetByTaxID(string) (*entity.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) Update(c *entity.Company) error             { f.company = c; return nil }
func (f *fakeCompanyRepo) List(int, int) ([]*entity.Company, error)   { return nil, nil }
func (f *fakeCompanyRepo) ListByZone(string, int, int) ([]*entity.Company, error) {
	return nil, nil
}
func (f *fakeCompanyRepo) Delete(string) error { return nil }

func activeContract() (*fakeContractRepo, *fakeInvoiceRepo, *contracts.IssueInvoiceUseCase) {
	cr := &fakeContractRepo{
		contract: &entity.Contract{
			ID:        "c1",
			QuoteID:   "q1",
			CompanyID: "co1",
			Status:    entity.ContractStatusActive,
		},
		items: []*entity.ContractItem{
			{
				ID:         "ci1",
				ContractID: "c1",
				ProductID:  "p1",
				Quantity:   dec("3"),
				UnitPrice:  dec("45.00"), // descuento ya plegado
				TaxRate:    dec("7"),
			},
		},
	}
	ir := &fakeInvoiceRepo{}
	co := &fakeCompanyRepo{company: &entity.Company{ID: "co1", Name: "Bangkok Coffee Co."}}
	tx := &fakeTxRunner{contractRepo: cr, invoiceRepo: ir}
	return cr, ir, contracts.NewIssueInvoiceUseCase(cr, ir, co, tx)
}

// La factura es un snapshot de las líneas del contrato con totales recalculados.
func TestIssueInvoice_SnapshotYTotales(t *testing.T) {
	_, ir, uc := activeContract()

	resp, err := uc.Execute(context.Background(), "c1", dto.IssueInvoiceRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, entity.InvoiceStatusIssued, resp.Status)
	assert.Equal(t, "Bangkok Coffee Co.", resp.CompanyName)
	require.Len(t, resp.Details, 1)

	// 3 × 45.00 = 135.00; impuesto 7% = 9.45
	assert.True(t, dec("135.00").Equal(resp.Subtotal), "subtotal: %s", resp.Subtotal)
	assert.True(t, dec("9.45").Equal(resp.TaxTotal), "impuesto: %s", resp.TaxTotal)
	assert.True(t, dec("144.45").Equal(resp.GrandTotal), "gran total: %s", resp.GrandTotal)

	// Cabecera y detalle persistidos vía transacción
	require.NotNil(t, ir.invoice)
	require.Len(t, ir.details, 1)
	assert.True(t, dec("135.00").Equal(ir.details[0].LineTotal))
}

// Solo contratos activos pueden facturarse.
func TestIssueInvoice_ContratoNoActivo_RetornaInvalidState(t *testing.T) {
	cr, _, uc := activeContract()
	cr.contract.Status = entity.ContractStatusTerminated

	_, err := uc.Execute(context.Background(), "c1", dto.IssueInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestIssueInvoice_ContratoInexistente_RetornaNotFound(t *testing.T) {
	_, _, uc := activeContract()

	_, err := uc.Execute(context.Background(), "no-existe", dto.IssueInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIssueInvoice_NumeroExplicito(t *testing.T) {
	_, ir, uc := activeContract()

	resp, err := uc.Execute(context.Background(), "c1", dto.IssueInvoiceRequest{Number: "F-2026-0001"})
	require.NoError(t, err)

	assert.Equal(t, "F-2026-0001", resp.Number)
	assert.Equal(t, "F-2026-0001", ir.invoice.Number)
}
