package contracts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	domquote "github.com/jhoicas/crm-api/internal/domain/quote"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// IssueInvoiceUseCase emite una factura desde un contrato activo. El detalle
// es un snapshot de las líneas del contrato al momento de emitir; los totales
// se recalculan desde el detalle, no se copian de la cabecera.
type IssueInvoiceUseCase struct {
	contractRepo repository.ContractRepository
	invoiceRepo  repository.InvoiceRepository
	companyRepo  repository.CompanyRepository
	txRunner     BillingTxRunner
}

func NewIssueInvoiceUseCase(
	contractRepo repository.ContractRepository,
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	txRunner BillingTxRunner,
) *IssueInvoiceUseCase {
	return &IssueInvoiceUseCase{
		contractRepo: contractRepo,
		invoiceRepo:  invoiceRepo,
		companyRepo:  companyRepo,
		txRunner:     txRunner,
	}
}

// Execute emite la factura para el contrato indicado.
func (uc *IssueInvoiceUseCase) Execute(ctx context.Context, contractID string, in dto.IssueInvoiceRequest) (*dto.InvoiceResponse, error) {
	// 1. El contrato debe existir y estar activo.
	contract, err := uc.contractRepo.GetByID(contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	if contract.Status != entity.ContractStatusActive {
		return nil, domain.ErrInvalidState
	}

	items, err := uc.contractRepo.GetItems(contractID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrInvalidState
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	number := in.Number
	if number == "" {
		number = fmt.Sprintf("F-%d", now.Unix())
	}

	// 2. Snapshot del detalle y recálculo de totales.
	invoiceID := uuid.New().String()
	details := make([]*entity.InvoiceDetail, 0, len(items))
	lines := make([]domquote.Line, 0, len(items))
	for i, it := range items {
		details = append(details, &entity.InvoiceDetail{
			ID:          uuid.New().String(),
			InvoiceID:   invoiceID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TaxRate:     it.TaxRate,
			LineTotal:   it.Quantity.Mul(it.UnitPrice),
			Position:    i,
		})
		lines = append(lines, domquote.Line{
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			TaxRate:   it.TaxRate,
		})
	}
	totals := domquote.ComputeTotals(lines)

	invoice := &entity.Invoice{
		ID:         invoiceID,
		ContractID: contract.ID,
		CompanyID:  contract.CompanyID,
		Number:     number,
		Date:       date,
		Subtotal:   totals.Subtotal,
		TaxTotal:   totals.TaxTotal,
		GrandTotal: totals.GrandTotal,
		Status:     entity.InvoiceStatusIssued,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// 3. Cabecera y detalle en una transacción.
	err = uc.txRunner.RunBilling(ctx, func(
		contractRepo repository.ContractRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		if err := invoiceRepo.Create(invoice); err != nil {
			return err
		}
		for _, d := range details {
			if err := invoiceRepo.CreateDetail(d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(invoice, details), nil
}

// GetByID obtiene una factura con su detalle.
func (uc *IssueInvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	details, err := uc.invoiceRepo.GetDetailsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(invoice, details), nil
}

// UpdateStatus cambia el estado de la factura (issued→paid, issued→voided).
func (uc *IssueInvoiceUseCase) UpdateStatus(id, status string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	switch status {
	case entity.InvoiceStatusDraft, entity.InvoiceStatusIssued,
		entity.InvoiceStatusPaid, entity.InvoiceStatusVoided:
	default:
		return nil, domain.ErrInvalidInput
	}
	invoice.Status = status
	invoice.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// List lista facturas; companyID opcional filtra por empresa.
func (uc *IssueInvoiceUseCase) List(companyID string, limit, offset int) (*dto.InvoiceListResponse, error) {
	var list []*entity.Invoice
	var err error
	if companyID != "" {
		list, err = uc.invoiceRepo.ListByCompany(companyID, limit, offset)
	} else {
		list, err = uc.invoiceRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *uc.toResponse(inv, nil))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *IssueInvoiceUseCase) toResponse(inv *entity.Invoice, details []*entity.InvoiceDetail) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:         inv.ID,
		ContractID: inv.ContractID,
		CompanyID:  inv.CompanyID,
		Number:     inv.Number,
		Date:       inv.Date.Format("2006-01-02"),
		Subtotal:   inv.Subtotal,
		TaxTotal:   inv.TaxTotal,
		GrandTotal: inv.GrandTotal,
		Status:     inv.Status,
		Details:    make([]dto.InvoiceDetailResponse, 0, len(details)),
	}
	if company, err := uc.companyRepo.GetByID(inv.CompanyID); err == nil && company != nil {
		resp.CompanyName = company.Name
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.InvoiceDetailResponse{
			ID:          d.ID,
			ProductID:   d.ProductID,
			Description: d.Description,
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
			TaxRate:     d.TaxRate,
			LineTotal:   d.LineTotal,
		})
	}
	return resp
}
