package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/apperror"
	"backoffice/internal/ledger"
	"backoffice/internal/model"
	"backoffice/internal/repository"
	"backoffice/internal/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultPaymentTermsDays is used when no payment terms are configured.
const DefaultPaymentTermsDays = 30

// --- DTOs ---

type InvoiceFilter struct {
	Status string // Pending, PartiallyPaid, Paid, Overdue... or empty for all
	Page   int
	Limit  int
}

type InvoiceItemResponse struct {
	ID           string  `json:"id"`
	SourceItemID *string `json:"source_item_id"`
	Description  string  `json:"description"`
	Quantity     string  `json:"quantity"`
	UnitPrice    string  `json:"unit_price"`
	TaxRate      string  `json:"tax_rate"`
	TotalAmount  string  `json:"total_amount"`
}

type InvoiceResponse struct {
	ID             string                `json:"id"`
	InvoiceNumber  string                `json:"invoice_number"`
	WorkOrderID    *string               `json:"work_order_id"`
	CustomerID     string                `json:"customer_id"`
	SubTotal       string                `json:"sub_total"`
	TaxAmount      string                `json:"tax_amount"`
	DiscountAmount string                `json:"discount_amount"`
	TotalAmount    string                `json:"total_amount"`
	PaidAmount     string                `json:"paid_amount"`
	BalanceDue     string                `json:"balance_due"`
	Status         string                `json:"status"`
	IssuedAt       string                `json:"issued_at"`
	DueDate        string                `json:"due_date"`
	Items          []InvoiceItemResponse `json:"items,omitempty"`
}

// --- Interface ---

type InvoiceService interface {
	CreateFromWorkOrder(ctx context.Context, tenantID uuid.UUID, workOrderID string) (InvoiceResponse, error)
	GetInvoice(ctx context.Context, tenantID uuid.UUID, id string) (InvoiceResponse, error)
	ListInvoices(ctx context.Context, tenantID uuid.UUID, filter InvoiceFilter) ([]InvoiceResponse, int64, error)
	MarkOverdue(ctx context.Context, now time.Time) (int, error)
}

type invoiceService struct {
	invoiceRepo   repository.InvoiceRepository
	workOrderRepo repository.WorkOrderRepository
	sequenceRepo  repository.SequenceRepository
	auditRepo     repository.AuditRepository
	txManager     repository.TransactionManager
	events        EventPublisher
	paymentTerms  int
}

func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	workOrderRepo repository.WorkOrderRepository,
	sequenceRepo repository.SequenceRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
	paymentTermsDays int,
) InvoiceService {
	if paymentTermsDays <= 0 {
		paymentTermsDays = DefaultPaymentTermsDays
	}
	return &invoiceService{
		invoiceRepo:   invoiceRepo,
		workOrderRepo: workOrderRepo,
		sequenceRepo:  sequenceRepo,
		auditRepo:     auditRepo,
		txManager:     txManager,
		events:        events,
		paymentTerms:  paymentTermsDays,
	}
}

// --- Implementation ---

// CreateFromWorkOrder issues the one invoice a completed work order can have. The work order row
// stays locked until commit; a concurrent request that slips past the checks is stopped by the
// unique index on invoices.work_order_id.
func (s *invoiceService) CreateFromWorkOrder(ctx context.Context, tenantID uuid.UUID, workOrderID string) (InvoiceResponse, error) {
	if err := tenant.Check(tenantID); err != nil {
		return InvoiceResponse{}, err
	}
	woID, err := parseID("work_order_id", workOrderID)
	if err != nil {
		return InvoiceResponse{}, err
	}

	var invoice model.Invoice
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		wo, err := s.workOrderRepo.FindByIDForUpdate(txCtx, tenantID, woID)
		if err != nil {
			return err
		}
		if wo.Status != model.WorkOrderCompleted {
			return &apperror.StateError{Expected: model.WorkOrderCompleted, Actual: wo.Status}
		}
		if wo.InvoiceID != nil {
			return &apperror.ConflictError{Kind: apperror.ConflictDuplicateInvoice}
		}

		items, err := snapshotItems(wo.Items)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return apperror.Validation("items", "work order must have at least one item")
		}

		exact, err := ledger.AggregateTotals(invoiceLines(items))
		if err != nil {
			return err
		}
		totals := exact.Rounded()

		now := time.Now().UTC()
		seq, err := s.sequenceRepo.Next(txCtx, tenantID, model.SequenceInvoice, now)
		if err != nil {
			return err
		}

		invoice = model.Invoice{
			InvoiceNumber:  documentNumber(model.SequenceInvoice, now, seq),
			WorkOrderID:    &wo.ID,
			CustomerID:     wo.CustomerID,
			SubTotal:       totals.SubTotal,
			TaxAmount:      totals.TaxAmount,
			DiscountAmount: decimal.Zero,
			TotalAmount:    totals.Total,
			PaidAmount:     decimal.Zero,
			Status:         model.InvoicePending,
			IssuedAt:       now,
			DueDate:        now.AddDate(0, 0, s.paymentTerms),
			Items:          items,
		}
		invoice.ID = uuid.New()
		for i := range invoice.Items {
			invoice.Items[i].InvoiceID = invoice.ID
		}

		if err := s.invoiceRepo.Create(txCtx, tenantID, &invoice); err != nil {
			return err
		}
		if err := s.workOrderRepo.LinkInvoice(txCtx, tenantID, wo.ID, invoice.ID); err != nil {
			return err
		}

		return writeAudit(txCtx, s.auditRepo, tenantID, model.ActionCreateInvoiceFromWorkOrder, invoice.ID.String(), invoice.InvoiceNumber, map[string]string{
			"work_order_id": wo.ID.String(),
			"total_amount":  invoice.TotalAmount.String(),
		})
	})
	if err != nil {
		return InvoiceResponse{}, err
	}

	resp := toInvoiceResponse(invoice)
	s.events.Publish(tenantID, EventInvoiceCreated, resp)
	return resp, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, tenantID uuid.UUID, id string) (InvoiceResponse, error) {
	if err := tenant.Check(tenantID); err != nil {
		return InvoiceResponse{}, err
	}
	invoiceID, err := parseID("id", id)
	if err != nil {
		return InvoiceResponse{}, err
	}

	invoice, err := s.invoiceRepo.FindByID(ctx, tenantID, invoiceID)
	if err != nil {
		return InvoiceResponse{}, err
	}
	return toInvoiceResponse(*invoice), nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, tenantID uuid.UUID, filter InvoiceFilter) ([]InvoiceResponse, int64, error) {
	if err := tenant.Check(tenantID); err != nil {
		return nil, 0, err
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	invoices, total, err := s.invoiceRepo.List(ctx, tenantID, filter.Status, filter.Page, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch invoices: %w", err)
	}

	result := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		result = append(result, toInvoiceResponse(inv))
	}
	return result, total, nil
}

// MarkOverdue flags every Pending or PartiallyPaid invoice due before now, one transaction per
// tenant. A failing tenant does not stop the sweep; its error is returned alongside the count.
func (s *invoiceService) MarkOverdue(ctx context.Context, now time.Time) (int, error) {
	tenants, err := s.invoiceRepo.TenantsWithOverdue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to find overdue invoices: %w", err)
	}

	var (
		marked int
		errs   []error
	)
	for _, tenantID := range tenants {
		var changed []model.Invoice
		err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
			var markErr error
			changed, markErr = s.invoiceRepo.MarkOverdue(txCtx, tenantID, now)
			if markErr != nil {
				return markErr
			}
			for _, inv := range changed {
				if err := writeAudit(txCtx, s.auditRepo, tenantID, model.ActionMarkInvoiceOverdue, inv.ID.String(), inv.InvoiceNumber, map[string]string{
					"due_date": inv.DueDate.Format(timeLayout),
				}); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("tenant %s: %w", tenantID, err))
			continue
		}

		marked += len(changed)
		for _, inv := range changed {
			s.events.Publish(tenantID, EventInvoiceOverdue, map[string]string{
				"id":             inv.ID.String(),
				"invoice_number": inv.InvoiceNumber,
			})
		}
	}

	return marked, errors.Join(errs...)
}

// --- Helpers ---

// snapshotItems copies the live work order items into new invoice rows, recomputing each total.
func snapshotItems(source []model.WorkOrderItem) ([]model.InvoiceItem, error) {
	items := make([]model.InvoiceItem, 0, len(source))
	for _, it := range source {
		if it.IsDeleted {
			continue
		}
		total, err := ledger.ItemTotal(it.Quantity, it.UnitPrice, it.TaxRate)
		if err != nil {
			return nil, err
		}

		sourceID := it.ID
		item := model.InvoiceItem{
			SourceItemID: &sourceID,
			Description:  it.Description,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			TaxRate:      it.TaxRate,
			TotalAmount:  ledger.Round(total),
		}
		item.ID = uuid.New()
		items = append(items, item)
	}
	return items, nil
}

func invoiceLines(items []model.InvoiceItem) []ledger.Line {
	lines := make([]ledger.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, ledger.Line{Quantity: it.Quantity, UnitPrice: it.UnitPrice, TaxRate: it.TaxRate})
	}
	return lines
}

// --- Mapping ---

func toInvoiceResponse(inv model.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:             inv.ID.String(),
		InvoiceNumber:  inv.InvoiceNumber,
		WorkOrderID:    idString(inv.WorkOrderID),
		CustomerID:     inv.CustomerID.String(),
		SubTotal:       inv.SubTotal.StringFixed(2),
		TaxAmount:      inv.TaxAmount.StringFixed(2),
		DiscountAmount: inv.DiscountAmount.StringFixed(2),
		TotalAmount:    inv.TotalAmount.StringFixed(2),
		PaidAmount:     inv.PaidAmount.StringFixed(2),
		BalanceDue:     inv.Balance().StringFixed(2),
		Status:         inv.Status,
		IssuedAt:       inv.IssuedAt.Format(timeLayout),
		DueDate:        inv.DueDate.Format(timeLayout),
	}

	for _, it := range inv.Items {
		resp.Items = append(resp.Items, InvoiceItemResponse{
			ID:           it.ID.String(),
			SourceItemID: idString(it.SourceItemID),
			Description:  it.Description,
			Quantity:     it.Quantity.String(),
			UnitPrice:    it.UnitPrice.StringFixed(2),
			TaxRate:      it.TaxRate.String(),
			TotalAmount:  it.TotalAmount.StringFixed(2),
		})
	}

	return resp
}
