package service

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/apperror"
	"backoffice/internal/ledger"
	"backoffice/internal/model"
	"backoffice/internal/repository"
	"backoffice/internal/tenant"

	"github.com/google/uuid"
)

// --- DTOs ---

type RecordPaymentRequest struct {
	Amount    string `json:"amount" binding:"required"`
	Method    string `json:"method" binding:"required,oneof=Cash Card BankTransfer Check Other"`
	Reference string `json:"reference"`
	Notes     string `json:"notes"`
	PaidAt    string `json:"paid_at"` // RFC3339, defaults to now
}

type PaymentResponse struct {
	ID            string `json:"id"`
	InvoiceID     string `json:"invoice_id"`
	PaymentNumber string `json:"payment_number"`
	Amount        string `json:"amount"`
	Method        string `json:"method"`
	Reference     string `json:"reference"`
	Notes         string `json:"notes"`
	PaidAt        string `json:"paid_at"`
}

// PaymentResult carries the new payment and the invoice state it produced.
type PaymentResult struct {
	Payment       PaymentResponse `json:"payment"`
	InvoiceStatus string          `json:"invoice_status"`
	PaidAmount    string          `json:"paid_amount"`
	BalanceDue    string          `json:"balance_due"`
}

// --- Interface ---

type PaymentService interface {
	RecordPayment(ctx context.Context, tenantID uuid.UUID, invoiceID string, req RecordPaymentRequest) (PaymentResult, error)
	ListPayments(ctx context.Context, tenantID uuid.UUID, invoiceID string) ([]PaymentResponse, error)
}

type paymentService struct {
	invoiceRepo  repository.InvoiceRepository
	paymentRepo  repository.PaymentRepository
	sequenceRepo repository.SequenceRepository
	auditRepo    repository.AuditRepository
	txManager    repository.TransactionManager
	events       EventPublisher
}

func NewPaymentService(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	sequenceRepo repository.SequenceRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
) PaymentService {
	return &paymentService{
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		sequenceRepo: sequenceRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		events:       events,
	}
}

// --- Implementation ---

// RecordPayment applies a payment against the invoice balance. The invoice row is locked for the
// duration of the transaction so concurrent payments are checked against each other's sums.
func (s *paymentService) RecordPayment(ctx context.Context, tenantID uuid.UUID, invoiceID string, req RecordPaymentRequest) (PaymentResult, error) {
	if err := tenant.Check(tenantID); err != nil {
		return PaymentResult{}, err
	}
	invID, err := parseID("invoice_id", invoiceID)
	if err != nil {
		return PaymentResult{}, err
	}

	amount, err := parseDecimal("amount", req.Amount)
	if err != nil {
		return PaymentResult{}, err
	}
	if !amount.IsPositive() {
		return PaymentResult{}, apperror.Validation("amount", "must be greater than 0")
	}
	if err := ledger.CheckAmount("amount", amount); err != nil {
		return PaymentResult{}, err
	}
	if !model.IsPaymentMethod(req.Method) {
		return PaymentResult{}, apperror.Validation("method", "unsupported payment method")
	}

	now := time.Now().UTC()
	paidAt := now
	if req.PaidAt != "" {
		if paidAt, err = parseTime("paid_at", req.PaidAt); err != nil {
			return PaymentResult{}, err
		}
	}

	var (
		payment model.Payment
		invoice *model.Invoice
	)
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var findErr error
		invoice, findErr = s.invoiceRepo.FindByIDForUpdate(txCtx, tenantID, invID)
		if findErr != nil {
			return findErr
		}
		if invoice.Status == model.InvoiceCancelled {
			return &apperror.StateError{Expected: "payable invoice", Actual: invoice.Status}
		}

		paid, err := s.paymentRepo.SumForInvoice(txCtx, tenantID, invID)
		if err != nil {
			return fmt.Errorf("failed to sum payments: %w", err)
		}
		remaining := invoice.TotalAmount.Sub(paid)
		if amount.GreaterThan(remaining) {
			return &apperror.BalanceExceeded{Remaining: remaining}
		}

		seq, err := s.sequenceRepo.Next(txCtx, tenantID, model.SequencePayment, now)
		if err != nil {
			return err
		}

		payment = model.Payment{
			InvoiceID:     invID,
			PaymentNumber: documentNumber(model.SequencePayment, now, seq),
			Amount:        amount,
			Method:        req.Method,
			Reference:     req.Reference,
			Notes:         req.Notes,
			PaidAt:        paidAt,
		}
		payment.ID = uuid.New()
		if err := s.paymentRepo.Create(txCtx, tenantID, &payment); err != nil {
			return err
		}

		invoice.PaidAmount = paid.Add(amount)
		switch {
		case invoice.PaidAmount.GreaterThanOrEqual(invoice.TotalAmount):
			invoice.Status = model.InvoicePaid
		case invoice.PaidAmount.IsPositive():
			invoice.Status = model.InvoicePartiallyPaid
		}
		if err := s.invoiceRepo.UpdatePayment(txCtx, tenantID, invID, invoice.PaidAmount, invoice.Status); err != nil {
			return fmt.Errorf("failed to update invoice: %w", err)
		}

		return writeAudit(txCtx, s.auditRepo, tenantID, model.ActionRecordPayment, payment.ID.String(), payment.PaymentNumber, map[string]string{
			"invoice_id": invID.String(),
			"amount":     amount.String(),
			"method":     req.Method,
		})
	})
	if err != nil {
		return PaymentResult{}, err
	}

	result := PaymentResult{
		Payment:       toPaymentResponse(payment),
		InvoiceStatus: invoice.Status,
		PaidAmount:    invoice.PaidAmount.StringFixed(2),
		BalanceDue:    invoice.Balance().StringFixed(2),
	}
	s.events.Publish(tenantID, EventPaymentRecorded, result)
	return result, nil
}

func (s *paymentService) ListPayments(ctx context.Context, tenantID uuid.UUID, invoiceID string) ([]PaymentResponse, error) {
	if err := tenant.Check(tenantID); err != nil {
		return nil, err
	}
	invID, err := parseID("invoice_id", invoiceID)
	if err != nil {
		return nil, err
	}

	if _, err := s.invoiceRepo.FindByID(ctx, tenantID, invID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByInvoice(ctx, tenantID, invID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	res := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		res = append(res, toPaymentResponse(p))
	}
	return res, nil
}

// --- Mapping ---

func toPaymentResponse(p model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID.String(),
		InvoiceID:     p.InvoiceID.String(),
		PaymentNumber: p.PaymentNumber,
		Amount:        p.Amount.StringFixed(2),
		Method:        p.Method,
		Reference:     p.Reference,
		Notes:         p.Notes,
		PaidAt:        p.PaidAt.Format(timeLayout),
	}
}
