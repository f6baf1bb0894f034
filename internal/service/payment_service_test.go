package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice/internal/apperror"
	"backoffice/internal/model"
	"backoffice/internal/service"
)

func newPaymentService(env *testEnv) service.PaymentService {
	return service.NewPaymentService(env.invoices, env.payments, env.sequences, env.audit, env.tx, env.events)
}

func pendingInvoice(tenantID uuid.UUID, total string) *model.Invoice {
	inv := &model.Invoice{
		InvoiceNumber: "INV-20260309-0001",
		TotalAmount:   dec(total),
		PaidAmount:    decimal.Zero,
		Status:        model.InvoicePending,
	}
	inv.ID = uuid.New()
	inv.TenantID = tenantID
	return inv
}

// ledgerStore keeps the payments of one invoice in memory behind the repository mocks.
type ledgerStore struct {
	invoice  *model.Invoice
	payments []model.Payment
	seq      int64
}

func (s *ledgerStore) wire(env *testEnv) {
	env.invoices.EXPECT().
		FindByIDForUpdate(gomock.Any(), env.tenantID, s.invoice.ID).
		DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*model.Invoice, error) {
			inv := *s.invoice
			return &inv, nil
		}).
		AnyTimes()
	env.payments.EXPECT().
		SumForInvoice(gomock.Any(), env.tenantID, s.invoice.ID).
		DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (decimal.Decimal, error) {
			sum := decimal.Zero
			for _, p := range s.payments {
				sum = sum.Add(p.Amount)
			}
			return sum, nil
		}).
		AnyTimes()
	env.sequences.EXPECT().
		Next(gomock.Any(), env.tenantID, model.SequencePayment, gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID, string, time.Time) (int64, error) {
			s.seq++
			return s.seq, nil
		}).
		AnyTimes()
	env.payments.EXPECT().
		Create(gomock.Any(), env.tenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, p *model.Payment) error {
			s.payments = append(s.payments, *p)
			return nil
		}).
		AnyTimes()
	env.invoices.EXPECT().
		UpdatePayment(gomock.Any(), env.tenantID, s.invoice.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, paid decimal.Decimal, status string) error {
			s.invoice.PaidAmount = paid
			s.invoice.Status = status
			return nil
		}).
		AnyTimes()
}

func TestPaymentService_RecordPayment_SettlesInvoice(t *testing.T) {
	env := newTestEnv(t)
	store := &ledgerStore{invoice: pendingInvoice(env.tenantID, "100.00")}
	store.wire(env)
	svc := newPaymentService(env)

	first, err := svc.RecordPayment(context.Background(), env.tenantID, store.invoice.ID.String(), service.RecordPaymentRequest{
		Amount: "60.00", Method: model.PaymentCash,
	})
	require.NoError(t, err)
	assert.Equal(t, model.InvoicePartiallyPaid, first.InvoiceStatus)
	assert.Equal(t, "40.00", first.BalanceDue)
	assert.Regexp(t, `^PAY-\d{8}-0001$`, first.Payment.PaymentNumber)

	second, err := svc.RecordPayment(context.Background(), env.tenantID, store.invoice.ID.String(), service.RecordPaymentRequest{
		Amount: "40.00", Method: model.PaymentCard, Reference: "txn-42",
	})
	require.NoError(t, err)
	assert.Equal(t, model.InvoicePaid, second.InvoiceStatus)
	assert.Equal(t, "100.00", second.PaidAmount)
	assert.Regexp(t, `^PAY-\d{8}-0002$`, second.Payment.PaymentNumber)

	_, err = svc.RecordPayment(context.Background(), env.tenantID, store.invoice.ID.String(), service.RecordPaymentRequest{
		Amount: "0.01", Method: model.PaymentCash,
	})
	var be *apperror.BalanceExceeded
	require.True(t, errors.As(err, &be), "expected BalanceExceeded, got %v", err)
	assert.True(t, be.Remaining.IsZero())

	assert.Len(t, store.payments, 2, "a rejected payment leaves no trace")
	assert.True(t, store.invoice.PaidAmount.Equal(dec("100")))
	assert.Equal(t, model.InvoicePaid, store.invoice.Status)
	assert.Len(t, env.events.events, 2)
}

func TestPaymentService_RecordPayment_Overpayment(t *testing.T) {
	env := newTestEnv(t)
	store := &ledgerStore{invoice: pendingInvoice(env.tenantID, "100.00")}
	store.wire(env)

	_, err := newPaymentService(env).RecordPayment(context.Background(), env.tenantID, store.invoice.ID.String(), service.RecordPaymentRequest{
		Amount: "100.01", Method: model.PaymentBankTransfer,
	})
	var be *apperror.BalanceExceeded
	require.True(t, errors.As(err, &be))
	assert.True(t, be.Remaining.Equal(dec("100")))
	assert.Equal(t, "payment exceeds remaining balance 100.00", be.Error())
	assert.Empty(t, store.payments)
}

func TestPaymentService_RecordPayment_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		req       service.RecordPaymentRequest
		setupMock func(env *testEnv, inv *model.Invoice)
		check     func(t *testing.T, err error)
	}{
		{
			name: "ZeroAmount",
			req:  service.RecordPaymentRequest{Amount: "0", Method: model.PaymentCash},
			check: func(t *testing.T, err error) {
				var ve *apperror.ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, "amount", ve.Field)
			},
		},
		{
			name: "AmountBelowColumnScale",
			req:  service.RecordPaymentRequest{Amount: "10.00001", Method: model.PaymentCash},
			check: func(t *testing.T, err error) {
				var ve *apperror.ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, "amount", ve.Field)
			},
		},
		{
			name: "UnknownMethod",
			req:  service.RecordPaymentRequest{Amount: "10", Method: "Barter"},
			check: func(t *testing.T, err error) {
				var ve *apperror.ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, "method", ve.Field)
			},
		},
		{
			name: "InvoiceNotFound",
			req:  service.RecordPaymentRequest{Amount: "10", Method: model.PaymentCash},
			setupMock: func(env *testEnv, inv *model.Invoice) {
				env.invoices.EXPECT().
					FindByIDForUpdate(gomock.Any(), env.tenantID, inv.ID).
					Return(nil, apperror.NotFound("invoice", inv.ID))
			},
			check: func(t *testing.T, err error) {
				assert.True(t, apperror.IsNotFound(err))
			},
		},
		{
			name: "CancelledInvoice",
			req:  service.RecordPaymentRequest{Amount: "10", Method: model.PaymentCash},
			setupMock: func(env *testEnv, inv *model.Invoice) {
				inv.Status = model.InvoiceCancelled
				env.invoices.EXPECT().FindByIDForUpdate(gomock.Any(), env.tenantID, inv.ID).Return(inv, nil)
			},
			check: func(t *testing.T, err error) {
				var se *apperror.StateError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, model.InvoiceCancelled, se.Actual)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			inv := pendingInvoice(env.tenantID, "100")
			if tt.setupMock != nil {
				tt.setupMock(env, inv)
			}

			_, err := newPaymentService(env).RecordPayment(context.Background(), env.tenantID, inv.ID.String(), tt.req)
			tt.check(t, err)
			assert.Empty(t, env.events.events)
		})
	}
}

func TestPaymentService_ListPayments(t *testing.T) {
	env := newTestEnv(t)
	inv := pendingInvoice(env.tenantID, "100")
	p := model.Payment{InvoiceID: inv.ID, PaymentNumber: "PAY-20260309-0001", Amount: dec("60"), Method: model.PaymentCash}
	p.ID = uuid.New()

	env.invoices.EXPECT().FindByID(gomock.Any(), env.tenantID, inv.ID).Return(inv, nil)
	env.payments.EXPECT().ListByInvoice(gomock.Any(), env.tenantID, inv.ID).Return([]model.Payment{p}, nil)

	got, err := newPaymentService(env).ListPayments(context.Background(), env.tenantID, inv.ID.String())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "60.00", got[0].Amount)
}
