package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice/internal/apperror"
	"backoffice/internal/model"
	"backoffice/internal/service"
)

var invoiceNumberPattern = regexp.MustCompile(`^INV-\d{8}-0001$`)

func newInvoiceService(env *testEnv) service.InvoiceService {
	return service.NewInvoiceService(env.invoices, env.workOrders, env.sequences, env.audit, env.tx, env.events, 0)
}

func completedWorkOrder(tenantID uuid.UUID) *model.WorkOrder {
	return newWorkOrder(tenantID, model.WorkOrderCompleted,
		newItem("Pads", "2", "25.00", "0"),
		newItem("Fluid", "3", "10.00", "0"),
		newItem("Labour", "1", "20.00", "0"),
	)
}

func TestInvoiceService_CreateFromWorkOrder(t *testing.T) {
	t.Run("CompletedWorkOrderIsInvoiced", func(t *testing.T) {
		env := newTestEnv(t)
		wo := completedWorkOrder(env.tenantID)
		removed := newItem("Cancelled part", "1", "500", "0")
		removed.IsDeleted = true
		wo.Items = append(wo.Items, removed)

		var stored *model.Invoice
		gomock.InOrder(
			env.workOrders.EXPECT().FindByIDForUpdate(gomock.Any(), env.tenantID, wo.ID).Return(wo, nil),
			env.sequences.EXPECT().Next(gomock.Any(), env.tenantID, model.SequenceInvoice, gomock.Any()).Return(int64(1), nil),
			env.invoices.EXPECT().
				Create(gomock.Any(), env.tenantID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, inv *model.Invoice) error {
					stored = inv
					return nil
				}),
			env.workOrders.EXPECT().LinkInvoice(gomock.Any(), env.tenantID, wo.ID, gomock.Any()).Return(nil),
		)

		got, err := newInvoiceService(env).CreateFromWorkOrder(context.Background(), env.tenantID, wo.ID.String())
		require.NoError(t, err)

		assert.Equal(t, "100.00", got.TotalAmount)
		assert.Equal(t, "0.00", got.TaxAmount)
		assert.Equal(t, model.InvoicePending, got.Status)
		assert.Regexp(t, invoiceNumberPattern, got.InvoiceNumber)
		assert.Equal(t, wo.ID.String(), *got.WorkOrderID)

		require.NotNil(t, stored)
		assert.Len(t, stored.Items, 3, "deleted work order items are not invoiced")
		assert.True(t, stored.IssuedAt.AddDate(0, 0, service.DefaultPaymentTermsDays).Equal(stored.DueDate))
		for i, it := range stored.Items {
			assert.Equal(t, stored.ID, it.InvoiceID)
			assert.NotEqual(t, wo.Items[i].ID, it.ID, "invoice items are copies")
			require.NotNil(t, it.SourceItemID)
			assert.Equal(t, wo.Items[i].ID, *it.SourceItemID)
		}

		// later edits of the work order do not reach the snapshot
		wo.Items[0].UnitPrice = dec("999")
		assert.True(t, stored.Items[0].UnitPrice.Equal(dec("25")))

		require.Len(t, env.events.events, 1)
		assert.Equal(t, service.EventInvoiceCreated, env.events.events[0].name)
	})

	t.Run("TaxedTotalsComeFromTheLedger", func(t *testing.T) {
		env := newTestEnv(t)
		wo := newWorkOrder(env.tenantID, model.WorkOrderCompleted, newItem("Inspection", "1", "100.00", "10"))
		wo.TotalAmount = dec("1") // stale cache is ignored

		env.workOrders.EXPECT().FindByIDForUpdate(gomock.Any(), env.tenantID, wo.ID).Return(wo, nil)
		env.sequences.EXPECT().Next(gomock.Any(), env.tenantID, model.SequenceInvoice, gomock.Any()).Return(int64(7), nil)
		env.invoices.EXPECT().Create(gomock.Any(), env.tenantID, gomock.Any()).Return(nil)
		env.workOrders.EXPECT().LinkInvoice(gomock.Any(), env.tenantID, wo.ID, gomock.Any()).Return(nil)

		got, err := newInvoiceService(env).CreateFromWorkOrder(context.Background(), env.tenantID, wo.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "100.00", got.SubTotal)
		assert.Equal(t, "10.00", got.TaxAmount)
		assert.Equal(t, "110.00", got.TotalAmount)
		assert.Regexp(t, `^INV-\d{8}-0007$`, got.InvoiceNumber)
	})

	t.Run("StoredAmountsKeepFourPlaces", func(t *testing.T) {
		env := newTestEnv(t)
		wo := newWorkOrder(env.tenantID, model.WorkOrderCompleted, newItem("Brake fluid", "3", "19.99", "8.25"))

		env.workOrders.EXPECT().FindByIDForUpdate(gomock.Any(), env.tenantID, wo.ID).Return(wo, nil)
		env.sequences.EXPECT().Next(gomock.Any(), env.tenantID, model.SequenceInvoice, gomock.Any()).Return(int64(1), nil)
		env.invoices.EXPECT().
			Create(gomock.Any(), env.tenantID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, inv *model.Invoice) error {
				assert.True(t, inv.SubTotal.Equal(dec("59.97")), "sub %s", inv.SubTotal)
				assert.True(t, inv.TotalAmount.Equal(dec("64.9175")), "total %s", inv.TotalAmount)
				assert.True(t, inv.TaxAmount.Equal(dec("4.9475")), "tax %s", inv.TaxAmount)
				require.Len(t, inv.Items, 1)
				assert.True(t, inv.Items[0].TotalAmount.Equal(inv.TotalAmount), "item %s", inv.Items[0].TotalAmount)
				return nil
			})
		env.workOrders.EXPECT().LinkInvoice(gomock.Any(), env.tenantID, wo.ID, gomock.Any()).Return(nil)

		_, err := newInvoiceService(env).CreateFromWorkOrder(context.Background(), env.tenantID, wo.ID.String())
		require.NoError(t, err)
	})

	preconditions := []struct {
		name  string
		setup func(wo *model.WorkOrder)
		check func(t *testing.T, err error)
	}{
		{
			name:  "NotCompleted",
			setup: func(wo *model.WorkOrder) { wo.Status = model.WorkOrderInProgress },
			check: func(t *testing.T, err error) {
				var se *apperror.StateError
				require.True(t, errors.As(err, &se), "expected StateError, got %v", err)
				assert.Equal(t, model.WorkOrderCompleted, se.Expected)
				assert.Equal(t, model.WorkOrderInProgress, se.Actual)
			},
		},
		{
			name: "StateCheckedBeforeDuplicate",
			setup: func(wo *model.WorkOrder) {
				wo.Status = model.WorkOrderCancelled
				wo.InvoiceID = uuidPtr(uuid.New())
			},
			check: func(t *testing.T, err error) {
				var se *apperror.StateError
				assert.True(t, errors.As(err, &se), "expected StateError, got %v", err)
			},
		},
		{
			name:  "AlreadyInvoiced",
			setup: func(wo *model.WorkOrder) { wo.InvoiceID = uuidPtr(uuid.New()) },
			check: func(t *testing.T, err error) {
				var ce *apperror.ConflictError
				require.True(t, errors.As(err, &ce), "expected ConflictError, got %v", err)
				assert.Equal(t, apperror.ConflictDuplicateInvoice, ce.Kind)
			},
		},
		{
			name: "NoLiveItems",
			setup: func(wo *model.WorkOrder) {
				for i := range wo.Items {
					wo.Items[i].IsDeleted = true
				}
			},
			check: func(t *testing.T, err error) {
				var ve *apperror.ValidationError
				require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
				assert.Equal(t, "items", ve.Field)
			},
		},
	}

	for _, tt := range preconditions {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			wo := completedWorkOrder(env.tenantID)
			tt.setup(wo)
			env.workOrders.EXPECT().FindByIDForUpdate(gomock.Any(), env.tenantID, wo.ID).Return(wo, nil)

			_, err := newInvoiceService(env).CreateFromWorkOrder(context.Background(), env.tenantID, wo.ID.String())
			tt.check(t, err)
			assert.Empty(t, env.events.events)
		})
	}

	t.Run("NotFound", func(t *testing.T) {
		env := newTestEnv(t)
		id := uuid.New()
		env.workOrders.EXPECT().FindByIDForUpdate(gomock.Any(), env.tenantID, id).Return(nil, apperror.NotFound("work order", id))

		_, err := newInvoiceService(env).CreateFromWorkOrder(context.Background(), env.tenantID, id.String())
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("LostRaceIsDuplicate", func(t *testing.T) {
		env := newTestEnv(t)
		wo := completedWorkOrder(env.tenantID)

		env.workOrders.EXPECT().FindByIDForUpdate(gomock.Any(), env.tenantID, wo.ID).Return(wo, nil)
		env.sequences.EXPECT().Next(gomock.Any(), env.tenantID, model.SequenceInvoice, gomock.Any()).Return(int64(2), nil)
		env.invoices.EXPECT().
			Create(gomock.Any(), env.tenantID, gomock.Any()).
			Return(&apperror.ConflictError{Kind: apperror.ConflictDuplicateInvoice})

		_, err := newInvoiceService(env).CreateFromWorkOrder(context.Background(), env.tenantID, wo.ID.String())
		var ce *apperror.ConflictError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, apperror.ConflictDuplicateInvoice, ce.Kind)
	})

	t.Run("MissingTenant", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := newInvoiceService(env).CreateFromWorkOrder(context.Background(), uuid.Nil, uuid.NewString())
		assert.ErrorIs(t, err, apperror.ErrTenantContextMissing)
	})
}

func TestInvoiceService_MarkOverdue(t *testing.T) {
	env := newTestEnv(t)
	now := time.Date(2026, 5, 1, 2, 0, 0, 0, time.UTC)
	healthy, broken := uuid.New(), uuid.New()

	overdue := func(number string) model.Invoice {
		inv := model.Invoice{InvoiceNumber: number, DueDate: now.AddDate(0, 0, -3), Status: model.InvoiceOverdue}
		inv.ID = uuid.New()
		return inv
	}

	env.invoices.EXPECT().TenantsWithOverdue(gomock.Any(), now).Return([]uuid.UUID{healthy, broken}, nil)
	env.invoices.EXPECT().
		MarkOverdue(gomock.Any(), healthy, now).
		Return([]model.Invoice{overdue("INV-20260325-0001"), overdue("INV-20260326-0004")}, nil)
	env.invoices.EXPECT().MarkOverdue(gomock.Any(), broken, now).Return(nil, errors.New("connection reset"))

	marked, err := newInvoiceService(env).MarkOverdue(context.Background(), now)
	assert.Equal(t, 2, marked)
	require.Error(t, err)
	assert.Contains(t, err.Error(), broken.String())

	require.Len(t, env.events.events, 2)
	for _, e := range env.events.events {
		assert.Equal(t, healthy, e.tenantID)
		assert.Equal(t, service.EventInvoiceOverdue, e.name)
	}
}

func TestInvoiceService_ListInvoices(t *testing.T) {
	env := newTestEnv(t)
	inv := model.Invoice{InvoiceNumber: "INV-20260309-0001", TotalAmount: dec("100"), PaidAmount: dec("40"), Status: model.InvoicePartiallyPaid}
	inv.ID = uuid.New()

	env.invoices.EXPECT().List(gomock.Any(), env.tenantID, model.InvoicePartiallyPaid, 1, 20).Return([]model.Invoice{inv}, int64(1), nil)

	got, total, err := newInvoiceService(env).ListInvoices(context.Background(), env.tenantID, service.InvoiceFilter{Status: model.InvoicePartiallyPaid})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, "60.00", got[0].BalanceDue)
}
