package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"backoffice/internal/repository/mocks"
)

type publishedEvent struct {
	tenantID uuid.UUID
	name     string
	payload  interface{}
}

type recordingPublisher struct {
	events []publishedEvent
}

func (p *recordingPublisher) Publish(tenantID uuid.UUID, event string, payload interface{}) {
	p.events = append(p.events, publishedEvent{tenantID: tenantID, name: event, payload: payload})
}

type testEnv struct {
	tenantID     uuid.UUID
	appointments *mocks.MockAppointmentRepository
	catalog      *mocks.MockCatalogRepository
	workOrders   *mocks.MockWorkOrderRepository
	invoices     *mocks.MockInvoiceRepository
	payments     *mocks.MockPaymentRepository
	sequences    *mocks.MockSequenceRepository
	audit        *mocks.MockAuditRepository
	tx           *mocks.MockTransactionManager
	events       *recordingPublisher
}

// newTestEnv wires mocks for every repository. Transactions run the callback inline and audit
// writes always succeed.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		tenantID:     uuid.New(),
		appointments: mocks.NewMockAppointmentRepository(ctrl),
		catalog:      mocks.NewMockCatalogRepository(ctrl),
		workOrders:   mocks.NewMockWorkOrderRepository(ctrl),
		invoices:     mocks.NewMockInvoiceRepository(ctrl),
		payments:     mocks.NewMockPaymentRepository(ctrl),
		sequences:    mocks.NewMockSequenceRepository(ctrl),
		audit:        mocks.NewMockAuditRepository(ctrl),
		tx:           mocks.NewMockTransactionManager(ctrl),
		events:       &recordingPublisher{},
	}

	env.tx.EXPECT().
		RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	env.audit.EXPECT().Log(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return env
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
