package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice/internal/apperror"
	"backoffice/internal/model"
	"backoffice/internal/repository/mocks"
	"backoffice/internal/service"
)

func TestGetAuditLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditRepository(ctrl)
	svc := service.NewAuditService(repo)
	tenantID := uuid.New()
	userID := uuid.New()

	repo.EXPECT().List(gomock.Any(), tenantID, 1, 20).Return([]model.AuditLog{
		{
			ID:         uuid.New(),
			TenantID:   tenantID,
			UserID:     &userID,
			Action:     model.ActionRecordPayment,
			EntityName: "PAY-20260309-0001",
			Details:    `{"amount":"40"}`,
			CreatedAt:  time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
		},
		{ID: uuid.New(), TenantID: tenantID, Action: model.ActionMarkInvoiceOverdue},
	}, int64(2), nil)

	logs, total, err := svc.GetAuditLogs(context.Background(), tenantID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, logs, 2)
	require.NotNil(t, logs[0].UserID)
	assert.Equal(t, userID.String(), *logs[0].UserID)
	assert.Equal(t, "2026-03-09T10:00:00Z", logs[0].CreatedAt)
	assert.Nil(t, logs[1].UserID, "sweep entries carry no user")
}

func TestGetAuditLogs_MissingTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewAuditService(mocks.NewMockAuditRepository(ctrl))

	_, _, err := svc.GetAuditLogs(context.Background(), uuid.Nil, 1, 20)
	assert.ErrorIs(t, err, apperror.ErrTenantContextMissing)
}
