package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"backoffice/internal/apperror"
	"backoffice/internal/database"
	"backoffice/internal/model"
	"backoffice/internal/repository"
	"backoffice/internal/tenant"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB connects to TEST_DATABASE_URL, migrates the schema and empties every table.
// Tests sharing it must not run in parallel.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	_ = godotenv.Load("../../.env")

	// A dedicated database: the tables are truncated on every run.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, database.Migrate(db))

	err = db.Exec(`TRUNCATE TABLE payments, invoice_items, invoices, work_order_items, work_orders,
		appointments, catalog_services, document_sequences, audit_logs`).Error
	require.NoError(t, err, "failed to clean test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// markDeleted flags a row the way the soft-delete path does, for entities with no delete operation.
func markDeleted(t *testing.T, db *gorm.DB, value interface{}, id uuid.UUID) {
	t.Helper()
	err := db.Model(value).Where("id = ?", id).Updates(map[string]interface{}{
		"is_deleted": true,
		"deleted_at": time.Now().UTC(),
	}).Error
	require.NoError(t, err)
}

func TestTenantGuard_RejectsInsertWithoutTenant(t *testing.T) {
	db := setupTestDB(t)

	svc := &model.CatalogService{Name: "Haircut", DurationMinutes: 30, Price: dec("25")}
	svc.ID = uuid.New()
	err := db.WithContext(context.Background()).Create(svc).Error
	assert.ErrorIs(t, err, apperror.ErrTenantContextMissing)

	var count int64
	require.NoError(t, db.Model(&model.CatalogService{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTenantGuard_StampsFromContext(t *testing.T) {
	db := setupTestDB(t)
	tenantID := uuid.New()

	svc := &model.CatalogService{Name: "Haircut", DurationMinutes: 30, Price: dec("25")}
	svc.ID = uuid.New()
	require.NoError(t, db.WithContext(tenant.WithTenant(context.Background(), tenantID)).Create(svc).Error)
	assert.Equal(t, tenantID, svc.TenantID)

	got, err := repository.NewCatalogRepository(db).FindByID(context.Background(), tenantID, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Haircut", got.Name)
}

func TestCatalogRepository_HidesDeletedAndForeignRows(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCatalogRepository(db)
	ctx := context.Background()
	tenantA, tenantB := uuid.New(), uuid.New()

	svc := &model.CatalogService{Name: "Colour", DurationMinutes: 90, Price: dec("80.5")}
	svc.ID = uuid.New()
	require.NoError(t, repo.Create(ctx, tenantA, svc))

	_, err := repo.FindByID(ctx, tenantB, svc.ID)
	assert.True(t, apperror.IsNotFound(err), "foreign tenant must not see the row, got %v", err)

	markDeleted(t, db, &model.CatalogService{}, svc.ID)
	_, err = repo.FindByID(ctx, tenantA, svc.ID)
	assert.True(t, apperror.IsNotFound(err), "deleted row must be hidden, got %v", err)
}

func TestWorkOrderRepository_UpdateTotalOverflow(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewWorkOrderRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	wo := &model.WorkOrder{CustomerID: uuid.New(), LocationID: uuid.New(), Status: model.WorkOrderDraft, TotalAmount: decimal.Zero}
	wo.ID = uuid.New()
	require.NoError(t, repo.Create(ctx, tenantID, wo))

	err := repo.UpdateTotal(ctx, tenantID, wo.ID, dec("1000000000000000"))
	var ve *apperror.ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
	assert.Equal(t, "amount", ve.Field)
}
