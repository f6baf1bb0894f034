package database

import (
	"fmt"
	"log/slog"

	"backoffice/internal/config"
	"backoffice/internal/model"
	"backoffice/internal/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// constraints are the storage-level guards gorm tags cannot express. Each statement is idempotent.
var constraints = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,

	// no two blocking appointments may overlap for the same staff member or the same location
	`DO $$ BEGIN
		ALTER TABLE appointments ADD CONSTRAINT ` + repository.ConstraintAppointmentStaffOverlap + `
			EXCLUDE USING gist (tenant_id WITH =, staff_id WITH =, tstzrange(scheduled_start, scheduled_end, '[)') WITH &&)
			WHERE (staff_id IS NOT NULL AND is_deleted = false AND status NOT IN ('Cancelled', 'NoShow'));
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		ALTER TABLE appointments ADD CONSTRAINT ` + repository.ConstraintAppointmentLocationOverlap + `
			EXCLUDE USING gist (tenant_id WITH =, location_id WITH =, tstzrange(scheduled_start, scheduled_end, '[)') WITH &&)
			WHERE (is_deleted = false AND status NOT IN ('Cancelled', 'NoShow'));
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,

	`CREATE UNIQUE INDEX IF NOT EXISTS ` + repository.ConstraintInvoiceWorkOrder + `
		ON invoices (work_order_id) WHERE work_order_id IS NOT NULL AND is_deleted = false`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + repository.ConstraintInvoiceNumber + `
		ON invoices (tenant_id, invoice_number) WHERE is_deleted = false`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + repository.ConstraintPaymentNumber + `
		ON payments (tenant_id, payment_number) WHERE is_deleted = false`,
}

// NewConnection opens the connection pool, migrates the schema and installs the tenant guard.
func NewConnection(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.ConnectionString()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate installs the tenant guard, migrates the models and applies the storage constraints.
func Migrate(db *gorm.DB) error {
	if err := repository.RegisterTenantGuard(db); err != nil {
		return fmt.Errorf("failed to register tenant guard: %w", err)
	}

	err := db.AutoMigrate(
		&model.CatalogService{},
		&model.Appointment{},
		&model.WorkOrder{},
		&model.WorkOrderItem{},
		&model.Invoice{},
		&model.InvoiceItem{},
		&model.Payment{},
		&model.DocumentSequence{},
		&model.AuditLog{},
	)
	if err != nil {
		slog.Warn("failed to auto-migrate models", "error", err)
	}

	return applyConstraints(db)
}

func applyConstraints(db *gorm.DB) error {
	for _, stmt := range constraints {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to apply constraint: %w", err)
		}
	}
	return nil
}
