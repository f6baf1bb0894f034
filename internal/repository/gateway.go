package repository

import (
	"context"
	"errors"
	"reflect"
	"time"

	"backoffice/internal/apperror"
	"backoffice/internal/model"
	"backoffice/internal/tenant"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Constraint names created by database.applyConstraints.
const (
	ConstraintAppointmentStaffOverlap    = "ex_appointments_staff_overlap"
	ConstraintAppointmentLocationOverlap = "ex_appointments_location_overlap"
	ConstraintInvoiceWorkOrder           = "uq_invoices_work_order"
	ConstraintInvoiceNumber              = "uq_invoices_tenant_number"
	ConstraintPaymentNumber              = "uq_payments_tenant_number"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
	pgNumericOutOfRange  = "22003"
)

// TenantScope restricts a query to live rows of one tenant.
func TenantScope(tenantID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ? AND is_deleted = ?", tenantID, false)
	}
}

// tenantDB is the handle every tenant-owned read and update goes through. It is meant for a
// single statement; call it again for the next one.
func tenantDB(ctx context.Context, root *gorm.DB, tenantID uuid.UUID) (*gorm.DB, error) {
	if err := tenant.Check(tenantID); err != nil {
		return nil, err
	}
	return GetDB(tenant.WithTenant(ctx, tenantID), root).Scopes(TenantScope(tenantID)), nil
}

// stamp assigns tenantID to a new row, refusing rows already tagged with another tenant.
func stamp(tenantID uuid.UUID, rows ...model.Tenanted) error {
	if err := tenant.Check(tenantID); err != nil {
		return err
	}
	for _, row := range rows {
		switch row.GetTenantID() {
		case uuid.Nil:
			row.SetTenantID(tenantID)
		case tenantID:
		default:
			return apperror.Validation("tenant_id", "does not match the caller's tenant")
		}
	}
	return nil
}

// createRow stamps and inserts a tenant-owned row.
func createRow(ctx context.Context, root *gorm.DB, tenantID uuid.UUID, row model.Tenanted) error {
	if err := stamp(tenantID, row); err != nil {
		return err
	}
	return translateError(GetDB(tenant.WithTenant(ctx, tenantID), root).Create(row).Error)
}

// softDelete flags a live row as deleted. There is no physical delete path.
func softDelete(ctx context.Context, root *gorm.DB, tenantID uuid.UUID, value interface{}, id uuid.UUID, entity string) error {
	db, err := tenantDB(ctx, root, tenantID)
	if err != nil {
		return err
	}

	res := db.Model(value).Where("id = ?", id).Updates(map[string]interface{}{
		"is_deleted": true,
		"deleted_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound(entity, id)
	}
	return nil
}

// notFound converts gorm's missing-row error into the typed NotFoundError.
func notFound(err error, entity string, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(entity, id)
	}
	return translateError(err)
}

// translateError maps constraint violations raised by Postgres to business failures.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgExclusionViolation:
		if pgErr.ConstraintName == ConstraintAppointmentStaffOverlap || pgErr.ConstraintName == ConstraintAppointmentLocationOverlap {
			return &apperror.SchedulingConflict{}
		}
	case pgUniqueViolation:
		switch pgErr.ConstraintName {
		case ConstraintInvoiceWorkOrder:
			return &apperror.ConflictError{Kind: apperror.ConflictDuplicateInvoice}
		case ConstraintInvoiceNumber, ConstraintPaymentNumber:
			return &apperror.ConflictError{Kind: apperror.ConflictDuplicateNumber}
		}
	case pgNumericOutOfRange:
		return apperror.Validation("amount", "numeric value out of range")
	}
	return err
}

// RegisterTenantGuard installs a create callback that stamps tenant-owned rows from the
// statement context and fails the insert when no tenant can be resolved. It also covers rows
// gorm creates on its own, such as invoice items saved through the association.
func RegisterTenantGuard(db *gorm.DB) error {
	return db.Callback().Create().Before("gorm:create").Register("backoffice:tenant_guard", tenantGuard)
}

func tenantGuard(db *gorm.DB) {
	if db.Statement.Schema == nil {
		return
	}

	rv := db.Statement.ReflectValue
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			guardRow(db, rv.Index(i))
		}
	case reflect.Struct:
		guardRow(db, rv)
	}
}

func guardRow(db *gorm.DB, v reflect.Value) {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if !v.CanAddr() {
		return
	}

	row, ok := v.Addr().Interface().(model.Tenanted)
	if !ok || row.GetTenantID() != uuid.Nil {
		return
	}

	tenantID, ok := tenant.FromContext(db.Statement.Context)
	if !ok {
		_ = db.AddError(apperror.ErrTenantContextMissing)
		return
	}
	row.SetTenantID(tenantID)
}
