package repository

import (
	"context"
	"time"

	"backoffice/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=invoice_repo.go -destination=mocks/invoice_repo_mock.go -package=mocks

type InvoiceRepository interface {
	Create(ctx context.Context, tenantID uuid.UUID, invoice *model.Invoice) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.Invoice, error)
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*model.Invoice, error)
	List(ctx context.Context, tenantID uuid.UUID, status string, page, limit int) ([]model.Invoice, int64, error)
	UpdatePayment(ctx context.Context, tenantID, id uuid.UUID, paid decimal.Decimal, status string) error
	MarkOverdue(ctx context.Context, tenantID uuid.UUID, now time.Time) ([]model.Invoice, error)
	TenantsWithOverdue(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

var overdueCandidates = []string{model.InvoicePending, model.InvoicePartiallyPaid}

// Create inserts the invoice and its item snapshot.
func (r *invoiceRepository) Create(ctx context.Context, tenantID uuid.UUID, invoice *model.Invoice) error {
	rows := []model.Tenanted{invoice}
	for i := range invoice.Items {
		rows = append(rows, &invoice.Items[i])
	}
	if err := stamp(tenantID, rows...); err != nil {
		return err
	}
	return createRow(ctx, r.db, tenantID, invoice)
}

func (r *invoiceRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.Invoice, error) {
	return r.find(ctx, tenantID, id, false)
}

func (r *invoiceRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*model.Invoice, error) {
	return r.find(ctx, tenantID, id, true)
}

func (r *invoiceRepository) find(ctx context.Context, tenantID, id uuid.UUID, lock bool) (*model.Invoice, error) {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return nil, err
	}
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var invoice model.Invoice
	if err := db.First(&invoice, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "invoice", id)
	}

	items, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return nil, err
	}
	if err := items.Where("invoice_id = ?", id).Order("created_at").Find(&invoice.Items).Error; err != nil {
		return nil, err
	}

	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context, tenantID uuid.UUID, status string, page, limit int) ([]model.Invoice, int64, error) {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return nil, 0, err
	}

	query := db.Model(&model.Invoice{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []model.Invoice
	offset := (page - 1) * limit
	if err := query.Order("issued_at desc").Offset(offset).Limit(limit).Find(&invoices).Error; err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

func (r *invoiceRepository) UpdatePayment(ctx context.Context, tenantID, id uuid.UUID, paid decimal.Decimal, status string) error {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return err
	}

	res := db.Model(&model.Invoice{}).Where("id = ?", id).Updates(map[string]interface{}{
		"paid_amount": paid,
		"status":      status,
	})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "invoice", id)
	}
	return nil
}

// MarkOverdue flips every unpaid invoice of the tenant whose due date has passed and returns
// the rows it changed.
func (r *invoiceRepository) MarkOverdue(ctx context.Context, tenantID uuid.UUID, now time.Time) ([]model.Invoice, error) {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return nil, err
	}

	var changed []model.Invoice
	err = db.Model(&changed).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}, {Name: "invoice_number"}, {Name: "due_date"}}}).
		Where("status IN ? AND due_date < ?", overdueCandidates, now).
		Update("status", model.InvoiceOverdue).Error
	if err != nil {
		return nil, err
	}
	return changed, nil
}

// TenantsWithOverdue lists the tenants the overdue sweep has work for. It is the only
// cross-tenant read and returns identifiers only.
func (r *invoiceRepository) TenantsWithOverdue(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := GetDB(ctx, r.db).Model(&model.Invoice{}).
		Where("is_deleted = ? AND status IN ? AND due_date < ?", false, overdueCandidates, now).
		Distinct().
		Pluck("tenant_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
