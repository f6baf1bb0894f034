package repository

import (
	"context"

	"backoffice/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payment_repo.go -destination=mocks/payment_repo_mock.go -package=mocks

type PaymentRepository interface {
	Create(ctx context.Context, tenantID uuid.UUID, payment *model.Payment) error
	SumForInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) (decimal.Decimal, error)
	ListByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]model.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, tenantID uuid.UUID, payment *model.Payment) error {
	return createRow(ctx, r.db, tenantID, payment)
}

// SumForInvoice totals the live payments recorded against an invoice.
func (r *paymentRepository) SumForInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) (decimal.Decimal, error) {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return decimal.Zero, err
	}

	var result struct {
		Total decimal.Decimal
	}
	err = db.Model(&model.Payment{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("invoice_id = ?", invoiceID).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

func (r *paymentRepository) ListByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]model.Payment, error) {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return nil, err
	}

	var payments []model.Payment
	if err := db.Where("invoice_id = ?", invoiceID).Order("paid_at").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
