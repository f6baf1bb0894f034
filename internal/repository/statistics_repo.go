package repository

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=statistics_repo.go -destination=mocks/statistics_repo_mock.go -package=mocks

// Period groupings accepted by Collections
const (
	GroupByDay   = "day"
	GroupByMonth = "month"
)

type StatisticsRepository interface {
	InvoiceSummary(ctx context.Context, tenantID uuid.UUID, start, end time.Time) ([]model.InvoiceStatusSummary, error)
	Collections(ctx context.Context, tenantID uuid.UUID, groupBy string, start, end time.Time) ([]model.CollectionPeriod, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

// InvoiceSummary groups the invoices issued in [start, end) by status.
func (r *statisticsRepository) InvoiceSummary(ctx context.Context, tenantID uuid.UUID, start, end time.Time) ([]model.InvoiceStatusSummary, error) {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return nil, err
	}

	var rows []model.InvoiceStatusSummary
	if err := db.Model(&model.Invoice{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total_amount, COALESCE(SUM(paid_amount), 0) AS paid_amount").
		Where("issued_at >= ? AND issued_at < ?", start, end).
		Group("status").
		Order("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to summarize invoices: %w", err)
	}
	return rows, nil
}

// Collections sums the payments received in [start, end) per day or month, in UTC.
func (r *statisticsRepository) Collections(ctx context.Context, tenantID uuid.UUID, groupBy string, start, end time.Time) ([]model.CollectionPeriod, error) {
	format := "YYYY-MM-DD"
	if groupBy == GroupByMonth {
		format = "YYYY-MM"
	}

	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return nil, err
	}

	periodExpr := fmt.Sprintf("TO_CHAR(paid_at AT TIME ZONE 'UTC', '%s')", format)
	var rows []model.CollectionPeriod
	if err := db.Model(&model.Payment{}).
		Select(periodExpr+" AS period, COUNT(*) AS payments, COALESCE(SUM(amount), 0) AS amount").
		Where("paid_at >= ? AND paid_at < ?", start, end).
		Group("period").
		Order("period").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query collections: %w", err)
	}
	return rows, nil
}
