package repository

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=sequence_repo.go -destination=mocks/sequence_repo_mock.go -package=mocks

// SequenceRepository hands out per-tenant, per-kind, per-day document numbers.
type SequenceRepository interface {
	// Next atomically increments and returns the counter. Called inside a transaction the row
	// stays locked until commit, so concurrent writers for the same tenant and day queue up
	// instead of reading the same value.
	Next(ctx context.Context, tenantID uuid.UUID, kind string, day time.Time) (int64, error)
}

type sequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) SequenceRepository {
	return &sequenceRepository{db: db}
}

func (r *sequenceRepository) Next(ctx context.Context, tenantID uuid.UUID, kind string, day time.Time) (int64, error) {
	if err := tenant.Check(tenantID); err != nil {
		return 0, err
	}

	var last int64
	err := GetDB(ctx, r.db).Raw(`
		INSERT INTO document_sequences (tenant_id, kind, day, last_value, updated_at)
		VALUES (?, ?, ?, 1, NOW())
		ON CONFLICT (tenant_id, kind, day)
		DO UPDATE SET last_value = document_sequences.last_value + 1, updated_at = NOW()
		RETURNING last_value
	`, tenantID, kind, day.Format("20060102")).Scan(&last).Error
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %s sequence: %w", kind, err)
	}
	return last, nil
}
