package repository

import (
	"context"

	"backoffice/internal/model"
	"backoffice/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=audit_repo.go -destination=mocks/audit_repo_mock.go -package=mocks

type AuditRepository interface {
	Log(ctx context.Context, tenantID uuid.UUID, entry *model.AuditLog) error
	List(ctx context.Context, tenantID uuid.UUID, page, limit int) ([]model.AuditLog, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Log(ctx context.Context, tenantID uuid.UUID, entry *model.AuditLog) error {
	return createRow(ctx, r.db, tenantID, entry)
}

func (r *auditRepository) List(ctx context.Context, tenantID uuid.UUID, page, limit int) ([]model.AuditLog, int64, error) {
	if err := tenant.Check(tenantID); err != nil {
		return nil, 0, err
	}

	// audit rows are append-only and have no soft delete columns
	query := GetDB(ctx, r.db).Model(&model.AuditLog{}).Where("tenant_id = ?", tenantID).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []model.AuditLog
	offset := (page - 1) * limit
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
