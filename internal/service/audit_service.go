package service

import (
	"context"
	"fmt"

	"backoffice/internal/repository"
	"backoffice/internal/tenant"

	"github.com/google/uuid"
)

type AuditLogResponse struct {
	ID         string  `json:"id"`
	UserID     *string `json:"user_id"`
	Action     string  `json:"action"`
	EntityID   string  `json:"entity_id"`
	EntityName string  `json:"entity_name"`
	Details    string  `json:"details"`
	CreatedAt  string  `json:"created_at"`
}

type AuditService interface {
	GetAuditLogs(ctx context.Context, tenantID uuid.UUID, page, limit int) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	auditRepo repository.AuditRepository
}

func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// GetAuditLogs returns the tenant's audit trail, newest first.
func (s *auditService) GetAuditLogs(ctx context.Context, tenantID uuid.UUID, page, limit int) ([]AuditLogResponse, int64, error) {
	if err := tenant.Check(tenantID); err != nil {
		return nil, 0, err
	}
	page, limit = normalizePage(page, limit)

	logs, total, err := s.auditRepo.List(ctx, tenantID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, AuditLogResponse{
			ID:         l.ID.String(),
			UserID:     idString(l.UserID),
			Action:     l.Action,
			EntityID:   l.EntityID,
			EntityName: l.EntityName,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format(timeLayout),
		})
	}

	return res, total, nil
}
