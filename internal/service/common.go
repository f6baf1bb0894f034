package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"backoffice/internal/apperror"
	"backoffice/internal/model"
	"backoffice/internal/repository"
	"backoffice/internal/tenant"
	"backoffice/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event names pushed to websocket clients.
const (
	EventAppointmentChanged = "appointment.changed"
	EventWorkOrderChanged   = "work_order.changed"
	EventInvoiceCreated     = "invoice.created"
	EventPaymentRecorded    = "invoice.payment_recorded"
	EventInvoiceOverdue     = "invoice.overdue"
)

const timeLayout = time.RFC3339

// EventPublisher delivers a domain event to the connected clients of one tenant.
// Publish is called after commit and must not block.
type EventPublisher interface {
	Publish(tenantID uuid.UUID, event string, payload interface{})
}

// NoopPublisher discards every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(uuid.UUID, string, interface{}) {}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Validation(field, "must be a valid UUID")
	}
	return id, nil
}

func parseOptionalID(field string, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := parseID(field, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseDecimal(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperror.Validation(field, "must be a decimal number")
	}
	return d, nil
}

func parseTime(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, apperror.Validation(field, "is required")
	}
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		return time.Time{}, apperror.Validation(field, "must be an RFC3339 timestamp")
	}
	return t.UTC(), nil
}

func normalizePage(page, limit int) (int, int) {
	p := pagination.Normalize(page, limit)
	return p.Page, p.Limit
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func timeString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timeLayout)
	return &s
}

// writeAudit appends an audit entry inside the caller's transaction.
func writeAudit(ctx context.Context, repo repository.AuditRepository, tenantID uuid.UUID, action, entityID, entityName string, details interface{}) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode audit details: %w", err)
	}

	entry := &model.AuditLog{
		ID:         uuid.New(),
		UserID:     tenant.UserFromContext(ctx),
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(payload),
	}
	if err := repo.Log(ctx, tenantID, entry); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// documentNumber renders PREFIX-yyyyMMdd-NNNN from an allocated daily sequence value.
func documentNumber(prefix string, day time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, day.Format("20060102"), seq)
}
