// Package tenant carries the authenticated caller's tenant through a request.
package tenant

import (
	"context"

	"backoffice/internal/apperror"

	"github.com/google/uuid"
)

type contextKey string

const tenantKey contextKey = "tenant_id"

// Resolver is the TenantContext collaborator supplied by the authentication layer.
type Resolver interface {
	CurrentTenantID(ctx context.Context) (uuid.UUID, bool)
}

// ContextResolver resolves the tenant placed into the context by WithTenant.
type ContextResolver struct{}

func (ContextResolver) CurrentTenantID(ctx context.Context) (uuid.UUID, bool) {
	return FromContext(ctx)
}

// WithTenant returns a copy of ctx carrying tenantID.
func WithTenant(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, tenantKey, tenantID)
}

// FromContext extracts the tenant set by WithTenant. uuid.Nil is treated as absent.
func FromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(tenantKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// Require turns an unresolved tenant into ErrTenantContextMissing.
func Require(ctx context.Context, r Resolver) (uuid.UUID, error) {
	id, ok := r.CurrentTenantID(ctx)
	if !ok {
		return uuid.Nil, apperror.ErrTenantContextMissing
	}
	return id, nil
}

// Check validates an explicitly passed tenant identifier.
func Check(tenantID uuid.UUID) error {
	if tenantID == uuid.Nil {
		return apperror.ErrTenantContextMissing
	}
	return nil
}

const userKey contextKey = "user_id"

// WithUser records the acting user for audit entries.
func WithUser(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userKey, userID)
}

// UserFromContext returns nil for scheduled jobs and unauthenticated callers.
func UserFromContext(ctx context.Context) *uuid.UUID {
	id, ok := ctx.Value(userKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return nil
	}
	return &id
}
