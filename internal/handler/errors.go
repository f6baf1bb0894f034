package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"backoffice/internal/apperror"
	"backoffice/internal/tenant"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Error kinds exposed in the response envelope
const (
	KindValidation      = "VALIDATION"
	KindSchedulingClash = "SCHEDULING_CONFLICT"
	KindConflict        = "CONFLICT"
	KindState           = "INVALID_STATE"
	KindNotFound        = "NOT_FOUND"
	KindBalance         = "BALANCE_EXCEEDED"
	KindTenantMissing   = "TENANT_CONTEXT_MISSING"
	KindInternal        = "INTERNAL"
)

// writeError maps a service failure onto an HTTP status. Infrastructure faults are logged and
// reported without their detail.
func writeError(c *gin.Context, err error) {
	var (
		ve *apperror.ValidationError
		sc *apperror.SchedulingConflict
		ce *apperror.ConflictError
		se *apperror.StateError
		nf *apperror.NotFoundError
		be *apperror.BalanceExceeded
	)

	switch {
	case errors.Is(err, apperror.ErrTenantContextMissing):
		abort(c, http.StatusUnauthorized, KindTenantMissing, err.Error())
	case errors.As(err, &ve):
		abort(c, http.StatusBadRequest, KindValidation, err.Error())
	case errors.As(err, &sc):
		abort(c, http.StatusConflict, KindSchedulingClash, err.Error())
	case errors.As(err, &ce):
		abort(c, http.StatusConflict, ce.Kind, err.Error())
	case errors.As(err, &nf):
		abort(c, http.StatusNotFound, KindNotFound, err.Error())
	case errors.As(err, &se):
		abort(c, http.StatusUnprocessableEntity, KindState, err.Error())
	case errors.As(err, &be):
		abort(c, http.StatusUnprocessableEntity, KindBalance, err.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		abort(c, http.StatusInternalServerError, KindInternal, "internal server error")
	}
}

// requireTenant resolves the caller's tenant from the request context. When it reports false
// the 401 has already been written.
func requireTenant(c *gin.Context) (uuid.UUID, bool) {
	tenantID, err := tenant.Require(c.Request.Context(), tenant.ContextResolver{})
	if err != nil {
		writeError(c, err)
		return uuid.Nil, false
	}
	return tenantID, true
}

func abort(c *gin.Context, status int, kind, msg string) {
	c.AbortWithStatusJSON(status, response.ErrorWithKind(status, kind, msg))
}

func badPayload(c *gin.Context, err error) {
	abort(c, http.StatusBadRequest, KindValidation, "Invalid request payload: "+err.Error())
}
