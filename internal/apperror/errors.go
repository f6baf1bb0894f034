// Package apperror defines the typed failures returned by the back-office core.
// Callers inspect them with errors.As / errors.Is; anything else is an infrastructure fault.
package apperror

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrTenantContextMissing aborts a request that carries no resolvable tenant.
var ErrTenantContextMissing = errors.New("tenant context missing")

// ConflictKind enum constants
const (
	ConflictDuplicateInvoice = "DUPLICATE_INVOICE"
	ConflictDuplicateNumber  = "DUPLICATE_NUMBER"
)

// ValidationError reports malformed input on a single field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// Validation returns a ValidationError for field.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// SchedulingConflict is a booking rejected because staff or location is already taken.
// ConflictingID is uuid.Nil when the storage constraint caught the overlap.
type SchedulingConflict struct {
	ConflictingID uuid.UUID
}

func (e *SchedulingConflict) Error() string {
	if e.ConflictingID == uuid.Nil {
		return "scheduling conflict with an existing appointment"
	}
	return fmt.Sprintf("scheduling conflict with appointment %s", e.ConflictingID)
}

// ConflictError is a uniqueness rule violation such as a second invoice for one work order.
type ConflictError struct {
	Kind string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Kind)
}

// StateError means the entity is not in the state the operation requires.
type StateError struct {
	Expected string
	Actual   string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("invalid state: expected %s, got %s", e.Expected, e.Actual)
}

// NotFoundError covers missing, soft-deleted and foreign-tenant rows alike.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// NotFound returns a NotFoundError for the entity with the given id.
func NotFound(entity string, id uuid.UUID) error {
	return &NotFoundError{Entity: entity, ID: id.String()}
}

// BalanceExceeded rejects a payment larger than what is still owed.
type BalanceExceeded struct {
	Remaining decimal.Decimal
}

func (e *BalanceExceeded) Error() string {
	return fmt.Sprintf("payment exceeds remaining balance %s", e.Remaining.StringFixed(2))
}

// IsNotFound returns true if err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsDomain returns true for every typed business failure, i.e. anything the caller can act on
// without treating it as a fault.
func IsDomain(err error) bool {
	var (
		ve *ValidationError
		sc *SchedulingConflict
		ce *ConflictError
		se *StateError
		nf *NotFoundError
		be *BalanceExceeded
	)
	return errors.Is(err, ErrTenantContextMissing) ||
		errors.As(err, &ve) ||
		errors.As(err, &sc) ||
		errors.As(err, &ce) ||
		errors.As(err, &se) ||
		errors.As(err, &nf) ||
		errors.As(err, &be)
}
