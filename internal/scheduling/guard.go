// Package scheduling detects staff and location double-bookings.
package scheduling

import (
	"time"

	"backoffice/internal/apperror"

	"github.com/google/uuid"
)

// DurationTolerance is how far a booking may deviate from its service's nominal duration.
const DurationTolerance = 5 * time.Minute

// Slot is a requested or existing booking. End is exclusive.
type Slot struct {
	ID         uuid.UUID
	StaffID    *uuid.UUID
	LocationID uuid.UUID
	Start      time.Time
	End        time.Time
	Blocking   bool // false for cancelled, no-show and deleted bookings
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and [bStart, bEnd) intersect.
// Touching intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// SharesResource is true when both slots use the same location, or the same non-null staff member.
func SharesResource(a, b Slot) bool {
	if a.LocationID == b.LocationID {
		return true
	}
	return a.StaffID != nil && b.StaffID != nil && *a.StaffID == *b.StaffID
}

// ValidateWindow rejects empty or inverted ranges.
func ValidateWindow(start, end time.Time) error {
	if start.IsZero() {
		return apperror.Validation("scheduled_start", "is required")
	}
	if !end.After(start) {
		return apperror.Validation("scheduled_end", "must be after scheduled_start")
	}
	return nil
}

// ValidateDuration checks the booking length against a service's nominal duration.
func ValidateDuration(start, end time.Time, nominal time.Duration) error {
	diff := end.Sub(start) - nominal
	if diff < 0 {
		diff = -diff
	}
	if diff > DurationTolerance {
		return apperror.Validation("scheduled_end", "duration must be within 5 minutes of the service duration")
	}
	return nil
}

// FindConflict returns a SchedulingConflict for the first blocking slot in existing that shares a
// resource with candidate and overlaps it. excludeID skips the candidate's own row on update.
func FindConflict(candidate Slot, existing []Slot, excludeID uuid.UUID) error {
	for _, e := range existing {
		if !e.Blocking {
			continue
		}
		if excludeID != uuid.Nil && e.ID == excludeID {
			continue
		}
		if !SharesResource(candidate, e) {
			continue
		}
		if Overlaps(e.Start, e.End, candidate.Start, candidate.End) {
			return &apperror.SchedulingConflict{ConflictingID: e.ID}
		}
	}
	return nil
}
