package scheduling_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/apperror"
	"backoffice/internal/scheduling"
)

var day = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func ptr(id uuid.UUID) *uuid.UUID {
	return &id
}

func TestFindConflict_Scenarios(t *testing.T) {
	staff := uuid.New()
	location := uuid.New()
	booked := scheduling.Slot{
		ID:         uuid.New(),
		StaffID:    ptr(staff),
		LocationID: location,
		Start:      at(10, 0),
		End:        at(11, 0),
		Blocking:   true,
	}

	tests := []struct {
		name      string
		candidate scheduling.Slot
		exclude   uuid.UUID
		conflict  bool
	}{
		{
			name:      "overlapping same staff and location",
			candidate: scheduling.Slot{StaffID: ptr(staff), LocationID: location, Start: at(10, 30), End: at(11, 30)},
			conflict:  true,
		},
		{
			name:      "adjacent after",
			candidate: scheduling.Slot{StaffID: ptr(staff), LocationID: location, Start: at(11, 0), End: at(12, 0)},
		},
		{
			name:      "adjacent before",
			candidate: scheduling.Slot{StaffID: ptr(staff), LocationID: location, Start: at(9, 0), End: at(10, 0)},
		},
		{
			name:      "same staff other location",
			candidate: scheduling.Slot{StaffID: ptr(staff), LocationID: uuid.New(), Start: at(10, 15), End: at(10, 45)},
			conflict:  true,
		},
		{
			name:      "same location other staff",
			candidate: scheduling.Slot{StaffID: ptr(uuid.New()), LocationID: location, Start: at(9, 30), End: at(10, 1)},
			conflict:  true,
		},
		{
			name:      "staffless at same location",
			candidate: scheduling.Slot{LocationID: location, Start: at(10, 0), End: at(11, 0)},
			conflict:  true,
		},
		{
			name:      "staffless at other location",
			candidate: scheduling.Slot{LocationID: uuid.New(), Start: at(10, 0), End: at(11, 0)},
		},
		{
			name:      "update excludes own row",
			candidate: scheduling.Slot{StaffID: ptr(staff), LocationID: location, Start: at(10, 30), End: at(11, 30)},
			exclude:   booked.ID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := scheduling.FindConflict(tt.candidate, []scheduling.Slot{booked}, tt.exclude)

			if !tt.conflict {
				assert.NoError(t, err)
				return
			}

			var sc *apperror.SchedulingConflict
			require.True(t, errors.As(err, &sc), "expected SchedulingConflict, got %v", err)
			assert.Equal(t, booked.ID, sc.ConflictingID)
		})
	}
}

func TestFindConflict_IgnoresNonBlocking(t *testing.T) {
	location := uuid.New()
	cancelled := scheduling.Slot{ID: uuid.New(), LocationID: location, Start: at(10, 0), End: at(11, 0)}

	err := scheduling.FindConflict(scheduling.Slot{LocationID: location, Start: at(10, 0), End: at(11, 0)}, []scheduling.Slot{cancelled}, uuid.Nil)
	assert.NoError(t, err)
}

func TestOverlaps_Property(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		aStart := at(8, rnd.Intn(600))
		aEnd := aStart.Add(time.Duration(rnd.Intn(180)+1) * time.Minute)
		bStart := at(8, rnd.Intn(600))
		bEnd := bStart.Add(time.Duration(rnd.Intn(180)+1) * time.Minute)

		want := aStart.Before(bEnd) && bStart.Before(aEnd)
		assert.Equal(t, want, scheduling.Overlaps(aStart, aEnd, bStart, bEnd))
		assert.Equal(t, scheduling.Overlaps(aStart, aEnd, bStart, bEnd), scheduling.Overlaps(bStart, bEnd, aStart, aEnd))

		// adjacency never conflicts
		assert.False(t, scheduling.Overlaps(aStart, aEnd, aEnd, aEnd.Add(time.Hour)))
	}
}

func TestValidateWindow(t *testing.T) {
	assert.NoError(t, scheduling.ValidateWindow(at(9, 0), at(9, 30)))

	var ve *apperror.ValidationError
	require.True(t, errors.As(scheduling.ValidateWindow(at(9, 0), at(9, 0)), &ve))
	assert.Equal(t, "scheduled_end", ve.Field)
	require.True(t, errors.As(scheduling.ValidateWindow(time.Time{}, at(9, 0)), &ve))
	assert.Equal(t, "scheduled_start", ve.Field)
}

func TestValidateDuration(t *testing.T) {
	nominal := 60 * time.Minute

	assert.NoError(t, scheduling.ValidateDuration(at(9, 0), at(10, 0), nominal))
	assert.NoError(t, scheduling.ValidateDuration(at(9, 0), at(10, 5), nominal))
	assert.NoError(t, scheduling.ValidateDuration(at(9, 0), at(9, 55), nominal))
	assert.Error(t, scheduling.ValidateDuration(at(9, 0), at(10, 6), nominal))
	assert.Error(t, scheduling.ValidateDuration(at(9, 0), at(9, 54), nominal))
}
