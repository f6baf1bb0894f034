package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"backoffice/internal/apperror"
	"backoffice/internal/model"
	"backoffice/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2030, time.January, 7, hour, minute, 0, 0, time.UTC)
}

func newAppointment(staffID *uuid.UUID, locationID uuid.UUID, start, end time.Time) *model.Appointment {
	appt := &model.Appointment{
		CustomerID:     uuid.New(),
		StaffID:        staffID,
		LocationID:     locationID,
		ScheduledStart: start,
		ScheduledEnd:   end,
		Status:         model.AppointmentScheduled,
	}
	appt.ID = uuid.New()
	return appt
}

func TestAppointmentRepository_ExclusionConstraints(t *testing.T) {
	staff := uuid.New()
	otherStaff := uuid.New()
	location := uuid.New()
	otherLocation := uuid.New()

	tests := []struct {
		name         string
		existing     *model.Appointment
		existingStat string
		sameTenant   bool
		next         *model.Appointment
		wantConflict bool
	}{
		{
			name:         "SameStaffOtherLocation",
			existing:     newAppointment(&staff, location, at(10, 0), at(11, 0)),
			sameTenant:   true,
			next:         newAppointment(&staff, otherLocation, at(10, 30), at(11, 30)),
			wantConflict: true,
		},
		{
			name:         "SameLocationWithoutStaff",
			existing:     newAppointment(nil, location, at(10, 0), at(11, 0)),
			sameTenant:   true,
			next:         newAppointment(nil, location, at(9, 0), at(10, 1)),
			wantConflict: true,
		},
		{
			name:         "SameLocationOtherStaff",
			existing:     newAppointment(&staff, location, at(10, 0), at(11, 0)),
			sameTenant:   true,
			next:         newAppointment(&otherStaff, location, at(10, 0), at(11, 0)),
			wantConflict: true,
		},
		{
			name:       "BackToBack",
			existing:   newAppointment(&staff, location, at(10, 0), at(11, 0)),
			sameTenant: true,
			next:       newAppointment(&staff, location, at(11, 0), at(12, 0)),
		},
		{
			name:         "CancelledFreesTheSlot",
			existing:     newAppointment(&staff, location, at(10, 0), at(11, 0)),
			existingStat: model.AppointmentCancelled,
			sameTenant:   true,
			next:         newAppointment(&staff, location, at(10, 0), at(11, 0)),
		},
		{
			name:         "NoShowFreesTheSlot",
			existing:     newAppointment(&staff, location, at(10, 0), at(11, 0)),
			existingStat: model.AppointmentNoShow,
			sameTenant:   true,
			next:         newAppointment(&staff, location, at(10, 0), at(11, 0)),
		},
		{
			name:     "OtherTenant",
			existing: newAppointment(&staff, location, at(10, 0), at(11, 0)),
			next:     newAppointment(&staff, location, at(10, 0), at(11, 0)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			repo := repository.NewAppointmentRepository(db)
			ctx := context.Background()
			tenantID := uuid.New()

			if tt.existingStat != "" {
				tt.existing.Status = tt.existingStat
			}
			require.NoError(t, repo.Create(ctx, tenantID, tt.existing))

			nextTenant := uuid.New()
			if tt.sameTenant {
				nextTenant = tenantID
			}
			err := repo.Create(ctx, nextTenant, tt.next)

			if !tt.wantConflict {
				assert.NoError(t, err)
				return
			}
			var sc *apperror.SchedulingConflict
			assert.True(t, errors.As(err, &sc), "expected SchedulingConflict, got %v", err)
		})
	}
}

func TestAppointmentRepository_DeletedRowReleasesSlot(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewAppointmentRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()
	staff, location := uuid.New(), uuid.New()

	first := newAppointment(&staff, location, at(10, 0), at(11, 0))
	require.NoError(t, repo.Create(ctx, tenantID, first))
	require.NoError(t, repo.SoftDelete(ctx, tenantID, first.ID))

	_, err := repo.FindByID(ctx, tenantID, first.ID)
	assert.True(t, apperror.IsNotFound(err), "deleted appointment must be hidden, got %v", err)

	appts, total, err := repo.List(ctx, tenantID, repository.AppointmentFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, appts)

	assert.True(t, apperror.IsNotFound(repo.SoftDelete(ctx, tenantID, first.ID)))

	again := newAppointment(&staff, location, at(10, 0), at(11, 0))
	assert.NoError(t, repo.Create(ctx, tenantID, again))
}

func TestAppointmentRepository_TenantFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewAppointmentRepository(db)
	ctx := context.Background()
	tenantA, tenantB := uuid.New(), uuid.New()
	staff, location := uuid.New(), uuid.New()

	appt := newAppointment(&staff, location, at(10, 0), at(11, 0))
	require.NoError(t, repo.Create(ctx, tenantA, appt))

	_, err := repo.FindByID(ctx, tenantB, appt.ID)
	assert.True(t, apperror.IsNotFound(err))

	_, total, err := repo.List(ctx, tenantB, repository.AppointmentFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Zero(t, total)

	overlaps, err := repo.FindOverlapping(ctx, tenantB, &staff, location, at(10, 0), at(11, 0), uuid.Nil)
	require.NoError(t, err)
	assert.Empty(t, overlaps)

	appt.Status = model.AppointmentConfirmed
	assert.True(t, apperror.IsNotFound(repo.Update(ctx, tenantB, appt)))
	assert.True(t, apperror.IsNotFound(repo.SoftDelete(ctx, tenantB, appt.ID)))

	got, err := repo.FindByID(ctx, tenantA, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentScheduled, got.Status)
}

func TestAppointmentRepository_FindOverlapping(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewAppointmentRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()
	staff, location := uuid.New(), uuid.New()
	otherStaff, otherLocation := uuid.New(), uuid.New()

	booked := newAppointment(&staff, location, at(10, 0), at(11, 0))
	require.NoError(t, repo.Create(ctx, tenantID, booked))

	cancelled := newAppointment(&otherStaff, otherLocation, at(14, 0), at(15, 0))
	cancelled.Status = model.AppointmentCancelled
	require.NoError(t, repo.Create(ctx, tenantID, cancelled))

	tests := []struct {
		name     string
		staffID  *uuid.UUID
		location uuid.UUID
		start    time.Time
		end      time.Time
		exclude  uuid.UUID
		want     []uuid.UUID
	}{
		{name: "EndsWhenBookedStarts", staffID: &staff, location: location, start: at(9, 0), end: at(10, 0)},
		{name: "StartsWhenBookedEnds", staffID: &staff, location: location, start: at(11, 0), end: at(12, 0)},
		{name: "Inside", staffID: &staff, location: location, start: at(10, 15), end: at(10, 45), want: []uuid.UUID{booked.ID}},
		{name: "Enclosing", staffID: &otherStaff, location: location, start: at(9, 0), end: at(12, 0), want: []uuid.UUID{booked.ID}},
		{name: "SameStaffElsewhere", staffID: &staff, location: otherLocation, start: at(10, 30), end: at(11, 30), want: []uuid.UUID{booked.ID}},
		{name: "NoStaffSameLocation", staffID: nil, location: location, start: at(10, 30), end: at(11, 30), want: []uuid.UUID{booked.ID}},
		{name: "NoStaffOtherLocation", staffID: nil, location: otherLocation, start: at(10, 30), end: at(11, 30)},
		{name: "OtherStaffOtherLocation", staffID: &otherStaff, location: otherLocation, start: at(10, 0), end: at(11, 0)},
		{name: "ExcludesOwnRow", staffID: &staff, location: location, start: at(10, 0), end: at(11, 0), exclude: booked.ID},
		{name: "IgnoresCancelled", staffID: &otherStaff, location: otherLocation, start: at(14, 0), end: at(15, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindOverlapping(ctx, tenantID, tt.staffID, tt.location, tt.start, tt.end, tt.exclude)
			require.NoError(t, err)

			ids := make([]uuid.UUID, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.ElementsMatch(t, tt.want, ids)
		})
	}
}
