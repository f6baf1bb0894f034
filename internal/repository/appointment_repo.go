package repository

import (
	"context"
	"time"

	"backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentFilter narrows a tenant's appointment listing. Zero values are ignored.
type AppointmentFilter struct {
	From       *time.Time
	To         *time.Time
	StaffID    *uuid.UUID
	LocationID *uuid.UUID
	Status     string
	Page       int
	Limit      int
}

//go:generate mockgen -source=appointment_repo.go -destination=mocks/appointment_repo_mock.go -package=mocks

type AppointmentRepository interface {
	Create(ctx context.Context, tenantID uuid.UUID, appt *model.Appointment) error
	Update(ctx context.Context, tenantID uuid.UUID, appt *model.Appointment) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.Appointment, error)
	FindOverlapping(ctx context.Context, tenantID uuid.UUID, staffID *uuid.UUID, locationID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]model.Appointment, error)
	List(ctx context.Context, tenantID uuid.UUID, filter AppointmentFilter) ([]model.Appointment, int64, error)
	SoftDelete(ctx context.Context, tenantID, id uuid.UUID) error
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, tenantID uuid.UUID, appt *model.Appointment) error {
	return createRow(ctx, r.db, tenantID, appt)
}

func (r *appointmentRepository) Update(ctx context.Context, tenantID uuid.UUID, appt *model.Appointment) error {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return err
	}

	res := db.Model(&model.Appointment{}).Where("id = ?", appt.ID).Updates(map[string]interface{}{
		"customer_id":     appt.CustomerID,
		"staff_id":        appt.StaffID,
		"location_id":     appt.LocationID,
		"service_id":      appt.ServiceID,
		"scheduled_start": appt.ScheduledStart,
		"scheduled_end":   appt.ScheduledEnd,
		"status":          appt.Status,
		"notes":           appt.Notes,
	})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "appointment", appt.ID)
	}
	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.Appointment, error) {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return nil, err
	}

	var appt model.Appointment
	if err := db.First(&appt, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "appointment", id)
	}
	return &appt, nil
}

// FindOverlapping returns the live, non-cancelled, non-no-show appointments that share the staff
// member or the location and intersect [start, end).
func (r *appointmentRepository) FindOverlapping(ctx context.Context, tenantID uuid.UUID, staffID *uuid.UUID, locationID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]model.Appointment, error) {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.Appointment{}).
		Where("status NOT IN ?", []string{model.AppointmentCancelled, model.AppointmentNoShow}).
		Where("scheduled_start < ? AND scheduled_end > ?", end, start)

	if staffID != nil {
		query = query.Where("(location_id = ? OR staff_id = ?)", locationID, *staffID)
	} else {
		query = query.Where("location_id = ?", locationID)
	}
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var appts []model.Appointment
	if err := query.Order("scheduled_start").Find(&appts).Error; err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *appointmentRepository) List(ctx context.Context, tenantID uuid.UUID, filter AppointmentFilter) ([]model.Appointment, int64, error) {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return nil, 0, err
	}

	query := db.Model(&model.Appointment{})
	if filter.From != nil {
		query = query.Where("scheduled_end > ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("scheduled_start < ?", *filter.To)
	}
	if filter.StaffID != nil {
		query = query.Where("staff_id = ?", *filter.StaffID)
	}
	if filter.LocationID != nil {
		query = query.Where("location_id = ?", *filter.LocationID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appts []model.Appointment
	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("scheduled_start").Offset(offset).Limit(filter.Limit).Find(&appts).Error; err != nil {
		return nil, 0, err
	}
	return appts, total, nil
}

func (r *appointmentRepository) SoftDelete(ctx context.Context, tenantID, id uuid.UUID) error {
	return softDelete(ctx, r.db, tenantID, &model.Appointment{}, id, "appointment")
}
