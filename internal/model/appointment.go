package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus enum constants
const (
	AppointmentScheduled  = "Scheduled"
	AppointmentConfirmed  = "Confirmed"
	AppointmentInProgress = "InProgress"
	AppointmentCompleted  = "Completed"
	AppointmentCancelled  = "Cancelled"
	AppointmentNoShow     = "NoShow"
)

// Appointment books a customer on a location, optionally with a staff member.
// ScheduledEnd is exclusive so back-to-back bookings do not collide.
type Appointment struct {
	TenantModel
	CustomerID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"customer_id"`
	StaffID        *uuid.UUID `gorm:"type:uuid;index" json:"staff_id"`
	LocationID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"location_id"`
	ServiceID      *uuid.UUID `gorm:"type:uuid" json:"service_id"`
	ScheduledStart time.Time  `gorm:"not null;index" json:"scheduled_start"`
	ScheduledEnd   time.Time  `gorm:"not null" json:"scheduled_end"`
	Status         string     `gorm:"type:varchar(20);not null;default:'Scheduled';index" json:"status"`
	Notes          string     `gorm:"type:text" json:"notes"`
}

// Blocking reports whether the appointment still holds its staff and location.
func (a *Appointment) Blocking() bool {
	return !a.IsDeleted && a.Status != AppointmentCancelled && a.Status != AppointmentNoShow
}

// CatalogService is a bookable service with a nominal duration.
type CatalogService struct {
	TenantModel
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	DurationMinutes int             `gorm:"type:int;not null" json:"duration_minutes"`
	Price           decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"price"`
}

func (CatalogService) TableName() string {
	return "catalog_services"
}

// Duration returns the nominal length of the service.
func (s *CatalogService) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
