package service

import (
	"context"
	"fmt"
	"strings"

	"backoffice/internal/apperror"
	"backoffice/internal/ledger"
	"backoffice/internal/model"
	"backoffice/internal/repository"
	"backoffice/internal/scheduling"
	"backoffice/internal/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

type CreateAppointmentRequest struct {
	CustomerID     string  `json:"customer_id" binding:"required"`
	StaffID        *string `json:"staff_id"`
	LocationID     string  `json:"location_id" binding:"required"`
	ServiceID      *string `json:"service_id"`
	ScheduledStart string  `json:"scheduled_start" binding:"required"` // RFC3339
	ScheduledEnd   string  `json:"scheduled_end" binding:"required"`   // RFC3339, exclusive
	Notes          string  `json:"notes"`
}

// UpdateAppointmentRequest changes only the fields that are present.
type UpdateAppointmentRequest struct {
	StaffID        *string `json:"staff_id"`
	LocationID     *string `json:"location_id"`
	ServiceID      *string `json:"service_id"`
	ScheduledStart *string `json:"scheduled_start"`
	ScheduledEnd   *string `json:"scheduled_end"`
	Notes          *string `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=Scheduled Confirmed InProgress Completed Cancelled NoShow"`
	Notes  *string `json:"notes"`
}

type AppointmentFilter struct {
	From       string
	To         string
	StaffID    string
	LocationID string
	Status     string
	Page       int
	Limit      int
}

type AppointmentResponse struct {
	ID             string  `json:"id"`
	CustomerID     string  `json:"customer_id"`
	StaffID        *string `json:"staff_id"`
	LocationID     string  `json:"location_id"`
	ServiceID      *string `json:"service_id"`
	ScheduledStart string  `json:"scheduled_start"`
	ScheduledEnd   string  `json:"scheduled_end"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes"`
	CreatedAt      string  `json:"created_at"`
}

type CreateCatalogServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	Price           string `json:"price"`
}

type CatalogServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           string `json:"price"`
}

// --- Interface ---

type AppointmentService interface {
	CreateAppointment(ctx context.Context, tenantID uuid.UUID, req CreateAppointmentRequest) (AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, tenantID uuid.UUID, id string, req UpdateAppointmentRequest) (AppointmentResponse, error)
	UpdateAppointmentStatus(ctx context.Context, tenantID uuid.UUID, id string, req UpdateAppointmentStatusRequest) (AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, tenantID uuid.UUID, id string) error
	ListAppointments(ctx context.Context, tenantID uuid.UUID, filter AppointmentFilter) ([]AppointmentResponse, int64, error)
	CheckConflict(ctx context.Context, tenantID uuid.UUID, candidate scheduling.Slot, excludeID uuid.UUID) error
	CreateCatalogService(ctx context.Context, tenantID uuid.UUID, req CreateCatalogServiceRequest) (CatalogServiceResponse, error)
}

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	catalogRepo     repository.CatalogRepository
	auditRepo       repository.AuditRepository
	txManager       repository.TransactionManager
	events          EventPublisher
}

func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	catalogRepo repository.CatalogRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
) AppointmentService {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		auditRepo:       auditRepo,
		txManager:       txManager,
		events:          events,
	}
}

// appointmentTransitions maps a target status to the statuses it may be reached from.
// Completed, Cancelled and NoShow are final.
var appointmentTransitions = map[string][]string{
	model.AppointmentConfirmed:  {model.AppointmentScheduled},
	model.AppointmentInProgress: {model.AppointmentScheduled, model.AppointmentConfirmed},
	model.AppointmentCompleted:  {model.AppointmentInProgress},
	model.AppointmentCancelled:  {model.AppointmentScheduled, model.AppointmentConfirmed, model.AppointmentInProgress},
	model.AppointmentNoShow:     {model.AppointmentScheduled, model.AppointmentConfirmed},
}

// --- Implementation ---

func (s *appointmentService) CreateAppointment(ctx context.Context, tenantID uuid.UUID, req CreateAppointmentRequest) (AppointmentResponse, error) {
	if err := tenant.Check(tenantID); err != nil {
		return AppointmentResponse{}, err
	}

	appt := model.Appointment{Status: model.AppointmentScheduled, Notes: req.Notes}
	appt.ID = uuid.New()

	var err error
	if appt.CustomerID, err = parseID("customer_id", req.CustomerID); err != nil {
		return AppointmentResponse{}, err
	}
	if appt.LocationID, err = parseID("location_id", req.LocationID); err != nil {
		return AppointmentResponse{}, err
	}
	if appt.StaffID, err = parseOptionalID("staff_id", req.StaffID); err != nil {
		return AppointmentResponse{}, err
	}
	if appt.ServiceID, err = parseOptionalID("service_id", req.ServiceID); err != nil {
		return AppointmentResponse{}, err
	}
	if appt.ScheduledStart, err = parseTime("scheduled_start", req.ScheduledStart); err != nil {
		return AppointmentResponse{}, err
	}
	if appt.ScheduledEnd, err = parseTime("scheduled_end", req.ScheduledEnd); err != nil {
		return AppointmentResponse{}, err
	}
	if err := scheduling.ValidateWindow(appt.ScheduledStart, appt.ScheduledEnd); err != nil {
		return AppointmentResponse{}, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkBooking(txCtx, tenantID, &appt); err != nil {
			return err
		}

		if err := s.appointmentRepo.Create(txCtx, tenantID, &appt); err != nil {
			return err
		}

		return writeAudit(txCtx, s.auditRepo, tenantID, model.ActionCreateAppointment, appt.ID.String(), bookingLabel(appt), req)
	})
	if err != nil {
		return AppointmentResponse{}, err
	}

	resp := toAppointmentResponse(appt)
	s.events.Publish(tenantID, EventAppointmentChanged, resp)
	return resp, nil
}

func (s *appointmentService) UpdateAppointment(ctx context.Context, tenantID uuid.UUID, id string, req UpdateAppointmentRequest) (AppointmentResponse, error) {
	if err := tenant.Check(tenantID); err != nil {
		return AppointmentResponse{}, err
	}
	apptID, err := parseID("id", id)
	if err != nil {
		return AppointmentResponse{}, err
	}

	var appt *model.Appointment
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var findErr error
		appt, findErr = s.appointmentRepo.FindByID(txCtx, tenantID, apptID)
		if findErr != nil {
			return findErr
		}

		if appt.Status != model.AppointmentScheduled && appt.Status != model.AppointmentConfirmed {
			return &apperror.StateError{Expected: model.AppointmentScheduled + " or " + model.AppointmentConfirmed, Actual: appt.Status}
		}

		if err := applyAppointmentUpdate(appt, req); err != nil {
			return err
		}
		if err := scheduling.ValidateWindow(appt.ScheduledStart, appt.ScheduledEnd); err != nil {
			return err
		}
		if err := s.checkBooking(txCtx, tenantID, appt); err != nil {
			return err
		}

		if err := s.appointmentRepo.Update(txCtx, tenantID, appt); err != nil {
			return err
		}

		return writeAudit(txCtx, s.auditRepo, tenantID, model.ActionUpdateAppointment, appt.ID.String(), bookingLabel(*appt), req)
	})
	if err != nil {
		return AppointmentResponse{}, err
	}

	resp := toAppointmentResponse(*appt)
	s.events.Publish(tenantID, EventAppointmentChanged, resp)
	return resp, nil
}

func (s *appointmentService) UpdateAppointmentStatus(ctx context.Context, tenantID uuid.UUID, id string, req UpdateAppointmentStatusRequest) (AppointmentResponse, error) {
	if err := tenant.Check(tenantID); err != nil {
		return AppointmentResponse{}, err
	}
	apptID, err := parseID("id", id)
	if err != nil {
		return AppointmentResponse{}, err
	}

	status := req.Status
	sources, ok := appointmentTransitions[status]
	if !ok && status != model.AppointmentScheduled {
		return AppointmentResponse{}, apperror.Validation("status", "unknown appointment status")
	}

	var appt *model.Appointment
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var findErr error
		appt, findErr = s.appointmentRepo.FindByID(txCtx, tenantID, apptID)
		if findErr != nil {
			return findErr
		}

		if !containsStatus(sources, appt.Status) {
			expected := "none"
			if len(sources) > 0 {
				expected = strings.Join(sources, " or ")
			}
			return &apperror.StateError{Expected: expected, Actual: appt.Status}
		}

		previous := appt.Status
		appt.Status = status
		if req.Notes != nil {
			appt.Notes = *req.Notes
		}
		if err := s.appointmentRepo.Update(txCtx, tenantID, appt); err != nil {
			return err
		}

		return writeAudit(txCtx, s.auditRepo, tenantID, model.ActionUpdateAppointmentStatus, appt.ID.String(), bookingLabel(*appt), map[string]string{
			"from": previous,
			"to":   status,
		})
	})
	if err != nil {
		return AppointmentResponse{}, err
	}

	resp := toAppointmentResponse(*appt)
	s.events.Publish(tenantID, EventAppointmentChanged, resp)
	return resp, nil
}

func (s *appointmentService) DeleteAppointment(ctx context.Context, tenantID uuid.UUID, id string) error {
	if err := tenant.Check(tenantID); err != nil {
		return err
	}
	apptID, err := parseID("id", id)
	if err != nil {
		return err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.appointmentRepo.SoftDelete(txCtx, tenantID, apptID); err != nil {
			return err
		}
		return writeAudit(txCtx, s.auditRepo, tenantID, model.ActionDeleteAppointment, apptID.String(), "", nil)
	})
	if err != nil {
		return err
	}

	s.events.Publish(tenantID, EventAppointmentChanged, map[string]string{"id": apptID.String(), "deleted": "true"})
	return nil
}

func (s *appointmentService) ListAppointments(ctx context.Context, tenantID uuid.UUID, filter AppointmentFilter) ([]AppointmentResponse, int64, error) {
	if err := tenant.Check(tenantID); err != nil {
		return nil, 0, err
	}

	repoFilter := repository.AppointmentFilter{Status: filter.Status}
	repoFilter.Page, repoFilter.Limit = normalizePage(filter.Page, filter.Limit)

	if filter.From != "" {
		from, err := parseTime("from", filter.From)
		if err != nil {
			return nil, 0, err
		}
		repoFilter.From = &from
	}
	if filter.To != "" {
		to, err := parseTime("to", filter.To)
		if err != nil {
			return nil, 0, err
		}
		repoFilter.To = &to
	}
	var err error
	if repoFilter.StaffID, err = parseOptionalID("staff_id", &filter.StaffID); err != nil {
		return nil, 0, err
	}
	if repoFilter.LocationID, err = parseOptionalID("location_id", &filter.LocationID); err != nil {
		return nil, 0, err
	}

	appts, total, err := s.appointmentRepo.List(ctx, tenantID, repoFilter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch appointments: %w", err)
	}

	res := make([]AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		res = append(res, toAppointmentResponse(a))
	}
	return res, total, nil
}

// CheckConflict reports the first blocking appointment of the tenant that shares the candidate's
// staff member or location and overlaps its window.
func (s *appointmentService) CheckConflict(ctx context.Context, tenantID uuid.UUID, candidate scheduling.Slot, excludeID uuid.UUID) error {
	if err := tenant.Check(tenantID); err != nil {
		return err
	}

	existing, err := s.appointmentRepo.FindOverlapping(ctx, tenantID, candidate.StaffID, candidate.LocationID, candidate.Start, candidate.End, excludeID)
	if err != nil {
		return fmt.Errorf("failed to load overlapping appointments: %w", err)
	}

	slots := make([]scheduling.Slot, 0, len(existing))
	for i := range existing {
		slots = append(slots, toSlot(&existing[i]))
	}
	return scheduling.FindConflict(candidate, slots, excludeID)
}

func (s *appointmentService) CreateCatalogService(ctx context.Context, tenantID uuid.UUID, req CreateCatalogServiceRequest) (CatalogServiceResponse, error) {
	if err := tenant.Check(tenantID); err != nil {
		return CatalogServiceResponse{}, err
	}
	if req.DurationMinutes <= 0 {
		return CatalogServiceResponse{}, apperror.Validation("duration_minutes", "must be greater than 0")
	}

	price := decimal.Zero
	if req.Price != "" {
		var err error
		if price, err = parseDecimal("price", req.Price); err != nil {
			return CatalogServiceResponse{}, err
		}
		if price.IsNegative() {
			return CatalogServiceResponse{}, apperror.Validation("price", "must not be negative")
		}
		if err := ledger.CheckAmount("price", price); err != nil {
			return CatalogServiceResponse{}, err
		}
	}

	svc := model.CatalogService{Name: req.Name, DurationMinutes: req.DurationMinutes, Price: price}
	svc.ID = uuid.New()
	if err := s.catalogRepo.Create(ctx, tenantID, &svc); err != nil {
		return CatalogServiceResponse{}, fmt.Errorf("failed to create service: %w", err)
	}

	return CatalogServiceResponse{
		ID:              svc.ID.String(),
		Name:            svc.Name,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price.StringFixed(2),
	}, nil
}

// --- Helpers ---

// checkBooking enforces the service duration and the no-double-booking rule.
func (s *appointmentService) checkBooking(ctx context.Context, tenantID uuid.UUID, appt *model.Appointment) error {
	if appt.ServiceID != nil {
		svc, err := s.catalogRepo.FindByID(ctx, tenantID, *appt.ServiceID)
		if err != nil {
			return err
		}
		if err := scheduling.ValidateDuration(appt.ScheduledStart, appt.ScheduledEnd, svc.Duration()); err != nil {
			return err
		}
	}
	return s.CheckConflict(ctx, tenantID, toSlot(appt), appt.ID)
}

func applyAppointmentUpdate(appt *model.Appointment, req UpdateAppointmentRequest) error {
	var err error
	if req.StaffID != nil {
		if appt.StaffID, err = parseOptionalID("staff_id", req.StaffID); err != nil {
			return err
		}
	}
	if req.LocationID != nil {
		if appt.LocationID, err = parseID("location_id", *req.LocationID); err != nil {
			return err
		}
	}
	if req.ServiceID != nil {
		if appt.ServiceID, err = parseOptionalID("service_id", req.ServiceID); err != nil {
			return err
		}
	}
	if req.ScheduledStart != nil {
		if appt.ScheduledStart, err = parseTime("scheduled_start", *req.ScheduledStart); err != nil {
			return err
		}
	}
	if req.ScheduledEnd != nil {
		if appt.ScheduledEnd, err = parseTime("scheduled_end", *req.ScheduledEnd); err != nil {
			return err
		}
	}
	if req.Notes != nil {
		appt.Notes = *req.Notes
	}
	return nil
}

func containsStatus(list []string, status string) bool {
	for _, s := range list {
		if s == status {
			return true
		}
	}
	return false
}

func toSlot(a *model.Appointment) scheduling.Slot {
	return scheduling.Slot{
		ID:         a.ID,
		StaffID:    a.StaffID,
		LocationID: a.LocationID,
		Start:      a.ScheduledStart,
		End:        a.ScheduledEnd,
		Blocking:   a.Blocking(),
	}
}

func bookingLabel(a model.Appointment) string {
	return a.ScheduledStart.Format(timeLayout) + " - " + a.ScheduledEnd.Format(timeLayout)
}

// --- Mapping ---

func toAppointmentResponse(a model.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:             a.ID.String(),
		CustomerID:     a.CustomerID.String(),
		StaffID:        idString(a.StaffID),
		LocationID:     a.LocationID.String(),
		ServiceID:      idString(a.ServiceID),
		ScheduledStart: a.ScheduledStart.Format(timeLayout),
		ScheduledEnd:   a.ScheduledEnd.Format(timeLayout),
		Status:         a.Status,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt.Format(timeLayout),
	}
}
