package handler

import (
	"net/http"

	"backoffice/internal/service"
	"backoffice/pkg/pagination"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

func (h *AppointmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	appointments := router.Group("/api/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.PATCH("/:id/status", h.UpdateAppointmentStatus)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}

	router.POST("/api/services", h.CreateCatalogService)
}

// CreateAppointment books a new appointment
// @Summary      Create appointment
// @Description  Books an appointment after checking the staff member and location are free
// @Tags         appointments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateAppointmentRequest  true  "Create Appointment Payload"
// @Success      201      {object}  response.Response{data=service.AppointmentResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	appt, err := h.appointmentService.CreateAppointment(c.Request.Context(), tenantID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, appt))
}

// ListAppointments returns a page of appointments
// @Summary      List appointments
// @Description  Lists appointments overlapping an optional window, filtered by staff, location or status
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        from         query     string  false  "Window start (RFC3339)"
// @Param        to           query     string  false  "Window end (RFC3339)"
// @Param        staff_id     query     string  false  "Staff ID"
// @Param        location_id  query     string  false  "Location ID"
// @Param        status       query     string  false  "Appointment status"
// @Param        page         query     int     false  "Page number (default 1)"
// @Param        limit        query     int     false  "Number of items per page (default 20)"
// @Success      200          {object}  response.Response{data=response.Page}
// @Failure      400          {object}  response.Response
// @Router       /api/appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	p := pagination.Parse(c)
	filter := service.AppointmentFilter{
		From:       c.Query("from"),
		To:         c.Query("to"),
		StaffID:    c.Query("staff_id"),
		LocationID: c.Query("location_id"),
		Status:     c.Query("status"),
		Page:       p.Page,
		Limit:      p.Limit,
	}

	appts, total, err := h.appointmentService.ListAppointments(c.Request.Context(), tenantID, filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Page{
		Items: appts,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	}))
}

// UpdateAppointment reschedules or reassigns an appointment
// @Summary      Update appointment
// @Description  Changes the provided fields and re-runs the conflict check, ignoring the appointment itself
// @Tags         appointments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Appointment ID"
// @Param        payload  body      service.UpdateAppointmentRequest  true  "Update Appointment Payload"
// @Success      200      {object}  response.Response{data=service.AppointmentResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/appointments/{id} [put]
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	appt, err := h.appointmentService.UpdateAppointment(c.Request.Context(), tenantID, c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, appt))
}

// UpdateAppointmentStatus moves an appointment through its lifecycle
// @Summary      Update appointment status
// @Tags         appointments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                                  true  "Appointment ID"
// @Param        payload  body      service.UpdateAppointmentStatusRequest  true  "Status Payload"
// @Success      200      {object}  response.Response{data=service.AppointmentResponse}
// @Failure      404      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	appt, err := h.appointmentService.UpdateAppointmentStatus(c.Request.Context(), tenantID, c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, appt))
}

// DeleteAppointment soft-deletes an appointment
// @Summary      Delete appointment
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Appointment ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/appointments/{id} [delete]
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	if err := h.appointmentService.DeleteAppointment(c.Request.Context(), tenantID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Appointment deleted"}))
}

// CreateCatalogService adds a bookable service to the tenant's catalog
// @Summary      Create catalog service
// @Tags         appointments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateCatalogServiceRequest  true  "Catalog Service Payload"
// @Success      201      {object}  response.Response{data=service.CatalogServiceResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/services [post]
func (h *AppointmentHandler) CreateCatalogService(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.CreateCatalogServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	svc, err := h.appointmentService.CreateCatalogService(c.Request.Context(), tenantID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, svc))
}
