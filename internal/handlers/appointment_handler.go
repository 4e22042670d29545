package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/headz-api/internal/dto"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/httpresp"
	"github.com/BruksfildServices01/headz-api/internal/identity"
	"github.com/BruksfildServices01/headz-api/internal/models"
	ucAppointment "github.com/BruksfildServices01/headz-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	salon ucAppointment.Salon

	createUC       *ucAppointment.CreateAppointment
	updateUC       *ucAppointment.UpdateAppointment
	cancelUC       *ucAppointment.CancelAppointment
	confirmUC      *ucAppointment.ConfirmAppointment
	completeUC     *ucAppointment.CompleteAppointment
	deleteUC       *ucAppointment.DeleteAppointment
	listUC         *ucAppointment.ListAppointments
	availabilityUC *ucAppointment.GetAvailability
}

type AppointmentUseCases struct {
	Create       *ucAppointment.CreateAppointment
	Update       *ucAppointment.UpdateAppointment
	Cancel       *ucAppointment.CancelAppointment
	Confirm      *ucAppointment.ConfirmAppointment
	Complete     *ucAppointment.CompleteAppointment
	Delete       *ucAppointment.DeleteAppointment
	List         *ucAppointment.ListAppointments
	Availability *ucAppointment.GetAvailability
}

func NewAppointmentHandler(salon ucAppointment.Salon, uc AppointmentUseCases) *AppointmentHandler {
	return &AppointmentHandler{
		salon:          salon,
		createUC:       uc.Create,
		updateUC:       uc.Update,
		cancelUC:       uc.Cancel,
		confirmUC:      uc.Confirm,
		completeUC:     uc.Complete,
		deleteUC:       uc.Delete,
		listUC:         uc.List,
		availabilityUC: uc.Availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Service      string `json:"service" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Notes        string `json:"notes"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
}

type UpdateAppointmentRequest struct {
	Service *string `json:"service"`
	Date    *string `json:"date"`
	Time    *string `json:"time"`
	Notes   *string `json:"notes"`
}

func (h *AppointmentHandler) respond(c *gin.Context, status int, ap *models.Appointment) {
	c.JSON(status, dto.NewAppointmentDTO(ap, h.salon.Location()))
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request data.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Actor:        actor,
		Service:      req.Service,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		httperr.Respond(c, err, "appointment_create_failed")
		return
	}

	h.respond(c, http.StatusCreated, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request data.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		Actor:   actor,
		ID:      id,
		Service: req.Service,
		Date:    req.Date,
		Time:    req.Time,
		Notes:   req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err, "appointment_update_failed")
		return
	}

	h.respond(c, http.StatusOK, ap)
}

// ======================================================
// STATUS CHANGES
// ======================================================

type transition func(c *gin.Context, actor identity.Identity) (*models.Appointment, error)

func (h *AppointmentHandler) runTransition(c *gin.Context, fallback string, fn transition) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	ap, err := fn(c, actor)
	if err != nil {
		httperr.Respond(c, err, fallback)
		return
	}

	h.respond(c, http.StatusOK, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	h.runTransition(c, "appointment_cancel_failed", func(c *gin.Context, actor identity.Identity) (*models.Appointment, error) {
		return h.cancelUC.Execute(c.Request.Context(), actor, id)
	})
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	h.runTransition(c, "appointment_confirm_failed", func(c *gin.Context, actor identity.Identity) (*models.Appointment, error) {
		return h.confirmUC.Execute(c.Request.Context(), actor, id)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	h.runTransition(c, "appointment_complete_failed", func(c *gin.Context, actor identity.Identity) (*models.Appointment, error) {
		return h.completeUC.Execute(c.Request.Context(), actor, id)
	})
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), actor, id); err != nil {
		httperr.Respond(c, err, "appointment_delete_failed")
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// READS
// ======================================================

// List returns the caller's bookings; staff see everyone's and may filter
// by ?date=YYYY-MM-DD, ?month=YYYY-MM and ?status=.
func (h *AppointmentHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	list, err := h.listUC.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		Actor:  actor,
		Date:   c.Query("date"),
		Month:  c.Query("month"),
		Status: c.Query("status"),
	})
	if err != nil {
		httperr.Respond(c, err, "appointment_list_failed")
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	service := c.Query("service")
	if date == "" || service == "" {
		httperr.BadRequest(c, "missing_fields", "date and service are required.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date, service)
	if err != nil {
		httperr.Respond(c, err, "availability_failed")
		return
	}

	httpresp.OK(c, gin.H{
		"date":    date,
		"service": service,
		"slots":   slots,
	})
}
