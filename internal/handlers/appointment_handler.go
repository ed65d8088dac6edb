package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/tapagenda/booking-api/internal/domain/appointment"
	"github.com/tapagenda/booking-api/internal/httperr"
	"github.com/tapagenda/booking-api/internal/middleware"
	ucAppointment "github.com/tapagenda/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC    *ucAppointment.CreateAppointment
	confirmUC   *ucAppointment.ConfirmAppointment
	completeUC  *ucAppointment.CompleteAppointment
	cancelUC    *ucAppointment.CancelAppointment
	listDateUC  *ucAppointment.ListAppointmentsByDate
	listMonthUC *ucAppointment.ListAppointmentsByMonth
	slotsUC     *ucAppointment.GetAvailableSlots
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	confirmUC *ucAppointment.ConfirmAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listDateUC *ucAppointment.ListAppointmentsByDate,
	listMonthUC *ucAppointment.ListAppointmentsByMonth,
	slotsUC *ucAppointment.GetAvailableSlots,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:    createUC,
		confirmUC:   confirmUC,
		completeUC:  completeUC,
		cancelUC:    cancelUC,
		listDateUC:  listDateUC,
		listMonthUC: listMonthUC,
		slotsUC:     slotsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM
	Notes       string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			BusinessID:  businessID,
			ServiceID:   req.ServiceID,
			ClientID:    req.ClientID,
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,
			Date:        req.Date,
			Time:        req.Time,
			Notes:       req.Notes,
			ActorID:     &userID,
		},
	)
	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	availability, err := h.slotsUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BusinessID: businessID,
			Date:       dateStr,
		},
	)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		httperr.Internal(c, "availability_failed", "Failed to compute slots.")
		return
	}

	c.JSON(http.StatusOK, availability)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	appointments, err := h.listDateUC.Execute(c.Request.Context(), businessID, dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Year and month are required.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	appointments, err := h.listMonthUC.Execute(c.Request.Context(), businessID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": appointments,
	})
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, func(businessID, userID, appointmentID uint) (any, error) {
		return h.confirmUC.Execute(c.Request.Context(), businessID, userID, appointmentID)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(businessID, userID, appointmentID uint) (any, error) {
		return h.completeUC.Execute(c.Request.Context(), businessID, userID, appointmentID)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(businessID, userID, appointmentID uint) (any, error) {
		return h.cancelUC.Execute(c.Request.Context(), businessID, userID, appointmentID)
	})
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	run func(businessID, userID, appointmentID uint) (any, error),
) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	ap, err := run(businessID, userID, uint(id))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Appointment cannot change to that state.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Failed to update appointment.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}
