package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tapagenda/booking-api/internal/httperr"
)

// mapCreateErrors translates booking use-case failures into HTTP
// responses. The slot conflict is the one callers care about: it gets
// 409 with a "just taken" message instead of a generic failure.
func mapCreateErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "This time is no longer available.")
	case httperr.IsBusiness(err, "closed_day"):
		httperr.BadRequest(c, "closed_day", "The business is closed on that day.")
	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "outside_working_hours", "Outside of operating hours.")
	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "That time is too close or in the past.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Service not found.")
	case httperr.IsBusiness(err, "client_not_found"):
		httperr.BadRequest(c, "client_not_found", "Client not found.")
	case httperr.IsBusiness(err, "client_required"):
		httperr.BadRequest(c, "client_required", "Client details are required.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Failed to create appointment.")
	}
}
