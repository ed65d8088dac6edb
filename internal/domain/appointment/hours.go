package appointment

import "github.com/tapagenda/booking-api/internal/models"

// Window is the open/close range for one calendar date, "HH:MM" 24h.
type Window struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// ResolveWindow maps a calendar date to that day's bookable window.
// A missing weekday row or an inactive one means the business is
// closed; that is a normal outcome, not an error.
func ResolveWindow(date CivilDate, hours []models.WeeklyHour) (Window, bool) {
	weekday := date.Weekday()

	for _, h := range hours {
		if h.DayOfWeek != weekday {
			continue
		}
		if !h.IsActive || h.OpenTime == "" || h.CloseTime == "" {
			return Window{}, false
		}
		return Window{Open: h.OpenTime, Close: h.CloseTime}, true
	}

	return Window{}, false
}
