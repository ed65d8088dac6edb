package appointment

import (
	"fmt"
	"time"

	"github.com/tapagenda/booking-api/internal/models"
)

// SlotIntervalMinutes is the fixed slot granularity.
const SlotIntervalMinutes = 30

// Slot is one bookable start time for a date. Derived on every query,
// never persisted.
type Slot struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// BuildSlots enumerates the slots inside w for one date and flags the
// ones taken by a blocking appointment. Slots step from open by
// SlotIntervalMinutes while strictly below close, so a close time that
// does not align to the grid never yields a trailing partial slot.
// An inverted window (open >= close) yields no slots.
func BuildSlots(date string, w Window, existing []models.Appointment) []Slot {
	openMin, ok := clockToMinutes(w.Open)
	if !ok {
		return []Slot{}
	}
	closeMin, ok := clockToMinutes(w.Close)
	if !ok || openMin >= closeMin {
		return []Slot{}
	}

	taken := make(map[string]struct{}, len(existing))
	for _, ap := range existing {
		if Status(ap.Status).Blocks() {
			taken[ap.AppointmentTime] = struct{}{}
		}
	}

	slots := make([]Slot, 0, (closeMin-openMin)/SlotIntervalMinutes)
	for m := openMin; m < closeMin; m += SlotIntervalMinutes {
		ts := minutesToClock(m)
		_, busy := taken[ts]
		slots = append(slots, Slot{
			Date:      date,
			Time:      ts,
			Available: !busy,
		})
	}

	return slots
}

// IsBookableTime reports whether ts lands on one of the slots BuildSlots
// would emit for w: inside the window and aligned to the grid.
func IsBookableTime(w Window, ts string) bool {
	openMin, ok := clockToMinutes(w.Open)
	if !ok {
		return false
	}
	closeMin, ok := clockToMinutes(w.Close)
	if !ok || openMin >= closeMin {
		return false
	}
	m, ok := clockToMinutes(ts)
	if !ok {
		return false
	}
	if m < openMin || m >= closeMin {
		return false
	}
	return (m-openMin)%SlotIntervalMinutes == 0
}

func clockToMinutes(hm string) (int, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

func minutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
