package appointment

// AvailabilityInput identifies whose slots to enumerate.
type AvailabilityInput struct {
	BusinessID uint
	Date       string // "YYYY-MM-DD"
}

// Availability is the slot listing for one business and date. Closed
// distinguishes "no hours this weekday" from "every slot taken".
type Availability struct {
	Date   string  `json:"date"`
	Closed bool    `json:"closed"`
	Window *Window `json:"window,omitempty"`
	Slots  []Slot  `json:"slots"`
}
