package appointment

import (
	"fmt"
	"time"
)

// CivilDate is a plain calendar date with no timezone attached.
// Weekday math happens on the components only, so resolving a date
// near midnight never shifts it into the neighbouring day.
type CivilDate struct {
	Year  int
	Month int
	Day   int
}

func ParseDate(s string) (CivilDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CivilDate{}, err
	}
	return CivilDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// Weekday returns 0=Sunday ... 6=Saturday.
func (d CivilDate) Weekday() int {
	return int(time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Weekday())
}

func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
