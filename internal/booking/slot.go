package booking

import "time"

// Layouts for the wire formats: dates as YYYY-MM-DD, times-of-day as HH:mm.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// The fixed availability grid: six two-hour slots from 08:00 to 20:00.
const (
	gridOpenHour  = 8
	gridCloseHour = 20
	slotHours     = 2
)

// Slot is one fixed interval of the availability grid.
type Slot struct {
	StartTime time.Time
	EndTime   time.Time
}

// DaySlots returns the canonical slot grid for the given day, in order.
func DaySlots(date time.Time) []Slot {
	slots := make([]Slot, 0, (gridCloseHour-gridOpenHour)/slotHours)
	y, m, d := date.Date()
	for h := gridOpenHour; h < gridCloseHour; h += slotHours {
		slots = append(slots, Slot{
			StartTime: time.Date(y, m, d, h, 0, 0, 0, date.Location()),
			EndTime:   time.Date(y, m, d, h+slotHours, 0, 0, 0, date.Location()),
		})
	}
	return slots
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not count as overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FreeSlots filters out every slot that overlaps at least one of the given
// bookings. Callers decide which bookings qualify (confirmed-only).
func FreeSlots(slots []Slot, bookings []*Booking) []Slot {
	free := make([]Slot, 0, len(slots))
	for _, s := range slots {
		taken := false
		for _, b := range bookings {
			if Overlaps(b.StartTime, b.EndTime, s.StartTime, s.EndTime) {
				taken = true
				break
			}
		}
		if !taken {
			free = append(free, s)
		}
	}
	return free
}

// ParseDate parses a YYYY-MM-DD string as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime.WithCause(err)
	}
	return t, nil
}

// CombineDateTime merges a day with an HH:mm time-of-day, keeping the day's
// location.
func CombineDateTime(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime.WithCause(err)
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// PayableAmount is the booking cost: duration in hours times the facility's
// hourly price at creation time.
func PayableAmount(start, end time.Time, pricePerHour float64) float64 {
	return end.Sub(start).Hours() * pricePerHour
}
