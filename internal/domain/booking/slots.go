package booking

import "time"

// ===============================
// Slot Calendar
// ===============================

const (
	calendarDays  = 7
	slotOpenHour  = 9
	slotCloseHour = 17
	slotStep      = 30 * time.Minute
)

type Day struct {
	Date    string `json:"date"`  // 2024-06-10
	Weekday string `json:"day"`   // Mon
	Label   string `json:"label"` // 10 Jun
}

type TimeSlot struct {
	Value string `json:"value"` // 10:30:00
	Label string `json:"label"` // 10:30 AM
}

// NextDays returns today plus the following six days in the given
// location. Regenerated on every call, never persisted.
func NextDays(now time.Time) []Day {
	days := make([]Day, 0, calendarDays)
	for i := 0; i < calendarDays; i++ {
		d := now.AddDate(0, 0, i)
		days = append(days, Day{
			Date:    d.Format("2006-01-02"),
			Weekday: d.Format("Mon"),
			Label:   d.Format("02 Jan"),
		})
	}
	return days
}

// DaySlots returns the half-hour boundaries from 09:00 to 17:00
// inclusive, 17 slots total.
func DaySlots() []TimeSlot {
	base := time.Date(2000, 1, 1, slotOpenHour, 0, 0, 0, time.UTC)
	end := time.Date(2000, 1, 1, slotCloseHour, 0, 0, 0, time.UTC)

	var slots []TimeSlot
	for cur := base; !cur.After(end); cur = cur.Add(slotStep) {
		slots = append(slots, TimeSlot{
			Value: cur.Format("15:04:05"),
			Label: cur.Format("3:04 PM"),
		})
	}
	return slots
}

// IsBookableDate reports whether date falls inside the current 7-day
// calendar window.
func IsBookableDate(now time.Time, date string) bool {
	for _, d := range NextDays(now) {
		if d.Date == date {
			return true
		}
	}
	return false
}

// IsBookableTime reports whether value is one of the calendar's
// half-hour slots.
func IsBookableTime(value string) bool {
	for _, s := range DaySlots() {
		if s.Value == value {
			return true
		}
	}
	return false
}
