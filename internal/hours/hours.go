package hours

import (
	"errors"
	"fmt"
	"time"
)

// Pickup scheduling is tied to the physical restaurant's clock, so every
// date comparison in this package happens in this zone no matter where
// the client is.
var Location = mustLoadLocation("America/Chicago")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("hours: load location " + name + ": " + err.Error())
	}
	return loc
}

// ForDay returns the schedule row for a day of week (0=Sunday..6=Saturday).
func ForDay(week []OperatingHours, dayOfWeek int) (OperatingHours, bool) {
	for _, h := range week {
		if h.DayOfWeek == dayOfWeek {
			return h, true
		}
	}
	return OperatingHours{}, false
}

// ClosedAllDay reports whether a schedule row means "closed".
// The explicit flag is authoritative; an all-zero row is the legacy
// sentinel still present in older data and is read the same way.
func ClosedAllDay(h OperatingHours) bool {
	if h.IsClosedAllDay {
		return true
	}
	return h.OpenHour == 0 && h.OpenMinute == 0 && h.CloseHour == 0 && h.CloseMinute == 0
}

// IsHoliday reports whether date falls on any configured holiday.
// Recurring holidays match month and day in any year.
func IsHoliday(date time.Time, holidays []Holiday) bool {
	date = date.In(Location)
	for _, h := range holidays {
		hd := h.Date.In(Location)
		if h.IsRecurringAnnual {
			if hd.Month() == date.Month() && hd.Day() == date.Day() {
				return true
			}
			continue
		}
		if hd.Year() == date.Year() && hd.Month() == date.Month() && hd.Day() == date.Day() {
			return true
		}
	}
	return false
}

var errMalformedClock = errors.New("hours: malformed HH:mm time")

// ParseClock parses a 24-hour "HH:mm" string. Malformed input is a
// programmer error on the caller's side and is returned as an error,
// unlike business-rule rejections which come back as false elsewhere.
func ParseClock(s string) (hour, minute int, err error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, errMalformedClock
	}
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hour, &minute); err != nil {
		return 0, 0, errMalformedClock
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, errMalformedClock
	}
	return hour, minute, nil
}

// ValidateWeek checks a full weekly schedule before it is saved:
// exactly one row per day 0..6, and close after open on open days.
// Legacy all-zero rows are normalized to the explicit closed flag.
func ValidateWeek(week []OperatingHours) error {
	if len(week) != 7 {
		return fmt.Errorf("hours: expected 7 entries, got %d", len(week))
	}
	seen := [7]bool{}
	for i := range week {
		h := &week[i]
		if h.DayOfWeek < 0 || h.DayOfWeek > 6 {
			return fmt.Errorf("hours: invalid day of week %d", h.DayOfWeek)
		}
		if seen[h.DayOfWeek] {
			return fmt.Errorf("hours: duplicate entry for day %d", h.DayOfWeek)
		}
		seen[h.DayOfWeek] = true

		if !h.IsClosedAllDay && h.openMinutes() == 0 && h.closeMinutes() == 0 {
			h.IsClosedAllDay = true
		}
		if h.IsClosedAllDay {
			continue
		}
		if h.closeMinutes() <= h.openMinutes() {
			return fmt.Errorf("hours: day %d closes at or before it opens", h.DayOfWeek)
		}
	}
	return nil
}
