package hours

import "time"

// OperatingHours is one row of the weekly schedule.
// DayOfWeek follows time.Weekday numbering: 0=Sunday .. 6=Saturday.
type OperatingHours struct {
	DayOfWeek      int  `json:"day_of_week"`
	OpenHour       int  `json:"open_hour"`
	OpenMinute     int  `json:"open_minute"`
	CloseHour      int  `json:"close_hour"`
	CloseMinute    int  `json:"close_minute"`
	IsClosedAllDay bool `json:"is_closed_all_day"`
}

// Holiday is a day the restaurant does not take orders.
// Date carries day granularity in the restaurant's time zone; when
// IsRecurringAnnual is set the year is ignored and the month/day
// match every year.
type Holiday struct {
	ID                string    `json:"id"`
	Date              time.Time `json:"date"`
	IsRecurringAnnual bool      `json:"is_recurring_annual"`
}

// openMinutes returns the opening time as minutes after midnight.
func (h OperatingHours) openMinutes() int {
	return h.OpenHour*60 + h.OpenMinute
}

// closeMinutes returns the closing time as minutes after midnight.
func (h OperatingHours) closeMinutes() int {
	return h.CloseHour*60 + h.CloseMinute
}
