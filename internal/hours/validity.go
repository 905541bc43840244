package hours

import "time"

const (
	// asapPrepMinutes is the estimated wait behind the ASAP option.
	asapPrepMinutes = 20

	// minScheduleLead is the shortest notice accepted for a scheduled
	// (non-ASAP) pickup. Exactly 20 minutes out is accepted.
	minScheduleLead = 20 * time.Minute

	// finalPlacementMinutes is how long before close the kitchen stops
	// taking new pickups: the 30-minute pre-close buffer plus the
	// ~20-minute prep estimate.
	finalPlacementMinutes = closeBufferMinutes + asapPrepMinutes
)

// SlotCheck is everything the validity check needs. All fields are
// mandatory; the check never reaches for ambient state. Now is the
// caller's clock so tests can pin it.
type SlotCheck struct {
	IsASAP            bool
	DatetimeToPickup  time.Time
	MinPickupDatetime time.Time
	HoursOfOperation  []OperatingHours
	Holidays          []Holiday
	Now               time.Time
}

// SelectedTimeSlotValid re-verifies a chosen (or ASAP) pickup datetime
// at submit time. Rules run in order and the first failure wins:
//
//  1. no hours data at all -> invalid
//  2. the target day must exist, be open, and not be a holiday
//  3. an exact-midnight, non-ASAP time is the unset placeholder and
//     passes through as valid
//  4. the effective time of day (now for ASAP, else the requested
//     time) must not be before open
//  5. ASAP must be for today; a scheduled pickup must be strictly in
//     the future and at least 20 minutes out
//  6. the requested datetime must not be before the admin floor
//  7. the effective time must not be past close minus 50 minutes
func SelectedTimeSlotValid(req SlotCheck) bool {
	if len(req.HoursOfOperation) == 0 {
		return false
	}

	pickup := req.DatetimeToPickup.In(Location)
	now := req.Now.In(Location)

	day, ok := ForDay(req.HoursOfOperation, int(pickup.Weekday()))
	if !ok || ClosedAllDay(day) || IsHoliday(pickup, req.Holidays) {
		return false
	}

	if !req.IsASAP && pickup.Hour() == 0 && pickup.Minute() == 0 && pickup.Second() == 0 {
		return true
	}

	effective := pickup
	if req.IsASAP {
		effective = now
	}
	effectiveMinutes := effective.Hour()*60 + effective.Minute()
	if effectiveMinutes < day.openMinutes() {
		return false
	}

	if req.IsASAP {
		if pickup.Year() != now.Year() || pickup.Month() != now.Month() || pickup.Day() != now.Day() {
			return false
		}
	} else {
		if !pickup.After(now) {
			return false
		}
		if pickup.Before(now.Add(minScheduleLead)) {
			return false
		}
	}

	if !req.MinPickupDatetime.IsZero() && pickup.Before(req.MinPickupDatetime) {
		return false
	}

	if effectiveMinutes > day.closeMinutes()-finalPlacementMinutes {
		return false
	}

	return true
}
