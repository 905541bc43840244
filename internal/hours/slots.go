package hours

import "fmt"

// ASAPSlot is the literal sentinel offered alongside fixed pickup times.
const ASAPSlot = "ASAP (~20 mins)"

// slotInterval is the spacing of selectable pickup times, in minutes.
const slotInterval = 15

// closeBufferMinutes is how long before close the last selectable
// pickup time sits when the caller asks for the buffered sequence.
const closeBufferMinutes = 30

// SlotRequest describes one day's worth of pickup times to enumerate.
type SlotRequest struct {
	Day                             OperatingHours
	IncludeASAPOption               bool
	LimitToThirtyMinutesBeforeClose bool
}

// OpenTimesForDay enumerates the selectable pickup times for a day,
// in strictly ascending order. A closed day yields no slots at all,
// including the ASAP sentinel. When the 30-minute limit pushes the
// effective close before the open, the day simply yields zero fixed
// slots; that is not an error.
func OpenTimesForDay(req SlotRequest) []string {
	if ClosedAllDay(req.Day) {
		return nil
	}

	open := req.Day.openMinutes()
	close := req.Day.closeMinutes()
	if req.LimitToThirtyMinutesBeforeClose {
		close -= closeBufferMinutes
	}

	var slots []string
	if req.IncludeASAPOption {
		slots = append(slots, ASAPSlot)
	}
	for t := open; t <= close; t += slotInterval {
		slots = append(slots, fmt.Sprintf("%02d:%02d", t/60, t%60))
	}
	return slots
}
