package hours

import (
	"testing"
	"time"
)

// Tuesday, September 1 2026, noon at the restaurant.
var testNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, Location)

// Open 11:00-21:00 every day except Monday.
func testWeek() []OperatingHours {
	week := make([]OperatingHours, 7)
	for i := range week {
		week[i] = OperatingHours{DayOfWeek: i, OpenHour: 11, CloseHour: 21}
	}
	week[1].IsClosedAllDay = true
	return week
}

func check(overrides func(*SlotCheck)) SlotCheck {
	req := SlotCheck{
		HoursOfOperation: testWeek(),
		Now:              testNow,
	}
	if overrides != nil {
		overrides(&req)
	}
	return req
}

func TestSelectedTimeSlotValidNoHoursData(t *testing.T) {
	req := check(func(r *SlotCheck) {
		r.HoursOfOperation = nil
		r.DatetimeToPickup = testNow.Add(2 * time.Hour)
	})
	if SelectedTimeSlotValid(req) {
		t.Fatal("valid with no hours data")
	}
}

func TestSelectedTimeSlotValidClosedDay(t *testing.T) {
	// Monday, September 7 2026 is the closed weekday.
	req := check(func(r *SlotCheck) {
		r.DatetimeToPickup = time.Date(2026, time.September, 7, 12, 0, 0, 0, Location)
	})
	if SelectedTimeSlotValid(req) {
		t.Fatal("valid on a closed day")
	}
}

func TestSelectedTimeSlotValidHoliday(t *testing.T) {
	// Thursday would otherwise be open.
	holiday := time.Date(2026, time.September, 3, 0, 0, 0, 0, Location)
	req := check(func(r *SlotCheck) {
		r.Holidays = []Holiday{{ID: "h", Date: holiday}}
		r.DatetimeToPickup = time.Date(2026, time.September, 3, 12, 0, 0, 0, Location)
	})
	if SelectedTimeSlotValid(req) {
		t.Fatal("valid on a holiday")
	}
}

func TestSelectedTimeSlotValidMidnightPlaceholder(t *testing.T) {
	// Exactly midnight and not ASAP is the unset placeholder state.
	req := check(func(r *SlotCheck) {
		r.DatetimeToPickup = time.Date(2026, time.September, 2, 0, 0, 0, 0, Location)
	})
	if !SelectedTimeSlotValid(req) {
		t.Fatal("midnight placeholder rejected")
	}
}

func TestSelectedTimeSlotValidBeforeOpen(t *testing.T) {
	req := check(func(r *SlotCheck) {
		r.DatetimeToPickup = time.Date(2026, time.September, 2, 10, 0, 0, 0, Location)
	})
	if SelectedTimeSlotValid(req) {
		t.Fatal("valid before open")
	}
}

func TestSelectedTimeSlotValidScheduleLeadBoundary(t *testing.T) {
	// 19 minutes of notice is too little, 20 is exactly enough.
	at19 := check(func(r *SlotCheck) { r.DatetimeToPickup = testNow.Add(19 * time.Minute) })
	if SelectedTimeSlotValid(at19) {
		t.Error("19 minutes out accepted")
	}

	at20 := check(func(r *SlotCheck) { r.DatetimeToPickup = testNow.Add(20 * time.Minute) })
	if !SelectedTimeSlotValid(at20) {
		t.Error("20 minutes out rejected")
	}
}

func TestSelectedTimeSlotValidPastPickup(t *testing.T) {
	req := check(func(r *SlotCheck) {
		r.DatetimeToPickup = testNow.Add(-1 * time.Hour)
	})
	if SelectedTimeSlotValid(req) {
		t.Fatal("pickup in the past accepted")
	}
}

func TestSelectedTimeSlotValidFloor(t *testing.T) {
	floor := time.Date(2026, time.September, 1, 14, 0, 0, 0, Location)

	below := check(func(r *SlotCheck) {
		r.MinPickupDatetime = floor
		r.DatetimeToPickup = time.Date(2026, time.September, 1, 13, 0, 0, 0, Location)
	})
	if SelectedTimeSlotValid(below) {
		t.Error("pickup below admin floor accepted")
	}

	at := check(func(r *SlotCheck) {
		r.MinPickupDatetime = floor
		r.DatetimeToPickup = floor
	})
	if !SelectedTimeSlotValid(at) {
		t.Error("pickup exactly at admin floor rejected")
	}
}

func TestSelectedTimeSlotValidFinalPlacement(t *testing.T) {
	// Close is 21:00; last placement is 20:10 (30-minute buffer + 20-minute prep).
	tooLate := check(func(r *SlotCheck) {
		r.DatetimeToPickup = time.Date(2026, time.September, 1, 20, 15, 0, 0, Location)
	})
	if SelectedTimeSlotValid(tooLate) {
		t.Error("pickup past final placement time accepted")
	}

	lastSlot := check(func(r *SlotCheck) {
		r.DatetimeToPickup = time.Date(2026, time.September, 1, 20, 10, 0, 0, Location)
	})
	if !SelectedTimeSlotValid(lastSlot) {
		t.Error("pickup at final placement time rejected")
	}
}

func TestSelectedTimeSlotValidASAP(t *testing.T) {
	sameDay := check(func(r *SlotCheck) {
		r.IsASAP = true
		r.DatetimeToPickup = testNow
	})
	if !SelectedTimeSlotValid(sameDay) {
		t.Error("same-day ASAP rejected")
	}

	otherDay := check(func(r *SlotCheck) {
		r.IsASAP = true
		r.DatetimeToPickup = testNow.AddDate(0, 0, 1)
	})
	if SelectedTimeSlotValid(otherDay) {
		t.Error("ASAP for another day accepted")
	}

	beforeOpen := check(func(r *SlotCheck) {
		r.IsASAP = true
		r.Now = time.Date(2026, time.September, 1, 9, 0, 0, 0, Location)
		r.DatetimeToPickup = r.Now
	})
	if SelectedTimeSlotValid(beforeOpen) {
		t.Error("ASAP before open accepted")
	}

	nearClose := check(func(r *SlotCheck) {
		r.IsASAP = true
		r.Now = time.Date(2026, time.September, 1, 20, 30, 0, 0, Location)
		r.DatetimeToPickup = r.Now
	})
	if SelectedTimeSlotValid(nearClose) {
		t.Error("ASAP inside the final-placement window accepted")
	}
}
