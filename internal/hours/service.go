package hours

import (
	"context"
	"errors"
	"log"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// --------------------------------------------------
// Weekly schedule
// --------------------------------------------------

func (s *Service) Week(ctx context.Context) ([]OperatingHours, error) {
	return s.repo.ListWeek(ctx)
}

// ReplaceWeek validates and saves all 7 days in one shot (ADMIN).
func (s *Service) ReplaceWeek(ctx context.Context, week []OperatingHours) error {
	if err := ValidateWeek(week); err != nil {
		return err
	}
	return s.repo.UpsertWeek(ctx, week)
}

// --------------------------------------------------
// Holidays
// --------------------------------------------------

func (s *Service) Holidays(ctx context.Context) ([]Holiday, error) {
	return s.repo.ListHolidays(ctx)
}

func (s *Service) AddHoliday(ctx context.Context, date time.Time, recurring bool) (Holiday, error) {
	if date.IsZero() {
		return Holiday{}, errors.New("holiday date is required")
	}
	return s.repo.AddHoliday(ctx, Holiday{Date: date, IsRecurringAnnual: recurring})
}

func (s *Service) RemoveHoliday(ctx context.Context, id string) error {
	return s.repo.RemoveHoliday(ctx, id)
}

// --------------------------------------------------
// Pickup-time floor (pause / delay intake)
// --------------------------------------------------

// PauseIntakeUntil raises the floor so no pickup earlier than t can be
// scheduled (ADMIN).
func (s *Service) PauseIntakeUntil(ctx context.Context, t time.Time) error {
	if t.IsZero() {
		return errors.New("pause time is required")
	}
	return s.repo.SetMinimumPickupTime(ctx, t.In(Location))
}

// ResumeIntake drops the floor back to local midnight, the same value
// the nightly reset writes.
func (s *Service) ResumeIntake(ctx context.Context) error {
	return s.repo.SetMinimumPickupTime(ctx, midnight(s.now().In(Location)))
}

// --------------------------------------------------
// Storefront reads
// --------------------------------------------------

// SlotsForDate enumerates the selectable pickup times for a calendar
// date, honoring holidays and the 30-minute pre-close buffer. The ASAP
// option is only offered for today.
func (s *Service) SlotsForDate(ctx context.Context, date time.Time) ([]string, error) {
	week, err := s.repo.ListWeek(ctx)
	if err != nil {
		return nil, err
	}
	holidays, err := s.repo.ListHolidays(ctx)
	if err != nil {
		return nil, err
	}

	date = date.In(Location)
	if IsHoliday(date, holidays) {
		return nil, nil
	}
	day, ok := ForDay(week, int(date.Weekday()))
	if !ok {
		return nil, nil
	}

	now := s.now().In(Location)
	sameDay := date.Year() == now.Year() && date.Month() == now.Month() && date.Day() == now.Day()

	return OpenTimesForDay(SlotRequest{
		Day:                             day,
		IncludeASAPOption:               sameDay,
		LimitToThirtyMinutesBeforeClose: true,
	}), nil
}

// ValidatePickup re-checks a chosen pickup datetime against the same
// data the storefront rendered from, plus the admin floor.
func (s *Service) ValidatePickup(ctx context.Context, isASAP bool, pickupAt time.Time) (bool, error) {
	week, err := s.repo.ListWeek(ctx)
	if err != nil {
		return false, err
	}
	holidays, err := s.repo.ListHolidays(ctx)
	if err != nil {
		return false, err
	}
	floor, err := s.repo.GetMinimumPickupTime(ctx)
	if err != nil {
		return false, err
	}

	return SelectedTimeSlotValid(SlotCheck{
		IsASAP:            isASAP,
		DatetimeToPickup:  pickupAt,
		MinPickupDatetime: floor,
		HoursOfOperation:  week,
		Holidays:          holidays,
		Now:               s.now(),
	}), nil
}

// --------------------------------------------------
// Nightly floor reset
// --------------------------------------------------

// RunMidnightReset resets the pickup-time floor to local midnight once
// a day, so yesterday's pause never blocks today's orders. Blocks until
// ctx is done; run it in a goroutine from main.
func (s *Service) RunMidnightReset(ctx context.Context) {
	for {
		now := s.now().In(Location)
		next := midnight(now).AddDate(0, 0, 1)

		select {
		case <-ctx.Done():
			return
		case <-time.After(next.Sub(now)):
		}

		if err := s.repo.SetMinimumPickupTime(ctx, midnight(s.now().In(Location))); err != nil {
			log.Printf("hours: midnight floor reset failed: %v", err)
		}
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
