package hours

import (
	"context"
	"time"
)

// Repository defines all database operations for the weekly schedule,
// holidays, and the pickup-time floor. Service depends ONLY on this
// interface.
type Repository interface {

	// -------------------------------
	// Weekly schedule
	// -------------------------------

	ListWeek(ctx context.Context) ([]OperatingHours, error)

	// Replace all 7 rows in one transaction.
	UpsertWeek(ctx context.Context, week []OperatingHours) error

	// -------------------------------
	// Holidays
	// -------------------------------

	ListHolidays(ctx context.Context) ([]Holiday, error)
	AddHoliday(ctx context.Context, h Holiday) (Holiday, error)
	RemoveHoliday(ctx context.Context, id string) error

	// -------------------------------
	// Pickup-time floor
	// -------------------------------

	GetMinimumPickupTime(ctx context.Context) (time.Time, error)
	SetMinimumPickupTime(ctx context.Context, t time.Time) error
}
