package hours

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// WEEKLY SCHEDULE
// --------------------------------------------------

func (r *PostgresRepository) ListWeek(ctx context.Context) ([]OperatingHours, error) {
	rows, err := r.db.Query(ctx, `
		SELECT day_of_week, open_hour, open_minute, close_hour, close_minute, is_closed_all_day
		FROM operating_hours
		ORDER BY day_of_week
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var week []OperatingHours
	for rows.Next() {
		var h OperatingHours
		if err := rows.Scan(
			&h.DayOfWeek,
			&h.OpenHour,
			&h.OpenMinute,
			&h.CloseHour,
			&h.CloseMinute,
			&h.IsClosedAllDay,
		); err != nil {
			return nil, err
		}
		week = append(week, h)
	}
	return week, rows.Err()
}

// UpsertWeek replaces the whole schedule atomically so readers never
// see a half-updated week.
func (r *PostgresRepository) UpsertWeek(ctx context.Context, week []OperatingHours) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, h := range week {
		_, err := tx.Exec(ctx, `
			INSERT INTO operating_hours (
				day_of_week, open_hour, open_minute,
				close_hour, close_minute, is_closed_all_day, updated_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, now())
			ON CONFLICT (day_of_week) DO UPDATE
			SET open_hour = $2,
			    open_minute = $3,
			    close_hour = $4,
			    close_minute = $5,
			    is_closed_all_day = $6,
			    updated_at = now()
		`, h.DayOfWeek, h.OpenHour, h.OpenMinute, h.CloseHour, h.CloseMinute, h.IsClosedAllDay)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// HOLIDAYS
// --------------------------------------------------

func (r *PostgresRepository) ListHolidays(ctx context.Context) ([]Holiday, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, holiday_date, is_recurring_annual
		FROM holidays
		ORDER BY holiday_date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []Holiday
	for rows.Next() {
		var h Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.IsRecurringAnnual); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (r *PostgresRepository) AddHoliday(ctx context.Context, h Holiday) (Holiday, error) {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO holidays (id, holiday_date, is_recurring_annual)
		VALUES ($1, $2, $3)
	`, h.ID, h.Date, h.IsRecurringAnnual)

	return h, err
}

func (r *PostgresRepository) RemoveHoliday(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("holiday not found")
	}
	return nil
}

// --------------------------------------------------
// PICKUP-TIME FLOOR
// --------------------------------------------------

func (r *PostgresRepository) GetMinimumPickupTime(ctx context.Context) (time.Time, error) {
	var t time.Time
	err := r.db.QueryRow(ctx, `
		SELECT minimum_pickup_time
		FROM store_settings
		WHERE id = 1
	`).Scan(&t)

	if errors.Is(err, pgx.ErrNoRows) {
		// No settings row yet means no floor.
		return time.Time{}, nil
	}
	return t, err
}

func (r *PostgresRepository) SetMinimumPickupTime(ctx context.Context, t time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO store_settings (id, minimum_pickup_time, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE
		SET minimum_pickup_time = $1,
		    updated_at = now()
	`, t)
	return err
}
