package cart

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*OrderDetails, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `
		SELECT details
		FROM carts
		WHERE user_id = $1
	`, userID).Scan(&raw)

	if errors.Is(err, pgx.ErrNoRows) {
		// No cart yet is an empty cart, not an error.
		return &OrderDetails{}, nil
	}
	if err != nil {
		return nil, err
	}

	var details OrderDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *PostgresRepository) Replace(ctx context.Context, userID string, details OrderDetails) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO carts (user_id, details, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE
		SET details = $2,
		    updated_at = now()
	`, userID, raw)
	return err
}

func (r *PostgresRepository) Clear(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	return err
}
