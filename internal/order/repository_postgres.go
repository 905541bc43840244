package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/pricing"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, o Order) (Order, error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}

	items, err := json.Marshal(o.Items)
	if err != nil {
		return Order{}, err
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO orders (
			id, user_id, status, is_asap, pickup_at, items,
			include_napkins_and_utensils,
			subtotal, tax, tip, total, gift_card_applied, amount_due,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now())
		RETURNING created_at, updated_at
	`,
		o.ID, o.UserID, o.Status, o.IsASAP, o.PickupAt, items,
		o.IncludeNapkinsAndUtensils,
		o.Subtotal, o.Tax, o.Tip, o.Total, o.GiftCardApplied, o.AmountDue,
	).Scan(&o.CreatedAt, &o.UpdatedAt)

	return o, err
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Order, error) {
	row := r.db.QueryRow(ctx, selectOrder+` WHERE id = $1`, id)

	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("order not found")
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	rows, err := r.db.Query(ctx, selectOrder+`
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *PostgresRepository) ListByStatus(ctx context.Context, status string) ([]Order, error) {
	query := selectOrder
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $2,
		    updated_at = now()
		WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("order not found")
	}
	return nil
}

// --------------------------------------------------
// scanning helpers
// --------------------------------------------------

const selectOrder = `
	SELECT id, user_id, status, is_asap, pickup_at, items,
	       include_napkins_and_utensils,
	       subtotal, tax, tip, total, gift_card_applied, amount_due,
	       created_at, updated_at
	FROM orders
`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	var items []byte

	err := row.Scan(
		&o.ID, &o.UserID, &o.Status, &o.IsASAP, &o.PickupAt, &items,
		&o.IncludeNapkinsAndUtensils,
		&o.Subtotal, &o.Tax, &o.Tip, &o.Total, &o.GiftCardApplied, &o.AmountDue,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	if o.Items == nil {
		o.Items = []pricing.Item{}
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]Order, error) {
	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}
