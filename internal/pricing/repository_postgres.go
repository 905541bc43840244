package pricing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// REFERENCE READS
// --------------------------------------------------

func (r *PostgresRepository) ActiveDiscounts(ctx context.Context) (map[string]Discount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name
		FROM discounts
		WHERE active = TRUE
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	active := make(map[string]Discount)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		// Kind is resolved once here, at load, never per calculation.
		d := ResolveKind(name)
		d.ID = id
		active[id] = d
	}
	return active, rows.Err()
}

// --------------------------------------------------
// ADMIN
// --------------------------------------------------

func (r *PostgresRepository) CreateDiscount(ctx context.Context, d Discount) (Discount, error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}

	resolved := ResolveKind(d.Name)
	if resolved.Kind == KindUnknown {
		return Discount{}, errors.New("discount name does not resolve to a known kind")
	}
	resolved.ID = d.ID

	_, err := r.db.Exec(ctx, `
		INSERT INTO discounts (id, name, active, created_at)
		VALUES ($1, $2, TRUE, now())
	`, resolved.ID, resolved.Name)

	return resolved, err
}

func (r *PostgresRepository) DeactivateDiscount(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE discounts
		SET active = FALSE
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("discount not found")
	}
	return nil
}

func (r *PostgresRepository) ListDiscounts(ctx context.Context) ([]Discount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name
		FROM discounts
		WHERE active = TRUE
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Discount
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		d := ResolveKind(name)
		d.ID = id
		out = append(out, d)
	}
	return out, rows.Err()
}
