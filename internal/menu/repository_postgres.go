package menu

import (
	"context"
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

// --------------------------------------------------
// ITEMS
// --------------------------------------------------

func (r *PostgresRepository) ListItems(ctx context.Context, availableOnly bool) ([]Item, error) {
	query := `
		SELECT id, name, description, category, price, available, photo_url, list_order, created_at
		FROM menu_items
	`
	if availableOnly {
		query += ` WHERE available = TRUE`
	}
	query += ` ORDER BY category, list_order, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Description, &it.Category,
			&it.Price, &it.Available, &it.PhotoURL, &it.ListOrder, &it.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetItem(ctx context.Context, id string) (*Item, error) {
	var it Item
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, category, price, available, photo_url, list_order, created_at
		FROM menu_items
		WHERE id = $1
	`, id).Scan(
		&it.ID, &it.Name, &it.Description, &it.Category,
		&it.Price, &it.Available, &it.PhotoURL, &it.ListOrder, &it.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("item not found")
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *PostgresRepository) CreateItem(ctx context.Context, item Item) (Item, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (id, name, description, category, price, available, list_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
	`, item.ID, item.Name, item.Description, item.Category, item.Price, item.Available, item.ListOrder)

	return item, err
}

func (r *PostgresRepository) UpdateItem(ctx context.Context, item Item) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name = $2,
		    description = $3,
		    category = $4,
		    price = $5,
		    list_order = $6
		WHERE id = $1
	`, item.ID, item.Name, item.Description, item.Category, item.Price, item.ListOrder)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("item not found")
	}
	return nil
}

func (r *PostgresRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET available = $2
		WHERE id = $1
	`, id, available)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("item not found")
	}
	return nil
}

func (r *PostgresRepository) SetPhotoURL(ctx context.Context, id string, url string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET photo_url = $2
		WHERE id = $1
	`, id, url)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("item not found")
	}
	return nil
}

// --------------------------------------------------
// CUSTOMIZATIONS
// --------------------------------------------------

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]CustomizationCategory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name
		FROM customization_categories
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []CustomizationCategory
	for rows.Next() {
		var cat CustomizationCategory
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}
	return cats, rows.Err()
}

func (r *PostgresRepository) ListChoices(ctx context.Context) ([]pricing.CustomizationChoice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, category_id, name, price_adjustment
		FROM customization_choices
		ORDER BY category_id, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var choices []pricing.CustomizationChoice
	for rows.Next() {
		var ch pricing.CustomizationChoice
		if err := rows.Scan(&ch.ID, &ch.CategoryID, &ch.Name, &ch.PriceAdjustment); err != nil {
			return nil, err
		}
		choices = append(choices, ch)
	}
	return choices, rows.Err()
}

func (r *PostgresRepository) CreateChoice(ctx context.Context, ch pricing.CustomizationChoice) (pricing.CustomizationChoice, error) {
	if ch.ID == "" {
		ch.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO customization_choices (id, category_id, name, price_adjustment)
		VALUES ($1, $2, $3, $4)
	`, ch.ID, ch.CategoryID, ch.Name, ch.PriceAdjustment)

	return ch, err
}
