package rewards

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/money"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// LOYALTY ACCOUNTS
// --------------------------------------------------

func (r *PostgresRepository) GetAccount(ctx context.Context, userID string) (*Account, error) {
	var a Account
	err := r.db.QueryRow(ctx, `
		SELECT user_id, points, birthday_month, birthday_day, last_birthday_reward_year
		FROM reward_accounts
		WHERE user_id = $1
	`, userID).Scan(&a.UserID, &a.Points, &a.BirthdayMonth, &a.BirthdayDay, &a.LastBirthdayRewardYear)

	if errors.Is(err, pgx.ErrNoRows) {
		// Accounts spring into existence on first touch.
		return &Account{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PostgresRepository) AddPoints(ctx context.Context, userID string, delta int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reward_accounts (user_id, points)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET points = reward_accounts.points + $2
	`, userID, delta)
	return err
}

func (r *PostgresRepository) SetBirthday(ctx context.Context, userID string, month, day int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reward_accounts (user_id, points, birthday_month, birthday_day)
		VALUES ($1, 0, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET birthday_month = $2,
		    birthday_day = $3
	`, userID, month, day)
	return err
}

func (r *PostgresRepository) MarkBirthdayRewardUsed(ctx context.Context, userID string, year int) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE reward_accounts
		SET last_birthday_reward_year = $2
		WHERE user_id = $1
	`, userID, year)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("reward account not found")
	}
	return nil
}

// --------------------------------------------------
// GIFT CARDS
// --------------------------------------------------

func (r *PostgresRepository) CreateGiftCard(ctx context.Context, card GiftCard) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO gift_cards (code, balance, active, created_at)
		VALUES ($1, $2, TRUE, now())
	`, card.Code, card.Balance)
	return err
}

func (r *PostgresRepository) GetGiftCard(ctx context.Context, code string) (*GiftCard, error) {
	var card GiftCard
	err := r.db.QueryRow(ctx, `
		SELECT code, balance, active, created_at
		FROM gift_cards
		WHERE code = $1
	`, code).Scan(&card.Code, &card.Balance, &card.Active, &card.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("gift card not found")
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// DeductGiftCard is guarded by the balance check in the WHERE clause so
// two checkouts racing on one card cannot overdraw it.
func (r *PostgresRepository) DeductGiftCard(ctx context.Context, code string, amount money.Cents) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE gift_cards
		SET balance = balance - $2
		WHERE code = $1
		  AND active = TRUE
		  AND balance >= $2
	`, code, amount)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("gift card missing, inactive, or underfunded")
	}
	return nil
}

func (r *PostgresRepository) CreditGiftCard(ctx context.Context, code string, amount money.Cents) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE gift_cards
		SET balance = balance + $2
		WHERE code = $1
	`, code, amount)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("gift card not found")
	}
	return nil
}
