package rewards

import (
	"context"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/money"
)

// Repository defines all database operations for loyalty accounts and
// gift cards.
type Repository interface {

	// -------------------------------
	// Loyalty accounts
	// -------------------------------

	GetAccount(ctx context.Context, userID string) (*Account, error)
	AddPoints(ctx context.Context, userID string, delta int64) error
	SetBirthday(ctx context.Context, userID string, month, day int) error
	MarkBirthdayRewardUsed(ctx context.Context, userID string, year int) error

	// -------------------------------
	// Gift cards
	// -------------------------------

	CreateGiftCard(ctx context.Context, card GiftCard) error
	GetGiftCard(ctx context.Context, code string) (*GiftCard, error)

	// DeductGiftCard atomically reduces the balance, failing if the
	// card does not hold at least amount.
	DeductGiftCard(ctx context.Context, code string, amount money.Cents) error

	// CreditGiftCard puts amount back on the card.
	CreditGiftCard(ctx context.Context, code string, amount money.Cents) error
}
