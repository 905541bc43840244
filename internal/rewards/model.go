package rewards

import (
	"time"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/money"
)

// Account is a customer's loyalty state.
type Account struct {
	UserID string `json:"user_id"`
	Points int64  `json:"points"`

	// Birthday drives the annual free-item reward. Year is not stored.
	BirthdayMonth int `json:"birthday_month,omitempty"`
	BirthdayDay   int `json:"birthday_day,omitempty"`

	// LastBirthdayRewardYear guards the once-per-year redemption.
	LastBirthdayRewardYear int `json:"last_birthday_reward_year,omitempty"`
}

// GiftCard carries a prepaid balance. The code doubles as the id.
type GiftCard struct {
	Code      string      `json:"code"`
	Balance   money.Cents `json:"balance"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
}

// PointsPerDollar is the accrual rate on the discounted subtotal.
const PointsPerDollar = 1

// RedeemThreshold is the balance needed to claim the points reward.
const RedeemThreshold = 100
