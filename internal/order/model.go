package order

import (
	"time"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/money"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/pricing"
)

// Statuses an order moves through. CANCELLED is reachable until the
// food is ready.
const (
	StatusReceived  = "RECEIVED"
	StatusPreparing = "PREPARING"
	StatusReady     = "READY"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

var nextStatuses = map[string][]string{
	StatusReceived:  {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted},
}

// ValidTransition reports whether an admin status change is allowed.
func ValidTransition(from, to string) bool {
	for _, s := range nextStatuses[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Order is a placed, priced, immutable record of a checkout.
type Order struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Status string `json:"status"`

	IsASAP   bool      `json:"is_asap"`
	PickupAt time.Time `json:"pickup_at"`

	Items                     []pricing.Item `json:"items"`
	IncludeNapkinsAndUtensils bool           `json:"include_napkins_and_utensils"`

	Subtotal money.Cents `json:"subtotal"`
	Tax      money.Cents `json:"tax"`
	Tip      money.Cents `json:"tip"`
	Total    money.Cents `json:"total"`

	// GiftCardApplied reduced AmountDue at checkout; Total is untouched.
	GiftCardApplied money.Cents `json:"gift_card_applied,omitempty"`
	AmountDue       money.Cents `json:"amount_due"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
