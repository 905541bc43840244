package menu

import (
	"time"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/money"
)

// Item is one orderable menu entry. Availability is the admin's
// sold-out toggle; unavailable items stay in the database but drop out
// of the public listing.
type Item struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category"`
	Price       money.Cents `json:"price"`
	Available   bool        `json:"available"`
	PhotoURL    *string     `json:"photo_url,omitempty"`
	ListOrder   int         `json:"list_order"`
	CreatedAt   time.Time   `json:"created_at"`
}

// CustomizationCategory groups the choices a customer picks from for
// an item ("Protein", "Spice level").
type CustomizationCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
