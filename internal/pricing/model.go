package pricing

import "github.com/khues-restaurant/khues-restaurant-sub002/internal/money"

// Item is one cart line as the calculator sees it. Quantity is assumed
// >= 1 here; the cart-mutation layer rejects anything else upstream.
type Item struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`

	// Listed price per unit, before customizations.
	Price money.Cents `json:"price"`

	// customization category id -> chosen choice id
	Customizations map[string]string `json:"customizations,omitempty"`

	DiscountID                 *string `json:"discount_id,omitempty"`
	PointReward                bool    `json:"point_reward,omitempty"`
	BirthdayReward             bool    `json:"birthday_reward,omitempty"`
	IncludeDietaryRestrictions bool    `json:"include_dietary_restrictions,omitempty"`
	SpecialInstructions        string  `json:"special_instructions,omitempty"`
}

// CustomizationChoice is read-only reference data joined against
// Item.Customizations at pricing time. PriceAdjustment may be negative.
type CustomizationChoice struct {
	ID              string      `json:"id"`
	CategoryID      string      `json:"category_id"`
	Name            string      `json:"name"`
	PriceAdjustment money.Cents `json:"price_adjustment"`
}

// Breakdown is the priced cart. All fields are non-negative cents.
type Breakdown struct {
	Subtotal money.Cents `json:"subtotal"`
	Tax      money.Cents `json:"tax"`
	Tip      money.Cents `json:"tip"`
	Total    money.Cents `json:"total"`
}
