package pricing

import "github.com/khues-restaurant/khues-restaurant-sub002/internal/money"

// Config carries the numbers that used to hide as constants spread over
// two calculators. The production values live in env and are threaded
// in from main.
type Config struct {
	// TaxRateMilliPercent is the compound local sales tax in
	// thousandths of a percent. 9875 = 9.875%.
	TaxRateMilliPercent int64
}

// DefaultConfig is the production rate for the restaurant's locality.
func DefaultConfig() Config {
	return Config{TaxRateMilliPercent: 9875}
}

// CartInput is the order-level slice of the cart the full price
// breakdown needs beyond the line items themselves.
type CartInput struct {
	Items []Item

	// TipPercentage wins over TipValue when non-nil.
	TipPercentage *int64
	TipValue      money.Cents

	// DiscountID references the active discount set; ids that resolve
	// to nothing are silently ignored.
	DiscountID *string
}

// RelativeTotal sums the cart lines: per-unit listed price (zero for a
// reward line, birthday or points), plus customization adjustments,
// times quantity. On a reward line only positive adjustments count, so
// a reward line can never price below zero.
func RelativeTotal(items []Item, choices map[string]CustomizationChoice) money.Cents {
	var total money.Cents

	for _, it := range items {
		reward := it.BirthdayReward || it.PointReward

		unit := it.Price
		if reward {
			unit = 0
		}

		for _, choiceID := range it.Customizations {
			ch, ok := choices[choiceID]
			if !ok {
				continue
			}
			if reward && ch.PriceAdjustment < 0 {
				continue
			}
			unit += ch.PriceAdjustment
		}

		total += unit * money.Cents(it.Quantity)
	}

	return total
}

// TotalCartPrices produces the full subtotal/tax/tip/total breakdown.
// The cart-level discount (when present in the active set) reduces the
// subtotal first, tax applies to the discounted subtotal, and the tip
// rides on top. Every output is clamped non-negative.
func TotalCartPrices(cfg Config, in CartInput, choices map[string]CustomizationChoice, active map[string]Discount) Breakdown {
	subtotal := RelativeTotal(in.Items, choices)

	if in.DiscountID != nil {
		if d, ok := active[*in.DiscountID]; ok {
			subtotal = applyCartDiscount(subtotal, d)
		}
	}
	subtotal = money.ClampZero(subtotal)

	var tip money.Cents
	if in.TipPercentage != nil {
		tip = money.ClampZero(money.Percent(subtotal, *in.TipPercentage))
	} else {
		tip = money.ClampZero(in.TipValue)
	}

	tax := money.MilliPercent(subtotal, cfg.TaxRateMilliPercent)

	return Breakdown{
		Subtotal: subtotal,
		Tax:      tax,
		Tip:      tip,
		Total:    subtotal + tax + tip,
	}
}

// applyCartDiscount handles the kinds that act on the whole cart.
// Points and birthday rewards price individual lines instead and are
// no-ops here.
func applyCartDiscount(subtotal money.Cents, d Discount) money.Cents {
	switch d.Kind {
	case KindSpendXSaveY:
		if subtotal >= d.Threshold {
			return subtotal - d.Amount
		}
	case KindPercentOff:
		return subtotal - money.Percent(subtotal, d.Percent)
	case KindFlatOff:
		return subtotal - d.Amount
	}
	return subtotal
}
