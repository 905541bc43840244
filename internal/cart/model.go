package cart

import (
	"sort"
	"strings"
	"time"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/money"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/pricing"
)

// OrderDetails is the in-progress order aggregate. It is validated,
// priced, and persisted as one value: every update replaces the whole
// thing (last write wins), never a field at a time.
type OrderDetails struct {
	DatetimeToPickup          time.Time      `json:"datetime_to_pickup"`
	Items                     []pricing.Item `json:"items"`
	TipPercentage             *int64         `json:"tip_percentage"`
	TipValue                  money.Cents    `json:"tip_value"`
	IncludeNapkinsAndUtensils bool           `json:"include_napkins_and_utensils"`
	DiscountID                *string        `json:"discount_id"`
}

// MergeDuplicateItems collapses lines that differ only in quantity:
// same item, same customization choices, same discount and reward
// flags. First-seen order is preserved.
func MergeDuplicateItems(items []pricing.Item) []pricing.Item {
	var out []pricing.Item
	index := make(map[string]int)

	for _, it := range items {
		key := lineKey(it)
		if i, ok := index[key]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		index[key] = len(out)
		out = append(out, it)
	}
	return out
}

func lineKey(it pricing.Item) string {
	parts := make([]string, 0, len(it.Customizations))
	for cat, choice := range it.Customizations {
		parts = append(parts, cat+"="+choice)
	}
	sort.Strings(parts)

	var b strings.Builder
	b.WriteString(it.ItemID)
	b.WriteByte('|')
	b.WriteString(strings.Join(parts, ","))
	b.WriteByte('|')
	if it.DiscountID != nil {
		b.WriteString(*it.DiscountID)
	}
	b.WriteByte('|')
	if it.PointReward {
		b.WriteByte('p')
	}
	if it.BirthdayReward {
		b.WriteByte('b')
	}
	if it.IncludeDietaryRestrictions {
		b.WriteByte('d')
	}
	b.WriteByte('|')
	b.WriteString(it.SpecialInstructions)
	return b.String()
}
