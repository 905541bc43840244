package pricing

import (
	"strconv"
	"strings"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/money"
)

// DiscountKind is the closed set of discount behaviors. The legacy data
// encoded the kind in the display name ("10% off", "Spend $35, Save $5");
// ResolveKind parses that once when the reference row is loaded so the
// calculators never do string matching.
type DiscountKind string

const (
	KindUnknown        DiscountKind = "UNKNOWN"
	KindFlatOff        DiscountKind = "FLAT_OFF"
	KindPercentOff     DiscountKind = "PERCENT_OFF"
	KindSpendXSaveY    DiscountKind = "SPEND_X_SAVE_Y"
	KindPointsReward   DiscountKind = "POINTS_REWARD"
	KindBirthdayReward DiscountKind = "BIRTHDAY_REWARD"
)

// Discount is one row of the reference set with its kind resolved.
type Discount struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Kind DiscountKind `json:"kind"`

	// Percent is set for PERCENT_OFF.
	Percent int64 `json:"percent,omitempty"`

	// Amount is the flat reduction for FLAT_OFF and SPEND_X_SAVE_Y.
	Amount money.Cents `json:"amount,omitempty"`

	// Threshold is the qualifying subtotal for SPEND_X_SAVE_Y.
	Threshold money.Cents `json:"threshold,omitempty"`
}

// ResolveKind classifies a legacy display name. Unrecognized names come
// back as KindUnknown, which the calculators treat as "no discount".
func ResolveKind(name string) Discount {
	d := Discount{Name: name, Kind: KindUnknown}
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "birthday"):
		d.Kind = KindBirthdayReward

	case strings.Contains(lower, "points"):
		d.Kind = KindPointsReward

	case strings.Contains(lower, "spend"):
		dollars := parseDollarAmounts(name)
		if len(dollars) >= 2 {
			d.Kind = KindSpendXSaveY
			d.Threshold = dollars[0]
			d.Amount = dollars[1]
		}

	case strings.Contains(lower, "% off"):
		if pct, ok := parseLeadingPercent(lower); ok {
			d.Kind = KindPercentOff
			d.Percent = pct
		}

	case strings.HasPrefix(lower, "$") && strings.Contains(lower, "off"):
		dollars := parseDollarAmounts(name)
		if len(dollars) == 1 {
			d.Kind = KindFlatOff
			d.Amount = dollars[0]
		}
	}

	return d
}

// parseDollarAmounts pulls every "$N" or "$N.NN" out of a name, in
// order, as cents.
func parseDollarAmounts(name string) []money.Cents {
	var out []money.Cents
	for i := 0; i < len(name); i++ {
		if name[i] != '$' {
			continue
		}
		j := i + 1
		for j < len(name) && (isDigit(name[j]) || name[j] == '.') {
			j++
		}
		if j == i+1 {
			continue
		}
		if v, err := strconv.ParseFloat(name[i+1:j], 64); err == nil {
			out = append(out, money.Cents(v*100+0.5))
		}
		i = j
	}
	return out
}

// parseLeadingPercent reads the integer in front of "% off".
func parseLeadingPercent(lower string) (int64, bool) {
	idx := strings.Index(lower, "% off")
	if idx <= 0 {
		return 0, false
	}
	start := idx
	for start > 0 && isDigit(lower[start-1]) {
		start--
	}
	if start == idx {
		return 0, false
	}
	pct, err := strconv.ParseInt(lower[start:idx], 10, 64)
	if err != nil {
		return 0, false
	}
	return pct, true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
