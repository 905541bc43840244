package pricing

import "testing"

func TestResolveKind(t *testing.T) {
	cases := []struct {
		name      string
		kind      DiscountKind
		percent   int64
		amount    int64
		threshold int64
	}{
		{"10% off", KindPercentOff, 10, 0, 0},
		{"20% off", KindPercentOff, 20, 0, 0},
		{"Spend $35, Save $5", KindSpendXSaveY, 0, 500, 3500},
		{"Spend $50, Save $7.50", KindSpendXSaveY, 0, 750, 5000},
		{"$3 off", KindFlatOff, 0, 300, 0},
		{"Loyalty Points Redemption", KindPointsReward, 0, 0, 0},
		{"Birthday Treat", KindBirthdayReward, 0, 0, 0},
		{"Mystery Deal", KindUnknown, 0, 0, 0},
		{"", KindUnknown, 0, 0, 0},
	}

	for _, c := range cases {
		d := ResolveKind(c.name)
		if d.Kind != c.kind {
			t.Errorf("%q: kind = %s, want %s", c.name, d.Kind, c.kind)
			continue
		}
		if d.Percent != c.percent {
			t.Errorf("%q: percent = %d, want %d", c.name, d.Percent, c.percent)
		}
		if int64(d.Amount) != c.amount {
			t.Errorf("%q: amount = %d, want %d", c.name, d.Amount, c.amount)
		}
		if int64(d.Threshold) != c.threshold {
			t.Errorf("%q: threshold = %d, want %d", c.name, d.Threshold, c.threshold)
		}
	}
}
