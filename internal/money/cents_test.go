package money

import "testing"

func TestPercent(t *testing.T) {
	cases := []struct {
		amount  Cents
		percent int64
		want    Cents
	}{
		{2200, 15, 330},
		{1000, 10, 100},
		{999, 10, 100},  // 99.9 rounds up
		{994, 10, 99},   // 99.4 rounds down
		{995, 10, 100},  // half rounds up
		{0, 15, 0},
		{100, 0, 0},
	}

	for _, c := range cases {
		got := Percent(c.amount, c.percent)
		if got != c.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", c.amount, c.percent, got, c.want)
		}
	}
}

func TestMilliPercent(t *testing.T) {
	cases := []struct {
		amount Cents
		rate   int64
		want   Cents
	}{
		{2200, 9875, 217},  // 217.25 rounds down
		{3000, 9875, 296},  // 296.25 rounds down
		{1000, 7000, 70},   // 7%
		{10000, 9875, 988}, // 987.5 half rounds up
		{0, 9875, 0},
	}

	for _, c := range cases {
		got := MilliPercent(c.amount, c.rate)
		if got != c.want {
			t.Errorf("MilliPercent(%d, %d) = %d, want %d", c.amount, c.rate, got, c.want)
		}
	}
}

func TestClampZero(t *testing.T) {
	if got := ClampZero(-500); got != 0 {
		t.Errorf("ClampZero(-500) = %d, want 0", got)
	}
	if got := ClampZero(500); got != 500 {
		t.Errorf("ClampZero(500) = %d, want 500", got)
	}
}
