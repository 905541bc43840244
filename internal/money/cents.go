package money

// Cents is an exact amount of US currency in integer cents.
// All price math in the application happens on this type so that
// no floating-point value ever touches a customer total.
type Cents int64

// Percent applies a whole-number percentage to an amount,
// rounding half-up on the scaled integer (2200 at 15% -> 330).
func Percent(amount Cents, percent int64) Cents {
	scaled := int64(amount) * percent
	if scaled < 0 {
		return Cents(-((-scaled + 50) / 100))
	}
	return Cents((scaled + 50) / 100)
}

// MilliPercent applies a rate expressed in thousandths of a percent
// (9875 = 9.875%), rounding half-up.
func MilliPercent(amount Cents, rate int64) Cents {
	scaled := int64(amount) * rate
	if scaled < 0 {
		return Cents(-((-scaled + 50000) / 100000))
	}
	return Cents((scaled + 50000) / 100000)
}

// ClampZero floors an amount at zero.
func ClampZero(amount Cents) Cents {
	if amount < 0 {
		return 0
	}
	return amount
}
