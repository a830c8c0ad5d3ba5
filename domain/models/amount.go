package models

import (
	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places carried by every monetary
// amount in the engine. Input with more places is rejected rather than
// rounded.
const AmountScale = 4

// Amount is a fixed-precision monetary value. It wraps a decimal so that
// repeated addition and subtraction never accumulate floating-point drift.
type Amount = decimal.Decimal

// Zero is the additive identity for Amount.
var Zero = decimal.Zero

// ParseAmount parses a monetary amount from text. It fails with
// ErrParseAmount on non-numeric input and on input carrying more than
// AmountScale decimal places.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrParseAmount
	}

	if d.Exponent() < -AmountScale {
		return decimal.Zero, ErrParseAmount
	}

	return d, nil
}

// FormatAmount renders an amount at the fixed precision used internally.
func FormatAmount(a Amount, places int32) string {
	return a.StringFixed(places)
}
