package generator

import "github.com/shopspring/decimal"

// exactExponent is below the smallest float64 binary exponent, so
// NewFromFloatWithExponent keeps every bit of the value.
const exactExponent = -1075

// RoundCents rounds the exact binary value of v to two decimal places,
// ties to even.
func RoundCents(v float64) float64 {
	return decimal.NewFromFloatWithExponent(v, exactExponent).RoundBank(2).InexactFloat64()
}

// GrossValue is round(quantity * unitPrice, 2) on the float product.
func GrossValue(quantity int64, unitPrice float64) float64 {
	return RoundCents(float64(quantity) * unitPrice)
}

// NetValue is round(gross * (1 - discount), 2) on the float product.
func NetValue(gross, discount float64) float64 {
	return RoundCents(gross * (1 - discount))
}
