package service

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthlyPayment computes the fixed installment that retires principal plus
// interest over the given number of monthly periods:
//
//	P * r * (1+r)^n / ((1+r)^n - 1)
//
// With a zero rate the payment is a straight split of the principal.
// monthlyRate is a fraction (annual percent / 100 / 12). The power term is
// evaluated in float64; the result comes back as a decimal for monetary use.
// Callers must reject months < 1 and negative principal beforehand.
func MonthlyPayment(principal decimal.Decimal, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	if monthlyRate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(months)))
	}

	r := monthlyRate.InexactFloat64()
	factor := math.Pow(1+r, float64(months))
	payment := principal.InexactFloat64() * r * factor / (factor - 1)
	return decimal.NewFromFloat(payment)
}
