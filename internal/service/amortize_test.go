package service

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyPaymentZeroRate(t *testing.T) {
	principal := decimal.NewFromInt(12000)

	for _, months := range []int{1, 3, 12, 48, 360} {
		got := MonthlyPayment(principal, decimal.Zero, months)
		want := principal.Div(decimal.NewFromInt(int64(months)))
		assert.True(t, got.Equal(want), "months=%d: got %s, want %s", months, got, want)
	}
}

func TestMonthlyPaymentKnownValue(t *testing.T) {
	// 100k at 6% a.a. over 30 years: the textbook answer is 599.55
	principal := decimal.NewFromInt(100000)
	monthlyRate := decimal.RequireFromString("0.005")

	payment := MonthlyPayment(principal, monthlyRate, 360)
	assert.InDelta(t, 599.55, payment.InexactFloat64(), 0.01)
}

func TestMonthlyPaymentPresentValueIdentity(t *testing.T) {
	// Discounting all payments at the monthly rate must recover the principal
	principal := decimal.NewFromInt(10000)
	monthlyRate := decimal.RequireFromString("0.01")
	months := 24

	payment := MonthlyPayment(principal, monthlyRate, months).InexactFloat64()

	presentValue := 0.0
	for k := 1; k <= months; k++ {
		presentValue += payment / math.Pow(1.01, float64(k))
	}
	assert.InDelta(t, 10000, presentValue, 0.01)
}

func TestMonthlyPaymentSingleInstallment(t *testing.T) {
	// One installment at interest: principal plus one month of interest
	principal := decimal.NewFromInt(1000)
	monthlyRate := decimal.RequireFromString("0.02")

	payment := MonthlyPayment(principal, monthlyRate, 1)
	assert.InDelta(t, 1020, payment.InexactFloat64(), 0.001)
}
