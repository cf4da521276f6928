package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pftrack/finance-service/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRuleOverspending(t *testing.T) {
	tests := []struct {
		name      string
		expenses  string
		lastMonth string
		fires     bool
	}{
		{"just above threshold", "1201", "1000", true},
		{"exactly at threshold", "1200", "1000", false},
		{"below threshold", "1100", "1000", false},
		{"no history but spending", "100", "0", true},
		{"no history no spending", "0", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := ruleOverspending(Snapshot{
				UserID:            1,
				Expenses:          dec(tt.expenses),
				LastMonthExpenses: dec(tt.lastMonth),
			})
			if !tt.fires {
				assert.Nil(t, insight)
				return
			}
			require.NotNil(t, insight)
			assert.Equal(t, models.InsightWarning, insight.Type)
			assert.Equal(t, 5, insight.Priority)
			assert.Equal(t, tt.expenses, insight.Metadata["expenses"])
			assert.Equal(t, tt.lastMonth, insight.Metadata["lastMonthExpenses"])
		})
	}
}

func TestRuleSavingsRateBands(t *testing.T) {
	income := dec("1000")

	low := ruleSavingsRate(Snapshot{UserID: 1, Income: income, Expenses: dec("950")})
	require.NotNil(t, low)
	assert.Equal(t, models.InsightSuggestion, low.Type)
	assert.Equal(t, 4, low.Priority)
	assert.Equal(t, "5", low.Metadata["savingsRate"])

	high := ruleSavingsRate(Snapshot{UserID: 1, Income: income, Expenses: dec("650")})
	require.NotNil(t, high)
	assert.Equal(t, models.InsightSuccess, high.Type)
	assert.Equal(t, 3, high.Priority)

	middle := ruleSavingsRate(Snapshot{UserID: 1, Income: income, Expenses: dec("800")})
	assert.Nil(t, middle, "the 10-30 percent band is silent")

	boundary := ruleSavingsRate(Snapshot{UserID: 1, Income: income, Expenses: dec("700")})
	require.NotNil(t, boundary, "exactly 30 percent counts as success")
	assert.Equal(t, models.InsightSuccess, boundary.Type)
}

func TestRuleSavingsRateSkippedWithoutIncome(t *testing.T) {
	assert.Nil(t, ruleSavingsRate(Snapshot{UserID: 1, Expenses: dec("500")}))
}

func TestRuleDebtBurdenBoundary(t *testing.T) {
	income := dec("1000")

	over := ruleDebtBurden(Snapshot{
		UserID: 1,
		Income: income,
		Loans: []models.Loan{
			{RemainingAmount: dec("400.01"), Installments: 1, PaidInstallments: 0},
		},
	})
	require.NotNil(t, over)
	assert.Equal(t, models.InsightWarning, over.Type)
	assert.Equal(t, 5, over.Priority)
	assert.Equal(t, "400.01", over.Metadata["totalDebtPayment"])

	atLimit := ruleDebtBurden(Snapshot{
		UserID: 1,
		Income: income,
		Loans: []models.Loan{
			{RemainingAmount: dec("400.00"), Installments: 1, PaidInstallments: 0},
		},
	})
	assert.Nil(t, atLimit, "exactly 40 percent does not fire")
}

func TestRuleDebtBurdenCombinesLoansAndFinancings(t *testing.T) {
	insight := ruleDebtBurden(Snapshot{
		UserID: 1,
		Income: dec("1000"),
		Loans: []models.Loan{
			// 2400 over 12 remaining installments: 200/month
			{RemainingAmount: dec("2400"), Installments: 24, PaidInstallments: 12},
		},
		Financings: []models.Financing{
			{MonthlyPayment: dec("250")},
		},
	})
	require.NotNil(t, insight)
	assert.Equal(t, "450", insight.Metadata["totalDebtPayment"])
	assert.Equal(t, "45", insight.Metadata["percentage"])
}

func TestRuleDebtBurdenIgnoresFullyPaidActiveLoan(t *testing.T) {
	// A paid-off loan the store still reports as active must not divide by zero
	insight := ruleDebtBurden(Snapshot{
		UserID: 1,
		Income: dec("1000"),
		Loans: []models.Loan{
			{RemainingAmount: dec("5000"), Installments: 12, PaidInstallments: 12},
		},
	})
	assert.Nil(t, insight)
}

func TestRuleDebtBurdenSkippedWithoutIncome(t *testing.T) {
	insight := ruleDebtBurden(Snapshot{
		UserID: 1,
		Loans: []models.Loan{
			{RemainingAmount: dec("1000"), Installments: 10, PaidInstallments: 0},
		},
	})
	assert.Nil(t, insight)
}

func TestRuleCategoryConcentration(t *testing.T) {
	concentrated := ruleCategoryConcentration(Snapshot{
		UserID:   1,
		Expenses: dec("1000"),
		CategoryExpenses: map[string]decimal.Decimal{
			"food":      dec("500"),
			"transport": dec("300"),
			"other":     dec("200"),
		},
	})
	require.NotNil(t, concentrated)
	assert.Equal(t, models.InsightInfo, concentrated.Type)
	assert.Equal(t, 3, concentrated.Priority)
	assert.Equal(t, "High spending on food", concentrated.Title)
	assert.Equal(t, "food", concentrated.Metadata["category"])
	assert.Equal(t, "50", concentrated.Metadata["percentage"])

	balanced := ruleCategoryConcentration(Snapshot{
		UserID:   1,
		Expenses: dec("1000"),
		CategoryExpenses: map[string]decimal.Decimal{
			"food":      dec("400"),
			"transport": dec("300"),
			"other":     dec("300"),
		},
	})
	assert.Nil(t, balanced, "exactly 40 percent does not fire")
}

func TestRuleCategoryConcentrationTieBreaksLexicographically(t *testing.T) {
	for i := 0; i < 10; i++ {
		insight := ruleCategoryConcentration(Snapshot{
			UserID:   1,
			Expenses: dec("1000"),
			CategoryExpenses: map[string]decimal.Decimal{
				"transport": dec("500"),
				"food":      dec("500"),
			},
		})
		require.NotNil(t, insight)
		assert.Equal(t, "food", insight.Metadata["category"])
	}
}

func TestRuleCategoryConcentrationSkippedWithoutExpenses(t *testing.T) {
	assert.Nil(t, ruleCategoryConcentration(Snapshot{UserID: 1, Expenses: decimal.Zero}))
}
