package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pftrack/finance-service/internal/models"
)

// Rule thresholds
var (
	overspendRatio     = decimal.RequireFromString("1.2") // vs last month
	debtIncomeRatio    = decimal.RequireFromString("0.4") // debt payments vs income
	concentrationRatio = decimal.RequireFromString("0.4") // top category vs total expenses
	lowSavingsRate     = decimal.NewFromInt(10)           // percent
	highSavingsRate    = decimal.NewFromInt(30)           // percent
	hundred            = decimal.NewFromInt(100)
)

// Snapshot is a user's aggregated financial data for one analysis window.
// All amounts are current-month unless stated otherwise.
type Snapshot struct {
	UserID            int64
	Expenses          decimal.Decimal
	Income            decimal.Decimal
	LastMonthExpenses decimal.Decimal
	CategoryExpenses  map[string]decimal.Decimal
	Loans             []models.Loan
	Financings        []models.Financing
}

// An insightRule inspects a snapshot and returns an insight if its condition
// holds, nil otherwise. Rules are independent and side-effect free.
type insightRule func(Snapshot) *models.FinancialInsight

// insightRules is evaluated in this order on every generation run
var insightRules = []insightRule{
	ruleOverspending,
	ruleSavingsRate,
	ruleDebtBurden,
	ruleCategoryConcentration,
}

// ruleOverspending fires when current expenses exceed last month's by more
// than 20%. A zero last month with any spending at all trips the rule.
func ruleOverspending(s Snapshot) *models.FinancialInsight {
	if !s.Expenses.GreaterThan(s.LastMonthExpenses.Mul(overspendRatio)) {
		return nil
	}
	return &models.FinancialInsight{
		UserID: s.UserID,
		Title:  "Spending above average",
		Description: fmt.Sprintf("Your expenses this month (R$ %s) are more than 20%% above last month. Consider reviewing your spending.",
			s.Expenses.StringFixed(2)),
		Type:     models.InsightWarning,
		Priority: 5,
		Metadata: map[string]any{
			"expenses":          s.Expenses.String(),
			"lastMonthExpenses": s.LastMonthExpenses.String(),
		},
	}
}

// ruleSavingsRate suggests action below 10% and congratulates at 30% or more.
// The band in between is deliberately silent.
func ruleSavingsRate(s Snapshot) *models.FinancialInsight {
	if !s.Income.IsPositive() {
		return nil
	}
	savingsRate := s.Income.Sub(s.Expenses).Div(s.Income).Mul(hundred)

	if savingsRate.LessThan(lowSavingsRate) {
		return &models.FinancialInsight{
			UserID: s.UserID,
			Title:  "Low savings rate",
			Description: fmt.Sprintf("You are saving only %s%% of your income. We recommend at least 20%%.",
				savingsRate.StringFixed(1)),
			Type:     models.InsightSuggestion,
			Priority: 4,
			Metadata: map[string]any{
				"savingsRate": savingsRate.String(),
				"income":      s.Income.String(),
				"expenses":    s.Expenses.String(),
			},
		}
	}

	if savingsRate.GreaterThanOrEqual(highSavingsRate) {
		return &models.FinancialInsight{
			UserID: s.UserID,
			Title:  "Excellent savings rate!",
			Description: fmt.Sprintf("Congratulations! You are saving %s%% of your income. Keep it up!",
				savingsRate.StringFixed(1)),
			Type:     models.InsightSuccess,
			Priority: 3,
			Metadata: map[string]any{"savingsRate": savingsRate.String()},
		}
	}

	return nil
}

// ruleDebtBurden fires when monthly loan and financing payments exceed 40% of
// income. A loan with no remaining installments contributes nothing, even if
// the store still reports it active.
func ruleDebtBurden(s Snapshot) *models.FinancialInsight {
	if !s.Income.IsPositive() {
		return nil
	}

	totalDebtPayment := decimal.Zero
	for _, loan := range s.Loans {
		remaining := loan.Installments - loan.PaidInstallments
		if remaining <= 0 {
			continue
		}
		installment := loan.RemainingAmount.Div(decimal.NewFromInt(int64(remaining)))
		totalDebtPayment = totalDebtPayment.Add(installment)
	}
	for _, f := range s.Financings {
		totalDebtPayment = totalDebtPayment.Add(f.MonthlyPayment)
	}

	if !totalDebtPayment.GreaterThan(s.Income.Mul(debtIncomeRatio)) {
		return nil
	}

	percentage := totalDebtPayment.Div(s.Income).Mul(hundred)
	return &models.FinancialInsight{
		UserID: s.UserID,
		Title:  "High debt commitment",
		Description: fmt.Sprintf("Your loan and financing installments represent %s%% of your income. Consider renegotiating.",
			percentage.StringFixed(1)),
		Type:     models.InsightWarning,
		Priority: 5,
		Metadata: map[string]any{
			"totalDebtPayment": totalDebtPayment.String(),
			"income":           s.Income.String(),
			"percentage":       percentage.String(),
		},
	}
}

// ruleCategoryConcentration fires when the largest expense category exceeds
// 40% of total expenses. Ties resolve to the lexicographically smaller name
// so repeated runs over the same data agree.
func ruleCategoryConcentration(s Snapshot) *models.FinancialInsight {
	if !s.Expenses.IsPositive() {
		return nil
	}

	var topCategory string
	topAmount := decimal.Zero
	for category, amount := range s.CategoryExpenses {
		if amount.GreaterThan(topAmount) || (amount.Equal(topAmount) && (topCategory == "" || category < topCategory)) {
			topCategory = category
			topAmount = amount
		}
	}

	if topCategory == "" || !topAmount.GreaterThan(s.Expenses.Mul(concentrationRatio)) {
		return nil
	}

	percentage := topAmount.Div(s.Expenses).Mul(hundred)
	return &models.FinancialInsight{
		UserID: s.UserID,
		Title:  fmt.Sprintf("High spending on %s", topCategory),
		Description: fmt.Sprintf("You spent R$ %s on %s, representing %s%% of your total expenses.",
			topAmount.StringFixed(2), topCategory, percentage.StringFixed(1)),
		Type:     models.InsightInfo,
		Priority: 3,
		Metadata: map[string]any{
			"category":   topCategory,
			"amount":     topAmount.String(),
			"percentage": percentage.String(),
		},
	}
}
