package models

import "github.com/shopspring/decimal"

// CategoryTotal represents the total spent in one expense category
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// FinancialSummary represents the current-month financial overview
type FinancialSummary struct {
	TotalIncome          decimal.Decimal `json:"total_income"`
	TotalExpenses        decimal.Decimal `json:"total_expenses"`
	Balance              decimal.Decimal `json:"balance"`
	SavingsRate          decimal.Decimal `json:"savings_rate"` // percent
	TopExpenseCategories []CategoryTotal `json:"top_expense_categories"`
}
