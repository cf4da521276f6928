package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pftrack/finance-service/internal/models"
)

// GenerateInsights analyzes the user's finances for the month containing now
// and persists one insight per matching rule. Generation is append-only and
// not deduplicated: repeated runs over unchanged data produce repeated
// insights, which is acceptable for the daily scheduled sweep. A store
// failure aborts the run; insights saved before the failure remain.
func (s *Service) GenerateInsights(userID int64, now time.Time) error {
	snapshot, err := s.buildSnapshot(userID, now)
	if err != nil {
		return err
	}

	for _, rule := range insightRules {
		insight := rule(snapshot)
		if insight == nil {
			continue
		}
		if err := s.store.SaveInsight(insight); err != nil {
			return fmt.Errorf("failed to save insight for user %d: %w", userID, err)
		}
		s.log.Infof("Insight generated for user %d: [%s] %s", userID, insight.Type, insight.Title)

		if insight.Priority >= 5 {
			s.notifyInsight(insight)
		}
	}
	return nil
}

// GenerateInsightsForAllUsers runs insight generation for every registered
// user. Per-user failures are logged and do not stop the sweep.
func (s *Service) GenerateInsightsForAllUsers(now time.Time) {
	userIDs, err := s.store.ListUserIDs()
	if err != nil {
		s.log.Errorf("Failed to list users for insight generation: %v", err)
		return
	}

	for _, userID := range userIDs {
		if err := s.GenerateInsights(userID, now); err != nil {
			s.log.Errorf("Insight generation failed for user %d: %v", userID, err)
		}
	}
	s.log.Infof("Insight generation sweep finished for %d users", len(userIDs))
}

// FinancialSummary computes the current-month overview without persisting
// anything.
func (s *Service) FinancialSummary(userID int64, now time.Time) (*models.FinancialSummary, error) {
	start, end := monthWindow(now)

	transactions, err := s.store.FindTransactionsByUserAndDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	incomes, err := s.store.FindIncomesByUser(userID)
	if err != nil {
		return nil, err
	}

	totalExpenses, categoryExpenses := sumExpenses(transactions)
	totalIncome := sumIncomes(incomes, start, end)
	balance := totalIncome.Sub(totalExpenses)

	savingsRate := decimal.Zero
	if totalIncome.IsPositive() {
		savingsRate = balance.Div(totalIncome).Mul(hundred)
	}

	return &models.FinancialSummary{
		TotalIncome:          totalIncome,
		TotalExpenses:        totalExpenses,
		Balance:              balance,
		SavingsRate:          savingsRate,
		TopExpenseCategories: topCategories(categoryExpenses, 5),
	}, nil
}

// Insights lists the user's insights ordered by priority then recency
func (s *Service) Insights(userID int64) ([]models.FinancialInsight, error) {
	return s.store.FindInsightsByUser(userID)
}

// UnreadInsights lists the user's unread insights
func (s *Service) UnreadInsights(userID int64) ([]models.FinancialInsight, error) {
	return s.store.FindUnreadInsightsByUser(userID)
}

// MarkInsightRead flags one of the user's insights as read
func (s *Service) MarkInsightRead(userID, insightID int64) error {
	return s.store.MarkInsightRead(userID, insightID)
}

func (s *Service) buildSnapshot(userID int64, now time.Time) (Snapshot, error) {
	start, end := monthWindow(now)
	prevStart, prevEnd := monthWindow(start.AddDate(0, -1, 0))

	transactions, err := s.store.FindTransactionsByUserAndDateRange(userID, start, end)
	if err != nil {
		return Snapshot{}, err
	}
	lastMonthTransactions, err := s.store.FindTransactionsByUserAndDateRange(userID, prevStart, prevEnd)
	if err != nil {
		return Snapshot{}, err
	}
	incomes, err := s.store.FindIncomesByUser(userID)
	if err != nil {
		return Snapshot{}, err
	}
	loans, err := s.store.FindActiveLoansByUser(userID)
	if err != nil {
		return Snapshot{}, err
	}
	financings, err := s.store.FindActiveFinancingsByUser(userID)
	if err != nil {
		return Snapshot{}, err
	}

	return newSnapshot(userID, start, end, transactions, lastMonthTransactions, incomes, loans, financings), nil
}

// newSnapshot aggregates fetched records into the rule inputs
func newSnapshot(userID int64, start, end time.Time, transactions, lastMonthTransactions []models.Transaction,
	incomes []models.Income, loans []models.Loan, financings []models.Financing) Snapshot {

	expenses, categoryExpenses := sumExpenses(transactions)
	lastMonthExpenses, _ := sumExpenses(lastMonthTransactions)

	return Snapshot{
		UserID:            userID,
		Expenses:          expenses,
		Income:            sumIncomes(incomes, start, end),
		LastMonthExpenses: lastMonthExpenses,
		CategoryExpenses:  categoryExpenses,
		Loans:             loans,
		Financings:        financings,
	}
}

// monthWindow returns the inclusive bounds of the calendar month containing t
func monthWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

func sumExpenses(transactions []models.Transaction) (decimal.Decimal, map[string]decimal.Decimal) {
	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != models.TypeExpense {
			continue
		}
		total = total.Add(t.Amount)
		byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
	}
	return total, byCategory
}

// sumIncomes totals incomes received within [start, end]. Incomes are fetched
// unwindowed and filtered here.
func sumIncomes(incomes []models.Income, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, i := range incomes {
		if i.ReceivedDate.Before(start) || i.ReceivedDate.After(end) {
			continue
		}
		total = total.Add(i.Amount)
	}
	return total
}

// topCategories returns up to n categories by descending amount, ties broken
// by name so the ordering is deterministic.
func topCategories(byCategory map[string]decimal.Decimal, n int) []models.CategoryTotal {
	totals := make([]models.CategoryTotal, 0, len(byCategory))
	for category, amount := range byCategory {
		totals = append(totals, models.CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Amount.Equal(totals[j].Amount) {
			return totals[i].Amount.GreaterThan(totals[j].Amount)
		}
		return totals[i].Category < totals[j].Category
	})
	if len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// notifyInsight emails urgent insights to the user. Delivery is best effort
// and never fails the generation run.
func (s *Service) notifyInsight(insight *models.FinancialInsight) {
	if s.mail == nil {
		return
	}
	user, err := s.store.FindUserByID(insight.UserID)
	if err != nil {
		s.log.Errorf("Failed to look up user %d for insight alert: %v", insight.UserID, err)
		return
	}
	if err := s.mail.SendInsightAlert(user.Email, user.Name, insight); err != nil {
		s.log.Errorf("Failed to send insight alert to %s: %v", user.Email, err)
	}
}
