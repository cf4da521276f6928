package service

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pftrack/finance-service/internal/config"
	"github.com/pftrack/finance-service/internal/models"
)

// fakeStore implements the slice of Store the intelligence engine touches.
// Unimplemented methods panic via the embedded nil interface.
type fakeStore struct {
	Store

	transactions []models.Transaction
	incomes      []models.Income
	loans        []models.Loan
	financings   []models.Financing

	saved     []*models.FinancialInsight
	failAfter int // fail SaveInsight once this many saves succeeded; <0 disables
}

func newFakeStore() *fakeStore {
	return &fakeStore{failAfter: -1}
}

func (f *fakeStore) FindTransactionsByUserAndDateRange(userID int64, start, end time.Time) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, t := range f.transactions {
		if t.UserID != userID || t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeStore) FindIncomesByUser(userID int64) ([]models.Income, error) {
	var out []models.Income
	for _, i := range f.incomes {
		if i.UserID == userID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeStore) FindActiveLoansByUser(userID int64) ([]models.Loan, error) {
	return f.loans, nil
}

func (f *fakeStore) FindActiveFinancingsByUser(userID int64) ([]models.Financing, error) {
	return f.financings, nil
}

func (f *fakeStore) SaveInsight(insight *models.FinancialInsight) error {
	if f.failAfter >= 0 && len(f.saved) >= f.failAfter {
		return errors.New("store unavailable")
	}
	f.saved = append(f.saved, insight)
	return nil
}

func newTestService(store Store) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewService(store, logger, &config.Config{}, nil)
}

// now falls mid-March so both month windows are unambiguous
var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func expenseOn(userID int64, day int, amount, category string) models.Transaction {
	return models.Transaction{
		UserID:   userID,
		Amount:   dec(amount),
		Type:     models.TypeExpense,
		Category: category,
		Date:     time.Date(2025, time.March, day, 10, 0, 0, 0, time.UTC),
	}
}

func TestGenerateInsightsPersistsMatchingRules(t *testing.T) {
	store := newFakeStore()
	store.transactions = []models.Transaction{
		expenseOn(1, 2, "500", "food"),
		expenseOn(1, 5, "300", "transport"),
		expenseOn(1, 9, "150", "other"),
		// last month: 500 total
		{
			UserID: 1, Amount: dec("500"), Type: models.TypeExpense, Category: "food",
			Date: time.Date(2025, time.February, 10, 10, 0, 0, 0, time.UTC),
		},
		// income-typed transactions never count as expenses
		{
			UserID: 1, Amount: dec("2000"), Type: models.TypeIncome, Category: "salary",
			Date: time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC),
		},
	}
	store.incomes = []models.Income{
		{UserID: 1, Amount: dec("1000"), ReceivedDate: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)},
		// outside the current month, must be ignored
		{UserID: 1, Amount: dec("9999"), ReceivedDate: time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC)},
	}
	store.loans = []models.Loan{
		{UserID: 1, RemainingAmount: dec("2400"), Installments: 24, PaidInstallments: 12},
	}
	store.financings = []models.Financing{
		{UserID: 1, MonthlyPayment: dec("250")},
	}

	svc := newTestService(store)
	require.NoError(t, svc.GenerateInsights(1, testNow))

	// expenses 950 vs last month 500 -> overspending
	// savings rate 5% -> suggestion
	// debt 200+250=450 vs income 1000 -> debt warning
	// food 500/950 = 52.6% -> concentration info
	require.Len(t, store.saved, 4)

	types := make([]string, 0, len(store.saved))
	for _, ins := range store.saved {
		types = append(types, ins.Type)
		assert.Equal(t, int64(1), ins.UserID)
		assert.False(t, ins.IsRead, "insights must start unread")
	}
	assert.Equal(t, []string{
		models.InsightWarning,    // overspending
		models.InsightSuggestion, // low savings rate
		models.InsightWarning,    // debt burden
		models.InsightInfo,       // category concentration
	}, types, "rules run in a fixed order")
}

func TestGenerateInsightsQuietMonth(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	require.NoError(t, svc.GenerateInsights(1, testNow))
	assert.Empty(t, store.saved)
}

func TestGenerateInsightsAppendsOnRepeat(t *testing.T) {
	// Generation is append-only with no dedup: a rerun over unchanged data
	// duplicates the whole insight set.
	store := newFakeStore()
	store.transactions = []models.Transaction{expenseOn(1, 3, "100", "food")}

	svc := newTestService(store)
	require.NoError(t, svc.GenerateInsights(1, testNow))
	first := len(store.saved)
	require.Greater(t, first, 0)

	require.NoError(t, svc.GenerateInsights(1, testNow))
	assert.Len(t, store.saved, first*2)
}

func TestGenerateInsightsSaveFailurePropagates(t *testing.T) {
	store := newFakeStore()
	store.transactions = []models.Transaction{expenseOn(1, 3, "950", "food")}
	store.incomes = []models.Income{
		{UserID: 1, Amount: dec("1000"), ReceivedDate: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)},
	}
	store.failAfter = 1 // first save succeeds, second fails

	svc := newTestService(store)
	err := svc.GenerateInsights(1, testNow)
	require.Error(t, err)

	// The insight saved before the failure stays persisted
	assert.Len(t, store.saved, 1)
}

func TestFinancialSummary(t *testing.T) {
	store := newFakeStore()
	store.transactions = []models.Transaction{
		expenseOn(1, 1, "500", "food"),
		expenseOn(1, 2, "300", "transport"),
		expenseOn(1, 3, "100", "leisure"),
		expenseOn(1, 4, "50", "health"),
		expenseOn(1, 5, "30", "education"),
		expenseOn(1, 6, "20", "pets"),
	}
	store.incomes = []models.Income{
		{UserID: 1, Amount: dec("2000"), ReceivedDate: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)},
	}

	svc := newTestService(store)
	summary, err := svc.FinancialSummary(1, testNow)
	require.NoError(t, err)

	assert.True(t, summary.TotalIncome.Equal(dec("2000")))
	assert.True(t, summary.TotalExpenses.Equal(dec("1000")))
	assert.True(t, summary.Balance.Equal(dec("1000")))
	assert.True(t, summary.SavingsRate.Equal(dec("50")))

	// Top five categories by amount, the sixth is cut off
	require.Len(t, summary.TopExpenseCategories, 5)
	assert.Equal(t, "food", summary.TopExpenseCategories[0].Category)
	assert.Equal(t, "transport", summary.TopExpenseCategories[1].Category)
	assert.Equal(t, "leisure", summary.TopExpenseCategories[2].Category)
	assert.Equal(t, "health", summary.TopExpenseCategories[3].Category)
	assert.Equal(t, "education", summary.TopExpenseCategories[4].Category)
}

func TestFinancialSummaryZeroIncome(t *testing.T) {
	store := newFakeStore()
	store.transactions = []models.Transaction{expenseOn(1, 1, "100", "food")}

	svc := newTestService(store)
	summary, err := svc.FinancialSummary(1, testNow)
	require.NoError(t, err)

	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.SavingsRate.IsZero(), "savings rate is zero when there is no income")
	assert.True(t, summary.Balance.Equal(dec("-100")))
}

func TestFinancialSummaryCategoryTieOrder(t *testing.T) {
	store := newFakeStore()
	store.transactions = []models.Transaction{
		expenseOn(1, 1, "300", "transport"),
		expenseOn(1, 2, "300", "food"),
	}

	svc := newTestService(store)
	summary, err := svc.FinancialSummary(1, testNow)
	require.NoError(t, err)

	require.Len(t, summary.TopExpenseCategories, 2)
	assert.Equal(t, "food", summary.TopExpenseCategories[0].Category)
	assert.Equal(t, "transport", summary.TopExpenseCategories[1].Category)
}

func TestMonthWindow(t *testing.T) {
	start, end := monthWindow(testNow)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.March, end.Month())
	assert.Equal(t, 31, end.Day())

	// Previous-month window derived the way buildSnapshot does it
	prevStart, prevEnd := monthWindow(start.AddDate(0, -1, 0))
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), prevStart)
	assert.Equal(t, 28, prevEnd.Day())
}

func TestSnapshotAggregation(t *testing.T) {
	start, end := monthWindow(testNow)
	snapshot := newSnapshot(7, start, end,
		[]models.Transaction{
			expenseOn(7, 1, "120.50", "food"),
			expenseOn(7, 2, "79.50", "food"),
			expenseOn(7, 3, "100", "transport"),
		},
		[]models.Transaction{
			{UserID: 7, Amount: dec("50"), Type: models.TypeExpense, Category: "food",
				Date: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)},
		},
		[]models.Income{
			{UserID: 7, Amount: dec("1500"), ReceivedDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		},
		nil, nil)

	assert.Equal(t, int64(7), snapshot.UserID)
	assert.True(t, snapshot.Expenses.Equal(dec("300")))
	assert.True(t, snapshot.LastMonthExpenses.Equal(dec("50")))
	assert.True(t, snapshot.Income.Equal(dec("1500")))
	assert.True(t, snapshot.CategoryExpenses["food"].Equal(dec("200")))
	assert.True(t, snapshot.CategoryExpenses["transport"].Equal(dec("100")))
}
