package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Teru3301/FinanceApp/internal/storage/transaction"
)

func storedTransaction(userID uuid.UUID, txType, category, amount, ecoImpact string) *transaction.Transaction {
	return &transaction.Transaction{
		ID:              uuid.Must(uuid.NewV4()),
		UserID:          userID,
		Type:            txType,
		Amount:          decimal.RequireFromString(amount),
		Category:        category,
		TransactionDate: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
		EcoImpact:       decimal.RequireFromString(ecoImpact),
	}
}

func TestDashboard_CurrentMonthFigures(t *testing.T) {
	store, tables := newMockStorage()
	svc := NewStatsService(store)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)
	}
	userID := uuid.Must(uuid.NewV4())

	tables.transactions.On("List", mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.UserID == userID && f.Month == 6 && f.Year == 2025
	})).Return([]*transaction.Transaction{
		storedTransaction(userID, TypeIncome, "salary", "100", "5"),
		storedTransaction(userID, TypeExpense, "food", "40", "6"),
	}, nil)

	stats, err := svc.Dashboard(context.Background(), userID)

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(60).Equal(stats.TotalBalance))
	assert.True(t, decimal.NewFromInt(100).Equal(stats.MonthlyIncome))
	assert.True(t, decimal.NewFromInt(40).Equal(stats.MonthlyExpenses))
	assert.True(t, decimal.NewFromInt(11).Equal(stats.TotalCo2))
	assert.Equal(t, "A+", stats.EcoRating)
	// (500 - 11) / 500 * 100 rounded
	assert.Equal(t, int64(98), stats.CO2Reduction)
	assert.Equal(t, 2, stats.TotalTransactions)
	tables.transactions.AssertExpectations(t)
}

func TestDashboard_EmptyMonth(t *testing.T) {
	store, tables := newMockStorage()
	svc := NewStatsService(store)
	userID := uuid.Must(uuid.NewV4())

	tables.transactions.On("List", mock.Anything, mock.Anything).Return([]*transaction.Transaction{}, nil)

	stats, err := svc.Dashboard(context.Background(), userID)

	assert.NoError(t, err)
	assert.True(t, stats.TotalBalance.IsZero())
	assert.Equal(t, "A+", stats.EcoRating)
	assert.Equal(t, int64(100), stats.CO2Reduction)
	assert.Equal(t, 0, stats.TotalTransactions)
}

func TestReport_TopCategoriesCappedAtSix(t *testing.T) {
	store, tables := newMockStorage()
	svc := NewStatsService(store)
	userID := uuid.Must(uuid.NewV4())

	rows := []*transaction.Transaction{
		storedTransaction(userID, TypeExpense, "food", "70", "10.5"),
		storedTransaction(userID, TypeExpense, "transport", "60", "12"),
		storedTransaction(userID, TypeExpense, "shopping", "50", "5"),
		storedTransaction(userID, TypeExpense, "utilities", "40", "10"),
		storedTransaction(userID, TypeExpense, "health", "30", "1.5"),
		storedTransaction(userID, TypeExpense, "leisure", "20", "1"),
		storedTransaction(userID, TypeExpense, "misc", "10", "0.5"),
		storedTransaction(userID, TypeIncome, "salary", "1000", "50"),
	}
	tables.transactions.On("List", mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.UserID == userID && f.Month == 6 && f.Year == 2025
	})).Return(rows, nil)

	report, err := svc.Report(context.Background(), userID, 6, 2025)

	assert.NoError(t, err)
	assert.Equal(t, 6, report.Month)
	assert.Equal(t, 2025, report.Year)
	assert.True(t, decimal.NewFromInt(1000).Equal(report.TotalIncome))
	assert.True(t, decimal.NewFromInt(280).Equal(report.TotalExpenses))
	assert.Len(t, report.TopCategories, 6)
	assert.Equal(t, "food", report.TopCategories[0].Category)
	for i := 1; i < len(report.TopCategories); i++ {
		assert.True(t, report.TopCategories[i-1].Amount.GreaterThanOrEqual(report.TopCategories[i].Amount))
	}
	assert.NotEmpty(t, report.Advice)
}
