package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Teru3301/FinanceApp/internal/storage"
	"github.com/Teru3301/FinanceApp/internal/storage/transaction"
)

// topCategoryLimit caps the category breakdown in monthly reports.
const topCategoryLimit = 6

// StatsService derives dashboard and report figures from the ledger.
type StatsService struct {
	storage *storage.Storage
	now     func() time.Time
}

func NewStatsService(store *storage.Storage) *StatsService {
	return &StatsService{storage: store, now: time.Now}
}

// DashboardStats summarizes the current calendar month.
type DashboardStats struct {
	TotalBalance      decimal.Decimal
	MonthlyIncome     decimal.Decimal
	MonthlyExpenses   decimal.Decimal
	EcoRating         string
	TotalCo2          decimal.Decimal
	CO2Reduction      int64
	TotalTransactions int
}

// MonthlyReport summarizes one calendar month with a category breakdown.
type MonthlyReport struct {
	Month         int
	Year          int
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	TopCategories []CategoryShare
	TotalCo2      decimal.Decimal
	EcoRating     string
	Advice        []string
}

// Dashboard computes the current month's figures for the caller.
func (s *StatsService) Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	now := s.now()
	summary, err := s.monthSummary(ctx, userID, int(now.Month()), now.Year())
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalBalance:      summary.Balance(),
		MonthlyIncome:     summary.Income,
		MonthlyExpenses:   summary.Expenses,
		EcoRating:         EcoRating(summary.TotalCo2),
		TotalCo2:          summary.TotalCo2,
		CO2Reduction:      CO2Reduction(summary.TotalCo2),
		TotalTransactions: summary.Count,
	}, nil
}

// Report computes the figures for the given month.
func (s *StatsService) Report(ctx context.Context, userID uuid.UUID, month, year int) (*MonthlyReport, error) {
	summary, err := s.monthSummary(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	return &MonthlyReport{
		Month:         month,
		Year:          year,
		TotalIncome:   summary.Income,
		TotalExpenses: summary.Expenses,
		TopCategories: TopCategories(summary.ExpensesByCategory, summary.Expenses, topCategoryLimit),
		TotalCo2:      summary.TotalCo2,
		EcoRating:     EcoRating(summary.TotalCo2),
		Advice:        EcoAdvice,
	}, nil
}

func (s *StatsService) monthSummary(ctx context.Context, userID uuid.UUID, month, year int) (Summary, error) {
	rows, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		return Summary{}, err
	}
	return Summarize(transactionsFromStorage(rows)), nil
}
