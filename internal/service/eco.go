package service

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Per-category eco impact multipliers. Unknown categories fall back to the
// default factor.
var ecoFactors = map[string]decimal.Decimal{
	"transport": decimal.NewFromFloat(0.20),
	"food":      decimal.NewFromFloat(0.15),
	"shopping":  decimal.NewFromFloat(0.10),
	"utilities": decimal.NewFromFloat(0.25),
}

var defaultEcoFactor = decimal.NewFromFloat(0.05)

// co2Baseline is the reference monthly CO2 figure the reduction percentage
// is measured against.
var co2Baseline = decimal.NewFromInt(500)

// EcoFactor returns the impact multiplier for a category label.
func EcoFactor(category string) decimal.Decimal {
	if factor, ok := ecoFactors[strings.ToLower(strings.TrimSpace(category))]; ok {
		return factor
	}
	return defaultEcoFactor
}

// EcoImpact derives a transaction's environmental cost from its amount and
// category.
func EcoImpact(amount decimal.Decimal, category string) decimal.Decimal {
	return amount.Mul(EcoFactor(category))
}

// EcoRating maps a cumulative CO2 figure to a letter grade.
func EcoRating(totalCo2 decimal.Decimal) string {
	switch {
	case totalCo2.LessThan(decimal.NewFromInt(50)):
		return "A+"
	case totalCo2.LessThan(decimal.NewFromInt(100)):
		return "A"
	case totalCo2.LessThan(decimal.NewFromInt(200)):
		return "B+"
	case totalCo2.LessThan(decimal.NewFromInt(300)):
		return "B"
	case totalCo2.LessThan(decimal.NewFromInt(500)):
		return "C+"
	default:
		return "C"
	}
}

// CO2Reduction expresses totalCo2 as a percentage improvement relative to
// the 500-unit baseline, floored at zero.
func CO2Reduction(totalCo2 decimal.Decimal) int64 {
	if totalCo2.GreaterThanOrEqual(co2Baseline) {
		return 0
	}
	pct := co2Baseline.Sub(totalCo2).Div(co2Baseline).Mul(decimal.NewFromInt(100))
	return pct.Round(0).IntPart()
}

// Summary aggregates a set of transactions.
type Summary struct {
	Income             decimal.Decimal
	Expenses           decimal.Decimal
	TotalCo2           decimal.Decimal
	Count              int
	ExpensesByCategory map[string]decimal.Decimal
}

// Balance is income minus expenses.
func (s Summary) Balance() decimal.Decimal {
	return s.Income.Sub(s.Expenses)
}

// Summarize computes totals over transactions. Expense amounts are also
// grouped by category label for report breakdowns.
func Summarize(transactions []Transaction) Summary {
	summary := Summary{
		Income:             decimal.Zero,
		Expenses:           decimal.Zero,
		TotalCo2:           decimal.Zero,
		Count:              len(transactions),
		ExpensesByCategory: make(map[string]decimal.Decimal),
	}

	for _, tx := range transactions {
		summary.TotalCo2 = summary.TotalCo2.Add(tx.EcoImpact)
		switch tx.Type {
		case TypeIncome:
			summary.Income = summary.Income.Add(tx.Amount)
		case TypeExpense:
			summary.Expenses = summary.Expenses.Add(tx.Amount)
			summary.ExpensesByCategory[tx.Category] = summary.ExpensesByCategory[tx.Category].Add(tx.Amount)
		}
	}

	return summary
}

// CategoryShare is one category's slice of total expenses.
type CategoryShare struct {
	Category   string
	Amount     decimal.Decimal
	Percentage float64
}

// TopCategories ranks expense categories by amount descending and returns at
// most max entries with their percentage share of total expenses. Ties break
// on the category name so the order is stable.
func TopCategories(byCategory map[string]decimal.Decimal, totalExpenses decimal.Decimal, max int) []CategoryShare {
	shares := make([]CategoryShare, 0, len(byCategory))
	for name, amount := range byCategory {
		share := CategoryShare{Category: name, Amount: amount}
		if totalExpenses.IsPositive() {
			share.Percentage, _ = amount.Div(totalExpenses).Mul(decimal.NewFromInt(100)).Round(1).Float64()
		}
		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if !shares[i].Amount.Equal(shares[j].Amount) {
			return shares[i].Amount.GreaterThan(shares[j].Amount)
		}
		return shares[i].Category < shares[j].Category
	})

	if len(shares) > max {
		shares = shares[:max]
	}
	return shares
}

// EcoAdvice is the static list of suggestions returned with monthly reports.
var EcoAdvice = []string{
	"Use public transport or cycle for short trips to cut transport emissions.",
	"Prefer seasonal, locally produced food over imported goods.",
	"Repair or buy second-hand before purchasing new items.",
	"Switch to energy-efficient appliances and turn devices off standby.",
	"Consolidate online orders into fewer deliveries.",
}
