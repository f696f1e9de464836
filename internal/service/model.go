package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Teru3301/FinanceApp/internal/storage/category"
	"github.com/Teru3301/FinanceApp/internal/storage/goal"
	"github.com/Teru3301/FinanceApp/internal/storage/transaction"
	"github.com/Teru3301/FinanceApp/internal/storage/user"
)

// Transaction types.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// User represents a user in the service layer. The password hash never
// leaves the storage model.
type User struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        string
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
	EcoImpact   decimal.Decimal
	CreatedAt   time.Time
}

// Category represents a category in the service layer.
type Category struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
	Type   string
}

// Goal represents a savings goal in the service layer.
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Description  string
	TargetAmount decimal.Decimal
	CurrentSaved decimal.Decimal
	TargetDate   *time.Time
	Completed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func userFromStorage(row *user.User) User {
	return User{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		UserID:      row.UserID,
		Type:        row.Type,
		Amount:      row.Amount,
		Category:    row.Category,
		Description: row.Description,
		Date:        row.TransactionDate,
		EcoImpact:   row.EcoImpact,
		CreatedAt:   row.CreatedAt,
	}
}

func transactionsFromStorage(rows []*transaction.Transaction) []Transaction {
	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row)
	}
	return converted
}

func categoryFromStorage(row *category.Category) Category {
	return Category{
		ID:     row.ID,
		UserID: row.UserID,
		Name:   row.Name,
		Type:   row.Type,
	}
}

func goalFromStorage(row *goal.Goal) Goal {
	return Goal{
		ID:           row.ID,
		UserID:       row.UserID,
		Name:         row.Name,
		Description:  row.Description,
		TargetAmount: row.TargetAmount,
		CurrentSaved: row.CurrentSaved,
		TargetDate:   row.TargetDate,
		Completed:    row.Completed,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func goalsFromStorage(rows []*goal.Goal) []Goal {
	converted := make([]Goal, len(rows))
	for i, row := range rows {
		converted[i] = goalFromStorage(row)
	}
	return converted
}
