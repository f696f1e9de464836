package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Teru3301/FinanceApp/internal/storage/goal"
	"github.com/Teru3301/FinanceApp/internal/storage/transaction"
)

func TestCreateTransaction_DerivesEcoImpact(t *testing.T) {
	store, tables := newMockStorage()
	svc := NewTransactionService(store)
	userID := uuid.Must(uuid.NewV4())
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tables.transactions.On("Insert", mock.Anything, mock.MatchedBy(func(c *transaction.TransactionCreate) bool {
		// 100 * 0.20 for transport
		return c.EcoImpact.Equal(decimal.NewFromInt(20)) && c.UserID == userID
	})).Return(&transaction.Transaction{
		ID:              uuid.Must(uuid.NewV4()),
		UserID:          userID,
		Type:            TypeExpense,
		Amount:          decimal.NewFromInt(100),
		Category:        "transport",
		TransactionDate: date,
		EcoImpact:       decimal.NewFromInt(20),
	}, nil)

	tx, err := svc.Create(context.Background(), CreateTransaction{
		UserID:   userID,
		Type:     TypeExpense,
		Amount:   decimal.NewFromInt(100),
		Category: "transport",
		Date:     date,
	})

	assert.NoError(t, err)
	assert.NotNil(t, tx)
	assert.True(t, decimal.NewFromInt(20).Equal(tx.EcoImpact))
	tables.transactions.AssertExpectations(t)
}

func TestCreateTransaction_IncomeCreditsOwnedGoal(t *testing.T) {
	store, tables := newMockStorage()
	svc := NewTransactionService(store)
	userID := uuid.Must(uuid.NewV4())
	goalID := uuid.Must(uuid.NewV4())
	amount := decimal.NewFromInt(200)

	tables.transactions.On("Insert", mock.Anything, mock.Anything).Return(&transaction.Transaction{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: userID,
		Type:   TypeIncome,
		Amount: amount,
	}, nil)
	tables.goals.On("FindByID", mock.Anything, goalID).Return(&goal.Goal{
		ID:           goalID,
		UserID:       userID,
		TargetAmount: decimal.NewFromInt(1000),
	}, nil)
	tables.goals.On("AddProgress", mock.Anything, goalID, amount).Return(&goal.Goal{
		ID:           goalID,
		UserID:       userID,
		CurrentSaved: amount,
	}, nil)

	_, err := svc.Create(context.Background(), CreateTransaction{
		UserID:   userID,
		Type:     TypeIncome,
		Amount:   amount,
		Category: "salary",
		Date:     time.Now(),
		GoalID:   &goalID,
	})

	assert.NoError(t, err)
	tables.goals.AssertExpectations(t)
}

func TestCreateTransaction_ExpenseNeverCreditsGoal(t *testing.T) {
	store, tables := newMockStorage()
	svc := NewTransactionService(store)
	userID := uuid.Must(uuid.NewV4())
	goalID := uuid.Must(uuid.NewV4())

	tables.transactions.On("Insert", mock.Anything, mock.Anything).Return(&transaction.Transaction{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: userID,
		Type:   TypeExpense,
	}, nil)

	_, err := svc.Create(context.Background(), CreateTransaction{
		UserID:   userID,
		Type:     TypeExpense,
		Amount:   decimal.NewFromInt(50),
		Category: "food",
		Date:     time.Now(),
		GoalID:   &goalID,
	})

	assert.NoError(t, err)
	tables.goals.AssertNotCalled(t, "AddProgress", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTransaction_ForeignGoalIsNotCredited(t *testing.T) {
	store, tables := newMockStorage()
	svc := NewTransactionService(store)
	userID := uuid.Must(uuid.NewV4())
	goalID := uuid.Must(uuid.NewV4())

	tables.transactions.On("Insert", mock.Anything, mock.Anything).Return(&transaction.Transaction{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: userID,
		Type:   TypeIncome,
	}, nil)
	tables.goals.On("FindByID", mock.Anything, goalID).Return(&goal.Goal{
		ID:     goalID,
		UserID: uuid.Must(uuid.NewV4()),
	}, nil)

	_, err := svc.Create(context.Background(), CreateTransaction{
		UserID:   userID,
		Type:     TypeIncome,
		Amount:   decimal.NewFromInt(50),
		Category: "salary",
		Date:     time.Now(),
		GoalID:   &goalID,
	})

	// goal mismatch is logged, not surfaced
	assert.NoError(t, err)
	tables.goals.AssertNotCalled(t, "AddProgress", mock.Anything, mock.Anything, mock.Anything)
}

func TestListTransactions_PassesFilter(t *testing.T) {
	store, tables := newMockStorage()
	svc := NewTransactionService(store)
	userID := uuid.Must(uuid.NewV4())

	tables.transactions.On("List", mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.UserID == userID && f.Type == TypeExpense && f.Month == 6 && f.Year == 2025 && f.Limit == 10
	})).Return([]*transaction.Transaction{}, nil)

	rows, err := svc.List(context.Background(), userID, TransactionListFilter{
		Type:  TypeExpense,
		Month: 6,
		Year:  2025,
		Limit: 10,
	})

	assert.NoError(t, err)
	assert.Empty(t, rows)
	tables.transactions.AssertExpectations(t)
}

func TestDeleteTransaction_Owned(t *testing.T) {
	store, tables := newMockStorage()
	svc := NewTransactionService(store)
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	tables.transactions.On("FindByID", mock.Anything, txID).Return(&transaction.Transaction{
		ID:     txID,
		UserID: userID,
	}, nil)
	tables.transactions.On("Delete", mock.Anything, txID).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), txID, userID))
	tables.transactions.AssertExpectations(t)
}

func TestDeleteTransaction_Foreign(t *testing.T) {
	store, tables := newMockStorage()
	svc := NewTransactionService(store)
	txID := uuid.Must(uuid.NewV4())

	tables.transactions.On("FindByID", mock.Anything, txID).Return(&transaction.Transaction{
		ID:     txID,
		UserID: uuid.Must(uuid.NewV4()),
	}, nil)

	err := svc.Delete(context.Background(), txID, uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, ErrForbidden)
	tables.transactions.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteTransaction_Missing(t *testing.T) {
	store, tables := newMockStorage()
	svc := NewTransactionService(store)
	txID := uuid.Must(uuid.NewV4())

	tables.transactions.On("FindByID", mock.Anything, txID).Return((*transaction.Transaction)(nil), nil)

	err := svc.Delete(context.Background(), txID, uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, ErrNotFound)
}
