package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/Teru3301/FinanceApp/internal/storage"
	"github.com/Teru3301/FinanceApp/internal/storage/transaction"
)

// TransactionService handles the transaction ledger.
type TransactionService struct {
	storage *storage.Storage
}

func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// CreateTransaction is the input for recording a transaction. GoalID
// optionally directs an income at a savings goal.
type CreateTransaction struct {
	UserID      uuid.UUID
	Type        string
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
	GoalID      *uuid.UUID
}

// TransactionListFilter narrows List results. Month and Year restrict to a
// calendar month when both are set.
type TransactionListFilter struct {
	Type   string
	Month  int
	Year   int
	Limit  int
	Offset int
}

// Create records a transaction with its derived eco impact. When an income
// names a goal, the goal's saved amount is incremented best effort: a failed
// increment is logged, not returned, since the transaction row already
// exists.
func (s *TransactionService) Create(ctx context.Context, create CreateTransaction) (*Transaction, error) {
	row, err := s.storage.Transactions.Insert(ctx, &transaction.TransactionCreate{
		UserID:          create.UserID,
		Type:            create.Type,
		Amount:          create.Amount,
		Category:        create.Category,
		Description:     create.Description,
		TransactionDate: create.Date,
		EcoImpact:       EcoImpact(create.Amount, create.Category),
	})
	if err != nil {
		return nil, err
	}

	if create.GoalID != nil && create.Type == TypeIncome {
		s.creditGoal(ctx, *create.GoalID, create.UserID, row.ID, create.Amount)
	}

	converted := transactionFromStorage(row)
	return &converted, nil
}

func (s *TransactionService) creditGoal(ctx context.Context, goalID, userID, transactionID uuid.UUID, amount decimal.Decimal) {
	fields := log.Fields{
		"goalID":        goalID,
		"transactionID": transactionID,
	}

	row, err := s.storage.Goals.FindByID(ctx, goalID)
	if err != nil {
		log.WithFields(fields).WithError(err).Warn("TransactionService.CreditGoal.LookupFailed")
		return
	}
	if row == nil || row.UserID != userID {
		log.WithFields(fields).Warn("TransactionService.CreditGoal.GoalUnavailable")
		return
	}

	if _, err := s.storage.Goals.AddProgress(ctx, goalID, amount); err != nil {
		log.WithFields(fields).WithError(err).Warn("TransactionService.CreditGoal.UpdateFailed")
	}
}

// List returns the caller's transactions, newest first.
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, filter TransactionListFilter) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{
		UserID: userID,
		Type:   filter.Type,
		Month:  filter.Month,
		Year:   filter.Year,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}

// Delete removes a transaction the caller owns.
func (s *TransactionService) Delete(ctx context.Context, id, caller uuid.UUID) error {
	_, err := loadOwned(ctx, caller,
		func(ctx context.Context) (*transaction.Transaction, error) {
			return s.storage.Transactions.FindByID(ctx, id)
		},
		func(row *transaction.Transaction) uuid.UUID { return row.UserID },
	)
	if err != nil {
		return err
	}
	return s.storage.Transactions.Delete(ctx, id)
}
