package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record. Rows are immutable after
// creation except for deletion.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Type            string
	Amount          decimal.Decimal
	Category        string
	Description     string
	TransactionDate time.Time
	EcoImpact       decimal.Decimal
	CreatedAt       time.Time
}

// TransactionCreate is the input for creating a new transaction. EcoImpact
// is derived by the service layer before insert.
type TransactionCreate struct {
	UserID          uuid.UUID
	Type            string
	Amount          decimal.Decimal
	Category        string
	Description     string
	TransactionDate time.Time
	EcoImpact       decimal.Decimal
}

// TransactionFilter specifies filters for listing transactions. Month and
// Year restrict to a calendar month when both are set.
type TransactionFilter struct {
	UserID uuid.UUID
	Type   string
	Month  int
	Year   int
	Limit  int
	Offset int
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	SumEcoImpact(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
