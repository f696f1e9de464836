package goal

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal record.
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

// GoalCreate is the input for creating a new goal.
type GoalCreate struct {
	UserID       uuid.UUID
	Name         string
	Description  string
	TargetAmount decimal.Decimal
	TargetDate   *time.Time
}

// GoalUpdate carries the mutable goal fields. Nil fields are left unchanged.
type GoalUpdate struct {
	Name         *string
	Description  *string
	TargetAmount *decimal.Decimal
	TargetDate   *time.Time
	Completed    *bool
}

// IGoalTable defines the interface for goal storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IGoalTable interface {
	Insert(ctx context.Context, create *GoalCreate) (*Goal, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Goal, error)
	List(ctx context.Context, userID uuid.UUID) ([]*Goal, error)
	ListActive(ctx context.Context, userID uuid.UUID, today time.Time) ([]*Goal, error)
	Update(ctx context.Context, id uuid.UUID, update *GoalUpdate) (*Goal, error)
	AddProgress(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*Goal, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
