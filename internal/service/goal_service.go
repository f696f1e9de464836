package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Teru3301/FinanceApp/internal/storage"
	"github.com/Teru3301/FinanceApp/internal/storage/goal"
)

// GoalService handles savings goals.
type GoalService struct {
	storage *storage.Storage
	now     func() time.Time
}

func NewGoalService(store *storage.Storage) *GoalService {
	return &GoalService{storage: store, now: time.Now}
}

// CreateGoal is the input for creating a goal.
type CreateGoal struct {
	UserID       uuid.UUID
	Name         string
	Description  string
	TargetAmount decimal.Decimal
	TargetDate   *time.Time
}

// UpdateGoal carries the mutable goal fields. Nil fields are left unchanged.
// AddSaved increments the saved amount instead of replacing it.
type UpdateGoal struct {
	Name         *string
	Description  *string
	TargetAmount *decimal.Decimal
	TargetDate   *time.Time
	Completed    *bool
	AddSaved     *decimal.Decimal
}

// Create adds a goal starting at zero saved.
func (s *GoalService) Create(ctx context.Context, create CreateGoal) (*Goal, error) {
	row, err := s.storage.Goals.Insert(ctx, &goal.GoalCreate{
		UserID:       create.UserID,
		Name:         create.Name,
		Description:  create.Description,
		TargetAmount: create.TargetAmount,
		TargetDate:   create.TargetDate,
	})
	if err != nil {
		return nil, err
	}
	converted := goalFromStorage(row)
	return &converted, nil
}

// List returns all of the caller's goals, newest first.
func (s *GoalService) List(ctx context.Context, userID uuid.UUID) ([]Goal, error) {
	rows, err := s.storage.Goals.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return goalsFromStorage(rows), nil
}

// ListActive returns goals still being saved toward: target not yet reached
// and target date (if any) not passed.
func (s *GoalService) ListActive(ctx context.Context, userID uuid.UUID) ([]Goal, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	rows, err := s.storage.Goals.ListActive(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	return goalsFromStorage(rows), nil
}

// Update applies a partial update to a goal the caller owns. An AddSaved
// increment is applied first so a target reached by the increment flips the
// completed flag even when other fields change in the same call.
func (s *GoalService) Update(ctx context.Context, id, caller uuid.UUID, update UpdateGoal) (*Goal, error) {
	row, err := s.loadOwnedGoal(ctx, id, caller)
	if err != nil {
		return nil, err
	}

	if update.AddSaved != nil {
		row, err = s.storage.Goals.AddProgress(ctx, id, *update.AddSaved)
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, ErrNotFound
		}
	}

	if update.Name != nil || update.Description != nil || update.TargetAmount != nil ||
		update.TargetDate != nil || update.Completed != nil {
		row, err = s.storage.Goals.Update(ctx, id, &goal.GoalUpdate{
			Name:         update.Name,
			Description:  update.Description,
			TargetAmount: update.TargetAmount,
			TargetDate:   update.TargetDate,
			Completed:    update.Completed,
		})
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, ErrNotFound
		}
	}

	converted := goalFromStorage(row)
	return &converted, nil
}

// Delete removes a goal the caller owns.
func (s *GoalService) Delete(ctx context.Context, id, caller uuid.UUID) error {
	if _, err := s.loadOwnedGoal(ctx, id, caller); err != nil {
		return err
	}
	return s.storage.Goals.Delete(ctx, id)
}

func (s *GoalService) loadOwnedGoal(ctx context.Context, id, caller uuid.UUID) (*goal.Goal, error) {
	return loadOwned(ctx, caller,
		func(ctx context.Context) (*goal.Goal, error) {
			return s.storage.Goals.FindByID(ctx, id)
		},
		func(row *goal.Goal) uuid.UUID { return row.UserID },
	)
}
