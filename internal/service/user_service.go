package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/storage"
	"github.com/Teru3301/FinanceApp/internal/storage/user"
)

// UserService handles profile management and account lifecycle.
type UserService struct {
	storage    *storage.Storage
	bcryptCost int
	now        func() time.Time
}

func NewUserService(store *storage.Storage, bcryptCost int) *UserService {
	return &UserService{storage: store, bcryptCost: bcryptCost, now: time.Now}
}

// ProfileUpdate carries the mutable profile fields. Nil fields are left
// unchanged.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
}

// UserStats is the per-account activity summary.
type UserStats struct {
	TotalTransactions int64
	AccountAgeDays    int
	TotalCo2          decimal.Decimal
	EcoRating         string
}

// Profile returns the caller's account.
func (s *UserService) Profile(ctx context.Context, userID uuid.UUID) (*User, error) {
	row, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	converted := userFromStorage(row)
	return &converted, nil
}

// UpdateProfile applies a partial update to the caller's profile and returns
// the updated account.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*User, error) {
	row, err := s.storage.Users.UpdateProfile(ctx, userID, &user.ProfileUpdate{
		FirstName: update.FirstName,
		LastName:  update.LastName,
	})
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	converted := userFromStorage(row)
	return &converted, nil
}

// ChangePassword rehashes and stores a new password after verifying the
// current one.
func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	row, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrNotFound
	}
	if !auth.CheckPassword(row.PasswordHash, current) {
		return ErrPasswordMismatch
	}

	hash, err := auth.HashPassword(next, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.storage.Users.UpdatePassword(ctx, userID, hash)
}

// Stats summarizes the caller's account activity.
func (s *UserService) Stats(ctx context.Context, userID uuid.UUID) (*UserStats, error) {
	row, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}

	count, err := s.storage.Transactions.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalCo2, err := s.storage.Transactions.SumEcoImpact(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		TotalTransactions: count,
		AccountAgeDays:    int(s.now().Sub(row.CreatedAt).Hours() / 24),
		TotalCo2:          totalCo2,
		EcoRating:         EcoRating(totalCo2),
	}, nil
}

// DeleteAccount removes the account and everything it owns. Child rows go
// first so a failure partway leaves the account reachable.
func (s *UserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	row, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrNotFound
	}

	if err := s.storage.Transactions.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.storage.Categories.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.storage.Goals.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	return s.storage.Users.Delete(ctx, userID)
}
