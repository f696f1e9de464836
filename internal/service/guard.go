package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// loadOwned loads a row and enforces ownership: a missing row becomes
// ErrNotFound, a row owned by another user becomes ErrForbidden. Every
// mutating operation on user-owned entities goes through this guard.
func loadOwned[T any](
	ctx context.Context,
	caller uuid.UUID,
	load func(context.Context) (*T, error),
	owner func(*T) uuid.UUID,
) (*T, error) {
	row, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	if owner(row) != caller {
		return nil, ErrForbidden
	}
	return row, nil
}
