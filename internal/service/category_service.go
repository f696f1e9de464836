package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/Teru3301/FinanceApp/internal/storage"
	"github.com/Teru3301/FinanceApp/internal/storage/category"
)

// CategoryService handles user-defined transaction categories.
type CategoryService struct {
	storage *storage.Storage
}

func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// CreateCategory is the input for creating a category.
type CreateCategory struct {
	UserID uuid.UUID
	Name   string
	Type   string
}

// Create adds a category.
func (s *CategoryService) Create(ctx context.Context, create CreateCategory) (*Category, error) {
	row, err := s.storage.Categories.Insert(ctx, &category.CategoryCreate{
		UserID: create.UserID,
		Name:   create.Name,
		Type:   create.Type,
	})
	if err != nil {
		return nil, err
	}
	converted := categoryFromStorage(row)
	return &converted, nil
}

// List returns the caller's categories, optionally filtered by type.
func (s *CategoryService) List(ctx context.Context, userID uuid.UUID, categoryType string) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx, userID, categoryType)
	if err != nil {
		return nil, err
	}
	converted := make([]Category, len(rows))
	for i, row := range rows {
		converted[i] = categoryFromStorage(row)
	}
	return converted, nil
}

// Delete removes a category the caller owns. Transactions keep the label.
func (s *CategoryService) Delete(ctx context.Context, id, caller uuid.UUID) error {
	_, err := loadOwned(ctx, caller,
		func(ctx context.Context) (*category.Category, error) {
			return s.storage.Categories.FindByID(ctx, id)
		},
		func(row *category.Category) uuid.UUID { return row.UserID },
	)
	if err != nil {
		return err
	}
	return s.storage.Categories.Delete(ctx, id)
}
