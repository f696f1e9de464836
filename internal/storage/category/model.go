package category

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// Category represents a category record. Categories label transactions by
// name; deleting one does not touch transactions carrying the label.
type Category struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
	Type   string
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	UserID uuid.UUID
	Name   string
	Type   string
}

// ICategoryTable defines the interface for category storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ICategoryTable interface {
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context, userID uuid.UUID, categoryType string) ([]*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
