package category

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Teru3301/FinanceApp/internal/storage/pgerr"
)

var _ ICategoryTable = (*CategoriesTable)(nil)

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	pool *pgxpool.Pool
}

// NewCategoriesTable creates a CategoriesTable for the given pool.
func NewCategoriesTable(pool *pgxpool.Pool) *CategoriesTable {
	return &CategoriesTable{pool: pool}
}

func scanCategory(row pgx.Row) (*Category, error) {
	var c Category
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Type)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Insert creates a new category and returns the stored row.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	row := t.pool.QueryRow(ctx, `
		INSERT INTO categories (id, user_id, name, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, type`,
		id, create.UserID, create.Name, create.Type)
	return scanCategory(row)
}

// FindByID retrieves a category by primary key. Returns (nil, nil) when absent.
func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	row := t.pool.QueryRow(ctx, `
		SELECT id, user_id, name, type FROM categories WHERE id = $1`, id)
	return scanCategory(row)
}

// List returns the user's categories, optionally filtered by type. A missing
// relation yields an empty result.
func (t *CategoriesTable) List(ctx context.Context, userID uuid.UUID, categoryType string) ([]*Category, error) {
	query := `SELECT id, user_id, name, type FROM categories WHERE user_id = $1`
	args := []interface{}{userID}
	if categoryType != "" {
		args = append(args, categoryType)
		query += ` AND type = $2`
	}
	query += ` ORDER BY name ASC`

	rows, err := t.pool.Query(ctx, query, args...)
	if err != nil {
		if pgerr.IsUndefinedTable(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	var result []*Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// Delete removes a category row.
func (t *CategoriesTable) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := t.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}

// DeleteByUser removes all categories owned by a user.
func (t *CategoriesTable) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := t.pool.Exec(ctx, `DELETE FROM categories WHERE user_id = $1`, userID)
	return err
}
