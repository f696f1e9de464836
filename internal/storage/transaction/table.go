package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Teru3301/FinanceApp/internal/storage/pgerr"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	pool *pgxpool.Pool
}

// NewTransactionsTable creates a TransactionsTable for the given pool.
func NewTransactionsTable(pool *pgxpool.Pool) *TransactionsTable {
	return &TransactionsTable{pool: pool}
}

const transactionColumns = `id, user_id, type, amount, category, description, transaction_date, eco_impact, created_at`

func scanTransaction(row pgx.Row) (*Transaction, error) {
	var tx Transaction
	err := row.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Category,
		&tx.Description, &tx.TransactionDate, &tx.EcoImpact, &tx.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	row := t.pool.QueryRow(ctx, `
		INSERT INTO transactions (id, user_id, type, amount, category, description, transaction_date, eco_impact, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		RETURNING `+transactionColumns,
		id, create.UserID, create.Type, create.Amount, create.Category,
		create.Description, create.TransactionDate, create.EcoImpact)
	return scanTransaction(row)
}

// FindByID retrieves a transaction by primary key. Returns (nil, nil) when absent.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row := t.pool.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
	return scanTransaction(row)
}

// List returns the user's transactions matching the filter, newest
// transaction date first. A missing relation yields an empty result.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []interface{}{filter.UserID}

	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Month != 0 && filter.Year != 0 {
		args = append(args, filter.Month)
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM transaction_date) = $%d", len(args))
		args = append(args, filter.Year)
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM transaction_date) = $%d", len(args))
	}

	query += " ORDER BY transaction_date DESC, created_at DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := t.pool.Query(ctx, query, args...)
	if err != nil {
		if pgerr.IsUndefinedTable(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	var result []*Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, tx)
	}
	return result, rows.Err()
}

// CountByUser returns the all-time number of transactions for a user.
func (t *TransactionsTable) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := t.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		if pgerr.IsUndefinedTable(err) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}

// SumEcoImpact returns the all-time eco impact total for a user.
func (t *TransactionsTable) SumEcoImpact(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := t.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(eco_impact), 0) FROM transactions WHERE user_id = $1`, userID).Scan(&sum)
	if err != nil {
		if pgerr.IsUndefinedTable(err) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return sum, nil
}

// Delete removes a transaction row.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := t.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	return err
}

// DeleteByUser removes all transactions owned by a user.
func (t *TransactionsTable) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := t.pool.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1`, userID)
	return err
}
