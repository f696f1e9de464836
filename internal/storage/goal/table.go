package goal

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Teru3301/FinanceApp/internal/storage/pgerr"
)

var _ IGoalTable = (*GoalsTable)(nil)

// GoalsTable provides access to the goals table.
type GoalsTable struct {
	pool *pgxpool.Pool
}

// NewGoalsTable creates a GoalsTable for the given pool.
func NewGoalsTable(pool *pgxpool.Pool) *GoalsTable {
	return &GoalsTable{pool: pool}
}

const goalColumns = `id, user_id, name, description, target_amount, current_saved, target_date, completed, created_at, updated_at`

func scanGoal(row pgx.Row) (*Goal, error) {
	var g Goal
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.Description, &g.TargetAmount,
		&g.CurrentSaved, &g.TargetDate, &g.Completed, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (t *GoalsTable) queryGoals(ctx context.Context, query string, args ...interface{}) ([]*Goal, error) {
	rows, err := t.pool.Query(ctx, query, args...)
	if err != nil {
		if pgerr.IsUndefinedTable(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	var result []*Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, rows.Err()
}

// Insert creates a new goal and returns the stored row.
func (t *GoalsTable) Insert(ctx context.Context, create *GoalCreate) (*Goal, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	row := t.pool.QueryRow(ctx, `
		INSERT INTO goals (id, user_id, name, description, target_amount, current_saved, target_date, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, $6, false, now(), now())
		RETURNING `+goalColumns,
		id, create.UserID, create.Name, create.Description, create.TargetAmount, create.TargetDate)
	return scanGoal(row)
}

// FindByID retrieves a goal by primary key. Returns (nil, nil) when absent.
func (t *GoalsTable) FindByID(ctx context.Context, id uuid.UUID) (*Goal, error) {
	row := t.pool.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1`, id)
	return scanGoal(row)
}

// List returns all goals owned by a user, newest first.
func (t *GoalsTable) List(ctx context.Context, userID uuid.UUID) ([]*Goal, error) {
	return t.queryGoals(ctx, `
		SELECT `+goalColumns+` FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
}

// ListActive returns goals still being saved toward: target not yet reached
// and target date absent or not in the past. Newest first.
func (t *GoalsTable) ListActive(ctx context.Context, userID uuid.UUID, today time.Time) ([]*Goal, error) {
	return t.queryGoals(ctx, `
		SELECT `+goalColumns+` FROM goals
		WHERE user_id = $1
		  AND target_amount > current_saved
		  AND (target_date IS NULL OR target_date >= $2)
		ORDER BY created_at DESC`, userID, today)
}

// Update applies the non-nil fields and returns the updated row.
func (t *GoalsTable) Update(ctx context.Context, id uuid.UUID, update *GoalUpdate) (*Goal, error) {
	row := t.pool.QueryRow(ctx, `
		UPDATE goals
		SET name          = COALESCE($2, name),
		    description   = COALESCE($3, description),
		    target_amount = COALESCE($4, target_amount),
		    target_date   = COALESCE($5, target_date),
		    completed     = COALESCE($6, completed),
		    updated_at    = now()
		WHERE id = $1
		RETURNING `+goalColumns,
		id, update.Name, update.Description, update.TargetAmount, update.TargetDate, update.Completed)
	return scanGoal(row)
}

// AddProgress increments current_saved in a single statement so concurrent
// increments cannot lose updates, and marks the goal completed once the
// running total reaches the target.
func (t *GoalsTable) AddProgress(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*Goal, error) {
	row := t.pool.QueryRow(ctx, `
		UPDATE goals
		SET current_saved = current_saved + $2,
		    completed     = completed OR (current_saved + $2 >= target_amount),
		    updated_at    = now()
		WHERE id = $1
		RETURNING `+goalColumns,
		id, amount)
	return scanGoal(row)
}

// Delete removes a goal row.
func (t *GoalsTable) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := t.pool.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	return err
}

// DeleteByUser removes all goals owned by a user.
func (t *GoalsTable) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := t.pool.Exec(ctx, `DELETE FROM goals WHERE user_id = $1`, userID)
	return err
}
