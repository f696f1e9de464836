package user

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ IUserTable = (*UsersTable)(nil)

// UsersTable provides access to the users table.
type UsersTable struct {
	pool *pgxpool.Pool
}

// NewUsersTable creates a UsersTable for the given pool.
func NewUsersTable(pool *pgxpool.Pool) *UsersTable {
	return &UsersTable{pool: pool}
}

const userColumns = `id, email, password_hash, first_name, last_name, created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Insert creates a new user and returns the stored row.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	row := t.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING `+userColumns,
		id, create.Email, create.PasswordHash, create.FirstName, create.LastName)
	return scanUser(row)
}

// FindByID retrieves a user by primary key. Returns (nil, nil) when absent.
func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	row := t.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// FindByEmail retrieves a user by email. Returns (nil, nil) when absent.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := t.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// UpdateProfile applies the non-nil profile fields and returns the updated row.
func (t *UsersTable) UpdateProfile(ctx context.Context, id uuid.UUID, update *ProfileUpdate) (*User, error) {
	row := t.pool.QueryRow(ctx, `
		UPDATE users
		SET first_name = COALESCE($2, first_name),
		    last_name  = COALESCE($3, last_name),
		    updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns,
		id, update.FirstName, update.LastName)
	return scanUser(row)
}

// UpdatePassword replaces the stored password hash.
func (t *UsersTable) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	_, err := t.pool.Exec(ctx, `
		UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash)
	return err
}

// Delete removes a user row.
func (t *UsersTable) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := t.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}
