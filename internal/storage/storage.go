package storage

import (
	"context"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Teru3301/FinanceApp/internal/config"
	"github.com/Teru3301/FinanceApp/internal/storage/category"
	"github.com/Teru3301/FinanceApp/internal/storage/goal"
	"github.com/Teru3301/FinanceApp/internal/storage/transaction"
	"github.com/Teru3301/FinanceApp/internal/storage/user"
)

type Storage struct {
	Pool         *pgxpool.Pool
	Users        user.IUserTable
	Transactions transaction.ITransactionTable
	Categories   category.ICategoryTable
	Goals        goal.IGoalTable
}

func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	poolConfig, err := pgxpool.ParseConfig(env.ConnString())
	if err != nil {
		return nil, err
	}

	// numeric columns scan straight into decimal.Decimal
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	return &Storage{
		Pool:         pool,
		Users:        user.NewUsersTable(pool),
		Transactions: transaction.NewTransactionsTable(pool),
		Categories:   category.NewCategoriesTable(pool),
		Goals:        goal.NewGoalsTable(pool),
	}, nil
}

func (s *Storage) Close() {
	s.Pool.Close()
}
