package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/Teru3301/FinanceApp/internal/storage"
	"github.com/Teru3301/FinanceApp/internal/storage/category"
	"github.com/Teru3301/FinanceApp/internal/storage/goal"
	"github.com/Teru3301/FinanceApp/internal/storage/transaction"
	"github.com/Teru3301/FinanceApp/internal/storage/user"
)

type mockUserTable struct {
	mock.Mock
}

func (m *mockUserTable) Insert(ctx context.Context, create *user.UserCreate) (*user.User, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserTable) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserTable) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserTable) UpdateProfile(ctx context.Context, id uuid.UUID, update *user.ProfileUpdate) (*user.User, error) {
	args := m.Called(ctx, id, update)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserTable) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *mockUserTable) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) Insert(ctx context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*transaction.Transaction)
	return rows, args.Error(1)
}

func (m *mockTransactionTable) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *mockTransactionTable) SumEcoImpact(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	sum, _ := args.Get(0).(decimal.Decimal)
	return sum, args.Error(1)
}

func (m *mockTransactionTable) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTransactionTable) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockCategoryTable struct {
	mock.Mock
}

func (m *mockCategoryTable) Insert(ctx context.Context, create *category.CategoryCreate) (*category.Category, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*category.Category)
	return row, args.Error(1)
}

func (m *mockCategoryTable) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*category.Category)
	return row, args.Error(1)
}

func (m *mockCategoryTable) List(ctx context.Context, userID uuid.UUID, categoryType string) ([]*category.Category, error) {
	args := m.Called(ctx, userID, categoryType)
	rows, _ := args.Get(0).([]*category.Category)
	return rows, args.Error(1)
}

func (m *mockCategoryTable) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCategoryTable) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockGoalTable struct {
	mock.Mock
}

func (m *mockGoalTable) Insert(ctx context.Context, create *goal.GoalCreate) (*goal.Goal, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*goal.Goal)
	return row, args.Error(1)
}

func (m *mockGoalTable) FindByID(ctx context.Context, id uuid.UUID) (*goal.Goal, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*goal.Goal)
	return row, args.Error(1)
}

func (m *mockGoalTable) List(ctx context.Context, userID uuid.UUID) ([]*goal.Goal, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]*goal.Goal)
	return rows, args.Error(1)
}

func (m *mockGoalTable) ListActive(ctx context.Context, userID uuid.UUID, today time.Time) ([]*goal.Goal, error) {
	args := m.Called(ctx, userID, today)
	rows, _ := args.Get(0).([]*goal.Goal)
	return rows, args.Error(1)
}

func (m *mockGoalTable) Update(ctx context.Context, id uuid.UUID, update *goal.GoalUpdate) (*goal.Goal, error) {
	args := m.Called(ctx, id, update)
	row, _ := args.Get(0).(*goal.Goal)
	return row, args.Error(1)
}

func (m *mockGoalTable) AddProgress(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*goal.Goal, error) {
	args := m.Called(ctx, id, amount)
	row, _ := args.Get(0).(*goal.Goal)
	return row, args.Error(1)
}

func (m *mockGoalTable) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockGoalTable) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockTables struct {
	users        *mockUserTable
	transactions *mockTransactionTable
	categories   *mockCategoryTable
	goals        *mockGoalTable
}

func newMockStorage() (*storage.Storage, *mockTables) {
	tables := &mockTables{
		users:        new(mockUserTable),
		transactions: new(mockTransactionTable),
		categories:   new(mockCategoryTable),
		goals:        new(mockGoalTable),
	}
	store := &storage.Storage{
		Users:        tables.users,
		Transactions: tables.transactions,
		Categories:   tables.categories,
		Goals:        tables.goals,
	}
	return store, tables
}
