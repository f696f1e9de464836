package service

import (
	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/storage"
)

// Service bundles the domain services behind one constructor so main only
// wires storage and the token issuer once.
type Service struct {
	Auth         *AuthService
	Users        *UserService
	Transactions *TransactionService
	Categories   *CategoryService
	Goals        *GoalService
	Stats        *StatsService
}

func NewService(store *storage.Storage, issuer *auth.TokenIssuer, bcryptCost int) *Service {
	return &Service{
		Auth:         NewAuthService(store, issuer, bcryptCost),
		Users:        NewUserService(store, bcryptCost),
		Transactions: NewTransactionService(store),
		Categories:   NewCategoryService(store),
		Goals:        NewGoalService(store),
		Stats:        NewStatsService(store),
	}
}
