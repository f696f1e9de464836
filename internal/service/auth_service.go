package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/storage"
	"github.com/Teru3301/FinanceApp/internal/storage/pgerr"
	"github.com/Teru3301/FinanceApp/internal/storage/user"
)

// AuthService handles registration, login and the password reset flow.
type AuthService struct {
	storage    *storage.Storage
	issuer     *auth.TokenIssuer
	bcryptCost int
}

func NewAuthService(store *storage.Storage, issuer *auth.TokenIssuer, bcryptCost int) *AuthService {
	return &AuthService{storage: store, issuer: issuer, bcryptCost: bcryptCost}
}

// Registration is the input for creating an account.
type Registration struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Credentials is the input for logging in.
type Credentials struct {
	Email    string
	Password string
}

// Session is an authenticated session: a signed token plus the user it
// belongs to.
type Session struct {
	Token string
	User  User
}

// Register creates an account and returns a fresh session for it. A taken
// email yields ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, reg Registration) (*Session, error) {
	existing, err := s.storage.Users.FindByEmail(ctx, reg.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(reg.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	row, err := s.storage.Users.Insert(ctx, &user.UserCreate{
		Email:        reg.Email,
		PasswordHash: hash,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
	})
	if err != nil {
		// Concurrent registration of the same email loses the race at the
		// unique index rather than at the lookup above.
		if pgerr.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.newSession(row)
}

// Login verifies credentials and returns a session. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*Session, error) {
	row, err := s.storage.Users.FindByEmail(ctx, creds.Email)
	if err != nil {
		return nil, err
	}
	if row == nil || !auth.CheckPassword(row.PasswordHash, creds.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.newSession(row)
}

// ForgotPassword generates a reset token for the account if it exists. The
// token is only logged for now; wiring it to a mail sender is a separate
// concern. Unknown emails are silently accepted so the endpoint cannot be
// used to probe for accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	row, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if row == nil {
		return nil
	}

	token, err := auth.NewResetToken()
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"userID":    row.ID,
		"expiresAt": token.ExpiresAt,
	}).Info("AuthService.ForgotPassword.TokenIssued")
	return nil
}

func (s *AuthService) newSession(row *user.User) (*Session, error) {
	token, err := s.issuer.Issue(row.ID, row.Email)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: userFromStorage(row)}, nil
}
