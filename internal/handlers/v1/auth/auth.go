package auth

import (
	"time"

	"github.com/Teru3301/FinanceApp/internal/service"
)

// User is the API response model for an account.
// It is used only for responses, not for request bodies.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Email     string `json:"email" doc:"Email address"`
	FirstName string `json:"firstName" doc:"First name"`
	LastName  string `json:"lastName" doc:"Last name"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

// Session is the API response model for a successful register or login.
type Session struct {
	Token string `json:"token" doc:"Bearer token for subsequent requests"`
	User  User   `json:"user" doc:"The authenticated account"`
}

func sessionFromService(session *service.Session) Session {
	return Session{
		Token: session.Token,
		User: User{
			ID:        session.User.ID.String(),
			Email:     session.User.Email,
			FirstName: session.User.FirstName,
			LastName:  session.User.LastName,
			CreatedAt: session.User.CreatedAt.Format(time.RFC3339),
		},
	}
}
