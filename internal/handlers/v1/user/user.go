package user

import (
	"time"

	"github.com/Teru3301/FinanceApp/internal/service"
)

// Profile is the API response model for an account.
// It is used only for responses, not for request bodies.
type Profile struct {
	ID        string `json:"id" doc:"User UUID"`
	Email     string `json:"email" doc:"Email address"`
	FirstName string `json:"firstName" doc:"First name"`
	LastName  string `json:"lastName" doc:"Last name"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt string `json:"updatedAt" doc:"RFC3339 last update time"`
}

func profileFromService(u *service.User) Profile {
	return Profile{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}
