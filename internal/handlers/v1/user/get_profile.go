package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/handlers/v1/respond"
	"github.com/Teru3301/FinanceApp/internal/service"
)

// GetProfileInput is the Huma input for fetching the caller's profile.
type GetProfileInput struct{}

// GetProfileOutput is the Huma output for fetching the caller's profile.
type GetProfileOutput struct {
	Body Profile
}

// profileReader is the interface for fetching a profile.
type profileReader interface {
	Profile(ctx context.Context, userID uuid.UUID) (*service.User, error)
}

// GetProfileHandler handles GET /api/user/profile.
type GetProfileHandler struct {
	UserService profileReader
}

// NewGetProfileHandler creates a new GetProfileHandler.
func NewGetProfileHandler(svc profileReader) *GetProfileHandler {
	return &GetProfileHandler{UserService: svc}
}

// Register registers the get profile endpoint with the Huma API.
func (h *GetProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/api/user/profile",
		Summary:     "Get profile",
		Description: "Returns the authenticated user's profile.",
		Tags:        []string{"Users"},
		Security:    auth.Required,
	}, h.handle)
}

func (h *GetProfileHandler) handle(ctx context.Context, _ *GetProfileInput) (*GetProfileOutput, error) {
	identity, err := respond.Identity(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := h.UserService.Profile(ctx, identity.UserID)
	if err != nil {
		return nil, respond.ServiceError(err, "failed to load profile")
	}

	return &GetProfileOutput{Body: profileFromService(profile)}, nil
}
