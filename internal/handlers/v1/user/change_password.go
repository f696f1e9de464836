package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/handlers/v1/respond"
)

const minPasswordLength = 8

// ChangePasswordBody is the request body for changing the password.
type ChangePasswordBody struct {
	CurrentPassword string `json:"currentPassword" required:"true" doc:"Current password"`
	NewPassword     string `json:"newPassword" required:"true" doc:"New password, at least 8 characters"`
}

// ChangePasswordInput is the Huma input for changing the password.
type ChangePasswordInput struct {
	Body ChangePasswordBody
}

// ChangePasswordResponseBody is the response body for changing the password.
type ChangePasswordResponseBody struct {
	Message string `json:"message" doc:"Acknowledgement"`
}

// ChangePasswordOutput is the Huma output for changing the password.
type ChangePasswordOutput struct {
	Body ChangePasswordResponseBody
}

// passwordChanger is the interface for changing a password.
type passwordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
}

// ChangePasswordHandler handles PATCH /api/user/password.
type ChangePasswordHandler struct {
	UserService passwordChanger
}

// NewChangePasswordHandler creates a new ChangePasswordHandler.
func NewChangePasswordHandler(svc passwordChanger) *ChangePasswordHandler {
	return &ChangePasswordHandler{UserService: svc}
}

// Register registers the change password endpoint with the Huma API.
func (h *ChangePasswordHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "change-password",
		Method:      http.MethodPatch,
		Path:        "/api/user/password",
		Summary:     "Change password",
		Description: "Replaces the password after verifying the current one.",
		Tags:        []string{"Users"},
		Security:    auth.Required,
	}, h.handle)
}

func (h *ChangePasswordHandler) handle(ctx context.Context, input *ChangePasswordInput) (*ChangePasswordOutput, error) {
	identity, err := respond.Identity(ctx)
	if err != nil {
		return nil, err
	}

	if len(input.Body.NewPassword) < minPasswordLength {
		return nil, huma.NewError(http.StatusBadRequest, "password must be at least 8 characters")
	}

	err = h.UserService.ChangePassword(ctx, identity.UserID, input.Body.CurrentPassword, input.Body.NewPassword)
	if err != nil {
		return nil, respond.ServiceError(err, "failed to change password")
	}

	return &ChangePasswordOutput{
		Body: ChangePasswordResponseBody{Message: "password updated"},
	}, nil
}
