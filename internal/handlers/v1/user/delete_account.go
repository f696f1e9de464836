package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/handlers/v1/respond"
	"github.com/Teru3301/FinanceApp/internal/logging"
)

// DeleteAccountInput is the Huma input for deleting the account.
type DeleteAccountInput struct{}

// DeleteAccountOutput is the Huma output for deleting the account.
type DeleteAccountOutput struct {
	Status int
}

// accountDeleter is the interface for deleting an account.
type accountDeleter interface {
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// DeleteAccountHandler handles DELETE /api/user.
type DeleteAccountHandler struct {
	UserService accountDeleter
}

// NewDeleteAccountHandler creates a new DeleteAccountHandler.
func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{UserService: svc}
}

// Register registers the delete account endpoint with the Huma API.
func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodDelete,
		Path:        "/api/user",
		Summary:     "Delete account",
		Description: "Deletes the authenticated user's account and all data it owns.",
		Tags:        []string{"Users"},
		Security:    auth.Required,
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, _ *DeleteAccountInput) (*DeleteAccountOutput, error) {
	identity, err := respond.Identity(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteAccountMs")
	}
	err = h.UserService.DeleteAccount(ctx, identity.UserID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, respond.ServiceError(err, "failed to delete account")
	}

	return &DeleteAccountOutput{Status: http.StatusNoContent}, nil
}
