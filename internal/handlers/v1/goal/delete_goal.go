package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/handlers/v1/respond"
)

// DeleteGoalInput is the Huma input for deleting a goal.
type DeleteGoalInput struct {
	ID string `path:"id" doc:"Goal UUID"`
}

// DeleteGoalOutput is the Huma output for deleting a goal.
type DeleteGoalOutput struct {
	Status int
}

// goalDeleter is the interface for deleting goals.
type goalDeleter interface {
	Delete(ctx context.Context, id, caller uuid.UUID) error
}

// DeleteGoalHandler handles DELETE /api/goals/{id}.
type DeleteGoalHandler struct {
	GoalService goalDeleter
}

// NewDeleteGoalHandler creates a new DeleteGoalHandler.
func NewDeleteGoalHandler(svc goalDeleter) *DeleteGoalHandler {
	return &DeleteGoalHandler{GoalService: svc}
}

// Register registers the delete goal endpoint with the Huma API.
func (h *DeleteGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-goal",
		Method:      http.MethodDelete,
		Path:        "/api/goals/{id}",
		Summary:     "Delete goal",
		Description: "Deletes a goal the caller owns.",
		Tags:        []string{"Goals"},
		Security:    auth.Required,
	}, h.handle)
}

func (h *DeleteGoalHandler) handle(ctx context.Context, input *DeleteGoalInput) (*DeleteGoalOutput, error) {
	identity, err := respond.Identity(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}

	if err := h.GoalService.Delete(ctx, id, identity.UserID); err != nil {
		return nil, respond.ServiceError(err, "failed to delete goal")
	}

	return &DeleteGoalOutput{Status: http.StatusNoContent}, nil
}
