package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/handlers/v1/respond"
	"github.com/Teru3301/FinanceApp/internal/service"
)

// ListGoalsInput is the Huma input for listing goals.
type ListGoalsInput struct{}

// ListGoalsOutput is the Huma output for listing goals.
type ListGoalsOutput struct {
	Body []Goal
}

// goalLister is the interface for listing goals.
type goalLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]service.Goal, error)
}

// ListGoalsHandler handles GET /api/goals.
type ListGoalsHandler struct {
	GoalService goalLister
}

// NewListGoalsHandler creates a new ListGoalsHandler.
func NewListGoalsHandler(svc goalLister) *ListGoalsHandler {
	return &ListGoalsHandler{GoalService: svc}
}

// Register registers the list goals endpoint with the Huma API.
func (h *ListGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodGet,
		Path:        "/api/goals",
		Summary:     "List goals",
		Description: "Returns all of the caller's goals, newest first.",
		Tags:        []string{"Goals"},
		Security:    auth.Required,
	}, h.handle)
}

func (h *ListGoalsHandler) handle(ctx context.Context, _ *ListGoalsInput) (*ListGoalsOutput, error) {
	identity, err := respond.Identity(ctx)
	if err != nil {
		return nil, err
	}

	goals, err := h.GoalService.List(ctx, identity.UserID)
	if err != nil {
		return nil, respond.ServiceError(err, "failed to list goals")
	}

	return &ListGoalsOutput{Body: goalsFromService(goals)}, nil
}
