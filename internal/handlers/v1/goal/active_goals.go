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

// ActiveGoalsInput is the Huma input for listing active goals.
type ActiveGoalsInput struct{}

// ActiveGoalsOutput is the Huma output for listing active goals.
type ActiveGoalsOutput struct {
	Body []Goal
}

// activeGoalLister is the interface for listing active goals.
type activeGoalLister interface {
	ListActive(ctx context.Context, userID uuid.UUID) ([]service.Goal, error)
}

// ActiveGoalsHandler handles GET /api/goals/active.
type ActiveGoalsHandler struct {
	GoalService activeGoalLister
}

// NewActiveGoalsHandler creates a new ActiveGoalsHandler.
func NewActiveGoalsHandler(svc activeGoalLister) *ActiveGoalsHandler {
	return &ActiveGoalsHandler{GoalService: svc}
}

// Register registers the active goals endpoint with the Huma API.
func (h *ActiveGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-active-goals",
		Method:      http.MethodGet,
		Path:        "/api/goals/active",
		Summary:     "List active goals",
		Description: "Returns goals still being saved toward: target not reached and target date not passed.",
		Tags:        []string{"Goals"},
		Security:    auth.Required,
	}, h.handle)
}

func (h *ActiveGoalsHandler) handle(ctx context.Context, _ *ActiveGoalsInput) (*ActiveGoalsOutput, error) {
	identity, err := respond.Identity(ctx)
	if err != nil {
		return nil, err
	}

	goals, err := h.GoalService.ListActive(ctx, identity.UserID)
	if err != nil {
		return nil, respond.ServiceError(err, "failed to list active goals")
	}

	return &ActiveGoalsOutput{Body: goalsFromService(goals)}, nil
}
