package goal

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/handlers/v1/respond"
	"github.com/Teru3301/FinanceApp/internal/logging"
	"github.com/Teru3301/FinanceApp/internal/service"
)

// UpdateGoalBody is the request body for updating a goal. Omitted fields are
// left unchanged. addSaved increments the saved amount instead of replacing
// it.
type UpdateGoalBody struct {
	Name         *string `json:"name,omitempty" doc:"New goal name"`
	Description  *string `json:"description,omitempty" doc:"New description"`
	TargetAmount *string `json:"targetAmount,omitempty" doc:"New decimal target"`
	TargetDate   *string `json:"targetDate,omitempty" doc:"New RFC3339 target date"`
	Completed    *bool   `json:"completed,omitempty" doc:"Mark the goal completed or not"`
	AddSaved     *string `json:"addSaved,omitempty" doc:"Decimal amount to add to currentSaved"`
}

// UpdateGoalInput is the Huma input for updating a goal.
type UpdateGoalInput struct {
	ID   string `path:"id" doc:"Goal UUID"`
	Body UpdateGoalBody
}

// UpdateGoalOutput is the Huma output for updating a goal.
type UpdateGoalOutput struct {
	Body Goal
}

// goalUpdater is the interface for updating goals.
type goalUpdater interface {
	Update(ctx context.Context, id, caller uuid.UUID, update service.UpdateGoal) (*service.Goal, error)
}

// UpdateGoalHandler handles PATCH /api/goals/{id}.
type UpdateGoalHandler struct {
	GoalService goalUpdater
}

// NewUpdateGoalHandler creates a new UpdateGoalHandler.
func NewUpdateGoalHandler(svc goalUpdater) *UpdateGoalHandler {
	return &UpdateGoalHandler{GoalService: svc}
}

// Register registers the update goal endpoint with the Huma API.
func (h *UpdateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-goal",
		Method:      http.MethodPatch,
		Path:        "/api/goals/{id}",
		Summary:     "Update goal",
		Description: "Applies a partial update to a goal the caller owns.",
		Tags:        []string{"Goals"},
		Security:    auth.Required,
	}, h.handle)
}

// parseUpdateGoalInput parses and validates the API input.
func parseUpdateGoalInput(input *UpdateGoalInput) (uuid.UUID, service.UpdateGoal, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return uuid.Nil, service.UpdateGoal{}, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}

	body := input.Body
	if body.Name == nil && body.Description == nil && body.TargetAmount == nil &&
		body.TargetDate == nil && body.Completed == nil && body.AddSaved == nil {
		return uuid.Nil, service.UpdateGoal{}, huma.NewError(http.StatusBadRequest, "no fields to update")
	}
	if body.Name != nil && strings.TrimSpace(*body.Name) == "" {
		return uuid.Nil, service.UpdateGoal{}, huma.NewError(http.StatusBadRequest, "name must not be blank")
	}

	update := service.UpdateGoal{
		Name:        body.Name,
		Description: body.Description,
		Completed:   body.Completed,
	}

	if body.TargetAmount != nil {
		targetAmount, parseErr := decimal.NewFromString(*body.TargetAmount)
		if parseErr != nil {
			return uuid.Nil, service.UpdateGoal{}, huma.NewError(http.StatusBadRequest, "invalid targetAmount", parseErr)
		}
		if !targetAmount.IsPositive() {
			return uuid.Nil, service.UpdateGoal{}, huma.NewError(http.StatusBadRequest, "targetAmount must be positive")
		}
		update.TargetAmount = &targetAmount
	}

	if body.TargetDate != nil {
		targetDate, parseErr := time.Parse(time.RFC3339, *body.TargetDate)
		if parseErr != nil {
			return uuid.Nil, service.UpdateGoal{}, huma.NewError(http.StatusBadRequest, "invalid targetDate", parseErr)
		}
		update.TargetDate = &targetDate
	}

	if body.AddSaved != nil {
		addSaved, parseErr := decimal.NewFromString(*body.AddSaved)
		if parseErr != nil {
			return uuid.Nil, service.UpdateGoal{}, huma.NewError(http.StatusBadRequest, "invalid addSaved", parseErr)
		}
		if !addSaved.IsPositive() {
			return uuid.Nil, service.UpdateGoal{}, huma.NewError(http.StatusBadRequest, "addSaved must be positive")
		}
		update.AddSaved = &addSaved
	}

	return id, update, nil
}

func (h *UpdateGoalHandler) handle(ctx context.Context, input *UpdateGoalInput) (*UpdateGoalOutput, error) {
	identity, err := respond.Identity(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	id, update, err := parseUpdateGoalInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateGoalMs")
	}
	g, err := h.GoalService.Update(ctx, id, identity.UserID, update)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, respond.ServiceError(err, "failed to update goal")
	}

	return &UpdateGoalOutput{Body: goalFromService(*g)}, nil
}
