package goal

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/handlers/v1/respond"
	"github.com/Teru3301/FinanceApp/internal/logging"
	"github.com/Teru3301/FinanceApp/internal/service"

	"github.com/shopspring/decimal"
)

// CreateGoalBody is the request body for creating a goal.
type CreateGoalBody struct {
	Name         string `json:"name" required:"true" doc:"Goal name"`
	Description  string `json:"description" doc:"Free-form description"`
	TargetAmount string `json:"targetAmount" required:"true" doc:"Positive decimal target"`
	TargetDate   string `json:"targetDate,omitempty" doc:"RFC3339 target date, optional"`
}

// CreateGoalInput is the Huma input for creating a goal.
type CreateGoalInput struct {
	Body CreateGoalBody
}

// CreateGoalOutput is the Huma output for creating a goal.
type CreateGoalOutput struct {
	Status int
	Body   Goal
}

// goalCreator is the interface for creating goals.
type goalCreator interface {
	Create(ctx context.Context, create service.CreateGoal) (*service.Goal, error)
}

// CreateGoalHandler handles POST /api/goals.
type CreateGoalHandler struct {
	GoalService goalCreator
}

// NewCreateGoalHandler creates a new CreateGoalHandler.
func NewCreateGoalHandler(svc goalCreator) *CreateGoalHandler {
	return &CreateGoalHandler{GoalService: svc}
}

// Register registers the create goal endpoint with the Huma API.
func (h *CreateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-goal",
		Method:      http.MethodPost,
		Path:        "/api/goals",
		Summary:     "Create goal",
		Description: "Creates a savings goal starting at zero saved.",
		Tags:        []string{"Goals"},
		Security:    auth.Required,
	}, h.handle)
}

// parseCreateGoalInput parses and validates the API input.
func parseCreateGoalInput(input *CreateGoalInput) (service.CreateGoal, error) {
	name := strings.TrimSpace(input.Body.Name)
	if name == "" {
		return service.CreateGoal{}, huma.NewError(http.StatusBadRequest, "name must not be blank")
	}

	targetAmount, err := decimal.NewFromString(input.Body.TargetAmount)
	if err != nil {
		return service.CreateGoal{}, huma.NewError(http.StatusBadRequest, "invalid targetAmount", err)
	}
	if !targetAmount.IsPositive() {
		return service.CreateGoal{}, huma.NewError(http.StatusBadRequest, "targetAmount must be positive")
	}

	var targetDate *time.Time
	if input.Body.TargetDate != "" {
		parsed, parseErr := time.Parse(time.RFC3339, input.Body.TargetDate)
		if parseErr != nil {
			return service.CreateGoal{}, huma.NewError(http.StatusBadRequest, "invalid targetDate", parseErr)
		}
		targetDate = &parsed
	}

	return service.CreateGoal{
		Name:         name,
		Description:  input.Body.Description,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
	}, nil
}

func (h *CreateGoalHandler) handle(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	identity, err := respond.Identity(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	create, err := parseCreateGoalInput(input)
	if err != nil {
		return nil, err
	}
	create.UserID = identity.UserID

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createGoalMs")
	}
	g, err := h.GoalService.Create(ctx, create)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, respond.ServiceError(err, "failed to create goal")
	}

	return &CreateGoalOutput{
		Status: http.StatusCreated,
		Body:   goalFromService(*g),
	}, nil
}
