package goal

import (
	"time"

	"github.com/Teru3301/FinanceApp/internal/service"
)

// Goal is the API response model for a savings goal.
// It is used only for responses, not for request bodies.
type Goal struct {
	ID           string  `json:"id" doc:"Goal UUID"`
	Name         string  `json:"name" doc:"Goal name"`
	Description  string  `json:"description" doc:"Free-form description"`
	TargetAmount string  `json:"targetAmount" doc:"Decimal target amount"`
	CurrentSaved string  `json:"currentSaved" doc:"Decimal amount saved so far"`
	TargetDate   *string `json:"targetDate,omitempty" doc:"RFC3339 target date, absent when open-ended"`
	Completed    bool    `json:"completed" doc:"Whether the target has been reached"`
	CreatedAt    string  `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt    string  `json:"updatedAt" doc:"RFC3339 last update time"`
}

func goalFromService(g service.Goal) Goal {
	converted := Goal{
		ID:           g.ID.String(),
		Name:         g.Name,
		Description:  g.Description,
		TargetAmount: g.TargetAmount.String(),
		CurrentSaved: g.CurrentSaved.String(),
		Completed:    g.Completed,
		CreatedAt:    g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    g.UpdatedAt.Format(time.RFC3339),
	}
	if g.TargetDate != nil {
		targetDate := g.TargetDate.Format(time.RFC3339)
		converted.TargetDate = &targetDate
	}
	return converted
}

func goalsFromService(goals []service.Goal) []Goal {
	converted := make([]Goal, len(goals))
	for i, g := range goals {
		converted[i] = goalFromService(g)
	}
	return converted
}
