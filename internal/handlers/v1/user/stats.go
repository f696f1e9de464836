package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/handlers/v1/respond"
	"github.com/Teru3301/FinanceApp/internal/logging"
	"github.com/Teru3301/FinanceApp/internal/service"
)

// StatsResponseBody is the response body for the account stats.
type StatsResponseBody struct {
	TotalTransactions int64  `json:"totalTransactions" doc:"Number of transactions recorded"`
	AccountAgeDays    int    `json:"accountAgeDays" doc:"Whole days since registration"`
	TotalCo2          string `json:"totalCo2" doc:"All-time eco impact, decimal"`
	EcoRating         string `json:"ecoRating" doc:"Letter grade derived from totalCo2"`
}

// StatsInput is the Huma input for fetching account stats.
type StatsInput struct{}

// StatsOutput is the Huma output for fetching account stats.
type StatsOutput struct {
	Body StatsResponseBody
}

// statsReader is the interface for computing account stats.
type statsReader interface {
	Stats(ctx context.Context, userID uuid.UUID) (*service.UserStats, error)
}

// StatsHandler handles GET /api/user/stats.
type StatsHandler struct {
	UserService statsReader
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc statsReader) *StatsHandler {
	return &StatsHandler{UserService: svc}
}

// Register registers the account stats endpoint with the Huma API.
func (h *StatsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user-stats",
		Method:      http.MethodGet,
		Path:        "/api/user/stats",
		Summary:     "Account stats",
		Description: "Returns activity and eco figures for the authenticated user.",
		Tags:        []string{"Users"},
		Security:    auth.Required,
	}, h.handle)
}

func (h *StatsHandler) handle(ctx context.Context, _ *StatsInput) (*StatsOutput, error) {
	identity, err := respond.Identity(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("userStatsMs")
	}
	stats, err := h.UserService.Stats(ctx, identity.UserID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, respond.ServiceError(err, "failed to load stats")
	}

	return &StatsOutput{
		Body: StatsResponseBody{
			TotalTransactions: stats.TotalTransactions,
			AccountAgeDays:    stats.AccountAgeDays,
			TotalCo2:          stats.TotalCo2.String(),
			EcoRating:         stats.EcoRating,
		},
	}, nil
}
