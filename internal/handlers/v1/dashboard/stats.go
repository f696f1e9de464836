package dashboard

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

// StatsResponseBody is the response body for the dashboard. All figures
// cover the current calendar month.
type StatsResponseBody struct {
	TotalBalance      string `json:"totalBalance" doc:"Income minus expenses, decimal"`
	MonthlyIncome     string `json:"monthlyIncome" doc:"Income total, decimal"`
	MonthlyExpenses   string `json:"monthlyExpenses" doc:"Expense total, decimal"`
	EcoRating         string `json:"ecoRating" doc:"Letter grade derived from totalCo2"`
	TotalCo2          string `json:"totalCo2" doc:"Eco impact total, decimal"`
	Co2Reduction      int64  `json:"co2Reduction" doc:"Percent improvement against the baseline"`
	TotalTransactions int    `json:"totalTransactions" doc:"Number of transactions this month"`
}

// StatsInput is the Huma input for the dashboard.
type StatsInput struct{}

// StatsOutput is the Huma output for the dashboard.
type StatsOutput struct {
	Body StatsResponseBody
}

// dashboardReader is the interface for computing dashboard figures.
type dashboardReader interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (*service.DashboardStats, error)
}

// StatsHandler handles GET /api/dashboard/stats.
type StatsHandler struct {
	StatsService dashboardReader
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc dashboardReader) *StatsHandler {
	return &StatsHandler{StatsService: svc}
}

// Register registers the dashboard endpoint with the Huma API.
func (h *StatsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-stats",
		Method:      http.MethodGet,
		Path:        "/api/dashboard/stats",
		Summary:     "Dashboard stats",
		Description: "Returns the current month's totals and eco figures for the caller.",
		Tags:        []string{"Statistics"},
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
		stopTimer = logData.AddTiming("dashboardStatsMs")
	}
	stats, err := h.StatsService.Dashboard(ctx, identity.UserID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, respond.ServiceError(err, "failed to compute dashboard stats")
	}

	return &StatsOutput{
		Body: StatsResponseBody{
			TotalBalance:      stats.TotalBalance.String(),
			MonthlyIncome:     stats.MonthlyIncome.String(),
			MonthlyExpenses:   stats.MonthlyExpenses.String(),
			EcoRating:         stats.EcoRating,
			TotalCo2:          stats.TotalCo2.String(),
			Co2Reduction:      stats.CO2Reduction,
			TotalTransactions: stats.TotalTransactions,
		},
	}, nil
}
