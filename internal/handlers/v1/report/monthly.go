package report

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

// CategoryShare is one category's slice of the month's expenses.
type CategoryShare struct {
	Category   string  `json:"category" doc:"Category label"`
	Amount     string  `json:"amount" doc:"Decimal expense total"`
	Percentage float64 `json:"percentage" doc:"Share of total expenses, 0-100"`
}

// MonthlyReportResponseBody is the response body for a monthly report.
type MonthlyReportResponseBody struct {
	Month         int             `json:"month" doc:"Calendar month 1-12"`
	Year          int             `json:"year" doc:"Calendar year"`
	TotalIncome   string          `json:"totalIncome" doc:"Income total, decimal"`
	TotalExpenses string          `json:"totalExpenses" doc:"Expense total, decimal"`
	TopCategories []CategoryShare `json:"topCategories" doc:"Largest expense categories, descending"`
	TotalCo2      string          `json:"totalCo2" doc:"Eco impact total, decimal"`
	EcoRating     string          `json:"ecoRating" doc:"Letter grade derived from totalCo2"`
	EcoAdvice     []string        `json:"ecoAdvice" doc:"Suggestions for lowering the eco impact"`
}

// MonthlyReportInput is the Huma input for a monthly report.
type MonthlyReportInput struct {
	Month int `query:"month" doc:"Calendar month 1-12"`
	Year  int `query:"year" doc:"Calendar year"`
}

// MonthlyReportOutput is the Huma output for a monthly report.
type MonthlyReportOutput struct {
	Body MonthlyReportResponseBody
}

// reportReader is the interface for computing monthly reports.
type reportReader interface {
	Report(ctx context.Context, userID uuid.UUID, month, year int) (*service.MonthlyReport, error)
}

// MonthlyReportHandler handles GET /api/reports/monthly.
type MonthlyReportHandler struct {
	StatsService reportReader
}

// NewMonthlyReportHandler creates a new MonthlyReportHandler.
func NewMonthlyReportHandler(svc reportReader) *MonthlyReportHandler {
	return &MonthlyReportHandler{StatsService: svc}
}

// Register registers the monthly report endpoint with the Huma API.
func (h *MonthlyReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-report",
		Method:      http.MethodGet,
		Path:        "/api/reports/monthly",
		Summary:     "Monthly report",
		Description: "Returns totals, category breakdown and eco figures for one calendar month.",
		Tags:        []string{"Statistics"},
		Security:    auth.Required,
	}, h.handle)
}

// parseMonthlyReportInput parses and validates the API input.
func parseMonthlyReportInput(input *MonthlyReportInput) (month, year int, err error) {
	if input.Month < 1 || input.Month > 12 {
		return 0, 0, huma.NewError(http.StatusBadRequest, "month must be between 1 and 12")
	}
	if input.Year < 1 {
		return 0, 0, huma.NewError(http.StatusBadRequest, "year is required")
	}
	return input.Month, input.Year, nil
}

func (h *MonthlyReportHandler) handle(ctx context.Context, input *MonthlyReportInput) (*MonthlyReportOutput, error) {
	identity, err := respond.Identity(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	month, year, err := parseMonthlyReportInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthlyReportMs")
	}
	rep, err := h.StatsService.Report(ctx, identity.UserID, month, year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, respond.ServiceError(err, "failed to compute monthly report")
	}

	topCategories := make([]CategoryShare, len(rep.TopCategories))
	for i, share := range rep.TopCategories {
		topCategories[i] = CategoryShare{
			Category:   share.Category,
			Amount:     share.Amount.String(),
			Percentage: share.Percentage,
		}
	}

	return &MonthlyReportOutput{
		Body: MonthlyReportResponseBody{
			Month:         rep.Month,
			Year:          rep.Year,
			TotalIncome:   rep.TotalIncome.String(),
			TotalExpenses: rep.TotalExpenses.String(),
			TopCategories: topCategories,
			TotalCo2:      rep.TotalCo2.String(),
			EcoRating:     rep.EcoRating,
			EcoAdvice:     rep.Advice,
		},
	}, nil
}
