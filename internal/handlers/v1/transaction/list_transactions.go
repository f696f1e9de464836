package transaction

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

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Type   string `query:"type" doc:"Filter by income or expense"`
	Month  int    `query:"month" doc:"Calendar month 1-12, requires year"`
	Year   int    `query:"year" doc:"Calendar year"`
	Limit  int    `query:"limit" doc:"Page size, defaults to 50, max 100"`
	Offset int    `query:"offset" doc:"Rows to skip"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body []Transaction
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	List(ctx context.Context, userID uuid.UUID, filter service.TransactionListFilter) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /api/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/api/transactions",
		Summary:     "List transactions",
		Description: "Returns the caller's transactions, newest first, with optional type and month filters.",
		Tags:        []string{"Transactions"},
		Security:    auth.Required,
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionListFilter, error) {
	if input.Type != "" && input.Type != service.TypeIncome && input.Type != service.TypeExpense {
		return service.TransactionListFilter{}, huma.NewError(http.StatusBadRequest, "type must be income or expense")
	}
	if input.Month != 0 && (input.Month < 1 || input.Month > 12) {
		return service.TransactionListFilter{}, huma.NewError(http.StatusBadRequest, "month must be between 1 and 12")
	}
	if input.Month != 0 && input.Year == 0 {
		return service.TransactionListFilter{}, huma.NewError(http.StatusBadRequest, "month requires year")
	}
	if input.Limit < 0 || input.Limit > maxListLimit {
		return service.TransactionListFilter{}, huma.NewError(http.StatusBadRequest, "limit must be between 1 and 100")
	}
	if input.Offset < 0 {
		return service.TransactionListFilter{}, huma.NewError(http.StatusBadRequest, "offset must be non-negative")
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	return service.TransactionListFilter{
		Type:   input.Type,
		Month:  input.Month,
		Year:   input.Year,
		Limit:  limit,
		Offset: input.Offset,
	}, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	identity, err := respond.Identity(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.List(ctx, identity.UserID, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, respond.ServiceError(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	body := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		body[i] = transactionFromService(tx)
	}

	return &ListTransactionsOutput{Body: body}, nil
}
