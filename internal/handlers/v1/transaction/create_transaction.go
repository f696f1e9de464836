package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/handlers/v1/respond"
	"github.com/Teru3301/FinanceApp/internal/logging"
	"github.com/Teru3301/FinanceApp/internal/service"
)

// CreateTransactionBody is the request body for recording a transaction.
type CreateTransactionBody struct {
	Type        string `json:"type" required:"true" doc:"income or expense"`
	Amount      string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Category    string `json:"category" required:"true" doc:"Category label"`
	Description string `json:"description" doc:"Free-form description"`
	Date        string `json:"date" doc:"RFC3339 transaction date, defaults to now"`
	GoalID      string `json:"goalId,omitempty" doc:"Savings goal to credit, income only"`
}

// CreateTransactionInput is the Huma input for recording a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for recording a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionCreator is the interface for recording transactions.
type transactionCreator interface {
	Create(ctx context.Context, create service.CreateTransaction) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /api/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/api/transactions",
		Summary:     "Create transaction",
		Description: "Records a transaction and derives its eco impact.",
		Tags:        []string{"Transactions"},
		Security:    auth.Required,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.CreateTransaction, error) {
	if input.Body.Type != service.TypeIncome && input.Body.Type != service.TypeExpense {
		return service.CreateTransaction{}, huma.NewError(http.StatusBadRequest, "type must be income or expense")
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.CreateTransaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if !amount.IsPositive() {
		return service.CreateTransaction{}, huma.NewError(http.StatusBadRequest, "amount must be positive")
	}

	date := time.Now()
	if input.Body.Date != "" {
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return service.CreateTransaction{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	var goalID *uuid.UUID
	if input.Body.GoalID != "" {
		parsed, parseErr := uuid.FromString(input.Body.GoalID)
		if parseErr != nil {
			return service.CreateTransaction{}, huma.NewError(http.StatusBadRequest, "invalid goalId", parseErr)
		}
		goalID = &parsed
	}

	return service.CreateTransaction{
		Type:        input.Body.Type,
		Amount:      amount,
		Category:    input.Body.Category,
		Description: input.Body.Description,
		Date:        date,
		GoalID:      goalID,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	identity, err := respond.Identity(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}
	create.UserID = identity.UserID

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	tx, err := h.TransactionService.Create(ctx, create)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, respond.ServiceError(err, "failed to create transaction")
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   transactionFromService(*tx),
	}, nil
}
