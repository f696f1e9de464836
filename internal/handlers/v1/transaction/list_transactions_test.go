package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/service"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) List(ctx context.Context, userID uuid.UUID, filter service.TransactionListFilter) ([]service.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func newListTestAPI(t *testing.T, svc transactionLister, identity auth.Identity) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(identityMiddleware(identity))
	NewListTransactionsHandler(svc).Register(api)
	return api
}

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_Defaults(t *testing.T) {
	filter, err := parseListTransactionsInput(&ListTransactionsInput{})
	assert.NoError(t, err)
	assert.Equal(t, defaultListLimit, filter.Limit)
	assert.Equal(t, 0, filter.Offset)
	assert.Empty(t, filter.Type)
}

func TestParseListTransactionsInput_BadType(t *testing.T) {
	_, err := parseListTransactionsInput(&ListTransactionsInput{Type: "transfer"})
	assert.Error(t, err)
}

func TestParseListTransactionsInput_MonthRequiresYear(t *testing.T) {
	_, err := parseListTransactionsInput(&ListTransactionsInput{Month: 6})
	assert.Error(t, err)

	filter, err := parseListTransactionsInput(&ListTransactionsInput{Month: 6, Year: 2025})
	assert.NoError(t, err)
	assert.Equal(t, 6, filter.Month)
	assert.Equal(t, 2025, filter.Year)
}

func TestParseListTransactionsInput_MonthOutOfRange(t *testing.T) {
	_, err := parseListTransactionsInput(&ListTransactionsInput{Month: 13, Year: 2025})
	assert.Error(t, err)
}

func TestParseListTransactionsInput_LimitBounds(t *testing.T) {
	_, err := parseListTransactionsInput(&ListTransactionsInput{Limit: 101})
	assert.Error(t, err)

	filter, err := parseListTransactionsInput(&ListTransactionsInput{Limit: 100})
	assert.NoError(t, err)
	assert.Equal(t, 100, filter.Limit)
}

// -- HTTP integration tests --

func TestHTTP_ListTransactions_ReturnsArray(t *testing.T) {
	caller := auth.Identity{UserID: uuid.Must(uuid.NewV4())}
	date := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionLister)
	mockSvc.On("List", mock.Anything, caller.UserID, mock.MatchedBy(func(f service.TransactionListFilter) bool {
		return f.Type == "expense" && f.Limit == defaultListLimit
	})).Return([]service.Transaction{
		{
			ID:        uuid.Must(uuid.NewV4()),
			UserID:    caller.UserID,
			Type:      "expense",
			Amount:    decimal.RequireFromString("10.00"),
			Category:  "food",
			Date:      date,
			EcoImpact: decimal.RequireFromString("1.5"),
			CreatedAt: date,
		},
	}, nil)

	resp := newListTestAPI(t, mockSvc, caller).Get("/api/transactions?type=expense")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 1)
	assert.Equal(t, "food", body[0].Category)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_Empty(t *testing.T) {
	caller := auth.Identity{UserID: uuid.Must(uuid.NewV4())}

	mockSvc := new(mockTransactionLister)
	mockSvc.On("List", mock.Anything, caller.UserID, mock.Anything).
		Return([]service.Transaction{}, nil)

	resp := newListTestAPI(t, mockSvc, caller).Get("/api/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body)
}

func TestHTTP_DeleteTransaction_NoContent(t *testing.T) {
	caller := auth.Identity{UserID: uuid.Must(uuid.NewV4())}
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionDeleter)
	mockSvc.On("Delete", mock.Anything, txID, caller.UserID).Return(nil)

	_, api := humatest.New(t)
	api.UseMiddleware(identityMiddleware(caller))
	NewDeleteTransactionHandler(mockSvc).Register(api)

	resp := api.Delete("/api/transactions/" + txID.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_Foreign(t *testing.T) {
	caller := auth.Identity{UserID: uuid.Must(uuid.NewV4())}
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionDeleter)
	mockSvc.On("Delete", mock.Anything, txID, caller.UserID).Return(service.ErrForbidden)

	_, api := humatest.New(t)
	api.UseMiddleware(identityMiddleware(caller))
	NewDeleteTransactionHandler(mockSvc).Register(api)

	resp := api.Delete("/api/transactions/" + txID.String())

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

type mockTransactionDeleter struct {
	mock.Mock
}

func (m *mockTransactionDeleter) Delete(ctx context.Context, id, caller uuid.UUID) error {
	args := m.Called(ctx, id, caller)
	return args.Error(0)
}
