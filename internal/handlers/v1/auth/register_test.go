package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Teru3301/FinanceApp/internal/service"
)

type mockRegistrar struct {
	mock.Mock
}

func (m *mockRegistrar) Register(ctx context.Context, reg service.Registration) (*service.Session, error) {
	args := m.Called(ctx, reg)
	session, _ := args.Get(0).(*service.Session)
	return session, args.Error(1)
}

func newRegisterTestAPI(t *testing.T, svc registrar) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewRegisterHandler(svc).Register(api)
	return api
}

func testSession() *service.Session {
	return &service.Session{
		Token: "signed-token",
		User: service.User{
			ID:        uuid.Must(uuid.NewV4()),
			Email:     "ada@example.com",
			FirstName: "Ada",
			LastName:  "Lovelace",
			CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

// -- parseRegisterInput unit tests --

func TestParseRegisterInput_Valid(t *testing.T) {
	input := &RegisterInput{Body: RegisterBody{
		Email:     " ada@example.com ",
		Password:  "secret-password",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}}

	reg, err := parseRegisterInput(input)
	assert.NoError(t, err)
	assert.Equal(t, "ada@example.com", reg.Email)
	assert.Equal(t, "secret-password", reg.Password)
}

func TestParseRegisterInput_BadEmail(t *testing.T) {
	input := &RegisterInput{Body: RegisterBody{
		Email:     "not-an-email",
		Password:  "secret-password",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}}

	_, err := parseRegisterInput(input)
	assert.Error(t, err)
}

func TestParseRegisterInput_ShortPassword(t *testing.T) {
	input := &RegisterInput{Body: RegisterBody{
		Email:     "ada@example.com",
		Password:  "short",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}}

	_, err := parseRegisterInput(input)
	assert.Error(t, err)
}

func TestParseRegisterInput_BlankName(t *testing.T) {
	input := &RegisterInput{Body: RegisterBody{
		Email:     "ada@example.com",
		Password:  "secret-password",
		FirstName: "   ",
		LastName:  "Lovelace",
	}}

	_, err := parseRegisterInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_Register_Created(t *testing.T) {
	session := testSession()
	mockSvc := new(mockRegistrar)
	mockSvc.On("Register", mock.Anything, mock.MatchedBy(func(reg service.Registration) bool {
		return reg.Email == "ada@example.com"
	})).Return(session, nil)

	resp := newRegisterTestAPI(t, mockSvc).Post("/api/auth/register", RegisterBody{
		Email:     "ada@example.com",
		Password:  "secret-password",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Session
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "signed-token", body.Token)
	assert.Equal(t, "ada@example.com", body.User.Email)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Register_EmailTaken(t *testing.T) {
	mockSvc := new(mockRegistrar)
	mockSvc.On("Register", mock.Anything, mock.Anything).
		Return((*service.Session)(nil), service.ErrEmailTaken)

	resp := newRegisterTestAPI(t, mockSvc).Post("/api/auth/register", RegisterBody{
		Email:     "ada@example.com",
		Password:  "secret-password",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_Register_InvalidEmail(t *testing.T) {
	mockSvc := new(mockRegistrar)

	resp := newRegisterTestAPI(t, mockSvc).Post("/api/auth/register", RegisterBody{
		Email:     "not-an-email",
		Password:  "secret-password",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Register")
}

func TestHTTP_Register_ServiceError(t *testing.T) {
	mockSvc := new(mockRegistrar)
	mockSvc.On("Register", mock.Anything, mock.Anything).
		Return((*service.Session)(nil), errors.New("database unavailable"))

	resp := newRegisterTestAPI(t, mockSvc).Post("/api/auth/register", RegisterBody{
		Email:     "ada@example.com",
		Password:  "secret-password",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
