package auth

import (
	"context"
	"net/http"
	"net/mail"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Teru3301/FinanceApp/internal/handlers/v1/respond"
	"github.com/Teru3301/FinanceApp/internal/logging"
	"github.com/Teru3301/FinanceApp/internal/service"
)

const minPasswordLength = 8

// RegisterBody is the request body for creating an account.
type RegisterBody struct {
	Email     string `json:"email" required:"true" doc:"Email address, used for login"`
	Password  string `json:"password" required:"true" doc:"Password, at least 8 characters"`
	FirstName string `json:"firstName" required:"true" doc:"First name"`
	LastName  string `json:"lastName" required:"true" doc:"Last name"`
}

// RegisterInput is the Huma input for creating an account.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterOutput is the Huma output for creating an account.
type RegisterOutput struct {
	Status int
	Body   Session
}

// registrar is the interface for creating accounts.
type registrar interface {
	Register(ctx context.Context, reg service.Registration) (*service.Session, error)
}

// RegisterHandler handles POST /api/auth/register.
type RegisterHandler struct {
	AuthService registrar
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(svc registrar) *RegisterHandler {
	return &RegisterHandler{AuthService: svc}
}

// Register registers the register endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "register",
		Method:      http.MethodPost,
		Path:        "/api/auth/register",
		Summary:     "Register",
		Description: "Creates an account and returns a session token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

// parseRegisterInput parses and validates the API input.
func parseRegisterInput(input *RegisterInput) (service.Registration, error) {
	email := strings.TrimSpace(input.Body.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return service.Registration{}, huma.NewError(http.StatusBadRequest, "invalid email")
	}
	if len(input.Body.Password) < minPasswordLength {
		return service.Registration{}, huma.NewError(http.StatusBadRequest, "password must be at least 8 characters")
	}
	firstName := strings.TrimSpace(input.Body.FirstName)
	lastName := strings.TrimSpace(input.Body.LastName)
	if firstName == "" || lastName == "" {
		return service.Registration{}, huma.NewError(http.StatusBadRequest, "firstName and lastName must not be blank")
	}

	return service.Registration{
		Email:     email,
		Password:  input.Body.Password,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	logData := logging.GetLogData(ctx)
	reg, err := parseRegisterInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("registerMs")
	}
	session, err := h.AuthService.Register(ctx, reg)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, respond.ServiceError(err, "failed to register")
	}

	return &RegisterOutput{
		Status: http.StatusCreated,
		Body:   sessionFromService(session),
	}, nil
}
