package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Teru3301/FinanceApp/internal/handlers/v1/respond"
	"github.com/Teru3301/FinanceApp/internal/logging"
	"github.com/Teru3301/FinanceApp/internal/service"
)

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email" required:"true" doc:"Email address"`
	Password string `json:"password" required:"true" doc:"Password"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	Body Session
}

// authenticator is the interface for verifying credentials.
type authenticator interface {
	Login(ctx context.Context, creds service.Credentials) (*service.Session, error)
}

// LoginHandler handles POST /api/auth/login.
type LoginHandler struct {
	AuthService authenticator
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc authenticator) *LoginHandler {
	return &LoginHandler{AuthService: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Login",
		Description: "Verifies credentials and returns a session token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("loginMs")
	}
	session, err := h.AuthService.Login(ctx, service.Credentials{
		Email:    input.Body.Email,
		Password: input.Body.Password,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, respond.ServiceError(err, "failed to login")
	}

	return &LoginOutput{Body: sessionFromService(session)}, nil
}
