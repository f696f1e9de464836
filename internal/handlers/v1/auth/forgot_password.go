package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Teru3301/FinanceApp/internal/handlers/v1/respond"
)

// ForgotPasswordBody is the request body for requesting a password reset.
type ForgotPasswordBody struct {
	Email string `json:"email" required:"true" doc:"Email address of the account"`
}

// ForgotPasswordInput is the Huma input for requesting a password reset.
type ForgotPasswordInput struct {
	Body ForgotPasswordBody
}

// ForgotPasswordResponseBody is the response body for a password reset
// request. The text is the same whether or not the account exists.
type ForgotPasswordResponseBody struct {
	Message string `json:"message" doc:"Generic acknowledgement"`
}

// ForgotPasswordOutput is the Huma output for requesting a password reset.
type ForgotPasswordOutput struct {
	Body ForgotPasswordResponseBody
}

// resetRequester is the interface for starting a password reset.
type resetRequester interface {
	ForgotPassword(ctx context.Context, email string) error
}

// ForgotPasswordHandler handles POST /api/auth/forgot-password.
type ForgotPasswordHandler struct {
	AuthService resetRequester
}

// NewForgotPasswordHandler creates a new ForgotPasswordHandler.
func NewForgotPasswordHandler(svc resetRequester) *ForgotPasswordHandler {
	return &ForgotPasswordHandler{AuthService: svc}
}

// Register registers the forgot-password endpoint with the Huma API.
func (h *ForgotPasswordHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "forgot-password",
		Method:      http.MethodPost,
		Path:        "/api/auth/forgot-password",
		Summary:     "Forgot password",
		Description: "Starts a password reset. The response does not reveal whether the account exists.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *ForgotPasswordHandler) handle(ctx context.Context, input *ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	if err := h.AuthService.ForgotPassword(ctx, input.Body.Email); err != nil {
		return nil, respond.ServiceError(err, "failed to process reset request")
	}

	return &ForgotPasswordOutput{
		Body: ForgotPasswordResponseBody{
			Message: "if the account exists, password reset instructions have been sent",
		},
	}, nil
}
