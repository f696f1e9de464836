package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// StatusResponseBody is the response body for the health probe.
type StatusResponseBody struct {
	Status string `json:"status" doc:"Always ok when the server is up"`
}

// StatusInput is the Huma input for the health probe.
type StatusInput struct{}

// StatusOutput is the Huma output for the health probe.
type StatusOutput struct {
	Body StatusResponseBody
}

// Handler handles GET /api/status.
type Handler struct{}

// NewHandler creates a new status Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the status endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "status",
		Method:      http.MethodGet,
		Path:        "/api/status",
		Summary:     "Status",
		Description: "Health probe.",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(_ context.Context, _ *StatusInput) (*StatusOutput, error) {
	return &StatusOutput{Body: StatusResponseBody{Status: "ok"}}, nil
}
