package user

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/handlers/v1/respond"
	"github.com/Teru3301/FinanceApp/internal/logging"
	"github.com/Teru3301/FinanceApp/internal/service"
)

// UpdateProfileBody is the request body for updating the profile. Omitted
// fields are left unchanged.
type UpdateProfileBody struct {
	FirstName *string `json:"firstName,omitempty" doc:"New first name"`
	LastName  *string `json:"lastName,omitempty" doc:"New last name"`
}

// UpdateProfileInput is the Huma input for updating the profile.
type UpdateProfileInput struct {
	Body UpdateProfileBody
}

// UpdateProfileOutput is the Huma output for updating the profile.
type UpdateProfileOutput struct {
	Body Profile
}

// profileUpdater is the interface for updating a profile.
type profileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, update service.ProfileUpdate) (*service.User, error)
}

// UpdateProfileHandler handles PATCH /api/user/profile.
type UpdateProfileHandler struct {
	UserService profileUpdater
}

// NewUpdateProfileHandler creates a new UpdateProfileHandler.
func NewUpdateProfileHandler(svc profileUpdater) *UpdateProfileHandler {
	return &UpdateProfileHandler{UserService: svc}
}

// Register registers the update profile endpoint with the Huma API.
func (h *UpdateProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPatch,
		Path:        "/api/user/profile",
		Summary:     "Update profile",
		Description: "Applies a partial update to the authenticated user's profile.",
		Tags:        []string{"Users"},
		Security:    auth.Required,
	}, h.handle)
}

// parseUpdateProfileInput parses and validates the API input.
func parseUpdateProfileInput(input *UpdateProfileInput) (service.ProfileUpdate, error) {
	if input.Body.FirstName == nil && input.Body.LastName == nil {
		return service.ProfileUpdate{}, huma.NewError(http.StatusBadRequest, "no fields to update")
	}
	if input.Body.FirstName != nil && strings.TrimSpace(*input.Body.FirstName) == "" {
		return service.ProfileUpdate{}, huma.NewError(http.StatusBadRequest, "firstName must not be blank")
	}
	if input.Body.LastName != nil && strings.TrimSpace(*input.Body.LastName) == "" {
		return service.ProfileUpdate{}, huma.NewError(http.StatusBadRequest, "lastName must not be blank")
	}

	return service.ProfileUpdate{
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
	}, nil
}

func (h *UpdateProfileHandler) handle(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error) {
	identity, err := respond.Identity(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	update, err := parseUpdateProfileInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateProfileMs")
	}
	profile, err := h.UserService.UpdateProfile(ctx, identity.UserID, update)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, respond.ServiceError(err, "failed to update profile")
	}

	return &UpdateProfileOutput{Body: profileFromService(profile)}, nil
}
