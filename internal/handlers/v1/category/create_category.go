package category

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/handlers/v1/respond"
	"github.com/Teru3301/FinanceApp/internal/service"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name string `json:"name" required:"true" doc:"Category label"`
	Type string `json:"type" required:"true" doc:"income or expense"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   Category
}

// categoryCreator is the interface for creating categories.
type categoryCreator interface {
	Create(ctx context.Context, create service.CreateCategory) (*service.Category, error)
}

// CreateCategoryHandler handles POST /api/categories.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/api/categories",
		Summary:     "Create category",
		Description: "Creates a transaction category.",
		Tags:        []string{"Categories"},
		Security:    auth.Required,
	}, h.handle)
}

// parseCreateCategoryInput parses and validates the API input.
func parseCreateCategoryInput(input *CreateCategoryInput) (service.CreateCategory, error) {
	name := strings.TrimSpace(input.Body.Name)
	if name == "" {
		return service.CreateCategory{}, huma.NewError(http.StatusBadRequest, "name must not be blank")
	}
	if input.Body.Type != service.TypeIncome && input.Body.Type != service.TypeExpense {
		return service.CreateCategory{}, huma.NewError(http.StatusBadRequest, "type must be income or expense")
	}

	return service.CreateCategory{Name: name, Type: input.Body.Type}, nil
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	identity, err := respond.Identity(ctx)
	if err != nil {
		return nil, err
	}

	create, err := parseCreateCategoryInput(input)
	if err != nil {
		return nil, err
	}
	create.UserID = identity.UserID

	cat, err := h.CategoryService.Create(ctx, create)
	if err != nil {
		return nil, respond.ServiceError(err, "failed to create category")
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   categoryFromService(*cat),
	}, nil
}
