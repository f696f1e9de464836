package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/handlers/v1/respond"
	"github.com/Teru3301/FinanceApp/internal/service"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	Type string `query:"type" doc:"Filter by income or expense"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body []Category
}

// categoryLister is the interface for listing categories.
type categoryLister interface {
	List(ctx context.Context, userID uuid.UUID, categoryType string) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /api/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/categories",
		Summary:     "List categories",
		Description: "Returns the caller's categories, optionally filtered by type.",
		Tags:        []string{"Categories"},
		Security:    auth.Required,
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	identity, err := respond.Identity(ctx)
	if err != nil {
		return nil, err
	}

	if input.Type != "" && input.Type != service.TypeIncome && input.Type != service.TypeExpense {
		return nil, huma.NewError(http.StatusBadRequest, "type must be income or expense")
	}

	categories, err := h.CategoryService.List(ctx, identity.UserID, input.Type)
	if err != nil {
		return nil, respond.ServiceError(err, "failed to list categories")
	}

	body := make([]Category, len(categories))
	for i, cat := range categories {
		body[i] = categoryFromService(cat)
	}

	return &ListCategoriesOutput{Body: body}, nil
}
