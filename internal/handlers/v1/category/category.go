package category

import "github.com/Teru3301/FinanceApp/internal/service"

// Category is the API response model for a category.
// It is used only for responses, not for request bodies.
type Category struct {
	ID   string `json:"id" doc:"Category UUID"`
	Name string `json:"name" doc:"Category label"`
	Type string `json:"type" doc:"income or expense"`
}

func categoryFromService(c service.Category) Category {
	return Category{
		ID:   c.ID.String(),
		Name: c.Name,
		Type: c.Type,
	}
}
