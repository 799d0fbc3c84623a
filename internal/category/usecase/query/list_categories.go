package query

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/category/domain"
)

// ListCategoriesQuery represents the query to list all categories
type ListCategoriesQuery struct{}

// ListCategoriesHandler handles list categories query
type ListCategoriesHandler struct {
	repo domain.CategoryRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(q ListCategoriesQuery) ([]domain.Category, error) {
	categories, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}
