package query

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/shoppingcart/domain"
)

// ListCartItemsQuery represents the query to list all cart items
type ListCartItemsQuery struct{}

// ListCartItemsHandler handles list cart items query
type ListCartItemsHandler struct {
	repo domain.ShoppingCartRepository
}

// NewListCartItemsHandler creates a new list cart items handler
func NewListCartItemsHandler(repo domain.ShoppingCartRepository) *ListCartItemsHandler {
	return &ListCartItemsHandler{repo: repo}
}

// Handle executes the list cart items query
func (h *ListCartItemsHandler) Handle(q ListCartItemsQuery) ([]domain.ShoppingCart, error) {
	items, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	return items, nil
}
