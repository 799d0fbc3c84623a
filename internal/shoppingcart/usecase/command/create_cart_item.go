package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/shoppingcart/domain"
)

// CreateCartItemCommand represents the command to reserve a product
type CreateCartItemCommand struct {
	ProductID  uint
	CustomerID uint
	Quantity   int
}

// CreateCartItemHandler handles cart item creation
type CreateCartItemHandler struct {
	repo domain.ShoppingCartRepository
}

// NewCreateCartItemHandler creates a new create cart item handler
func NewCreateCartItemHandler(repo domain.ShoppingCartRepository) *CreateCartItemHandler {
	return &CreateCartItemHandler{repo: repo}
}

// Handle executes the create cart item command
func (h *CreateCartItemHandler) Handle(cmd CreateCartItemCommand) (*domain.ShoppingCart, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("product id is required")
	}
	if cmd.CustomerID == 0 {
		return nil, fmt.Errorf("customer id is required")
	}
	if cmd.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	item := &domain.ShoppingCart{
		ProductID:  cmd.ProductID,
		CustomerID: cmd.CustomerID,
		Quantity:   cmd.Quantity,
		IsActive:   true,
	}

	if err := h.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create cart item: %w", err)
	}

	return item, nil
}
