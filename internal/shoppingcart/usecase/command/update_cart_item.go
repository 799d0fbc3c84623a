package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/shoppingcart/domain"
)

// UpdateCartItemCommand represents a partial cart item update
type UpdateCartItemCommand struct {
	ID         uint
	ProductID  *uint
	CustomerID *uint
	Quantity   *int
	IsActive   *bool
}

// UpdateCartItemHandler handles cart item updates
type UpdateCartItemHandler struct {
	repo domain.ShoppingCartRepository
}

// NewUpdateCartItemHandler creates a new update cart item handler
func NewUpdateCartItemHandler(repo domain.ShoppingCartRepository) *UpdateCartItemHandler {
	return &UpdateCartItemHandler{repo: repo}
}

// Handle executes the update cart item command
func (h *UpdateCartItemHandler) Handle(cmd UpdateCartItemCommand) (*domain.ShoppingCart, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid cart item id")
	}

	item, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("cart item not found")
	}

	if cmd.ProductID != nil {
		if *cmd.ProductID == 0 {
			return nil, fmt.Errorf("product id is required")
		}
		item.ProductID = *cmd.ProductID
	}
	if cmd.CustomerID != nil {
		if *cmd.CustomerID == 0 {
			return nil, fmt.Errorf("customer id is required")
		}
		item.CustomerID = *cmd.CustomerID
	}
	if cmd.Quantity != nil {
		if *cmd.Quantity < 1 {
			return nil, fmt.Errorf("quantity must be at least 1")
		}
		item.Quantity = *cmd.Quantity
	}
	if cmd.IsActive != nil {
		item.IsActive = *cmd.IsActive
	}

	// Drop stale preloads so Save does not upsert them
	item.Product = nil
	item.Customer = nil

	if err := h.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return item, nil
}
