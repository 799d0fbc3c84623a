package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/shoppingcart/domain"
)

// DeactivateCartItemCommand represents the soft delete of a cart item
type DeactivateCartItemCommand struct {
	ID uint
}

// DeactivateCartItemHandler handles cart item deactivation
type DeactivateCartItemHandler struct {
	repo domain.ShoppingCartRepository
}

// NewDeactivateCartItemHandler creates a new deactivate cart item handler
func NewDeactivateCartItemHandler(repo domain.ShoppingCartRepository) *DeactivateCartItemHandler {
	return &DeactivateCartItemHandler{repo: repo}
}

// Handle executes the deactivate cart item command
func (h *DeactivateCartItemHandler) Handle(cmd DeactivateCartItemCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("invalid cart item id")
	}

	item, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return fmt.Errorf("cart item not found")
	}

	item.IsActive = false
	item.Product = nil
	item.Customer = nil

	if err := h.repo.Update(item); err != nil {
		return fmt.Errorf("failed to deactivate cart item: %w", err)
	}

	return nil
}
