package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/product/domain"
)

// DeactivateProductCommand represents the soft delete of a product
type DeactivateProductCommand struct {
	ID uint
}

// DeactivateProductHandler handles product deactivation
type DeactivateProductHandler struct {
	repo domain.ProductRepository
}

// NewDeactivateProductHandler creates a new deactivate product handler
func NewDeactivateProductHandler(repo domain.ProductRepository) *DeactivateProductHandler {
	return &DeactivateProductHandler{repo: repo}
}

// Handle executes the deactivate product command
func (h *DeactivateProductHandler) Handle(cmd DeactivateProductCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("invalid product id")
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return fmt.Errorf("product not found")
	}

	product.IsActive = false
	product.Category = nil
	product.Supplier = nil

	if err := h.repo.Update(product); err != nil {
		return fmt.Errorf("failed to deactivate product: %w", err)
	}

	return nil
}
