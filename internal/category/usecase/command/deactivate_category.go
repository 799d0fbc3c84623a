package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/category/domain"
)

// DeactivateCategoryCommand represents the soft delete of a category
type DeactivateCategoryCommand struct {
	ID uint
}

// DeactivateCategoryHandler handles category deactivation
type DeactivateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewDeactivateCategoryHandler creates a new deactivate category handler
func NewDeactivateCategoryHandler(repo domain.CategoryRepository) *DeactivateCategoryHandler {
	return &DeactivateCategoryHandler{repo: repo}
}

// Handle executes the deactivate category command
func (h *DeactivateCategoryHandler) Handle(cmd DeactivateCategoryCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("invalid category id")
	}

	category, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return fmt.Errorf("category not found")
	}

	category.IsActive = false
	if err := h.repo.Update(category); err != nil {
		return fmt.Errorf("failed to deactivate category: %w", err)
	}

	return nil
}
