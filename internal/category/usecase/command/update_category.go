package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/category/domain"
)

// UpdateCategoryCommand represents a partial category update. Nil
// fields are left untouched.
type UpdateCategoryCommand struct {
	ID          uint
	Name        *string
	Description *string
	IsActive    *bool
}

// UpdateCategoryHandler handles category updates
type UpdateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewUpdateCategoryHandler creates a new update category handler
func NewUpdateCategoryHandler(repo domain.CategoryRepository) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{repo: repo}
}

// Handle executes the update category command
func (h *UpdateCategoryHandler) Handle(cmd UpdateCategoryCommand) (*domain.Category, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid category id")
	}

	category, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("category not found")
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, fmt.Errorf("name is required")
		}
		category.Name = *cmd.Name
	}
	if cmd.Description != nil {
		category.Description = *cmd.Description
	}
	if cmd.IsActive != nil {
		category.IsActive = *cmd.IsActive
	}

	if err := h.repo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}
