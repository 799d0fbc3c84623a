package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/product/domain"
)

// UpdateImageCommand attaches an uploaded image to a product. The file
// itself is stored by the delivery layer; this records its URL.
type UpdateImageCommand struct {
	ID       uint
	ImageURL string
}

// UpdateImageHandler handles product image updates
type UpdateImageHandler struct {
	repo domain.ProductRepository
}

// NewUpdateImageHandler creates a new update image handler
func NewUpdateImageHandler(repo domain.ProductRepository) *UpdateImageHandler {
	return &UpdateImageHandler{repo: repo}
}

// Handle executes the update image command
func (h *UpdateImageHandler) Handle(cmd UpdateImageCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}
	if cmd.ImageURL == "" {
		return nil, fmt.Errorf("image url is required")
	}

	if _, err := h.repo.FindByID(cmd.ID); err != nil {
		return nil, fmt.Errorf("product not found")
	}

	if err := h.repo.UpdateImageURL(cmd.ID, cmd.ImageURL); err != nil {
		return nil, fmt.Errorf("failed to update product image: %w", err)
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}

	return product, nil
}
