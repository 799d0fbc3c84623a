package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/product/domain"
)

// UpdateProductCommand represents a partial product update
type UpdateProductCommand struct {
	ID          uint
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	CategoryID  *uint
	SupplierID  *uint
	IsActive    *bool
}

// UpdateProductHandler handles product updates
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, fmt.Errorf("name is required")
		}
		product.Name = *cmd.Name
	}
	if cmd.Description != nil {
		product.Description = *cmd.Description
	}
	if cmd.Price != nil {
		if *cmd.Price <= 0 {
			return nil, fmt.Errorf("price must be greater than 0")
		}
		product.Price = *cmd.Price
	}
	if cmd.Stock != nil {
		if *cmd.Stock < 0 {
			return nil, fmt.Errorf("stock cannot be negative")
		}
		product.Stock = *cmd.Stock
	}
	if cmd.CategoryID != nil {
		product.CategoryID = cmd.CategoryID
	}
	if cmd.SupplierID != nil {
		product.SupplierID = cmd.SupplierID
	}
	if cmd.IsActive != nil {
		product.IsActive = *cmd.IsActive
	}

	// Drop stale preloads so Save does not upsert them
	product.Category = nil
	product.Supplier = nil

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
