package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/supplier/domain"
	"github.com/minimarket/admin-api/internal/validate"
)

// UpdateSupplierCommand represents a partial supplier update
type UpdateSupplierCommand struct {
	ID          uint
	CompanyName *string
	ContactName *string
	Phone       *string
	Email       *string
	IsActive    *bool
}

// UpdateSupplierHandler handles supplier updates
type UpdateSupplierHandler struct {
	repo domain.SupplierRepository
}

// NewUpdateSupplierHandler creates a new update supplier handler
func NewUpdateSupplierHandler(repo domain.SupplierRepository) *UpdateSupplierHandler {
	return &UpdateSupplierHandler{repo: repo}
}

// Handle executes the update supplier command
func (h *UpdateSupplierHandler) Handle(cmd UpdateSupplierCommand) (*domain.Supplier, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid supplier id")
	}

	supplier, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("supplier not found")
	}

	if cmd.CompanyName != nil {
		if *cmd.CompanyName == "" {
			return nil, fmt.Errorf("company name is required")
		}
		supplier.CompanyName = *cmd.CompanyName
	}
	if cmd.ContactName != nil {
		if *cmd.ContactName == "" {
			return nil, fmt.Errorf("contact name is required")
		}
		supplier.ContactName = *cmd.ContactName
	}
	if cmd.Phone != nil {
		supplier.Phone = *cmd.Phone
	}
	if cmd.Email != nil {
		if !validate.Email(*cmd.Email) {
			return nil, fmt.Errorf("invalid email address")
		}
		supplier.Email = *cmd.Email
	}
	if cmd.IsActive != nil {
		supplier.IsActive = *cmd.IsActive
	}

	if err := h.repo.Update(supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	return supplier, nil
}
