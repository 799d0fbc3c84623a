package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/supplier/domain"
	"github.com/minimarket/admin-api/internal/validate"
)

// CreateSupplierCommand represents the command to create a supplier
type CreateSupplierCommand struct {
	CompanyName string
	ContactName string
	Phone       string
	Email       string
}

// CreateSupplierHandler handles supplier creation
type CreateSupplierHandler struct {
	repo domain.SupplierRepository
}

// NewCreateSupplierHandler creates a new create supplier handler
func NewCreateSupplierHandler(repo domain.SupplierRepository) *CreateSupplierHandler {
	return &CreateSupplierHandler{repo: repo}
}

// Handle executes the create supplier command
func (h *CreateSupplierHandler) Handle(cmd CreateSupplierCommand) (*domain.Supplier, error) {
	if cmd.CompanyName == "" {
		return nil, fmt.Errorf("company name is required")
	}
	if cmd.ContactName == "" {
		return nil, fmt.Errorf("contact name is required")
	}
	if !validate.Email(cmd.Email) {
		return nil, fmt.Errorf("invalid email address")
	}

	supplier := &domain.Supplier{
		CompanyName: cmd.CompanyName,
		ContactName: cmd.ContactName,
		Phone:       cmd.Phone,
		Email:       cmd.Email,
		IsActive:    true,
	}

	if err := h.repo.Create(supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	return supplier, nil
}
