package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/supplier/domain"
)

// DeactivateSupplierCommand represents the soft delete of a supplier
type DeactivateSupplierCommand struct {
	ID uint
}

// DeactivateSupplierHandler handles supplier deactivation
type DeactivateSupplierHandler struct {
	repo domain.SupplierRepository
}

// NewDeactivateSupplierHandler creates a new deactivate supplier handler
func NewDeactivateSupplierHandler(repo domain.SupplierRepository) *DeactivateSupplierHandler {
	return &DeactivateSupplierHandler{repo: repo}
}

// Handle executes the deactivate supplier command
func (h *DeactivateSupplierHandler) Handle(cmd DeactivateSupplierCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("invalid supplier id")
	}

	supplier, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return fmt.Errorf("supplier not found")
	}

	supplier.IsActive = false
	if err := h.repo.Update(supplier); err != nil {
		return fmt.Errorf("failed to deactivate supplier: %w", err)
	}

	return nil
}
