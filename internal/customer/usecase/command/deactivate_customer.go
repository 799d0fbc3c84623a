package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/customer/domain"
)

// DeactivateCustomerCommand represents the soft delete of a customer
type DeactivateCustomerCommand struct {
	ID uint
}

// DeactivateCustomerHandler handles customer deactivation
type DeactivateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewDeactivateCustomerHandler creates a new deactivate customer handler
func NewDeactivateCustomerHandler(repo domain.CustomerRepository) *DeactivateCustomerHandler {
	return &DeactivateCustomerHandler{repo: repo}
}

// Handle executes the deactivate customer command
func (h *DeactivateCustomerHandler) Handle(cmd DeactivateCustomerCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("invalid customer id")
	}

	customer, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return fmt.Errorf("customer not found")
	}

	customer.IsActive = false
	if err := h.repo.Update(customer); err != nil {
		return fmt.Errorf("failed to deactivate customer: %w", err)
	}

	return nil
}
