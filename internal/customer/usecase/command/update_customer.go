package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/customer/domain"
	"github.com/minimarket/admin-api/internal/validate"
)

// UpdateCustomerCommand represents a partial customer update. Setting
// IsActive back to true reactivates a soft-deleted customer.
type UpdateCustomerCommand struct {
	ID       uint
	FullName *string
	Email    *string
	Phone    *string
	IsActive *bool
}

// UpdateCustomerHandler handles customer updates
type UpdateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewUpdateCustomerHandler creates a new update customer handler
func NewUpdateCustomerHandler(repo domain.CustomerRepository) *UpdateCustomerHandler {
	return &UpdateCustomerHandler{repo: repo}
}

// Handle executes the update customer command
func (h *UpdateCustomerHandler) Handle(cmd UpdateCustomerCommand) (*domain.Customer, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid customer id")
	}

	customer, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("customer not found")
	}

	if cmd.FullName != nil {
		if *cmd.FullName == "" {
			return nil, fmt.Errorf("full name is required")
		}
		customer.FullName = *cmd.FullName
	}
	if cmd.Email != nil {
		if !validate.Email(*cmd.Email) {
			return nil, fmt.Errorf("invalid email address")
		}
		customer.Email = *cmd.Email
	}
	if cmd.Phone != nil {
		customer.Phone = *cmd.Phone
	}
	if cmd.IsActive != nil {
		customer.IsActive = *cmd.IsActive
	}

	if err := h.repo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}
