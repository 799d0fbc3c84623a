package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/customer/domain"
	"github.com/minimarket/admin-api/internal/validate"
)

// CreateCustomerCommand represents the command to create a customer
type CreateCustomerCommand struct {
	FullName string
	Email    string
	Phone    string
}

// CreateCustomerHandler handles customer creation
type CreateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewCreateCustomerHandler creates a new create customer handler
func NewCreateCustomerHandler(repo domain.CustomerRepository) *CreateCustomerHandler {
	return &CreateCustomerHandler{repo: repo}
}

// Handle executes the create customer command
func (h *CreateCustomerHandler) Handle(cmd CreateCustomerCommand) (*domain.Customer, error) {
	if cmd.FullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if !validate.Email(cmd.Email) {
		return nil, fmt.Errorf("invalid email address")
	}

	customer := &domain.Customer{
		FullName: cmd.FullName,
		Email:    cmd.Email,
		Phone:    cmd.Phone,
		IsActive: true,
	}

	if err := h.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}
