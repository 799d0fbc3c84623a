package query

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/customer/domain"
)

// GetCustomerQuery represents the query to get a customer by id
type GetCustomerQuery struct {
	ID uint
}

// GetCustomerHandler handles get customer query
type GetCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewGetCustomerHandler creates a new get customer handler
func NewGetCustomerHandler(repo domain.CustomerRepository) *GetCustomerHandler {
	return &GetCustomerHandler{repo: repo}
}

// Handle executes the get customer query
func (h *GetCustomerHandler) Handle(q GetCustomerQuery) (*domain.Customer, error) {
	if q.ID == 0 {
		return nil, fmt.Errorf("invalid customer id")
	}

	customer, err := h.repo.FindByID(q.ID)
	if err != nil {
		return nil, fmt.Errorf("customer not found")
	}

	return customer, nil
}
