package query

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/customer/domain"
)

// ListCustomersQuery represents the query to list all customers
type ListCustomersQuery struct{}

// ListCustomersHandler handles list customers query
type ListCustomersHandler struct {
	repo domain.CustomerRepository
}

// NewListCustomersHandler creates a new list customers handler
func NewListCustomersHandler(repo domain.CustomerRepository) *ListCustomersHandler {
	return &ListCustomersHandler{repo: repo}
}

// Handle executes the list customers query
func (h *ListCustomersHandler) Handle(q ListCustomersQuery) ([]domain.Customer, error) {
	customers, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}
