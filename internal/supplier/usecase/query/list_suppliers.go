package query

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/supplier/domain"
)

// ListSuppliersQuery represents the query to list all suppliers
type ListSuppliersQuery struct{}

// ListSuppliersHandler handles list suppliers query
type ListSuppliersHandler struct {
	repo domain.SupplierRepository
}

// NewListSuppliersHandler creates a new list suppliers handler
func NewListSuppliersHandler(repo domain.SupplierRepository) *ListSuppliersHandler {
	return &ListSuppliersHandler{repo: repo}
}

// Handle executes the list suppliers query
func (h *ListSuppliersHandler) Handle(q ListSuppliersQuery) ([]domain.Supplier, error) {
	suppliers, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}

	return suppliers, nil
}
