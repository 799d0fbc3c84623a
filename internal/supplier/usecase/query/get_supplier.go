package query

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/supplier/domain"
)

// GetSupplierQuery represents the query to get one supplier
type GetSupplierQuery struct {
	ID uint
}

// GetSupplierHandler handles get supplier query
type GetSupplierHandler struct {
	repo domain.SupplierRepository
}

// NewGetSupplierHandler creates a new get supplier handler
func NewGetSupplierHandler(repo domain.SupplierRepository) *GetSupplierHandler {
	return &GetSupplierHandler{repo: repo}
}

// Handle executes the get supplier query
func (h *GetSupplierHandler) Handle(q GetSupplierQuery) (*domain.Supplier, error) {
	if q.ID == 0 {
		return nil, fmt.Errorf("invalid supplier id")
	}

	supplier, err := h.repo.FindByID(q.ID)
	if err != nil {
		return nil, fmt.Errorf("supplier not found")
	}

	return supplier, nil
}
