package query

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/purchase/domain"
)

// GetPurchaseQuery represents the query to get a purchase by id
type GetPurchaseQuery struct {
	ID uint
}

// GetPurchaseHandler handles get purchase query
type GetPurchaseHandler struct {
	repo domain.PurchaseRepository
}

// NewGetPurchaseHandler creates a new get purchase handler
func NewGetPurchaseHandler(repo domain.PurchaseRepository) *GetPurchaseHandler {
	return &GetPurchaseHandler{repo: repo}
}

// Handle executes the get purchase query
func (h *GetPurchaseHandler) Handle(q GetPurchaseQuery) (*domain.Purchase, error) {
	if q.ID == 0 {
		return nil, fmt.Errorf("invalid purchase id")
	}

	purchase, err := h.repo.FindByID(q.ID)
	if err != nil {
		return nil, err
	}

	return purchase, nil
}
