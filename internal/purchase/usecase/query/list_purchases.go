package query

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/purchase/domain"
)

// ListPurchasesQuery represents the query to list all purchases
type ListPurchasesQuery struct{}

// ListPurchasesHandler handles list purchases query
type ListPurchasesHandler struct {
	repo domain.PurchaseRepository
}

// NewListPurchasesHandler creates a new list purchases handler
func NewListPurchasesHandler(repo domain.PurchaseRepository) *ListPurchasesHandler {
	return &ListPurchasesHandler{repo: repo}
}

// Handle executes the list purchases query
func (h *ListPurchasesHandler) Handle(q ListPurchasesQuery) ([]domain.Purchase, error) {
	purchases, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	return purchases, nil
}
