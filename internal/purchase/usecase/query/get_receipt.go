package query

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/purchase/domain"
)

// GetReceiptQuery represents the query for a purchase's printed ticket
type GetReceiptQuery struct {
	PurchaseID uint
}

// GetReceiptHandler handles get receipt query
type GetReceiptHandler struct {
	repo domain.PurchaseRepository
}

// NewGetReceiptHandler creates a new get receipt handler
func NewGetReceiptHandler(repo domain.PurchaseRepository) *GetReceiptHandler {
	return &GetReceiptHandler{repo: repo}
}

// Handle executes the get receipt query
func (h *GetReceiptHandler) Handle(q GetReceiptQuery) (*domain.Receipt, error) {
	if q.PurchaseID == 0 {
		return nil, fmt.Errorf("invalid purchase id")
	}

	purchase, err := h.repo.FindByID(q.PurchaseID)
	if err != nil {
		return nil, err
	}

	return domain.NewReceipt(purchase), nil
}
