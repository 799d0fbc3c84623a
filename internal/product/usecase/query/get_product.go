package query

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/product/domain"
)

// GetProductQuery represents the query to get a product by id
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(q GetProductQuery) (*domain.Product, error) {
	if q.ID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}

	product, err := h.repo.FindByID(q.ID)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}

	return product, nil
}
