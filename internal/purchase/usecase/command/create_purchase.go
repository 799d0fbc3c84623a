package command

import (
	"context"
	"fmt"
	"math"
	"time"

	customerdomain "github.com/minimarket/admin-api/internal/customer/domain"
	productdomain "github.com/minimarket/admin-api/internal/product/domain"
	"github.com/minimarket/admin-api/internal/purchase/domain"
	userdomain "github.com/minimarket/admin-api/internal/user/domain"
	"github.com/minimarket/admin-api/kafka"
	"github.com/minimarket/admin-api/pkg/logger"
)

// Submitted amounts may drift from price*quantity by float rounding;
// anything past this is a stale price or a tampered payload.
const amountTolerance = 0.005

// CreatePurchaseCommand represents the command to register a sale
type CreatePurchaseCommand struct {
	Input domain.CreatePurchaseInput
}

// CreatePurchaseHandler handles purchase creation. It revalidates every
// line against current product data before committing.
type CreatePurchaseHandler struct {
	purchases domain.PurchaseRepository
	products  productdomain.ProductRepository
	customers customerdomain.CustomerRepository
	users     userdomain.UserRepository
	publisher *kafka.Publisher
}

// NewCreatePurchaseHandler creates a new create purchase handler
func NewCreatePurchaseHandler(
	purchases domain.PurchaseRepository,
	products productdomain.ProductRepository,
	customers customerdomain.CustomerRepository,
	users userdomain.UserRepository,
	publisher *kafka.Publisher,
) *CreatePurchaseHandler {
	return &CreatePurchaseHandler{
		purchases: purchases,
		products:  products,
		customers: customers,
		users:     users,
		publisher: publisher,
	}
}

// Handle executes the create purchase command
func (h *CreatePurchaseHandler) Handle(ctx context.Context, cmd CreatePurchaseCommand) (*domain.Purchase, error) {
	in := cmd.Input

	if in.CustomerID == 0 {
		return nil, domain.ErrNoCustomer
	}
	if in.UserID == 0 {
		return nil, domain.ErrNoEmployee
	}
	if len(in.Details) == 0 {
		return nil, domain.ErrNoProducts
	}

	customer, err := h.customers.FindByID(in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("customer not found")
	}
	if !customer.IsActive {
		return nil, fmt.Errorf("customer is not active")
	}

	if _, err := h.users.FindByID(in.UserID); err != nil {
		return nil, fmt.Errorf("user not found")
	}

	details := make([]domain.PurchaseDetail, 0, len(in.Details))
	var total float64
	lowStock := make([]kafka.LowStockEvent, 0)

	for i, d := range in.Details {
		if d.ProductID == 0 {
			return nil, fmt.Errorf("line %d: product id is required", i+1)
		}
		if d.Quantity < 1 {
			return nil, fmt.Errorf("line %d: quantity must be at least 1", i+1)
		}

		product, err := h.products.FindByID(d.ProductID)
		if err != nil {
			return nil, fmt.Errorf("line %d: product not found", i+1)
		}
		if !product.IsActive {
			return nil, fmt.Errorf("line %d: %w", i+1, domain.ErrProductNotSellable)
		}

		subtotal := product.Price * float64(d.Quantity)
		if math.Abs(subtotal-d.Subtotal) > amountTolerance {
			return nil, fmt.Errorf("line %d: subtotal does not match current price", i+1)
		}

		details = append(details, domain.PurchaseDetail{
			ProductID: product.ID,
			Quantity:  d.Quantity,
			Subtotal:  subtotal,
		})
		total += subtotal

		if remaining := product.Stock - d.Quantity; remaining <= productdomain.LowStockThreshold {
			lowStock = append(lowStock, kafka.LowStockEvent{
				ProductID: product.ID,
				Name:      product.Name,
				Stock:     remaining,
			})
		}
	}

	if math.Abs(total-in.Total) > amountTolerance {
		return nil, fmt.Errorf("total does not match the sum of line subtotals")
	}

	purchase := &domain.Purchase{
		Total:      total,
		Date:       time.Now(),
		IsActive:   true,
		CustomerID: in.CustomerID,
		UserID:     in.UserID,
		Details:    details,
	}

	if err := h.purchases.CreateWithDetails(purchase); err != nil {
		return nil, err
	}

	if err := h.publisher.PublishPurchaseCreated(ctx, kafka.PurchaseCreatedEvent{
		PurchaseID: purchase.ID,
		CustomerID: purchase.CustomerID,
		UserID:     purchase.UserID,
		Total:      purchase.Total,
		LineCount:  len(purchase.Details),
	}); err != nil {
		logger.WithContext(ctx).Error().
			Err(err).
			Uint("purchase_id", purchase.ID).
			Msg("Failed to publish purchase created event")
	}

	for _, ev := range lowStock {
		if err := h.publisher.PublishLowStock(ctx, ev); err != nil {
			logger.WithContext(ctx).Error().
				Err(err).
				Uint("product_id", ev.ProductID).
				Msg("Failed to publish low stock event")
		}
	}

	return purchase, nil
}
