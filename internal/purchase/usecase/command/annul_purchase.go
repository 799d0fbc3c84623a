package command

import (
	"context"
	"fmt"

	"github.com/minimarket/admin-api/internal/purchase/domain"
	"github.com/minimarket/admin-api/kafka"
	"github.com/minimarket/admin-api/pkg/logger"
)

// AnnulPurchaseCommand represents the command to annul a sale
type AnnulPurchaseCommand struct {
	ID uint
}

// AnnulPurchaseHandler handles purchase annulment
type AnnulPurchaseHandler struct {
	purchases domain.PurchaseRepository
	publisher *kafka.Publisher
}

// NewAnnulPurchaseHandler creates a new annul purchase handler
func NewAnnulPurchaseHandler(purchases domain.PurchaseRepository, publisher *kafka.Publisher) *AnnulPurchaseHandler {
	return &AnnulPurchaseHandler{purchases: purchases, publisher: publisher}
}

// Handle executes the annul purchase command
func (h *AnnulPurchaseHandler) Handle(ctx context.Context, cmd AnnulPurchaseCommand) (*domain.Purchase, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid purchase id")
	}

	purchase, err := h.purchases.Annul(cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := h.publisher.PublishPurchaseAnnulled(ctx, kafka.PurchaseAnnulledEvent{
		PurchaseID: purchase.ID,
		CustomerID: purchase.CustomerID,
		Total:      purchase.Total,
	}); err != nil {
		logger.WithContext(ctx).Error().
			Err(err).
			Uint("purchase_id", purchase.ID).
			Msg("Failed to publish purchase annulled event")
	}

	return purchase, nil
}
