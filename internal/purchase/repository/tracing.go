package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/minimarket/admin-api/internal/purchase/domain"
)

var tracer = otel.Tracer("purchase-repository")

// GormPurchaseRepositoryWithTracing wraps GormPurchaseRepository with tracing
type GormPurchaseRepositoryWithTracing struct {
	*GormPurchaseRepository
}

// NewGormPurchaseRepositoryWithTracing creates a new repository with tracing
func NewGormPurchaseRepositoryWithTracing(db *gorm.DB) *GormPurchaseRepositoryWithTracing {
	return &GormPurchaseRepositoryWithTracing{
		GormPurchaseRepository: NewGormPurchaseRepository(db),
	}
}

// CreateWithDetailsWithContext records a span around the sale transaction
func (r *GormPurchaseRepositoryWithTracing) CreateWithDetailsWithContext(ctx context.Context, purchase *domain.Purchase) error {
	_, span := tracer.Start(ctx, "repository.CreateWithDetails",
		trace.WithAttributes(
			attribute.Int("purchase.customer_id", int(purchase.CustomerID)),
			attribute.Int("purchase.user_id", int(purchase.UserID)),
			attribute.Float64("purchase.total", purchase.Total),
			attribute.Int("purchase.lines", len(purchase.Details)),
		),
	)
	defer span.End()

	err := r.GormPurchaseRepository.CreateWithDetails(purchase)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("purchase.id", int(purchase.ID)))
	return nil
}

// AnnulWithContext records a span around the annulment transaction
func (r *GormPurchaseRepositoryWithTracing) AnnulWithContext(ctx context.Context, id uint) (*domain.Purchase, error) {
	_, span := tracer.Start(ctx, "repository.Annul",
		trace.WithAttributes(
			attribute.Int("purchase.id", int(id)),
		),
	)
	defer span.End()

	purchase, err := r.GormPurchaseRepository.Annul(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Float64("purchase.total", purchase.Total))
	return purchase, nil
}
