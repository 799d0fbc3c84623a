package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	productdomain "github.com/minimarket/admin-api/internal/product/domain"
	"github.com/minimarket/admin-api/internal/purchase/domain"
)

// GormPurchaseRepository implements PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GORM purchase repository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormPurchaseRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Purchase{}, &domain.PurchaseDetail{})
}

// CreateWithDetails inserts a purchase and its detail lines in one
// transaction, decrementing product stock as it goes. The conditional
// UPDATE keeps concurrent sales from overselling a product.
func (r *GormPurchaseRepository) CreateWithDetails(purchase *domain.Purchase) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range purchase.Details {
			detail := &purchase.Details[i]

			res := tx.Model(&productdomain.Product{}).
				Where("id = ? AND is_active = ? AND stock >= ?", detail.ProductID, true, detail.Quantity).
				Update("stock", gorm.Expr("stock - ?", detail.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to reserve stock for product %d: %w", detail.ProductID, res.Error)
			}
			if res.RowsAffected == 0 {
				var product productdomain.Product
				if err := tx.First(&product, detail.ProductID).Error; err != nil {
					return fmt.Errorf("product %d not found", detail.ProductID)
				}
				if !product.IsActive {
					return fmt.Errorf("product %d: %w", detail.ProductID, domain.ErrProductNotSellable)
				}
				return fmt.Errorf("product %d has %d in stock, %d requested: %w",
					detail.ProductID, product.Stock, detail.Quantity, domain.ErrInsufficientStock)
			}
		}

		if err := tx.Create(purchase).Error; err != nil {
			return fmt.Errorf("failed to create purchase: %w", err)
		}
		return nil
	})
}

// FindByID retrieves a purchase with customer and detail lines
func (r *GormPurchaseRepository) FindByID(id uint) (*domain.Purchase, error) {
	var purchase domain.Purchase
	err := r.db.
		Preload("Customer").
		Preload("Details").
		Preload("Details.Product").
		First(&purchase, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("failed to find purchase: %w", err)
	}
	return &purchase, nil
}

// FindAll retrieves all purchases, annulled ones included
func (r *GormPurchaseRepository) FindAll() ([]domain.Purchase, error) {
	var purchases []domain.Purchase
	err := r.db.
		Preload("Customer").
		Preload("Details").
		Preload("Details.Product").
		Order("date DESC").
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find purchases: %w", err)
	}
	return purchases, nil
}

// Annul marks a purchase inactive and restores the stock its lines
// consumed, atomically.
func (r *GormPurchaseRepository) Annul(id uint) (*domain.Purchase, error) {
	var purchase domain.Purchase
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Details").First(&purchase, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPurchaseNotFound
			}
			return fmt.Errorf("failed to find purchase: %w", err)
		}
		if !purchase.IsActive {
			return domain.ErrAlreadyAnnulled
		}

		if err := tx.Model(&purchase).Update("is_active", false).Error; err != nil {
			return fmt.Errorf("failed to annul purchase: %w", err)
		}

		for _, detail := range purchase.Details {
			err := tx.Model(&productdomain.Product{}).
				Where("id = ?", detail.ProductID).
				Update("stock", gorm.Expr("stock + ?", detail.Quantity)).Error
			if err != nil {
				return fmt.Errorf("failed to restore stock for product %d: %w", detail.ProductID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	purchase.IsActive = false
	return &purchase, nil
}
