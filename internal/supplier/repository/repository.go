package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/minimarket/admin-api/internal/supplier/domain"
)

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GORM supplier repository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormSupplierRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Supplier{})
}

// Create inserts a new supplier
func (r *GormSupplierRepository) Create(supplier *domain.Supplier) error {
	if err := r.db.Create(supplier).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// FindByID retrieves a supplier by ID with its products
func (r *GormSupplierRepository) FindByID(id uint) (*domain.Supplier, error) {
	var supplier domain.Supplier
	if err := r.db.Preload("Products").First(&supplier, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("supplier not found")
		}
		return nil, fmt.Errorf("failed to find supplier: %w", err)
	}
	return &supplier, nil
}

// FindAll retrieves the full supplier list, inactive rows included
func (r *GormSupplierRepository) FindAll() ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	if err := r.db.Order("id").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to find suppliers: %w", err)
	}
	return suppliers, nil
}

// Update persists a supplier's fields
func (r *GormSupplierRepository) Update(supplier *domain.Supplier) error {
	if err := r.db.Save(supplier).Error; err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	return nil
}
