package repository

import (
	"gorm.io/gorm"

	"github.com/minimarket/admin-api/internal/shoppingcart/domain"
)

type GormShoppingCartRepository struct {
	db *gorm.DB
}

func NewGormShoppingCartRepository(db *gorm.DB) *GormShoppingCartRepository {
	return &GormShoppingCartRepository{db: db}
}

func (r *GormShoppingCartRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.ShoppingCart{})
}

func (r *GormShoppingCartRepository) Create(cart *domain.ShoppingCart) error {
	return r.db.Create(cart).Error
}

func (r *GormShoppingCartRepository) FindByID(id uint) (*domain.ShoppingCart, error) {
	var cart domain.ShoppingCart
	err := r.db.Preload("Product").Preload("Customer").First(&cart, id).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormShoppingCartRepository) FindAll() ([]domain.ShoppingCart, error) {
	var carts []domain.ShoppingCart
	err := r.db.Preload("Product").Preload("Customer").Order("id").Find(&carts).Error
	return carts, err
}

func (r *GormShoppingCartRepository) Update(cart *domain.ShoppingCart) error {
	return r.db.Save(cart).Error
}
