package domain

import (
	"errors"
	"time"

	customerdomain "github.com/minimarket/admin-api/internal/customer/domain"
)

// Sentinel errors surfaced by the purchase repository
var (
	ErrPurchaseNotFound   = errors.New("purchase not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrAlreadyAnnulled    = errors.New("purchase already annulled")
	ErrProductNotSellable = errors.New("product is not active")
)

// Purchase represents a completed sale: one customer, one employee and
// one or more detail lines. Annulling a purchase flips IsActive and
// restores the stock its lines consumed.
type Purchase struct {
	ID         uint                     `json:"id" gorm:"primaryKey"`
	Total      float64                  `json:"total" gorm:"not null"`
	Date       time.Time                `json:"date" gorm:"not null"`
	IsActive   bool                     `json:"isActive" gorm:"default:true"`
	CustomerID uint                     `json:"customerId" gorm:"not null"`
	Customer   *customerdomain.Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	UserID     uint                     `json:"userId" gorm:"not null"`
	Details    []PurchaseDetail         `json:"details,omitempty" gorm:"foreignKey:PurchaseID"`
	CreatedAt  time.Time                `json:"createdAt"`
	UpdatedAt  time.Time                `json:"updatedAt"`
}

// PurchaseDetail is one product line within a purchase. Lines exist
// only as part of their purchase and are never edited afterwards.
type PurchaseDetail struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	PurchaseID uint     `json:"purchaseId"`
	ProductID  uint     `json:"productId" gorm:"not null"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	Subtotal   float64  `json:"subtotal" gorm:"not null"`
	Product    *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// Product is the reduced product view embedded in a detail line.
type Product struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// TableName specifies the table name
func (Purchase) TableName() string {
	return "purchases"
}

func (PurchaseDetail) TableName() string {
	return "purchase_details"
}

func (Product) TableName() string {
	return "products"
}

// PurchaseRepository defines the contract for purchase data access.
// CreateWithDetails and Annul must run atomically: a purchase and its
// stock movements either all commit or none do.
type PurchaseRepository interface {
	CreateWithDetails(purchase *Purchase) error
	FindByID(id uint) (*Purchase, error)
	FindAll() ([]Purchase, error)
	Annul(id uint) (*Purchase, error)
}
