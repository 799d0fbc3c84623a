package domain

import "time"

// ShoppingCart represents a product reserved by a customer before it
// turns into a purchase line.
type ShoppingCart struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProductID  uint      `json:"productId" gorm:"not null"`
	CustomerID uint      `json:"customerId" gorm:"not null"`
	Quantity   int       `json:"quantity" gorm:"not null;default:1"`
	IsActive   bool      `json:"isActive" gorm:"default:true"`
	Product    *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Customer   *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Product is the reduced product view embedded in a cart response.
type Product struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// Customer is the reduced customer view embedded in a cart response.
type Customer struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	FullName string `json:"fullName"`
}

// TableName specifies the table name
func (ShoppingCart) TableName() string {
	return "shopping_carts"
}

func (Product) TableName() string {
	return "products"
}

func (Customer) TableName() string {
	return "customers"
}

// ShoppingCartRepository defines the contract for cart data access
type ShoppingCartRepository interface {
	Create(cart *ShoppingCart) error
	FindByID(id uint) (*ShoppingCart, error)
	FindAll() ([]ShoppingCart, error)
	Update(cart *ShoppingCart) error
}
