package domain

import "time"

// Category represents a product category. Categories are never hard
// deleted: "delete" flips IsActive so inactive rows stay listable.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	Products    []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Product is the reduced product view embedded in a category response.
type Product struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	ImageURL   *string `json:"imageUrl,omitempty"`
	IsActive   bool    `json:"isActive"`
	CategoryID *uint   `json:"-"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

func (Product) TableName() string {
	return "products"
}

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	Create(category *Category) error
	FindByID(id uint) (*Category, error)
	FindAll() ([]Category, error)
	Update(category *Category) error
}
