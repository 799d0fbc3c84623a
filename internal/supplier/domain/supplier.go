package domain

import "time"

// Supplier represents a product supplier
type Supplier struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CompanyName string    `json:"companyName" gorm:"not null"`
	ContactName string    `json:"contactName" gorm:"not null"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email" gorm:"not null"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	Products    []Product `json:"products,omitempty" gorm:"foreignKey:SupplierID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Product is the reduced product view embedded in a supplier response.
type Product struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	ImageURL   *string `json:"imageUrl,omitempty"`
	IsActive   bool    `json:"isActive"`
	SupplierID *uint   `json:"-"`
}

// TableName specifies the table name
func (Supplier) TableName() string {
	return "suppliers"
}

func (Product) TableName() string {
	return "products"
}

// SupplierRepository defines the contract for supplier data access
type SupplierRepository interface {
	Create(supplier *Supplier) error
	FindByID(id uint) (*Supplier, error)
	FindAll() ([]Supplier, error)
	Update(supplier *Supplier) error
}
