package domain

import "time"

// Stock thresholds used by the dashboard breakdown
const (
	LowStockThreshold = 10
)

// Product represents a sellable product
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price" gorm:"not null"`
	Stock       int       `json:"stock" gorm:"not null;default:0"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	CategoryID  *uint     `json:"categoryId,omitempty"`
	SupplierID  *uint     `json:"supplierId,omitempty"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Supplier    *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Category is the reduced category view embedded in a product response.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

// Supplier is the reduced supplier view embedded in a product response.
type Supplier struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	CompanyName string `json:"companyName"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

func (Category) TableName() string {
	return "categories"
}

func (Supplier) TableName() string {
	return "suppliers"
}

// IsAvailable checks if the product can be sold
func (p *Product) IsAvailable() bool {
	return p.Stock > 0 && p.IsActive
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindAll() ([]Product, error)
	Update(product *Product) error
	UpdateImageURL(id uint, imageURL string) error
}
