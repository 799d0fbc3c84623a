package domain

import "time"

// Customer represents a store customer. Deactivated customers can be
// reactivated by patching isActive back to true.
type Customer struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	FullName  string     `json:"fullName" gorm:"not null"`
	Email     string     `json:"email" gorm:"not null"`
	Phone     string     `json:"phone"`
	IsActive  bool       `json:"isActive" gorm:"default:true"`
	Purchases []Purchase `json:"purchases,omitempty" gorm:"foreignKey:CustomerID"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Purchase is the reduced purchase view embedded in a customer response.
type Purchase struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Total      float64   `json:"total"`
	Date       time.Time `json:"date"`
	CustomerID uint      `json:"-"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

func (Purchase) TableName() string {
	return "purchases"
}

// CustomerRepository defines the contract for customer data access
type CustomerRepository interface {
	Create(customer *Customer) error
	FindByID(id uint) (*Customer, error)
	FindAll() ([]Customer, error)
	Update(customer *Customer) error
}
