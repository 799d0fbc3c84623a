package kafka

import "time"

// PurchaseCreatedEvent is emitted after a sale commits
type PurchaseCreatedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	PurchaseID uint      `json:"purchase_id"`
	CustomerID uint      `json:"customer_id"`
	UserID     uint      `json:"user_id"`
	Total      float64   `json:"total"`
	LineCount  int       `json:"line_count"`
	Timestamp  time.Time `json:"timestamp"`
}

// PurchaseAnnulledEvent is emitted when a sale is annulled and its
// stock restored
type PurchaseAnnulledEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	PurchaseID uint      `json:"purchase_id"`
	CustomerID uint      `json:"customer_id"`
	Total      float64   `json:"total"`
	Timestamp  time.Time `json:"timestamp"`
}

// LowStockEvent is emitted when a sale leaves a product at or below
// the low stock threshold
type LowStockEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypePurchaseCreated  = "purchase.created"
	EventTypePurchaseAnnulled = "purchase.annulled"
	EventTypeLowStock         = "product.low_stock"
)

// Kafka topics
const (
	TopicPurchases = "minimarket-purchases"
	TopicInventory = "minimarket-inventory"
)
