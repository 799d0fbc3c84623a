package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerdomain "github.com/minimarket/admin-api/internal/customer/domain"
)

func TestNewReceipt_TaxBreakdown(t *testing.T) {
	date := time.Date(2025, 3, 14, 16, 30, 0, 0, time.UTC)
	purchase := &Purchase{
		ID:       42,
		Total:    116.0,
		Date:     date,
		Customer: &customerdomain.Customer{FullName: "Ana Torres"},
		Details: []PurchaseDetail{
			{Quantity: 2, Subtotal: 58.0, Product: &Product{Name: "Leche"}},
			{Quantity: 1, Subtotal: 58.0, Product: &Product{Name: "Pan"}},
		},
	}

	receipt := NewReceipt(purchase)

	assert.Equal(t, uint(42), receipt.PurchaseID)
	assert.Equal(t, date, receipt.Date)
	assert.Equal(t, "Ana Torres", receipt.Customer)
	assert.Equal(t, 116.0, receipt.Total)
	// 116 / 1.16 = 100, tax is the remaining 16
	assert.InDelta(t, 100.0, receipt.Subtotal, 0.001)
	assert.InDelta(t, 16.0, receipt.Tax, 0.001)

	require.Len(t, receipt.Lines, 2)
	assert.Equal(t, "Leche", receipt.Lines[0].ProductName)
	assert.Equal(t, 2, receipt.Lines[0].Quantity)
	assert.Equal(t, 58.0, receipt.Lines[0].Subtotal)
}

func TestNewReceipt_MissingReferencesFallBackToDash(t *testing.T) {
	purchase := &Purchase{
		ID:    7,
		Total: 50.0,
		Details: []PurchaseDetail{
			{Quantity: 1, Subtotal: 50.0},
		},
	}

	receipt := NewReceipt(purchase)

	assert.Equal(t, "-", receipt.Customer)
	require.Len(t, receipt.Lines, 1)
	assert.Equal(t, "-", receipt.Lines[0].ProductName)
}

func TestNewReceipt_NoDetails(t *testing.T) {
	receipt := NewReceipt(&Purchase{ID: 1, Total: 0})

	assert.Empty(t, receipt.Lines)
	assert.Equal(t, 0.0, receipt.Subtotal)
	assert.Equal(t, 0.0, receipt.Tax)
}
