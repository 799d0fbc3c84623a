package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerdomain "github.com/minimarket/admin-api/internal/customer/domain"
	productdomain "github.com/minimarket/admin-api/internal/product/domain"
	purchasedomain "github.com/minimarket/admin-api/internal/purchase/domain"
)

func purchaseAt(date time.Time, total float64) purchasedomain.Purchase {
	return purchasedomain.Purchase{Total: total, Date: date, IsActive: true}
}

func TestMonthlyRevenue_BucketsOldestFirst(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	purchases := []purchasedomain.Purchase{
		purchaseAt(now, 100),                      // Jun
		purchaseAt(now.AddDate(0, 0, -10), 50),    // Jun
		purchaseAt(time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), 30),  // Ene
		purchaseAt(time.Date(2024, 12, 3, 0, 0, 0, 0, time.UTC), 99), // outside window
	}

	buckets := MonthlyRevenue(purchases, now)
	require.Len(t, buckets, 6)

	assert.Equal(t, "Ene", buckets[0].Label)
	assert.Equal(t, 30.0, buckets[0].Revenue)
	assert.Equal(t, "Jun", buckets[5].Label)
	assert.Equal(t, 150.0, buckets[5].Revenue)
	assert.Equal(t, 0.0, buckets[1].Revenue)
}

func TestMonthlyRevenue_CrossesYearBoundary(t *testing.T) {
	now := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	purchases := []purchasedomain.Purchase{
		purchaseAt(time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC), 40),
		purchaseAt(time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC), 60),
	}

	buckets := MonthlyRevenue(purchases, now)

	assert.Equal(t, "Sep", buckets[0].Label)
	assert.Equal(t, 40.0, buckets[0].Revenue)
	assert.Equal(t, "Dic", buckets[3].Label)
	assert.Equal(t, 60.0, buckets[3].Revenue)
	assert.Equal(t, "Feb", buckets[5].Label)
}

func TestMonthlyRevenue_MonthEndKeepsShortMonthLabels(t *testing.T) {
	// Day 31 must not skip February when counting back
	now := time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC)

	purchases := []purchasedomain.Purchase{
		purchaseAt(time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), 100),
	}

	buckets := MonthlyRevenue(purchases, now)

	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
	}
	assert.Equal(t, []string{"Dic", "Ene", "Feb", "Mar", "Abr", "May"}, labels)

	assert.Equal(t, 100.0, buckets[2].Revenue)
	assert.Equal(t, 0.0, buckets[3].Revenue)
}

func TestMonthlyRevenue_IgnoresAnnulled(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	annulled := purchaseAt(now, 500)
	annulled.IsActive = false

	buckets := MonthlyRevenue([]purchasedomain.Purchase{annulled}, now)
	assert.Equal(t, 0.0, buckets[5].Revenue)
}

func TestTopProducts_RanksByQuantity(t *testing.T) {
	purchases := []purchasedomain.Purchase{
		{IsActive: true, Details: []purchasedomain.PurchaseDetail{
			{ProductID: 1, Quantity: 3, Product: &purchasedomain.Product{Name: "Leche"}},
			{ProductID: 2, Quantity: 1, Product: &purchasedomain.Product{Name: "Pan"}},
		}},
		{IsActive: true, Details: []purchasedomain.PurchaseDetail{
			{ProductID: 2, Quantity: 5, Product: &purchasedomain.Product{Name: "Pan"}},
			{ProductID: 3, Quantity: 2},
		}},
	}

	top := TopProducts(purchases)
	require.Len(t, top, 3)

	assert.Equal(t, "Pan", top[0].Name)
	assert.Equal(t, 6, top[0].Quantity)
	assert.Equal(t, "Leche", top[1].Name)
	// Unnamed products show a dash
	assert.Equal(t, "-", top[2].Name)
}

func TestTopProducts_CapsAtFive(t *testing.T) {
	var details []purchasedomain.PurchaseDetail
	for i := 1; i <= 8; i++ {
		details = append(details, purchasedomain.PurchaseDetail{
			ProductID: uint(i),
			Quantity:  i,
			Product:   &purchasedomain.Product{Name: "P"},
		})
	}
	purchases := []purchasedomain.Purchase{{IsActive: true, Details: details}}

	top := TopProducts(purchases)
	require.Len(t, top, 5)
	assert.Equal(t, 8, top[0].Quantity)
	assert.Equal(t, 4, top[4].Quantity)
}

func TestTopProducts_SkipsAnnulledPurchases(t *testing.T) {
	purchases := []purchasedomain.Purchase{
		{IsActive: false, Details: []purchasedomain.PurchaseDetail{
			{ProductID: 1, Quantity: 10},
		}},
	}

	assert.Empty(t, TopProducts(purchases))
}

func TestCountStockStatus(t *testing.T) {
	products := []productdomain.Product{
		{Stock: 0, IsActive: true},
		{Stock: 5, IsActive: true},
		{Stock: 10, IsActive: true},
		{Stock: 15, IsActive: true},
		{Stock: 0, IsActive: false},
	}

	status := CountStockStatus(products)
	assert.Equal(t, 1, status.Out)
	assert.Equal(t, 2, status.Low)
	assert.Equal(t, 1, status.Normal)
}

func TestInventoryValue(t *testing.T) {
	products := []productdomain.Product{
		{Price: 10, Stock: 3, IsActive: true},
		{Price: 5, Stock: 2, IsActive: true},
		{Price: 100, Stock: 1, IsActive: false},
	}

	assert.InDelta(t, 40.0, InventoryValue(products), 0.001)
}

func TestBuildSummary(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	annulled := purchaseAt(now, 80)
	annulled.IsActive = false

	purchases := []purchasedomain.Purchase{
		purchaseAt(now, 100),
		purchaseAt(now, 50),
		annulled,
	}
	products := []productdomain.Product{
		{Price: 10, Stock: 20, IsActive: true},
	}
	customers := []customerdomain.Customer{
		{IsActive: true},
		{IsActive: true},
		{IsActive: false},
	}

	summary := BuildSummary(purchases, products, customers, now)

	assert.Equal(t, 2, summary.TotalSales)
	assert.Equal(t, 150.0, summary.TotalRevenue)
	assert.Equal(t, 2, summary.ActiveCustomers)
	assert.Equal(t, 200.0, summary.InventoryValue)
	assert.Equal(t, 1, summary.StockStatus.Normal)
	assert.Len(t, summary.MonthlyRevenue, 6)
}

func TestBuildSummary_EmptyInput(t *testing.T) {
	summary := BuildSummary(nil, nil, nil, time.Now())

	assert.Equal(t, 0, summary.TotalSales)
	assert.Empty(t, summary.TopProducts)
	assert.Len(t, summary.MonthlyRevenue, 6)
}
