package dashboard

import (
	"sort"
	"time"

	customerdomain "github.com/minimarket/admin-api/internal/customer/domain"
	productdomain "github.com/minimarket/admin-api/internal/product/domain"
	purchasedomain "github.com/minimarket/admin-api/internal/purchase/domain"
)

// monthsShown is how many trailing months the revenue chart covers,
// including the current one.
const monthsShown = 6

var monthLabels = [...]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// MonthBucket is one bar of the revenue chart.
type MonthBucket struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
}

// ProductSales is one row of the top products ranking.
type ProductSales struct {
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// StockStatus buckets active products by stock level.
type StockStatus struct {
	Normal int `json:"normal"`
	Low    int `json:"low"`
	Out    int `json:"out"`
}

// Summary is the full dashboard payload.
type Summary struct {
	TotalSales      int            `json:"totalSales"`
	TotalRevenue    float64        `json:"totalRevenue"`
	ActiveCustomers int            `json:"activeCustomers"`
	InventoryValue  float64        `json:"inventoryValue"`
	StockStatus     StockStatus    `json:"stockStatus"`
	MonthlyRevenue  []MonthBucket  `json:"monthlyRevenue"`
	TopProducts     []ProductSales `json:"topProducts"`
}

// MonthlyRevenue sums active purchase totals into the last six calendar
// months, oldest first. Annulled purchases and anything outside the
// window are ignored.
func MonthlyRevenue(purchases []purchasedomain.Purchase, now time.Time) []MonthBucket {
	// Anchor on the first of the month: shifting from day 29-31
	// normalizes past short months and would mislabel buckets.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	buckets := make([]MonthBucket, monthsShown)
	for i := 0; i < monthsShown; i++ {
		m := anchor.AddDate(0, i-(monthsShown-1), 0)
		buckets[i] = MonthBucket{Label: monthLabels[m.Month()-1]}
	}

	for _, p := range purchases {
		if !p.IsActive {
			continue
		}
		diff := (now.Year()-p.Date.Year())*12 + int(now.Month()) - int(p.Date.Month())
		if diff < 0 || diff >= monthsShown {
			continue
		}
		buckets[monthsShown-1-diff].Revenue += p.Total
	}

	return buckets
}

// TopProducts ranks products by total quantity sold across active
// purchases and returns at most the five best sellers.
func TopProducts(purchases []purchasedomain.Purchase) []ProductSales {
	quantities := make(map[uint]int)
	names := make(map[uint]string)

	for _, p := range purchases {
		if !p.IsActive {
			continue
		}
		for _, d := range p.Details {
			quantities[d.ProductID] += d.Quantity
			if d.Product != nil {
				names[d.ProductID] = d.Product.Name
			}
		}
	}

	ranking := make([]ProductSales, 0, len(quantities))
	for id, qty := range quantities {
		name := names[id]
		if name == "" {
			name = "-"
		}
		ranking = append(ranking, ProductSales{ProductID: id, Name: name, Quantity: qty})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Quantity != ranking[j].Quantity {
			return ranking[i].Quantity > ranking[j].Quantity
		}
		return ranking[i].ProductID < ranking[j].ProductID
	})

	if len(ranking) > 5 {
		ranking = ranking[:5]
	}
	return ranking
}

// CountStockStatus buckets active products into normal, low and out of
// stock bands.
func CountStockStatus(products []productdomain.Product) StockStatus {
	var status StockStatus
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		switch {
		case p.Stock == 0:
			status.Out++
		case p.Stock <= productdomain.LowStockThreshold:
			status.Low++
		default:
			status.Normal++
		}
	}
	return status
}

// CountActiveCustomers counts customers with an active account.
func CountActiveCustomers(customers []customerdomain.Customer) int {
	var count int
	for _, c := range customers {
		if c.IsActive {
			count++
		}
	}
	return count
}

// InventoryValue sums price * stock over active products.
func InventoryValue(products []productdomain.Product) float64 {
	var total float64
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		total += p.Price * float64(p.Stock)
	}
	return total
}

// BuildSummary assembles the dashboard payload from raw rows.
func BuildSummary(purchases []purchasedomain.Purchase, products []productdomain.Product, customers []customerdomain.Customer, now time.Time) *Summary {
	summary := &Summary{
		ActiveCustomers: CountActiveCustomers(customers),
		StockStatus:     CountStockStatus(products),
		InventoryValue:  InventoryValue(products),
		MonthlyRevenue:  MonthlyRevenue(purchases, now),
		TopProducts:     TopProducts(purchases),
	}

	for _, p := range purchases {
		if !p.IsActive {
			continue
		}
		summary.TotalSales++
		summary.TotalRevenue += p.Total
	}

	return summary
}
