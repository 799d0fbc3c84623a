package domain

import "time"

// IVARate is the tax rate assumed to be included in stored totals.
// It only affects receipt display; nothing tax-related is persisted.
const IVARate = 0.16

// ReceiptLine is one itemized row on a printed ticket.
type ReceiptLine struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// Receipt is the read-only ticket view of a persisted purchase,
// including the derived tax breakdown of its tax-inclusive total.
type Receipt struct {
	PurchaseID uint          `json:"purchaseId"`
	Date       time.Time     `json:"date"`
	Customer   string        `json:"customer"`
	Lines      []ReceiptLine `json:"lines"`
	Subtotal   float64       `json:"subtotal"`
	Tax        float64       `json:"tax"`
	Total      float64       `json:"total"`
}

// NewReceipt derives the ticket for a purchase. The subtotal is
// total / (1 + IVARate) and the tax is the remainder.
func NewReceipt(p *Purchase) *Receipt {
	lines := make([]ReceiptLine, 0, len(p.Details))
	for _, d := range p.Details {
		name := "-"
		if d.Product != nil {
			name = d.Product.Name
		}
		lines = append(lines, ReceiptLine{
			ProductName: name,
			Quantity:    d.Quantity,
			Subtotal:    d.Subtotal,
		})
	}

	customer := "-"
	if p.Customer != nil {
		customer = p.Customer.FullName
	}

	subtotal := p.Total / (1 + IVARate)
	return &Receipt{
		PurchaseID: p.ID,
		Date:       p.Date,
		Customer:   customer,
		Lines:      lines,
		Subtotal:   subtotal,
		Tax:        p.Total - subtotal,
		Total:      p.Total,
	}
}
