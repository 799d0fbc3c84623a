package domain

import (
	"errors"

	productdomain "github.com/minimarket/admin-api/internal/product/domain"
)

// Cart composition errors
var (
	ErrLastLine       = errors.New("cannot remove the last line")
	ErrLineOutOfRange = errors.New("line index out of range")
	ErrNoCustomer     = errors.New("a customer must be selected")
	ErrNoEmployee     = errors.New("an employee must be selected")
	ErrNoProducts     = errors.New("at least one product must be selected")
)

// CartLine is one (product, quantity) entry under composition. A line
// without an assigned product contributes zero to the total and is
// excluded from the submitted details.
type CartLine struct {
	Product  *productdomain.Product
	Quantity int
}

// Subtotal returns price * quantity, or zero for an unassigned line.
func (l CartLine) Subtotal() float64 {
	if l.Product == nil {
		return 0
	}
	return l.Product.Price * float64(l.Quantity)
}

// Cart builds a multi-line sale before submission. It always keeps at
// least one line.
type Cart struct {
	lines []CartLine
}

// NewCart returns a cart initialized with one empty line.
func NewCart() *Cart {
	return &Cart{lines: []CartLine{{Quantity: 1}}}
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// SelectProduct assigns a product to the given line.
func (c *Cart) SelectProduct(index int, product *productdomain.Product) error {
	if index < 0 || index >= len(c.lines) {
		return ErrLineOutOfRange
	}
	c.lines[index].Product = product
	return nil
}

// SetQuantity sets a line's quantity, clamping to a minimum of 1.
func (c *Cart) SetQuantity(index, quantity int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrLineOutOfRange
	}
	if quantity < 1 {
		quantity = 1
	}
	c.lines[index].Quantity = quantity
	return nil
}

// AddLine appends an empty line.
func (c *Cart) AddLine() {
	c.lines = append(c.lines, CartLine{Quantity: 1})
}

// RemoveLine removes a line. Removing the only remaining line is
// rejected.
func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrLineOutOfRange
	}
	if len(c.lines) == 1 {
		return ErrLastLine
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// Total sums the subtotals of all lines with an assigned product.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// DetailInput is one submitted purchase line.
type DetailInput struct {
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// CreatePurchaseInput is the payload submitted to create a purchase.
type CreatePurchaseInput struct {
	CustomerID uint          `json:"customerId"`
	UserID     uint          `json:"userId"`
	Total      float64       `json:"total"`
	Details    []DetailInput `json:"details"`
}

// Build validates the composition and produces the submission payload.
// Unassigned lines are dropped; entered state is left untouched so the
// caller can retry after a failed submission.
func (c *Cart) Build(customerID, userID uint) (*CreatePurchaseInput, error) {
	if customerID == 0 {
		return nil, ErrNoCustomer
	}
	if userID == 0 {
		return nil, ErrNoEmployee
	}

	details := make([]DetailInput, 0, len(c.lines))
	var total float64
	for _, line := range c.lines {
		if line.Product == nil {
			continue
		}
		subtotal := line.Subtotal()
		details = append(details, DetailInput{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
		total += subtotal
	}
	if len(details) == 0 {
		return nil, ErrNoProducts
	}

	return &CreatePurchaseInput{
		CustomerID: customerID,
		UserID:     userID,
		Total:      total,
		Details:    details,
	}, nil
}
