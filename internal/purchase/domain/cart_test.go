package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdomain "github.com/minimarket/admin-api/internal/product/domain"
)

func activeProduct(id uint, name string, price float64) *productdomain.Product {
	return &productdomain.Product{ID: id, Name: name, Price: price, Stock: 100, IsActive: true}
}

func TestNewCart_StartsWithOneEmptyLine(t *testing.T) {
	cart := NewCart()

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Nil(t, lines[0].Product)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 0.0, cart.Total())
}

func TestCart_TotalSumsAssignedLines(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.SelectProduct(0, activeProduct(1, "Leche", 18.50)))
	require.NoError(t, cart.SetQuantity(0, 2))

	cart.AddLine()
	require.NoError(t, cart.SelectProduct(1, activeProduct(2, "Pan", 8.50)))

	// 18.50*2 + 8.50 = 45.50
	assert.InDelta(t, 45.50, cart.Total(), 0.001)
}

func TestCart_UnassignedLineContributesNothing(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.SelectProduct(0, activeProduct(1, "Leche", 18.50)))
	cart.AddLine()

	assert.InDelta(t, 18.50, cart.Total(), 0.001)
}

func TestCart_SetQuantityClampsToOne(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.SelectProduct(0, activeProduct(1, "Leche", 10)))

	require.NoError(t, cart.SetQuantity(0, 0))
	assert.Equal(t, 1, cart.Lines()[0].Quantity)

	require.NoError(t, cart.SetQuantity(0, -5))
	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}

func TestCart_RemoveLine(t *testing.T) {
	cart := NewCart()
	cart.AddLine()
	cart.AddLine()
	require.Len(t, cart.Lines(), 3)

	require.NoError(t, cart.RemoveLine(1))
	assert.Len(t, cart.Lines(), 2)
}

func TestCart_RemoveLastLineRejected(t *testing.T) {
	cart := NewCart()

	err := cart.RemoveLine(0)
	assert.ErrorIs(t, err, ErrLastLine)
	assert.Len(t, cart.Lines(), 1)
}

func TestCart_IndexOutOfRange(t *testing.T) {
	cart := NewCart()

	assert.ErrorIs(t, cart.SelectProduct(3, activeProduct(1, "x", 1)), ErrLineOutOfRange)
	assert.ErrorIs(t, cart.SetQuantity(-1, 2), ErrLineOutOfRange)
	assert.ErrorIs(t, cart.RemoveLine(7), ErrLineOutOfRange)
}

func TestCart_BuildProducesSubmission(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.SelectProduct(0, activeProduct(1, "Leche", 18.50)))
	require.NoError(t, cart.SetQuantity(0, 2))
	cart.AddLine()
	require.NoError(t, cart.SelectProduct(1, activeProduct(2, "Pan", 8.50)))

	input, err := cart.Build(5, 9)
	require.NoError(t, err)

	assert.Equal(t, uint(5), input.CustomerID)
	assert.Equal(t, uint(9), input.UserID)
	assert.InDelta(t, 45.50, input.Total, 0.001)
	require.Len(t, input.Details, 2)
	assert.Equal(t, uint(1), input.Details[0].ProductID)
	assert.Equal(t, 2, input.Details[0].Quantity)
	assert.InDelta(t, 37.00, input.Details[0].Subtotal, 0.001)
}

func TestCart_BuildDropsUnassignedLines(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.SelectProduct(0, activeProduct(1, "Leche", 10)))
	cart.AddLine()
	cart.AddLine()

	input, err := cart.Build(1, 1)
	require.NoError(t, err)
	assert.Len(t, input.Details, 1)

	// Entered lines survive a build so the caller can retry
	assert.Len(t, cart.Lines(), 3)
}

func TestCart_BuildValidation(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.SelectProduct(0, activeProduct(1, "Leche", 10)))

	_, err := cart.Build(0, 1)
	assert.ErrorIs(t, err, ErrNoCustomer)

	_, err = cart.Build(1, 0)
	assert.ErrorIs(t, err, ErrNoEmployee)

	empty := NewCart()
	_, err = empty.Build(1, 1)
	assert.ErrorIs(t, err, ErrNoProducts)
}
