package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimarket/admin-api/internal/shoppingcart/domain"
)

type stubCartRepo struct {
	items  map[uint]*domain.ShoppingCart
	nextID uint
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{items: make(map[uint]*domain.ShoppingCart), nextID: 1}
}

func (r *stubCartRepo) Create(cart *domain.ShoppingCart) error {
	cart.ID = r.nextID
	r.nextID++
	r.items[cart.ID] = cart
	return nil
}

func (r *stubCartRepo) FindByID(id uint) (*domain.ShoppingCart, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, assert.AnError
	}
	return item, nil
}

func (r *stubCartRepo) FindAll() ([]domain.ShoppingCart, error) {
	out := make([]domain.ShoppingCart, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *stubCartRepo) Update(cart *domain.ShoppingCart) error {
	r.items[cart.ID] = cart
	return nil
}

func TestCreateCartItem(t *testing.T) {
	repo := newStubCartRepo()
	handler := NewCreateCartItemHandler(repo)

	item, err := handler.Handle(CreateCartItemCommand{ProductID: 3, CustomerID: 1, Quantity: 2})
	require.NoError(t, err)

	assert.NotZero(t, item.ID)
	assert.True(t, item.IsActive)
	assert.Equal(t, 2, item.Quantity)
}

func TestCreateCartItem_Validation(t *testing.T) {
	repo := newStubCartRepo()
	handler := NewCreateCartItemHandler(repo)

	_, err := handler.Handle(CreateCartItemCommand{CustomerID: 1, Quantity: 1})
	assert.Error(t, err)

	_, err = handler.Handle(CreateCartItemCommand{ProductID: 1, Quantity: 1})
	assert.Error(t, err)

	_, err = handler.Handle(CreateCartItemCommand{ProductID: 1, CustomerID: 1, Quantity: 0})
	assert.Error(t, err)

	assert.Empty(t, repo.items)
}

func TestDeactivateCartItem(t *testing.T) {
	repo := newStubCartRepo()
	created, err := NewCreateCartItemHandler(repo).Handle(CreateCartItemCommand{ProductID: 1, CustomerID: 1, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, NewDeactivateCartItemHandler(repo).Handle(DeactivateCartItemCommand{ID: created.ID}))
	assert.False(t, repo.items[created.ID].IsActive)
}
