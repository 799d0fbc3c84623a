package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimarket/admin-api/internal/customer/domain"
)

type stubCustomerRepo struct {
	customers map[uint]*domain.Customer
	nextID    uint
	creates   int
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uint]*domain.Customer), nextID: 1}
}

func (r *stubCustomerRepo) Create(customer *domain.Customer) error {
	r.creates++
	customer.ID = r.nextID
	r.nextID++
	r.customers[customer.ID] = customer
	return nil
}

func (r *stubCustomerRepo) FindByID(id uint) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, assert.AnError
	}
	return c, nil
}

func (r *stubCustomerRepo) FindAll() ([]domain.Customer, error) {
	out := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCustomerRepo) Update(customer *domain.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func TestCreateCustomer(t *testing.T) {
	repo := newStubCustomerRepo()
	handler := NewCreateCustomerHandler(repo)

	customer, err := handler.Handle(CreateCustomerCommand{
		FullName: "Ana Torres",
		Email:    "ana@example.com",
		Phone:    "5512345678",
	})
	require.NoError(t, err)

	assert.NotZero(t, customer.ID)
	assert.True(t, customer.IsActive)
	assert.Equal(t, "Ana Torres", customer.FullName)
}

func TestCreateCustomer_InvalidEmailBlocksRepoCall(t *testing.T) {
	repo := newStubCustomerRepo()
	handler := NewCreateCustomerHandler(repo)

	_, err := handler.Handle(CreateCustomerCommand{FullName: "Ana", Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, 0, repo.creates)
}

func TestCreateCustomer_NameRequired(t *testing.T) {
	repo := newStubCustomerRepo()
	handler := NewCreateCustomerHandler(repo)

	_, err := handler.Handle(CreateCustomerCommand{Email: "ana@example.com"})
	assert.Error(t, err)
}
