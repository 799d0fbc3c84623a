package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerdomain "github.com/minimarket/admin-api/internal/customer/domain"
	productdomain "github.com/minimarket/admin-api/internal/product/domain"
	"github.com/minimarket/admin-api/internal/purchase/domain"
	userdomain "github.com/minimarket/admin-api/internal/user/domain"
)

type stubPurchaseRepo struct {
	purchases map[uint]*domain.Purchase
	nextID    uint
	createErr error
	annulErr  error
}

func newStubPurchaseRepo() *stubPurchaseRepo {
	return &stubPurchaseRepo{purchases: make(map[uint]*domain.Purchase), nextID: 1}
}

func (r *stubPurchaseRepo) CreateWithDetails(purchase *domain.Purchase) error {
	if r.createErr != nil {
		return r.createErr
	}
	purchase.ID = r.nextID
	r.nextID++
	r.purchases[purchase.ID] = purchase
	return nil
}

func (r *stubPurchaseRepo) FindByID(id uint) (*domain.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, domain.ErrPurchaseNotFound
	}
	return p, nil
}

func (r *stubPurchaseRepo) FindAll() ([]domain.Purchase, error) {
	out := make([]domain.Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPurchaseRepo) Annul(id uint) (*domain.Purchase, error) {
	if r.annulErr != nil {
		return nil, r.annulErr
	}
	p, ok := r.purchases[id]
	if !ok {
		return nil, domain.ErrPurchaseNotFound
	}
	if !p.IsActive {
		return nil, domain.ErrAlreadyAnnulled
	}
	p.IsActive = false
	return p, nil
}

type stubProductRepo struct {
	products map[uint]*productdomain.Product
}

func (r *stubProductRepo) Create(p *productdomain.Product) error { return nil }

func (r *stubProductRepo) FindByID(id uint) (*productdomain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, assert.AnError
	}
	return p, nil
}

func (r *stubProductRepo) FindAll() ([]productdomain.Product, error) { return nil, nil }
func (r *stubProductRepo) Update(p *productdomain.Product) error     { return nil }
func (r *stubProductRepo) UpdateImageURL(id uint, url string) error  { return nil }

type stubCustomerRepo struct {
	customers map[uint]*customerdomain.Customer
}

func (r *stubCustomerRepo) Create(c *customerdomain.Customer) error { return nil }

func (r *stubCustomerRepo) FindByID(id uint) (*customerdomain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, assert.AnError
	}
	return c, nil
}

func (r *stubCustomerRepo) FindAll() ([]customerdomain.Customer, error) { return nil, nil }
func (r *stubCustomerRepo) Update(c *customerdomain.Customer) error     { return nil }

type stubUserRepo struct {
	users map[uint]*userdomain.User
}

func (r *stubUserRepo) Create(u *userdomain.User) error { return nil }

func (r *stubUserRepo) FindByID(id uint) (*userdomain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, assert.AnError
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(email string) (*userdomain.User, error) {
	return nil, assert.AnError
}

func (r *stubUserRepo) FindAll() ([]userdomain.User, error) { return nil, nil }
func (r *stubUserRepo) Update(u *userdomain.User) error     { return nil }

type purchaseFixture struct {
	purchases *stubPurchaseRepo
	products  *stubProductRepo
	customers *stubCustomerRepo
	users     *stubUserRepo
	handler   *CreatePurchaseHandler
}

func newPurchaseFixture() *purchaseFixture {
	f := &purchaseFixture{
		purchases: newStubPurchaseRepo(),
		products: &stubProductRepo{products: map[uint]*productdomain.Product{
			1: {ID: 1, Name: "Leche", Price: 18.50, Stock: 50, IsActive: true},
			2: {ID: 2, Name: "Pan", Price: 8.50, Stock: 11, IsActive: true},
			3: {ID: 3, Name: "Descontinuado", Price: 5.00, Stock: 20, IsActive: false},
		}},
		customers: &stubCustomerRepo{customers: map[uint]*customerdomain.Customer{
			1: {ID: 1, FullName: "Ana Torres", IsActive: true},
			2: {ID: 2, FullName: "Baja", IsActive: false},
		}},
		users: &stubUserRepo{users: map[uint]*userdomain.User{
			1: {ID: 1, Name: "Cajero", Role: userdomain.RoleEmployee, IsActive: true},
		}},
	}
	f.handler = NewCreatePurchaseHandler(f.purchases, f.products, f.customers, f.users, nil)
	return f
}

func validInput() domain.CreatePurchaseInput {
	return domain.CreatePurchaseInput{
		CustomerID: 1,
		UserID:     1,
		Total:      45.50,
		Details: []domain.DetailInput{
			{ProductID: 1, Quantity: 2, Subtotal: 37.00},
			{ProductID: 2, Quantity: 1, Subtotal: 8.50},
		},
	}
}

func TestCreatePurchase_Success(t *testing.T) {
	f := newPurchaseFixture()

	purchase, err := f.handler.Handle(context.Background(), CreatePurchaseCommand{Input: validInput()})
	require.NoError(t, err)

	assert.NotZero(t, purchase.ID)
	assert.True(t, purchase.IsActive)
	assert.False(t, purchase.Date.IsZero())
	assert.InDelta(t, 45.50, purchase.Total, 0.001)
	require.Len(t, purchase.Details, 2)
	assert.Equal(t, uint(1), purchase.Details[0].ProductID)
	assert.Equal(t, 2, purchase.Details[0].Quantity)
}

func TestCreatePurchase_MissingParties(t *testing.T) {
	f := newPurchaseFixture()

	in := validInput()
	in.CustomerID = 0
	_, err := f.handler.Handle(context.Background(), CreatePurchaseCommand{Input: in})
	assert.ErrorIs(t, err, domain.ErrNoCustomer)

	in = validInput()
	in.UserID = 0
	_, err = f.handler.Handle(context.Background(), CreatePurchaseCommand{Input: in})
	assert.ErrorIs(t, err, domain.ErrNoEmployee)

	in = validInput()
	in.Details = nil
	_, err = f.handler.Handle(context.Background(), CreatePurchaseCommand{Input: in})
	assert.ErrorIs(t, err, domain.ErrNoProducts)
}

func TestCreatePurchase_InactiveCustomer(t *testing.T) {
	f := newPurchaseFixture()

	in := validInput()
	in.CustomerID = 2
	_, err := f.handler.Handle(context.Background(), CreatePurchaseCommand{Input: in})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not active")
}

func TestCreatePurchase_UnknownUser(t *testing.T) {
	f := newPurchaseFixture()

	in := validInput()
	in.UserID = 99
	_, err := f.handler.Handle(context.Background(), CreatePurchaseCommand{Input: in})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
}

func TestCreatePurchase_LineValidation(t *testing.T) {
	f := newPurchaseFixture()

	in := validInput()
	in.Details[0].Quantity = 0
	_, err := f.handler.Handle(context.Background(), CreatePurchaseCommand{Input: in})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity must be at least 1")

	in = validInput()
	in.Details[1].ProductID = 0
	_, err = f.handler.Handle(context.Background(), CreatePurchaseCommand{Input: in})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestCreatePurchase_InactiveProduct(t *testing.T) {
	f := newPurchaseFixture()

	in := domain.CreatePurchaseInput{
		CustomerID: 1,
		UserID:     1,
		Total:      5.00,
		Details:    []domain.DetailInput{{ProductID: 3, Quantity: 1, Subtotal: 5.00}},
	}
	_, err := f.handler.Handle(context.Background(), CreatePurchaseCommand{Input: in})
	assert.ErrorIs(t, err, domain.ErrProductNotSellable)
}

func TestCreatePurchase_StalePriceRejected(t *testing.T) {
	f := newPurchaseFixture()

	// Client saw 17.00 but the current price is 18.50
	in := validInput()
	in.Details[0].Subtotal = 34.00
	_, err := f.handler.Handle(context.Background(), CreatePurchaseCommand{Input: in})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subtotal does not match")
}

func TestCreatePurchase_TotalMismatchRejected(t *testing.T) {
	f := newPurchaseFixture()

	in := validInput()
	in.Total = 44.00
	_, err := f.handler.Handle(context.Background(), CreatePurchaseCommand{Input: in})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total does not match")
}

func TestCreatePurchase_ToleratesFloatRounding(t *testing.T) {
	f := newPurchaseFixture()

	in := validInput()
	in.Details[0].Subtotal = 37.001
	in.Total = 45.501
	_, err := f.handler.Handle(context.Background(), CreatePurchaseCommand{Input: in})
	assert.NoError(t, err)
}

func TestCreatePurchase_RepositoryStockFailure(t *testing.T) {
	f := newPurchaseFixture()
	f.purchases.createErr = domain.ErrInsufficientStock

	_, err := f.handler.Handle(context.Background(), CreatePurchaseCommand{Input: validInput()})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestAnnulPurchase(t *testing.T) {
	f := newPurchaseFixture()
	created, err := f.handler.Handle(context.Background(), CreatePurchaseCommand{Input: validInput()})
	require.NoError(t, err)

	annulHandler := NewAnnulPurchaseHandler(f.purchases, nil)

	annulled, err := annulHandler.Handle(context.Background(), AnnulPurchaseCommand{ID: created.ID})
	require.NoError(t, err)
	assert.False(t, annulled.IsActive)

	// Annulling twice is rejected
	_, err = annulHandler.Handle(context.Background(), AnnulPurchaseCommand{ID: created.ID})
	assert.ErrorIs(t, err, domain.ErrAlreadyAnnulled)
}

func TestAnnulPurchase_NotFound(t *testing.T) {
	f := newPurchaseFixture()
	annulHandler := NewAnnulPurchaseHandler(f.purchases, nil)

	_, err := annulHandler.Handle(context.Background(), AnnulPurchaseCommand{ID: 123})
	assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)

	_, err = annulHandler.Handle(context.Background(), AnnulPurchaseCommand{ID: 0})
	assert.Error(t, err)
}
