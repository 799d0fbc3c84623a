package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	categorydomain "github.com/minimarket/admin-api/internal/category/domain"
	customerdomain "github.com/minimarket/admin-api/internal/customer/domain"
	"github.com/minimarket/admin-api/internal/dashboard"
	productdomain "github.com/minimarket/admin-api/internal/product/domain"
	purchasedomain "github.com/minimarket/admin-api/internal/purchase/domain"
	cartdomain "github.com/minimarket/admin-api/internal/shoppingcart/domain"
	supplierdomain "github.com/minimarket/admin-api/internal/supplier/domain"
	userdomain "github.com/minimarket/admin-api/internal/user/domain"
)

// Categories

func (c *Client) Categories(ctx context.Context) ([]categorydomain.Category, error) {
	var out []categorydomain.Category
	return out, c.do(ctx, http.MethodGet, "/categories", nil, &out)
}

func (c *Client) CreateCategory(ctx context.Context, name, description string) (*categorydomain.Category, error) {
	body := map[string]string{"name": name, "description": description}
	var out categorydomain.Category
	return &out, c.do(ctx, http.MethodPost, "/categories", body, &out)
}

func (c *Client) UpdateCategory(ctx context.Context, id uint, fields map[string]interface{}) (*categorydomain.Category, error) {
	var out categorydomain.Category
	return &out, c.do(ctx, http.MethodPatch, fmt.Sprintf("/categories/%d", id), fields, &out)
}

func (c *Client) DeactivateCategory(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil)
}

// Suppliers

func (c *Client) Suppliers(ctx context.Context) ([]supplierdomain.Supplier, error) {
	var out []supplierdomain.Supplier
	return out, c.do(ctx, http.MethodGet, "/suppliers", nil, &out)
}

func (c *Client) CreateSupplier(ctx context.Context, companyName, contactName, phone, email string) (*supplierdomain.Supplier, error) {
	body := map[string]string{
		"companyName": companyName,
		"contactName": contactName,
		"phone":       phone,
		"email":       email,
	}
	var out supplierdomain.Supplier
	return &out, c.do(ctx, http.MethodPost, "/suppliers", body, &out)
}

func (c *Client) UpdateSupplier(ctx context.Context, id uint, fields map[string]interface{}) (*supplierdomain.Supplier, error) {
	var out supplierdomain.Supplier
	return &out, c.do(ctx, http.MethodPatch, fmt.Sprintf("/suppliers/%d", id), fields, &out)
}

func (c *Client) DeactivateSupplier(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/suppliers/%d", id), nil, nil)
}

// Customers

func (c *Client) Customers(ctx context.Context) ([]customerdomain.Customer, error) {
	var out []customerdomain.Customer
	return out, c.do(ctx, http.MethodGet, "/customers", nil, &out)
}

func (c *Client) CreateCustomer(ctx context.Context, fullName, email, phone string) (*customerdomain.Customer, error) {
	body := map[string]string{"fullName": fullName, "email": email, "phone": phone}
	var out customerdomain.Customer
	return &out, c.do(ctx, http.MethodPost, "/customers", body, &out)
}

func (c *Client) UpdateCustomer(ctx context.Context, id uint, fields map[string]interface{}) (*customerdomain.Customer, error) {
	var out customerdomain.Customer
	return &out, c.do(ctx, http.MethodPatch, fmt.Sprintf("/customers/%d", id), fields, &out)
}

func (c *Client) DeactivateCustomer(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil, nil)
}

// Products

// ProductInput carries the multipart fields for product creation.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	CategoryID  uint
	SupplierID  uint
	ImagePath   string
}

func (c *Client) Products(ctx context.Context) ([]productdomain.Product, error) {
	var out []productdomain.Product
	return out, c.do(ctx, http.MethodGet, "/products", nil, &out)
}

func (c *Client) Product(ctx context.Context, id uint) (*productdomain.Product, error) {
	var out productdomain.Product
	return &out, c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &out)
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*productdomain.Product, error) {
	fields := map[string]string{
		"name":        in.Name,
		"description": in.Description,
		"price":       strconv.FormatFloat(in.Price, 'f', -1, 64),
		"stock":       strconv.Itoa(in.Stock),
	}
	if in.CategoryID != 0 {
		fields["categoryId"] = strconv.FormatUint(uint64(in.CategoryID), 10)
	}
	if in.SupplierID != 0 {
		fields["supplierId"] = strconv.FormatUint(uint64(in.SupplierID), 10)
	}

	var out productdomain.Product
	return &out, c.doMultipart(ctx, http.MethodPost, "/products/create", fields, in.ImagePath, &out)
}

func (c *Client) UpdateProduct(ctx context.Context, id uint, fields map[string]interface{}) (*productdomain.Product, error) {
	var out productdomain.Product
	return &out, c.do(ctx, http.MethodPatch, fmt.Sprintf("/products/%d", id), fields, &out)
}

func (c *Client) UploadProductImage(ctx context.Context, id uint, imagePath string) (*productdomain.Product, error) {
	var out productdomain.Product
	return &out, c.doMultipart(ctx, http.MethodPatch, fmt.Sprintf("/products/%d/upload-image", id), nil, imagePath, &out)
}

func (c *Client) DeactivateProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// Users

func (c *Client) Users(ctx context.Context) ([]userdomain.User, error) {
	var out []userdomain.User
	return out, c.do(ctx, http.MethodGet, "/users", nil, &out)
}

func (c *Client) CreateUser(ctx context.Context, name, email, password, role string) (*userdomain.User, error) {
	body := map[string]string{"name": name, "email": email, "password": password, "role": role}
	var out userdomain.User
	return &out, c.do(ctx, http.MethodPost, "/users", body, &out)
}

func (c *Client) UpdateUser(ctx context.Context, id uint, fields map[string]interface{}) (*userdomain.User, error) {
	var out userdomain.User
	return &out, c.do(ctx, http.MethodPatch, fmt.Sprintf("/users/%d", id), fields, &out)
}

func (c *Client) DeactivateUser(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}

// Purchases

func (c *Client) Purchases(ctx context.Context) ([]purchasedomain.Purchase, error) {
	var out []purchasedomain.Purchase
	return out, c.do(ctx, http.MethodGet, "/purchases", nil, &out)
}

func (c *Client) Purchase(ctx context.Context, id uint) (*purchasedomain.Purchase, error) {
	var out purchasedomain.Purchase
	return &out, c.do(ctx, http.MethodGet, fmt.Sprintf("/purchases/%d", id), nil, &out)
}

func (c *Client) CreatePurchase(ctx context.Context, in *purchasedomain.CreatePurchaseInput) (*purchasedomain.Purchase, error) {
	var out purchasedomain.Purchase
	return &out, c.do(ctx, http.MethodPost, "/purchases", in, &out)
}

func (c *Client) AnnulPurchase(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/purchases/%d", id), nil, nil)
}

func (c *Client) Receipt(ctx context.Context, id uint) (*purchasedomain.Receipt, error) {
	var out purchasedomain.Receipt
	return &out, c.do(ctx, http.MethodGet, fmt.Sprintf("/purchases/%d/receipt", id), nil, &out)
}

// Shopping cart

func (c *Client) CartItems(ctx context.Context) ([]cartdomain.ShoppingCart, error) {
	var out []cartdomain.ShoppingCart
	return out, c.do(ctx, http.MethodGet, "/shopping-cart", nil, &out)
}

func (c *Client) CreateCartItem(ctx context.Context, productID, customerID uint, quantity int) (*cartdomain.ShoppingCart, error) {
	body := map[string]interface{}{
		"productId":  productID,
		"customerId": customerID,
		"quantity":   quantity,
	}
	var out cartdomain.ShoppingCart
	return &out, c.do(ctx, http.MethodPost, "/shopping-cart", body, &out)
}

func (c *Client) RemoveCartItem(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/shopping-cart/%d", id), nil, nil)
}

// Dashboard

func (c *Client) Dashboard(ctx context.Context) (*dashboard.Summary, error) {
	var out dashboard.Summary
	return &out, c.do(ctx, http.MethodGet, "/dashboard", nil, &out)
}
