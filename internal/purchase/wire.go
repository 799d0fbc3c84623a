//go:build wireinject
// +build wireinject

package purchase

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	customerdomain "github.com/minimarket/admin-api/internal/customer/domain"
	customerrepo "github.com/minimarket/admin-api/internal/customer/repository"
	productdomain "github.com/minimarket/admin-api/internal/product/domain"
	productrepo "github.com/minimarket/admin-api/internal/product/repository"
	"github.com/minimarket/admin-api/internal/purchase/delivery/http"
	"github.com/minimarket/admin-api/internal/purchase/domain"
	"github.com/minimarket/admin-api/internal/purchase/repository"
	"github.com/minimarket/admin-api/internal/purchase/usecase/command"
	"github.com/minimarket/admin-api/internal/purchase/usecase/query"
	userdomain "github.com/minimarket/admin-api/internal/user/domain"
	userrepo "github.com/minimarket/admin-api/internal/user/repository"
	"github.com/minimarket/admin-api/kafka"
)

// Repository providers
func ProvidePurchaseRepository(db *gorm.DB) domain.PurchaseRepository {
	return repository.NewGormPurchaseRepository(db)
}

func ProvideProductRepository(db *gorm.DB) productdomain.ProductRepository {
	return productrepo.NewGormProductRepository(db)
}

func ProvideCustomerRepository(db *gorm.DB) customerdomain.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(db)
}

func ProvideUserRepository(db *gorm.DB) userdomain.UserRepository {
	return userrepo.NewGormUserRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvidePurchaseRepository,
	ProvideProductRepository,
	ProvideCustomerRepository,
	ProvideUserRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreatePurchaseHandler,
	command.NewAnnulPurchaseHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetPurchaseHandler,
	query.NewListPurchasesHandler,
	query.NewGetReceiptHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher, reg prometheus.Registerer) (*http.PurchaseHandler, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewPurchaseHandler,
	)
	return nil, nil
}
