package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shopcart/internal/auth"
	"github.com/vladislavdragonenkov/shopcart/internal/domain"
	"github.com/vladislavdragonenkov/shopcart/internal/health"
	"github.com/vladislavdragonenkov/shopcart/internal/metrics"
	"github.com/vladislavdragonenkov/shopcart/internal/service/cart"
	"github.com/vladislavdragonenkov/shopcart/internal/service/catalog"
	"github.com/vladislavdragonenkov/shopcart/internal/service/checkout"
	"github.com/vladislavdragonenkov/shopcart/internal/service/customer"
	"github.com/vladislavdragonenkov/shopcart/internal/storage/memory"
	"github.com/vladislavdragonenkov/shopcart/internal/storage/postgres"
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Products  domain.ProductRepository
	Cart      domain.CartRepository
	Orders    domain.OrderRepository
	Customers domain.CustomerRepository
	Outbox    domain.OutboxRepository

	Catalog     *catalog.Service
	CartSvc     *cart.Service
	Checkout    *checkout.Service
	CustomerSvc *customer.Service
	Tokens      *auth.TokenManager

	StorageChecker health.Checker
	Logger         *log.Entry

	pgStore *postgres.Store
}

// NewDependencies собирает зависимости поверх PostgreSQL либо in-memory хранилища.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	tokens, err := auth.NewTokenManager([]byte(cfg.TokenSecret), cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("init token manager: %w", err)
	}

	deps := &Dependencies{
		Tokens: tokens,
		Logger: logger,
	}

	if cfg.PostgresDSN != "" {
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}

		deps.pgStore = store
		deps.Products = postgres.NewProductRepository(store)
		deps.Cart = postgres.NewCartRepository(store)
		deps.Orders = postgres.NewOrderRepository(store)
		deps.Customers = postgres.NewCustomerRepository(store)
		deps.Outbox = postgres.NewOutboxRepository(store)
		deps.StorageChecker = health.NewSimpleChecker("postgres", func() error {
			return store.Ping(context.Background())
		})
		logger.Info("postgres storage initialized")
	} else {
		store := memory.NewStore()
		deps.Products = memory.NewProductRepository(store)
		deps.Cart = memory.NewCartRepository(store)
		deps.Orders = memory.NewOrderRepository(store)
		deps.Customers = memory.NewCustomerRepository(store)
		deps.Outbox = memory.NewOutboxRepository(store)
		deps.StorageChecker = health.NewSimpleChecker("memory", func() error { return nil })
		logger.Info("in-memory storage initialized")
	}

	checkoutMetrics := metrics.NewCheckoutMetrics()
	deps.Catalog = catalog.NewService(deps.Products, logger.WithField("component", "catalog-service"))
	deps.CartSvc = cart.NewService(deps.Products, deps.Cart, checkoutMetrics, logger.WithField("component", "cart-service"))
	deps.Checkout = checkout.NewService(deps.Cart, deps.Orders, checkoutMetrics, logger.WithField("component", "checkout-service"))
	deps.CustomerSvc = customer.NewService(deps.Customers, tokens, logger.WithField("component", "customer-service"))

	return deps, nil
}

// Close освобождает ресурсы хранилища.
func (d *Dependencies) Close() {
	if d.pgStore != nil {
		if err := d.pgStore.Close(); err != nil {
			d.Logger.WithError(err).Warn("failed to close postgres store")
		}
	}
}
