// Package bootstrap assembles repositories, the payment gateway and use cases
// from configuration. Both the HTTP server and the operator CLI start here.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"pix_direct_sales/internal/adapter/persistence/repository"
	appconfig "pix_direct_sales/internal/config"
	"pix_direct_sales/internal/infrastructure/cache"
	"pix_direct_sales/internal/infrastructure/database"
	"pix_direct_sales/internal/infrastructure/payments"
	"pix_direct_sales/internal/usecase"
	"pix_direct_sales/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Repositories groups one implementation of every persistence port.
type Repositories struct {
	Sales         interfaces.ISaleRepository
	Memberships   interfaces.IMembershipRepository
	Subscriptions interfaces.ISubscriptionRepository
	Credentials   interfaces.ICredentialRepository
	Products      interfaces.IProductRepository
}

type App struct {
	Config        *appconfig.Config
	Logger        *zerolog.Logger
	Repos         Repositories
	Gateway       interfaces.IPaymentGateway
	Engine        *usecase.ReconciliationEngine
	Checkout      usecase.ICheckoutUseCase
	PaymentStatus usecase.IPaymentStatusUseCase
	Seller        usecase.ISellerUseCase

	closers []func() error
}

// New connects the configured storage (and Redis when REDIS_ADDR is set) and
// wires the use cases.
func New(ctx context.Context, cfg *appconfig.Config, logger *zerolog.Logger) (*App, error) {
	app := &App{Config: cfg, Logger: logger}

	repos, err := app.openStorage(ctx)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	if cfg.Redis.Enabled() {
		rc, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			// the cache is an optimization; run without it
			logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, credential cache disabled")
		} else {
			app.closers = append(app.closers, rc.Close)
			repos.Credentials = repository.NewCredentialRepoCacheDecorator(repos.Credentials, rc, cfg.Redis.TTL, logger)
		}
	}

	gateway, err := payments.NewGateway(cfg.MercadoPago, logger)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("payment gateway: %w", err)
	}

	app.Wire(repos, gateway)
	return app, nil
}

// Wire builds the use cases on top of already constructed ports.
func (a *App) Wire(repos Repositories, gateway interfaces.IPaymentGateway) {
	cfg := a.Config
	a.Repos = repos
	a.Gateway = gateway

	resolver := usecase.NewCredentialResolver(repos.Credentials, cfg.MercadoPago.PlatformAccessToken)
	intents := usecase.NewPaymentIntentBuilder(cfg.WebhookBaseURL)
	a.Engine = usecase.NewReconciliationEngine(repos.Sales, repos.Memberships, repos.Subscriptions, gateway, resolver, a.Logger)

	a.Checkout = usecase.NewCheckoutUseCase(repos.Products, repos.Sales, repos.Memberships, repos.Subscriptions, gateway, resolver, intents, a.Logger)
	a.PaymentStatus = usecase.NewPaymentStatusUseCase(repos.Sales, repos.Subscriptions, gateway, resolver, a.Engine, a.Logger)
	a.Seller = usecase.NewSellerUseCase(repos.Credentials, repos.Products, repos.Sales, repos.Memberships, repos.Subscriptions, a.Logger)
}

func (a *App) openStorage(ctx context.Context) (Repositories, error) {
	cfg := a.Config
	switch cfg.Storage.Driver {
	case appconfig.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return Repositories{}, fmt.Errorf("dynamodb: %w", err)
		}
		a.Logger.Info().Str("region", cfg.DynamoDB.Region).Str("endpoint", cfg.DynamoDB.Endpoint).Msg("storage: dynamodb")
		return DynamoRepositories(ddb, cfg.DynamoDB), nil
	case appconfig.StorageSQLite, appconfig.StorageMySQL:
		db, err := database.OpenSQL(cfg.Storage)
		if err != nil {
			return Repositories{}, err
		}
		if sqlDB, err := db.DB(); err == nil {
			a.closers = append(a.closers, sqlDB.Close)
		}
		if err := repository.AutoMigrate(db); err != nil {
			return Repositories{}, fmt.Errorf("migrate: %w", err)
		}
		a.Logger.Info().Str("driver", cfg.Storage.Driver).Msg("storage: sql")
		return SQLRepositories(db), nil
	default:
		return Repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

func DynamoRepositories(ddb repository.DynamoDBAPI, tables appconfig.DynamoDB) Repositories {
	return Repositories{
		Sales:         repository.NewSaleDynamoRepository(ddb, tables.SalesTable),
		Memberships:   repository.NewMembershipDynamoRepository(ddb, tables.MembershipsTable),
		Subscriptions: repository.NewSubscriptionDynamoRepository(ddb, tables.SubscriptionsTable),
		Credentials:   repository.NewCredentialDynamoRepository(ddb, tables.CredentialsTable),
		Products:      repository.NewProductDynamoRepository(ddb, tables.ProductsTable),
	}
}

func SQLRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Sales:         repository.NewSaleSQLRepository(db),
		Memberships:   repository.NewMembershipSQLRepository(db),
		Subscriptions: repository.NewSubscriptionSQLRepository(db),
		Credentials:   repository.NewCredentialSQLRepository(db),
		Products:      repository.NewProductSQLRepository(db),
	}
}

// Close releases database and cache connections.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
