package main

import (
	"context"
	"os"

	_ "pix_direct_sales/docs"
	"pix_direct_sales/internal/adapter/http/routes"
	"pix_direct_sales/internal/config"
	"pix_direct_sales/internal/infrastructure/bootstrap"
	"pix_direct_sales/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PIX Direct Sales API
// @version         1.0
// @description     Storefront backend: PIX checkout through Mercado Pago, payment reconciliation, memberships and seller subscriptions.

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey SellerID
// @in header
// @name X-User-Id
// @description Seller id injected by the identity proxy.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(config.Log{}, true).Fatal().Err(err).Msg("invalid configuration")
	}
	logger := logging.New(cfg.Log, cfg.IsDevelopment())

	app, err := bootstrap.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start")
	}
	defer app.Close()

	if cfg.MercadoPago.MockEnabled() {
		logger.Warn().Msg("Mercado Pago mock processor enabled")
	}
	if cfg.MercadoPago.PlatformAccessToken == "" {
		logger.Warn().Msg("MP_PLATFORM_ACCESS_TOKEN not set, subscription checkout disabled")
	}

	if err := routes.Run(app); err != nil {
		logger.Error().Err(err).Msg("failed to startup the application")
		_ = app.Close()
		os.Exit(1)
	}
}
