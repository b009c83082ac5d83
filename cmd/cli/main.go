// Command pixctl lets operators force reconciliation of payments and inspect
// seller subscriptions using the same configuration as the API.
package main

import (
	"context"
	"fmt"
	"os"

	"pix_direct_sales/internal/config"
	"pix_direct_sales/internal/infrastructure/bootstrap"
	"pix_direct_sales/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

var Version = "dev"

func main() {
	open := func(ctx context.Context) (*bootstrap.App, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		return bootstrap.New(ctx, cfg, logging.New(cfg.Log, false))
	}

	if err := newRootCmd(open).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
