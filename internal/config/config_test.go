package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("MP_PLATFORM_ACCESS_TOKEN", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.Driver != StorageDynamoDB {
		t.Fatalf("expected dynamodb default, got %q", cfg.Storage.Driver)
	}
	if cfg.HTTP.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.HTTP.Port)
	}
	if cfg.MercadoPago.Timeout != 15*time.Second {
		t.Fatalf("expected 15s timeout, got %v", cfg.MercadoPago.Timeout)
	}
	if cfg.DynamoDB.CredentialsTable != "mercado_pago_config" {
		t.Fatalf("unexpected credentials table %q", cfg.DynamoDB.CredentialsTable)
	}
	if cfg.Redis.Enabled() {
		t.Fatalf("redis should be disabled without REDIS_ADDR")
	}
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("MP_PLATFORM_ACCESS_TOKEN", "APP_USR-platform")
	t.Setenv("WEBHOOK_BASE_URL", "https://shop.example.com")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_TTL", "1m")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "file::memory:")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MercadoPago.PlatformAccessToken != "APP_USR-platform" {
		t.Fatalf("platform token not loaded")
	}
	if !cfg.MercadoPago.MockEnabled() {
		t.Fatalf("expected mock mode")
	}
	if cfg.WebhookBaseURL != "https://shop.example.com" {
		t.Fatalf("unexpected webhook base url %q", cfg.WebhookBaseURL)
	}
	if !cfg.Redis.Enabled() || cfg.Redis.TTL != time.Minute {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.Storage.Driver != StorageSQLite {
		t.Fatalf("expected normalized driver, got %q", cfg.Storage.Driver)
	}
}

func TestLoad_Validation(t *testing.T) {
	t.Run("sql driver requires database url", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mysql")
		t.Setenv("DATABASE_URL", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mongo")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
