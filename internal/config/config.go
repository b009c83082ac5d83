package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageSQLite   = "sqlite"
	StorageMySQL    = "mysql"
)

// Config is the whole runtime configuration. It is parsed once at startup and
// handed to each component; business code never reads the environment.
type Config struct {
	Environment    string `env:"ENVIRONMENT" envDefault:"development"`
	WebhookBaseURL string `env:"WEBHOOK_BASE_URL"`

	HTTP        HTTPServer
	Log         Log
	MercadoPago MercadoPago
	Storage     Storage
	DynamoDB    DynamoDB
	Redis       Redis `envPrefix:"REDIS_"`
}

type HTTPServer struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type MercadoPago struct {
	// PlatformAccessToken authorizes subscription payments.
	PlatformAccessToken string        `env:"MP_PLATFORM_ACCESS_TOKEN"`
	BaseURL             string        `env:"MERCADOPAGO_BASE_URL"`
	Timeout             time.Duration `env:"MERCADOPAGO_TIMEOUT" envDefault:"15s"`
	Mock                bool          `env:"MERCADOPAGO_MOCK"`
	GatewayMock         bool          `env:"PAYMENT_GATEWAY_MOCK"`
}

// MockEnabled is true when either mock flag is set.
func (m MercadoPago) MockEnabled() bool {
	return m.Mock || m.GatewayMock
}

type Storage struct {
	Driver      string `env:"STORAGE_DRIVER" envDefault:"dynamodb"`
	DatabaseURL string `env:"DATABASE_URL"`
}

type DynamoDB struct {
	Region             string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID        string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey    string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint           string `env:"DYNAMODB_ENDPOINT"`
	SalesTable         string `env:"SALES_TABLE" envDefault:"sales"`
	MembershipsTable   string `env:"MEMBERSHIPS_TABLE" envDefault:"memberships"`
	SubscriptionsTable string `env:"SUBSCRIPTIONS_TABLE" envDefault:"subscriptions"`
	CredentialsTable   string `env:"CREDENTIALS_TABLE" envDefault:"mercado_pago_config"`
	ProductsTable      string `env:"PRODUCTS_TABLE" envDefault:"products"`
}

type Redis struct {
	Addr     string        `env:"ADDR"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"TTL" envDefault:"10m"`
}

func (r Redis) Enabled() bool {
	return strings.TrimSpace(r.Addr) != ""
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case StorageDynamoDB:
	case StorageSQLite, StorageMySQL:
		if strings.TrimSpace(c.Storage.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required for storage driver %q", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	if c.MercadoPago.Timeout <= 0 {
		c.MercadoPago.Timeout = 15 * time.Second
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}
