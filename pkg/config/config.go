package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	Checkout CheckoutConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SWIFTMART_APP_ENV" required:"true"`
	Port         string `envconfig:"SWIFTMART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SWIFTMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SWIFTMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"SWIFTMART_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"SWIFTMART_DB_DSN" default:"swiftmart.db"`

	MaxOpenConns    int           `envconfig:"SWIFTMART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SWIFTMART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SWIFTMART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SWIFTMART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type JWTConfig struct {
	Secret            string `envconfig:"SWIFTMART_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"SWIFTMART_JWT_ISSUER" default:"swiftmart"`
	ExpirationMinutes int    `envconfig:"SWIFTMART_JWT_EXPIRATION_MINUTES" default:"10080"`
}

// TokenTTL returns the access token lifetime.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// CheckoutConfig carries the storefront pricing knobs. Amounts are in
// display currency, TaxRate is a fraction (0.10 = 10%).
type CheckoutConfig struct {
	FreeShippingThreshold float64 `envconfig:"SWIFTMART_FREE_SHIPPING_THRESHOLD" default:"499"`
	StandardShippingCost  float64 `envconfig:"SWIFTMART_STANDARD_SHIPPING_COST" default:"50"`
	ExpressShippingCost   float64 `envconfig:"SWIFTMART_EXPRESS_SHIPPING_COST" default:"100"`
	TaxRate               float64 `envconfig:"SWIFTMART_TAX_RATE" default:"0.10"`
}

func (c CheckoutConfig) validate() error {
	if c.FreeShippingThreshold < 0 || c.StandardShippingCost < 0 || c.ExpressShippingCost < 0 {
		return fmt.Errorf("shipping amounts must be non-negative")
	}
	if c.TaxRate < 0 || c.TaxRate >= 1 {
		return fmt.Errorf("tax rate must be in [0, 1)")
	}
	return nil
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SWIFTMART_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
