package paystack

import (
	"errors"
	"time"

	"github.com/fermerce/backend/internal/infrastructure/config"
)

// Config contains configuration for the Paystack API
type Config struct {
	// BaseURL is the API host, without a trailing slash
	BaseURL string
	// SecretKey is the bearer secret used on every request
	SecretKey string
	// ChargePath initializes a new transaction
	ChargePath string
	// AuthorizedChargePath charges a stored card authorization
	AuthorizedChargePath string
	// VerifyPath verifies a transaction; the reference is appended
	VerifyPath string
	// Timeout bounds each HTTP call
	Timeout time.Duration
}

// Errors for configuration validation
var (
	ErrMissingSecretKey = errors.New("paystack: missing secret key")
	ErrMissingBaseURL   = errors.New("paystack: missing base URL")
)

// Validate validates the configuration and fills in endpoint defaults
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return ErrMissingSecretKey
	}
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.ChargePath == "" {
		c.ChargePath = "/transaction/initialize"
	}
	if c.AuthorizedChargePath == "" {
		c.AuthorizedChargePath = "/transaction/charge_authorization"
	}
	if c.VerifyPath == "" {
		c.VerifyPath = "/transaction/verify"
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	return nil
}

// ConfigFromApp builds an adapter config from the application configuration
func ConfigFromApp(cfg config.PaystackConfig) Config {
	return Config{
		BaseURL:              cfg.BaseURL,
		SecretKey:            cfg.SecretKey,
		ChargePath:           cfg.ChargePath,
		AuthorizedChargePath: cfg.AuthorizedChargePath,
		VerifyPath:           cfg.VerifyPath,
		Timeout:              cfg.Timeout,
	}
}
