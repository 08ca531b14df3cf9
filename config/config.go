package config

import (
	"time"

	"github.com/commercekit/commercekit/errors"
	"github.com/commercekit/commercekit/logger"
)

// Provider configures the active commerce backend. Immutable for the session.
type Provider struct {
	// Name selects the registered provider implementation (e.g. "bigcommerce").
	Name string `yaml:"name" mapstructure:"name"`
	// Endpoint is the backend API base URL.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Credentials is the backend API token or store secret.
	Credentials string `yaml:"credentials" mapstructure:"credentials"`
	// Locale is the storefront locale (e.g. "en-US").
	Locale string `yaml:"locale" mapstructure:"locale"`
	// CurrencyCode is the ISO 4217 display currency (e.g. "USD").
	CurrencyCode string `yaml:"currency_code" mapstructure:"currency_code"`
	// RevalidateOnFocus controls whether focus/reconnect revalidation is on
	// by default for operation classes that opt in.
	RevalidateOnFocus bool `yaml:"revalidate_on_focus" mapstructure:"revalidate_on_focus"`
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ApplyDefaults fills zero-value fields with sensible defaults.
func (p *Provider) ApplyDefaults() {
	if p.Name == "" {
		p.Name = "bigcommerce"
	}
	if p.Locale == "" {
		p.Locale = "en-US"
	}
	if p.CurrencyCode == "" {
		p.CurrencyCode = "USD"
	}
	if p.Timeout <= 0 {
		p.Timeout = 30 * time.Second
	}
}

// Validate checks required fields. Missing endpoint or credentials is fatal
// at startup.
func (p *Provider) Validate() error {
	if p.Endpoint == "" {
		return errors.MissingConfig("endpoint")
	}
	if p.Credentials == "" {
		return errors.MissingConfig("credentials")
	}
	return nil
}

// Cache configures staleness policy per operation class. Zero durations fall
// back to the class default applied by the cache package.
type Cache struct {
	// CustomerTTL is how long customer reads stay fresh.
	CustomerTTL time.Duration `yaml:"customer_ttl" mapstructure:"customer_ttl"`
	// CartTTL is how long cart and wishlist reads stay fresh.
	CartTTL time.Duration `yaml:"cart_ttl" mapstructure:"cart_ttl"`
	// CatalogTTL is how long product and search reads stay fresh.
	CatalogTTL time.Duration `yaml:"catalog_ttl" mapstructure:"catalog_ttl"`
}

// Config is the root commercekit configuration.
type Config struct {
	Provider Provider      `yaml:"provider" mapstructure:"provider"`
	Cache    Cache         `yaml:"cache" mapstructure:"cache"`
	Logging  logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies defaults to all sections.
func (c *Config) ApplyDefaults() {
	c.Provider.ApplyDefaults()
	c.Logging.ApplyDefaults()
}

// Validate validates all sections.
func (c *Config) Validate() error {
	return c.Provider.Validate()
}
