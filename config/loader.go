package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderOption customizes Load behavior.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	configFile string
	envFile    string
	envPrefix  string
}

// WithConfigFile sets an explicit config file path, skipping the search.
func WithConfigFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.envFile = path }
}

// WithEnvPrefix sets the environment variable prefix (default "COMMERCEKIT").
func WithEnvPrefix(prefix string) LoaderOption {
	return func(o *loaderOptions) { o.envPrefix = prefix }
}

// Load populates cfg from a YAML config file, a .env file, and environment
// variables, in that order of increasing precedence. Both files are optional;
// environment variables alone are a complete configuration source.
//
// Environment variables use the prefix and underscores for nesting, e.g.
// COMMERCEKIT_PROVIDER_ENDPOINT maps to provider.endpoint.
func Load(cfg *Config, opts ...LoaderOption) error {
	var o loaderOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.envPrefix == "" {
		o.envPrefix = "COMMERCEKIT"
	}

	if envFile := resolveFile(o.envFile, ".env"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindKeys(v)

	if configFile := resolveFile(o.configFile, "config.yml", "config/config.yml"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	return nil
}

// bindKeys registers every known key so AutomaticEnv sees variables that only
// exist in the environment.
func bindKeys(v *viper.Viper) {
	for _, key := range []string{
		"provider.name",
		"provider.endpoint",
		"provider.credentials",
		"provider.locale",
		"provider.currency_code",
		"provider.revalidate_on_focus",
		"provider.timeout",
		"cache.customer_ttl",
		"cache.cart_ttl",
		"cache.catalog_ttl",
		"logging.level",
		"logging.format",
		"logging.output",
		"logging.no_color",
		"logging.timestamp",
	} {
		_ = v.BindEnv(key)
	}
}

// resolveFile returns the explicit path if set, otherwise the first candidate
// that exists.
func resolveFile(explicit string, candidates ...string) string {
	if explicit != "" {
		return explicit
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}
