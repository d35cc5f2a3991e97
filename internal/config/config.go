// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/marketbridge/pkg/auth"
)

// Config is the top-level application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	HTTP         HTTPConfig         `yaml:"http"`
	Marketplaces MarketplacesConfig `yaml:"marketplaces"`
	Logging      LoggingConfig      `yaml:"logging"`
	Tracing      TracingConfig      `yaml:"tracing"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Addr returns the host:port listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// HTTPConfig defines the outbound client used for marketplace calls.
type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// MarketplacesConfig holds per-marketplace settings. UseProduction selects
// the environment for every marketplace that does not set its own
// production flag.
type MarketplacesConfig struct {
	UseProduction bool             `yaml:"use_production"`
	Amazon        AmazonConfig     `yaml:"amazon"`
	Ebay          EbayConfig       `yaml:"ebay"`
	Walmart       WalmartConfig    `yaml:"walmart"`
	Backmarket    BackmarketConfig `yaml:"backmarket"`
}

// EndpointConfig overrides a marketplace's default base URLs. Empty
// values keep the defaults.
type EndpointConfig struct {
	SandboxURL    string `yaml:"sandbox_url"`
	ProductionURL string `yaml:"production_url"`
}

// AmazonConfig defines Selling Partner API settings. Amazon uses one
// credential set in both environments.
type AmazonConfig struct {
	Enabled        bool           `yaml:"enabled"`
	Production     *bool          `yaml:"production"`
	Endpoints      EndpointConfig `yaml:",inline"`
	TokenURL       string         `yaml:"token_url"`
	ClientID       string         `yaml:"client_id"`
	ClientSecret   string         `yaml:"client_secret"`
	RefreshToken   string         `yaml:"refresh_token"`
	MarketplaceIDs []string       `yaml:"marketplace_ids"`
}

// EbayCredentials is one eBay keyset.
type EbayCredentials struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RefreshToken string `yaml:"refresh_token"`
}

// EbayConfig defines eBay Sell and Post-Order API settings.
type EbayConfig struct {
	Enabled       bool            `yaml:"enabled"`
	Production    *bool           `yaml:"production"`
	Endpoints     EndpointConfig  `yaml:",inline"`
	MarketplaceID string          `yaml:"marketplace_id"`
	Dev           EbayCredentials `yaml:"dev"`
	Prod          EbayCredentials `yaml:"prod"`
}

// WalmartCredentials is one Walmart client ID and secret.
type WalmartCredentials struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

// WalmartConfig defines Walmart Marketplace API settings.
type WalmartConfig struct {
	Enabled     bool               `yaml:"enabled"`
	Production  *bool              `yaml:"production"`
	Endpoints   EndpointConfig     `yaml:",inline"`
	ServiceName string             `yaml:"service_name"`
	Dev         WalmartCredentials `yaml:"dev"`
	Prod        WalmartCredentials `yaml:"prod"`
}

// BackmarketCredentials is one Backmarket API key.
type BackmarketCredentials struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

// BackmarketConfig defines Backmarket seller API settings.
type BackmarketConfig struct {
	Enabled    bool                  `yaml:"enabled"`
	Production *bool                 `yaml:"production"`
	Endpoints  EndpointConfig        `yaml:",inline"`
	Dev        BackmarketCredentials `yaml:"dev"`
	Prod       BackmarketCredentials `yaml:"prod"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// TracingConfig defines OpenTelemetry trace export.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"` // OTLP/gRPC collector, host:port
	Insecure    bool    `yaml:"insecure"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// IsProduction resolves a per-marketplace production override against the
// global switch.
func IsProduction(override *bool, global bool) bool {
	if override != nil {
		return *override
	}
	return global
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyHTTPDefaults(&cfg.HTTP)
	applyMarketplaceDefaults(&cfg.Marketplaces)
	applyLoggingDefaults(&cfg.Logging)
	applyTracingDefaults(&cfg.Tracing)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyHTTPDefaults(h *HTTPConfig) {
	if h.Timeout == 0 {
		h.Timeout = 30 * time.Second
	}
}

func applyMarketplaceDefaults(m *MarketplacesConfig) {
	if m.Amazon.TokenURL == "" {
		m.Amazon.TokenURL = auth.AmazonTokenURL
	}
	if m.Ebay.MarketplaceID == "" {
		m.Ebay.MarketplaceID = auth.DefaultEbayMarketplaceID
	}
	if m.Walmart.ServiceName == "" {
		m.Walmart.ServiceName = auth.DefaultWalmartServiceName
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "marketbridge"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535 (got %d)", cfg.Server.Port))
	}
	if cfg.HTTP.Timeout < 0 {
		errs = append(errs, fmt.Errorf("http.timeout must not be negative"))
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, cfg.Logging.Level) {
		errs = append(errs, fmt.Errorf(
			"logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level,
		))
	}
	if !slices.Contains([]string{"text", "json"}, cfg.Logging.Format) {
		errs = append(errs, fmt.Errorf(
			"logging.format must be one of: text, json (got %q)", cfg.Logging.Format,
		))
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		errs = append(errs, fmt.Errorf("tracing.endpoint is required when tracing is enabled"))
	}
	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio must be between 0 and 1"))
	}

	errs = append(errs, validateMarketplaces(&cfg.Marketplaces)...)

	return errors.Join(errs...)
}

func validateMarketplaces(m *MarketplacesConfig) []error {
	var errs []error

	if !m.Amazon.Enabled && !m.Ebay.Enabled && !m.Walmart.Enabled && !m.Backmarket.Enabled {
		errs = append(errs, fmt.Errorf("at least one marketplace must be enabled"))
	}

	if a := m.Amazon; a.Enabled {
		if a.ClientID == "" || a.ClientSecret == "" || a.RefreshToken == "" {
			errs = append(errs, fmt.Errorf(
				"marketplaces.amazon requires client_id, client_secret and refresh_token",
			))
		}
	}

	if e := m.Ebay; e.Enabled {
		creds, env := e.Dev, "dev"
		if IsProduction(e.Production, m.UseProduction) {
			creds, env = e.Prod, "prod"
		}
		if creds.ClientID == "" || creds.ClientSecret == "" || creds.RefreshToken == "" {
			errs = append(errs, fmt.Errorf(
				"marketplaces.ebay.%s requires client_id, client_secret and refresh_token", env,
			))
		}
	}

	if w := m.Walmart; w.Enabled {
		creds, env := w.Dev, "dev"
		if IsProduction(w.Production, m.UseProduction) {
			creds, env = w.Prod, "prod"
		}
		if creds.ClientID == "" || creds.ClientSecret == "" {
			errs = append(errs, fmt.Errorf(
				"marketplaces.walmart.%s requires client_id and client_secret", env,
			))
		}
	}

	if b := m.Backmarket; b.Enabled {
		creds, env := b.Dev, "dev"
		if IsProduction(b.Production, m.UseProduction) {
			creds, env = b.Prod, "prod"
		}
		if creds.ClientSecret == "" {
			errs = append(errs, fmt.Errorf("marketplaces.backmarket.%s requires client_secret", env))
		}
	}

	return errs
}
