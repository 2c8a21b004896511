// Package config loads the host configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/mwantia/webterm/log"
)

// Config represents the host configuration
type Config struct {
	LogLevel      string `toml:"log_level"`
	LogFile       string `toml:"log_file"`
	NoTerminalLog bool   `toml:"no_terminal_log"`

	// MetricsAddress serves Prometheus metrics when set, e.g. ":9090"
	MetricsAddress string `toml:"metrics_address"`

	Terminal TerminalConfig `toml:"terminal"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

// TerminalConfig contains session settings
type TerminalConfig struct {
	Width int    `toml:"width"`
	User  string `toml:"user"`
	Site  string `toml:"site"`
}

// CatalogConfig selects where blog posts are listed from
type CatalogConfig struct {
	Kind string `toml:"kind"`

	// static
	Posts []string `toml:"posts"`

	// sqlite and postgres
	DSN string `toml:"dsn"`

	// consul
	Address string `toml:"address"`
	Token   string `toml:"token"`

	// consul and s3
	Prefix string `toml:"prefix"`

	// s3
	Endpoint  string `toml:"endpoint"`
	Bucket    string `toml:"bucket"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	UseSSL    bool   `toml:"use_ssl"`

	// CacheSize bounds the number of memoized post queries
	CacheSize int `toml:"cache_size"`
}

const (
	CatalogStatic   = "static"
	CatalogSQLite   = "sqlite"
	CatalogPostgres = "postgres"
	CatalogConsul   = "consul"
	CatalogS3       = "s3"
)

var catalogKinds = []string{CatalogStatic, CatalogSQLite, CatalogPostgres, CatalogConsul, CatalogS3}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Terminal: TerminalConfig{
			Width: 80,
			User:  "user",
			Site:  "hansbaker.com",
		},
		Catalog: CatalogConfig{
			Kind:      CatalogStatic,
			CacheSize: 64,
		},
	}
}

// Load reads path on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := log.Parse(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Terminal.Width <= 0 {
		errs = append(errs, fmt.Errorf("terminal.width must be positive, got %d", c.Terminal.Width))
	}
	if c.Catalog.CacheSize <= 0 {
		errs = append(errs, fmt.Errorf("catalog.cache_size must be positive, got %d", c.Catalog.CacheSize))
	}

	switch c.Catalog.Kind {
	case CatalogSQLite, CatalogPostgres:
		if c.Catalog.DSN == "" {
			errs = append(errs, fmt.Errorf("catalog.dsn is required for %s", c.Catalog.Kind))
		}
	case CatalogS3:
		if c.Catalog.Endpoint == "" || c.Catalog.Bucket == "" {
			errs = append(errs, fmt.Errorf("catalog.endpoint and catalog.bucket are required for s3"))
		}
	case CatalogStatic, CatalogConsul:
	default:
		if !slices.Contains(catalogKinds, c.Catalog.Kind) {
			errs = append(errs, fmt.Errorf("unknown catalog.kind %q", c.Catalog.Kind))
		}
	}

	return errors.Join(errs...)
}

// Level returns the parsed log level.
func (c *Config) Level() log.LogLevel {
	level, err := log.Parse(c.LogLevel)
	if err != nil {
		return log.Info
	}
	return level
}
