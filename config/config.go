// Package config loads and validates the service configuration. Values
// come from built-in defaults, an optional config file, and SHOP_-prefixed
// environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	// URL takes precedence over the individual fields when set.
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type CatalogConfig struct {
	// LowStockThreshold is the stock level below which a product is
	// flagged low-stock in its representation.
	LowStockThreshold int `mapstructure:"low_stock_threshold"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "onlineshop",
			SSLMode: "disable",
		},
		Catalog: CatalogConfig{
			LowStockThreshold: 5,
		},
	}
}

// Load reads configuration from the given file (optional, may be empty)
// and from SHOP_-prefixed environment variables, e.g.
// SHOP_CATALOG_LOW_STOCK_THRESHOLD=10.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("database.url", defaults.Database.URL)
	v.SetDefault("database.host", defaults.Database.Host)
	v.SetDefault("database.port", defaults.Database.Port)
	v.SetDefault("database.user", defaults.Database.User)
	v.SetDefault("database.password", defaults.Database.Password)
	v.SetDefault("database.name", defaults.Database.Name)
	v.SetDefault("database.sslmode", defaults.Database.SSLMode)
	v.SetDefault("catalog.low_stock_threshold", defaults.Catalog.LowStockThreshold)

	v.SetEnvPrefix("SHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values no deployment can run with.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port must not be empty")
	}
	if c.Catalog.LowStockThreshold < 0 {
		return fmt.Errorf("catalog.low_stock_threshold must not be negative, got %d",
			c.Catalog.LowStockThreshold)
	}
	if c.Database.URL == "" && c.Database.Name == "" {
		return fmt.Errorf("either database.url or database.name must be set")
	}
	return nil
}

// DSN builds the postgres connection string. A full database.url wins over
// the individual fields.
func (c *Config) DSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Database.Host, c.Database.User, c.Database.Password,
		c.Database.Name, c.Database.Port, c.Database.SSLMode,
	)
}
