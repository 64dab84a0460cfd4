// Package config provides configuration management for the fight predictor.
package config

import (
	"fmt"
	"time"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Roster sources.
const (
	RosterSourceFile = "file"
	RosterSourceHTTP = "http"
)

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Roster     RosterConfig     `mapstructure:"roster" validate:"required"`
	Odds       OddsConfig       `mapstructure:"odds"`
	Prediction PredictionConfig `mapstructure:"prediction" validate:"required"`
	Storage    StorageConfig    `mapstructure:"storage" validate:"required"`
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Health     HealthConfig     `mapstructure:"health"`
	Secrets    SecretsConfig    `mapstructure:"secrets"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// RosterConfig describes where fighter records come from.
type RosterConfig struct {
	Source         string `mapstructure:"source" validate:"required,oneof=file http"`
	Path           string `mapstructure:"path" validate:"required_if=Source file"`
	URL            string `mapstructure:"url" validate:"required_if=Source http"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
	RateLimit      int    `mapstructure:"rate_limit" validate:"gte=0"`
	RefreshCron    string `mapstructure:"refresh_cron"`
}

// OddsConfig represents the betting odds feed configuration
type OddsConfig struct {
	Enabled         bool    `mapstructure:"enabled"`
	APIKey          string  `mapstructure:"api_key"`
	BaseURL         string  `mapstructure:"base_url" validate:"omitempty,url"`
	CacheTTLSeconds int     `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
	RateLimit       float64 `mapstructure:"rate_limit" validate:"gte=0"`
	TimeoutSeconds  int     `mapstructure:"timeout_seconds" validate:"gte=0"`
	MaxRetries      int     `mapstructure:"max_retries" validate:"gte=0"`
	RefreshCron     string  `mapstructure:"refresh_cron"`
}

// PredictionConfig represents prediction defaults and the result cache
type PredictionConfig struct {
	DefaultRounds   int `mapstructure:"default_rounds" validate:"required,rounds"`
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
	CacheMaxSize    int `mapstructure:"cache_max_size" validate:"gte=0"`
}

// StorageConfig selects where the roster and the fight card are persisted
type StorageConfig struct {
	Driver     string         `mapstructure:"driver" validate:"required,oneof=memory sqlite postgres"`
	SQLitePath string         `mapstructure:"sqlite_path"`
	Database   DatabaseConfig `mapstructure:"database"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"gte=0"`
}

// ServerConfig represents the HTTP API server
type ServerConfig struct {
	Port                  int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	CORSOrigins           []string `mapstructure:"cors_origins"`
	RequestTimeoutSeconds int      `mapstructure:"request_timeout_seconds" validate:"gte=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Path    string `mapstructure:"path"`
}

// HealthConfig represents the health check server
type HealthConfig struct {
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
}

// SecretsConfig enables the AWS Secrets Manager overlay
type SecretsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Region     string `mapstructure:"region" validate:"required_if=Enabled true"`
	SecretName string `mapstructure:"secret_name" validate:"required_if=Enabled true"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	db := c.Storage.Database
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
		db.SSLMode,
	)
}

// OddsCacheTTL returns how long a fetched odds list stays fresh.
func (c *Config) OddsCacheTTL() time.Duration {
	return time.Duration(c.Odds.CacheTTLSeconds) * time.Second
}

// PredictionCacheTTL returns how long a computed prediction stays cached.
func (c *Config) PredictionCacheTTL() time.Duration {
	return time.Duration(c.Prediction.CacheTTLSeconds) * time.Second
}
