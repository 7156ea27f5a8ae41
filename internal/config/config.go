package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Environments recognised by AppConfig.Env.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all application configuration.
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	CORS     CORSConfig
	Seed     SeedConfig
	S3       S3Config
}

// AppConfig holds application-wide settings.
type AppConfig struct {
	Env string // "development" or "production"
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
// URL, when set, takes precedence over the discrete connection fields.
type DatabaseConfig struct {
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	Synchronize     bool
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
	MaxConnIdleTime int // seconds
	HealthCheck     int // seconds between pool health checks
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// CORSConfig holds cross-origin settings.
type CORSConfig struct {
	AllowedOrigin string
}

// SeedConfig holds the optional catalogue seed file.
type SeedConfig struct {
	File string
}

// S3Config holds AWS S3 configuration for seed files.
type S3Config struct {
	Enabled bool
	Bucket  string
	Region  string
	Prefix  string // Path prefix within bucket (e.g., "seed/")
}

// envBindings maps configuration keys to the environment variables read for
// them, in order of preference.
var envBindings = map[string][]string{
	"app.env":                  {"APP_ENV"},
	"server.host":              {"SERVER_HOST"},
	"server.port":              {"PORT", "SERVER_PORT"},
	"database.url":             {"DATABASE_URL"},
	"database.host":            {"DB_HOST"},
	"database.port":            {"DB_PORT"},
	"database.user":            {"DB_USERNAME", "DB_USER"},
	"database.password":        {"DB_PASSWORD"},
	"database.name":            {"DB_DATABASE", "DB_NAME"},
	"database.sslmode":         {"DB_SSLMODE"},
	"database.synchronize":     {"DB_SYNCHRONIZE"},
	"database.max_connections": {"DB_MAX_CONNECTIONS"},
	"database.min_connections": {"DB_MIN_CONNECTIONS"},
	"database.max_lifetime":    {"DB_MAX_CONN_LIFETIME"},
	"database.max_idle_time":   {"DB_MAX_CONN_IDLE_TIME"},
	"database.health_check":    {"DB_HEALTH_CHECK_PERIOD"},
	"log.level":                {"LOG_LEVEL"},
	"log.format":               {"LOG_FORMAT"},
	"cors.origin":              {"CORS_ALLOWED_ORIGIN"},
	"seed.file":                {"SEED_FILE"},
	"s3.enabled":               {"S3_ENABLED"},
	"s3.bucket":                {"S3_BUCKET"},
	"s3.region":                {"S3_REGION"},
	"s3.prefix":                {"S3_PREFIX"},
}

// SetDefaults registers default values and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app.env", EnvProduction)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "catalog")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.synchronize", false)
	v.SetDefault("database.max_connections", 25)
	v.SetDefault("database.min_connections", 2)
	v.SetDefault("database.max_lifetime", 300)
	v.SetDefault("database.max_idle_time", 1800)
	v.SetDefault("database.health_check", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("cors.origin", "*")
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.prefix", "seed/")

	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	return LoadFrom(v)
}

// LoadFrom builds the configuration from an already prepared viper instance,
// which lets command-line flags bound by the caller override the environment.
func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env: strings.ToLower(v.GetString("app.env")),
		},
		Server: ServerConfig{
			Host: v.GetString("server.host"),
			Port: v.GetInt("server.port"),
		},
		Database: DatabaseConfig{
			URL:             v.GetString("database.url"),
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			Database:        v.GetString("database.name"),
			SSLMode:         v.GetString("database.sslmode"),
			Synchronize:     v.GetBool("database.synchronize"),
			MaxConnections:  v.GetInt("database.max_connections"),
			MinConnections:  v.GetInt("database.min_connections"),
			MaxConnLifetime: v.GetInt("database.max_lifetime"),
			MaxConnIdleTime: v.GetInt("database.max_idle_time"),
			HealthCheck:     v.GetInt("database.health_check"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		CORS: CORSConfig{
			AllowedOrigin: v.GetString("cors.origin"),
		},
		Seed: SeedConfig{
			File: v.GetString("seed.file"),
		},
		S3: S3Config{
			Enabled: v.GetBool("s3.enabled"),
			Bucket:  v.GetString("s3.bucket"),
			Region:  v.GetString("s3.region"),
			Prefix:  v.GetString("s3.prefix"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.App.Env != EnvDevelopment && c.App.Env != EnvProduction {
		return fmt.Errorf("invalid app env: %s (must be development or production)", c.App.Env)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.URL != "" {
		if _, err := url.Parse(c.Database.URL); err != nil {
			return fmt.Errorf("invalid database URL: %w", err)
		}
	} else {
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}

		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}

		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}

		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 0 {
		return fmt.Errorf("database min connections cannot be negative")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	if c.Database.MaxConnIdleTime < 0 {
		return fmt.Errorf("database max connection idle time cannot be negative")
	}

	if c.Database.HealthCheck < 1 {
		return fmt.Errorf("database health check period must be at least 1 second")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.S3.Enabled {
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
	}

	return nil
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Database,
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.SSLMode}}.Encode()
	}
	return u.String()
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
