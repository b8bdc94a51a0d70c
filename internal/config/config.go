// Package config loads service settings from defaults, an optional TOML
// file, an optional .env file and the process environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	ServiceName    = "instock-api"
	ServiceVersion = "0.1.0"
)

// Config holds everything the server needs at startup.
type Config struct {
	HTTPPort        string
	DBDriver        string
	DatabaseURL     string
	ApplySchema     bool
	LogLevel        string
	LogFormat       string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	OtelEndpoint    string
	OtelInsecure    bool
}

// fileConfig mirrors Config in the TOML file. Durations are strings such
// as "30s".
type fileConfig struct {
	HTTPPort        string `toml:"http_port"`
	DBDriver        string `toml:"db_driver"`
	DatabaseURL     string `toml:"database_url"`
	ApplySchema     *bool  `toml:"apply_schema"`
	LogLevel        string `toml:"log_level"`
	LogFormat       string `toml:"log_format"`
	RequestTimeout  string `toml:"request_timeout"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
	OtelEndpoint    string `toml:"otel_endpoint"`
	OtelInsecure    *bool  `toml:"otel_insecure"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		HTTPPort:        "8080",
		DBDriver:        "postgres",
		LogLevel:        "info",
		LogFormat:       "json",
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 20 * time.Second,
	}
}

// Load builds the configuration. path may be empty. A missing .env file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	setString(&c.HTTPPort, fc.HTTPPort)
	setString(&c.DBDriver, fc.DBDriver)
	setString(&c.DatabaseURL, fc.DatabaseURL)
	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.LogFormat, fc.LogFormat)
	setString(&c.OtelEndpoint, fc.OtelEndpoint)
	if fc.ApplySchema != nil {
		c.ApplySchema = *fc.ApplySchema
	}
	if fc.OtelInsecure != nil {
		c.OtelInsecure = *fc.OtelInsecure
	}
	if err := setDuration(&c.RequestTimeout, "request_timeout", fc.RequestTimeout); err != nil {
		return err
	}
	return setDuration(&c.ShutdownTimeout, "shutdown_timeout", fc.ShutdownTimeout)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	setString(&c.HTTPPort, get("APP_PORT"))
	setString(&c.DBDriver, get("DB_DRIVER"))
	setString(&c.DatabaseURL, get("DATABASE_URL"))
	setString(&c.LogLevel, get("LOG_LEVEL"))
	setString(&c.LogFormat, get("LOG_FORMAT"))
	setString(&c.OtelEndpoint, get("OTEL_ENDPOINT"))

	if err := setBool(&c.ApplySchema, "DB_APPLY_SCHEMA", get("DB_APPLY_SCHEMA")); err != nil {
		return err
	}
	if err := setBool(&c.OtelInsecure, "OTEL_INSECURE", get("OTEL_INSECURE")); err != nil {
		return err
	}
	if err := setDuration(&c.RequestTimeout, "REQUEST_TIMEOUT", get("REQUEST_TIMEOUT")); err != nil {
		return err
	}
	return setDuration(&c.ShutdownTimeout, "SHUTDOWN_TIMEOUT", get("SHUTDOWN_TIMEOUT"))
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "pgx", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be one of postgres, pgx, sqlite (got %q)", c.DBDriver)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if c.HTTPPort == "" {
		return fmt.Errorf("APP_PORT environment variable is required")
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console (got %q)", c.LogFormat)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string { return ":" + c.HTTPPort }

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key, v string) error {
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = b
	return nil
}

func setDuration(dst *time.Duration, key, v string) error {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = d
	return nil
}
