package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/service"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	AdminSecret     string // Optional: global admin secret; empty disables admin access
	PublicCreate    bool   // Optional: allow event creation without the admin secret (default: false)
	SiteURL         string // Optional: base URL used in invite links (default: http://localhost:3000)
	DefaultTimezone string // Optional: IANA zone applied when an event omits one (default: Asia/Tokyo)

	DatabaseDriver string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string // Optional: path to SQLite database file (default: ./nittei.db)
	DatabaseURL    string // Required for postgres: connection string

	CreateLimit        int           // Optional: anonymous creates per origin per window (default: 5)
	CreateWindow       time.Duration // Optional: create throttle window (default: 60m)
	RateLimitRetention time.Duration // Optional: age after which throttle rows are pruned (default: 24h)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// fileConfig is the optional YAML layer named by NITTEI_CONFIG_FILE.
type fileConfig struct {
	AdminSecret     string `yaml:"admin_secret"`
	PublicCreate    *bool  `yaml:"public_create"`
	SiteURL         string `yaml:"site_url"`
	DefaultTimezone string `yaml:"default_timezone"`

	Database struct {
		Driver string `yaml:"driver"`
		File   string `yaml:"file"`
		URL    string `yaml:"url"`
	} `yaml:"database"`

	Throttle struct {
		Limit     int    `yaml:"limit"`
		Window    string `yaml:"window"`
		Retention string `yaml:"retention"`
	} `yaml:"throttle"`

	Env       string `yaml:"env"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Port      int    `yaml:"port"`
	Shutdown  string `yaml:"shutdown_grace_period"`
}

// DefaultConfig returns the built-in defaults before any file or
// environment overrides.
func DefaultConfig() Config {
	return Config{
		SiteURL:             service.DefaultSiteURL,
		DefaultTimezone:     service.DefaultTimezone,
		DatabaseDriver:      DriverSQLite,
		DatabaseFile:        "nittei.db",
		CreateLimit:         service.DefaultCreateLimit,
		CreateWindow:        service.DefaultCreateWindow,
		RateLimitRetention:  service.DefaultRateLimitRetention,
		Env:                 "dev",
		LogLevel:            "info",
		LogFormat:           "json",
		Port:                8080,
		ShutdownGracePeriod: 10 * time.Second,
	}
}

// LoadConfig builds the configuration from defaults, then the YAML file
// named by NITTEI_CONFIG_FILE (if any), then environment variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("NITTEI_CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %q not found", path)
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	setString(&cfg.AdminSecret, fc.AdminSecret)
	if fc.PublicCreate != nil {
		cfg.PublicCreate = *fc.PublicCreate
	}
	setString(&cfg.SiteURL, fc.SiteURL)
	setString(&cfg.DefaultTimezone, fc.DefaultTimezone)
	setString(&cfg.DatabaseDriver, fc.Database.Driver)
	setString(&cfg.DatabaseFile, fc.Database.File)
	setString(&cfg.DatabaseURL, fc.Database.URL)
	if fc.Throttle.Limit > 0 {
		cfg.CreateLimit = fc.Throttle.Limit
	}
	if err := setDuration(&cfg.CreateWindow, fc.Throttle.Window); err != nil {
		return fmt.Errorf("throttle.window: %w", err)
	}
	if err := setDuration(&cfg.RateLimitRetention, fc.Throttle.Retention); err != nil {
		return fmt.Errorf("throttle.retention: %w", err)
	}
	setString(&cfg.Env, fc.Env)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	if fc.Port > 0 {
		cfg.Port = fc.Port
	}
	if err := setDuration(&cfg.ShutdownGracePeriod, fc.Shutdown); err != nil {
		return fmt.Errorf("shutdown_grace_period: %w", err)
	}
	return nil
}

func (cfg *Config) applyEnv() {
	cfg.AdminSecret = getEnvOrDefault("NITTEI_ADMIN_SECRET", cfg.AdminSecret)
	cfg.PublicCreate = getEnvBoolOrDefault("NITTEI_PUBLIC_CREATE", cfg.PublicCreate)
	cfg.SiteURL = getEnvOrDefault("NITTEI_SITE_URL", cfg.SiteURL)
	cfg.DefaultTimezone = getEnvOrDefault("NITTEI_DEFAULT_TIMEZONE", cfg.DefaultTimezone)

	cfg.DatabaseDriver = getEnvOrDefault("NITTEI_DATABASE_DRIVER", cfg.DatabaseDriver)
	cfg.DatabaseFile = getEnvOrDefault("NITTEI_DATABASE_FILE", cfg.DatabaseFile)
	cfg.DatabaseURL = getEnvOrDefault("NITTEI_DATABASE_URL", cfg.DatabaseURL)

	cfg.CreateLimit = getEnvIntOrDefault("NITTEI_CREATE_LIMIT", cfg.CreateLimit)
	cfg.CreateWindow = getEnvDurationOrDefault("NITTEI_CREATE_WINDOW", cfg.CreateWindow)
	cfg.RateLimitRetention = getEnvDurationOrDefault("NITTEI_RATE_LIMIT_RETENTION", cfg.RateLimitRetention)

	cfg.Env = getEnvOrDefault("ENV", cfg.Env)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.Port = getEnvIntOrDefault("PORT", cfg.Port)
	cfg.ShutdownGracePeriod = getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", cfg.ShutdownGracePeriod)
}

// Validate rejects configurations the application cannot start with.
func (cfg Config) Validate() error {
	switch cfg.DatabaseDriver {
	case DriverSQLite:
		if cfg.DatabaseFile == "" {
			return errors.New("NITTEI_DATABASE_FILE is required for the sqlite driver")
		}
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return errors.New("NITTEI_DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown database driver %q (want sqlite or postgres)", cfg.DatabaseDriver)
	}

	if _, err := time.LoadLocation(cfg.DefaultTimezone); err != nil {
		return fmt.Errorf("invalid default timezone %q: %w", cfg.DefaultTimezone, err)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v string) error {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
