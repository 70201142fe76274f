package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownStorageDriver        = errors.New("unknown storage driver")
)

// Storage drivers supported by the KV store.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string  `mapstructure:"env"`          // current application environment (local, dev, production etc)
	TelegramAPIToken string  `mapstructure:"-"`            // Telegram API token loaded from environment
	OwnerChatID      int64   `mapstructure:"-"`            // the only chat the bot talks to
	CatalogPath      string  `mapstructure:"catalog_path"` // path to the bundled JSON catalog
	Storage          Storage `mapstructure:"storage"`      // KV store backend selection
	DB               DB      `mapstructure:"database"`     // database configuration section
	Widget           Widget  `mapstructure:"widget"`       // widget pusher and endpoint cadence
	HTTP             HTTP    `mapstructure:"http"`         // widget HTTP server
}

// Storage selects the KV store backend.
type Storage struct {
	Driver     string `mapstructure:"driver"`      // postgres, sqlite or memory
	SQLitePath string `mapstructure:"sqlite_path"` // database file for the sqlite driver
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Widget configures how often the widget word changes.
type Widget struct {
	Schedule        string        `mapstructure:"schedule"`         // cron spec of chat pushes
	RefreshInterval time.Duration `mapstructure:"refresh_interval"` // spacing of timeline entries and cache max-age
}

// HTTP configures the widget endpoint.
type HTTP struct {
	Addr           string  `mapstructure:"addr"`             // listen address, empty disables the server
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`   // requests per second allowed per client IP
	RateLimitBurst int     `mapstructure:"rate_limit_burst"` // burst size per client IP
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from a .env file, config files and environment variables.
func Load() (*Config, error) {
	// A missing .env file is fine, the environment may already be set.
	_ = godotenv.Load()

	return load(newViper())
}

func newViper() *viper.Viper {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("catalog_path", "assets/data/vocabulary.json")
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.sqlite_path", "data/lexicon.db")
	v.SetDefault("database.max_connections", 5)
	v.SetDefault("database.max_conn_lifetime", "30m")
	v.SetDefault("widget.schedule", "@every 5m")
	v.SetDefault("widget.refresh_interval", "5m")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.rate_limit_rps", 2)
	v.SetDefault("http.rate_limit_burst", 10)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("owner_chat_id", "OWNER_CHAT_ID")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	return v
}

func load(v *viper.Viper) (*Config, error) {
	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}

	ownerChatID := v.GetString("owner_chat_id")
	if ownerChatID == "" {
		return nil, fmt.Errorf("%w: OWNER_CHAT_ID", ErrMissingEnvironmentVariables)
	}
	id, err := strconv.ParseInt(ownerChatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OWNER_CHAT_ID %q: %w", ownerChatID, err)
	}
	cfg.OwnerChatID = id

	cfg.Storage.Driver = strings.ToLower(cfg.Storage.Driver)
	switch cfg.Storage.Driver {
	case DriverPostgres:
		cfg.DB.URL = v.GetString("database_url")
		if cfg.DB.URL == "" {
			return nil, fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
		}
	case DriverSQLite, DriverMemory:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.Storage.Driver)
	}

	return &cfg, nil
}
