package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Preference store backends.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config groups the console configuration, read by viper from the environment.
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	API     APIConfig
	Session SessionConfig
	DB      DBConfig
	Log     LogConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig listen address of the console.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns host:port.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig points at the external wholesale API.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig controls the session cookie.
type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	CookieSecure bool
}

// DBConfig preferences database. Store selects the backend; with "memory" nothing is persisted
// across restarts.
type DBConfig struct {
	Store       string
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString returns DATABASE_URL when set, otherwise a DSN built from the parts.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// LogConfig logger level.
type LogConfig struct {
	Level string
}

// Load reads the configuration from environment variables (and an optional .env/config.env file).
// Environment variables take precedence.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
			Timeout: time.Duration(v.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
		},
		Session: SessionConfig{
			Secret:       v.GetString("SESSION_SECRET"),
			TTL:          time.Duration(v.GetInt("SESSION_TTL_HOURS")) * time.Hour,
			CookieSecure: v.GetBool("COOKIE_SECURE"),
		},
		DB: DBConfig{
			Store:       strings.ToLower(v.GetString("PREFERENCES_STORE")),
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "wholesale-console")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 3000)
	v.SetDefault("API_BASE_URL", "http://localhost:5000")
	v.SetDefault("API_TIMEOUT_SECONDS", 15)
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("PREFERENCES_STORE", StoreMemory)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "wholesale_console")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("LOG_LEVEL", "info")
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		if c.App.Env == "production" {
			return errors.New("config: SESSION_SECRET is required in production")
		}
		c.Session.Secret = "dev-session-secret-change-me"
	}
	if c.API.BaseURL == "" {
		return errors.New("config: API_BASE_URL is required")
	}
	if _, err := url.ParseRequestURI(c.API.BaseURL); err != nil {
		return fmt.Errorf("config: invalid API_BASE_URL: %w", err)
	}
	if c.API.Timeout <= 0 {
		return errors.New("config: API_TIMEOUT_SECONDS must be positive")
	}
	if c.Session.TTL <= 0 {
		return errors.New("config: SESSION_TTL_HOURS must be positive")
	}
	switch c.DB.Store {
	case StorePostgres, StoreMemory:
	default:
		return fmt.Errorf("config: unknown PREFERENCES_STORE %q", c.DB.Store)
	}
	return nil
}
