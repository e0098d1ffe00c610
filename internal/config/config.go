package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddr     = ":8080"
	defaultBaseURL        = "http://localhost:8080"
	defaultSimulatedDelay = 2 * time.Second
	devSessionSecret      = "ecowaste-development-session-key"
	defaultServiceName    = "ecowaste-site"
	defaultZipkinURL      = "http://localhost:9411/api/v2/spans"
)

// Provider exposes read-only access to application settings. Handlers and
// services depend on this interface so tests can substitute a stub.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetAppEnv() string
	GetSessionSecret() string
	GetSimulatedDelay() time.Duration
	GetEmailProvider() string
	GetEmailSender() string
	GetEmailAPIKey() string
	GetStaticDir() string
	GetTracingEnabled() bool
	GetTracingServiceName() string
	GetZipkinURL() string
	IsProduction() bool
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr     string
	AppBaseURL     string
	AppEnv         string
	SessionSecret  string
	SimulatedDelay time.Duration
	EmailProvider  string
	EmailSender    string
	EmailAPIKey    string
	StaticDir      string

	// Event bus tracing.
	TracingEnabled     bool
	TracingServiceName string
	ZipkinURL          string
}

// New loads configuration from a .env file (if present) and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		ServerAddr:     withDefault(getenv("SERVER_ADDR"), defaultServerAddr),
		AppBaseURL:     withDefault(getenv("APP_BASE_URL"), defaultBaseURL),
		AppEnv:         withDefault(getenv("APP_ENV"), "development"),
		SessionSecret:  getenv("SESSION_SECRET"),
		SimulatedDelay: defaultSimulatedDelay,
		EmailProvider:  withDefault(getenv("EMAIL_PROVIDER"), "log"),
		EmailSender:    withDefault(getenv("EMAIL_SENDER"), "EcoWaste <info@ecowaste.com>"),
		EmailAPIKey:    getenv("EMAIL_API_KEY"),
		StaticDir:      getenv("STATIC_DIR"),

		TracingServiceName: withDefault(getenv("PUBSUB_TRACING_SERVICE_NAME"), defaultServiceName),
		ZipkinURL:          withDefault(getenv("PUBSUB_TRACING_ZIPKIN_URL"), defaultZipkinURL),
	}

	if raw := getenv("PUBSUB_TRACING_ENABLED"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PUBSUB_TRACING_ENABLED %q: %w", raw, err)
		}
		cfg.TracingEnabled = enabled
	}

	if raw := getenv("SIMULATED_DELAY"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SIMULATED_DELAY %q: %w", raw, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("SIMULATED_DELAY must not be negative, got %s", d)
		}
		cfg.SimulatedDelay = d
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SESSION_SECRET is required when APP_ENV=production")
		}
		cfg.SessionSecret = devSessionSecret
	}

	return cfg, nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (c *Config) GetServerAddr() string            { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string            { return c.AppBaseURL }
func (c *Config) GetAppEnv() string                { return c.AppEnv }
func (c *Config) GetSessionSecret() string         { return c.SessionSecret }
func (c *Config) GetSimulatedDelay() time.Duration { return c.SimulatedDelay }
func (c *Config) GetEmailProvider() string         { return c.EmailProvider }
func (c *Config) GetEmailSender() string           { return c.EmailSender }
func (c *Config) GetEmailAPIKey() string           { return c.EmailAPIKey }
func (c *Config) GetStaticDir() string             { return c.StaticDir }
func (c *Config) GetTracingEnabled() bool          { return c.TracingEnabled }
func (c *Config) GetTracingServiceName() string    { return c.TracingServiceName }
func (c *Config) GetZipkinURL() string             { return c.ZipkinURL }

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool { return c.AppEnv == "production" }
