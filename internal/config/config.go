package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/kirusanth290/portfolio/internal/contact"
	"github.com/kirusanth290/portfolio/internal/logging"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment    string `env:"ENV" envDefault:"development"`
	Port           string `env:"API_PORT" envDefault:"8080"`
	SiteURL        string `env:"SITE_URL" envDefault:"http://localhost:8080"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	// Logging Configuration
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Contact Configuration
	ResendAPIKey        string `env:"RESEND_API_KEY"`
	ContactEmail        string `env:"CONTACT_EMAIL"`
	ContactSender       string `env:"CONTACT_SENDER" envDefault:"onboarding@resend.dev"`
	ContactMaxBodyBytes int64  `env:"CONTACT_MAX_BODY_BYTES" envDefault:"65536"`
	ResendBaseURL       string `env:"RESEND_BASE_URL"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// godotenv.Load never overwrites variables that are already set, so the
	// first file found wins over later ones and the real environment wins over all.
	envLocations := []string{".env.local", ".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}
	for _, loc := range envLocations {
		_ = godotenv.Load(loc)
	}

	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.LogFile == "" {
		if cfg.IsProduction() {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	if cfg.ContactMaxBodyBytes <= 0 {
		return nil, fmt.Errorf("CONTACT_MAX_BODY_BYTES must be positive, got %d", cfg.ContactMaxBodyBytes)
	}

	return cfg, nil
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Origins splits ALLOWED_ORIGINS into a clean list.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Contact returns the configuration object handed to the contact service.
// The API key may be empty; the service reports that per request.
func (c *Config) Contact() contact.Config {
	return contact.Config{
		APIKey:    c.ResendAPIKey,
		Recipient: c.ContactEmail,
		Sender:    c.ContactSender,
	}
}

// Logging returns the logger settings derived from this config.
func (c *Config) Logging() *logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = strings.ToLower(c.LogLevel)
	lc.File = c.LogFile
	lc.Requests = c.LogRequests
	return lc
}
