package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultWebAppURL is used when WEBAPP_URL is not set
const DefaultWebAppURL = "https://your-domain.com/telegram_webapp.html"

// ErrMissingBotToken is returned when the bot is started without BOT_TOKEN
var ErrMissingBotToken = errors.New("BOT_TOKEN is required")

// Config holds all application configuration
type Config struct {
	// Telegram configuration
	BotToken    string
	BotDebug    bool
	PollTimeout time.Duration

	// Mini app launcher URL opened by the inline button
	WebAppURL string

	// Static file server configuration
	WebServerPort int
	WebServerDir  string

	// Prometheus listener address, empty disables it
	MetricsAddr string

	// Logging
	LogLevel  string
	LogFormat string // "text" or "json"

	// Environment
	Environment string // "development" or "production"
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; variables already set in
// the environment take precedence over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("WEBAPP_URL", DefaultWebAppURL)
	v.SetDefault("POLL_TIMEOUT_SECONDS", 30)
	v.SetDefault("BOT_DEBUG", false)
	v.SetDefault("WEBSERVER_PORT", 8000)
	v.SetDefault("WEBSERVER_DIR", ".")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("ENVIRONMENT", "development")

	config := &Config{
		BotToken:      strings.TrimSpace(v.GetString("BOT_TOKEN")),
		BotDebug:      v.GetBool("BOT_DEBUG"),
		PollTimeout:   time.Duration(v.GetInt("POLL_TIMEOUT_SECONDS")) * time.Second,
		WebAppURL:     strings.TrimSpace(v.GetString("WEBAPP_URL")),
		WebServerPort: v.GetInt("WEBSERVER_PORT"),
		WebServerDir:  strings.TrimSpace(v.GetString("WEBSERVER_DIR")),
		MetricsAddr:   strings.TrimSpace(v.GetString("METRICS_ADDR")),
		LogLevel:      strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		LogFormat:     strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT"))),
		Environment:   strings.TrimSpace(v.GetString("ENVIRONMENT")),
	}

	if config.PollTimeout <= 0 {
		config.PollTimeout = 30 * time.Second
	}
	if config.WebAppURL == "" {
		config.WebAppURL = DefaultWebAppURL
	}
	if config.WebServerDir == "" {
		config.WebServerDir = "."
	}
	if config.Environment == "" {
		config.Environment = "development"
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// RequireBotToken reports ErrMissingBotToken when no token is configured
func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return ErrMissingBotToken
	}
	return nil
}

// ValidateWebServer checks the settings only the static server uses
func (c *Config) ValidateWebServer() error {
	if c.WebServerPort < 1 || c.WebServerPort > 65535 {
		return fmt.Errorf("WEBSERVER_PORT must be between 1 and 65535, got %d", c.WebServerPort)
	}
	return nil
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}
