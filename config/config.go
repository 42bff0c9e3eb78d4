package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	GinMode   string `env:"GIN_MODE" envDefault:"release"`
	// Operations listener: /healthz, /metrics and swagger.
	AdminEnabled bool   `env:"ADMIN_ENABLED" envDefault:"true"`
	AdminPort    string `env:"ADMIN_PORT" envDefault:"9090"`
	// CORSEnabled switches between the browser-facing mode (preflight replies
	// plus CORS headers on every response) and the bare mode.
	CORSEnabled     bool          `env:"CORS_ENABLED" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Telegram Bot API
	TelegramBotToken  string        `env:"TELEGRAM_BOT_TOKEN,required,notEmpty"`
	TelegramChannelID string        `env:"TELEGRAM_CHANNEL_ID,required,notEmpty"`
	TelegramAPIURL    string        `env:"TELEGRAM_API_URL" envDefault:"https://api.telegram.org"`
	TelegramTimeout   time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
}

func LoadConfig() (*Config, error) {
	// Only effective locally; production injects the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Strip the trailing slash so the bot path never ends up as "//bot".
	cfg.TelegramAPIURL = strings.TrimRight(cfg.TelegramAPIURL, "/")

	if cfg.TelegramTimeout <= 0 {
		return nil, fmt.Errorf("TELEGRAM_TIMEOUT must be positive, got %s", cfg.TelegramTimeout)
	}

	return cfg, nil
}
