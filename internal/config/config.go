package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all runtime settings, populated from the environment.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"data/datastore.json"`
	DeveloperID  string `env:"DEVELOPER_ID"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile      string `env:"LOG_FILE" envDefault:"data/logs/vrt-cogs.log"`
}

// New loads .env (if present) and parses the environment into a Config.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}

// IsDeveloper reports whether a user ID matches the configured developer.
func IsDeveloper(cfg *Config, userID string) bool {
	return cfg != nil && cfg.DeveloperID != "" && cfg.DeveloperID == userID
}
