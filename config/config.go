package config

import (
	"github.com/caarlos0/env/v6"
)

// Config carries everything the process reads from the environment.
type Config struct {
	// Addr is the listen address handed to gin.
	Addr string `env:"ADDR" envDefault:":8080"`

	// DatabaseURL is a Postgres DSN. When empty the server falls back to a
	// local SQLite file at SQLitePath.
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"database.db"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-insecure-secret-change-me"`

	// Seed passwords for the two built-in accounts. Empty disables the account.
	AdminPassword string `env:"ADMIN_PASSWORD"`
	GuestPassword string `env:"GUEST_PASSWORD"`

	// Vision API settings for the report parsing proxy.
	VisionAPIKey  string `env:"VISION_API_KEY"`
	VisionBaseURL string `env:"VISION_BASE_URL" envDefault:"https://api.openai.com"`
	VisionModel   string `env:"VISION_MODEL" envDefault:"gpt-4o"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
