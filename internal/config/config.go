// Package config loads process configuration from the environment
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds everything the mixladder process needs to start
type Config struct {
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// The Discord bot only runs when a token is configured
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	StartingLives int `env:"STARTING_LIVES" envDefault:"2"`

	// Zero draws a random seed at startup
	RandomSeed int64 `env:"RANDOM_SEED" envDefault:"0"`

	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	DevLogging bool   `env:"DEV_LOGGING" envDefault:"false"`
}

// Load reads an optional .env file and parses the environment
func Load() (*Config, error) {
	// A missing .env file is normal outside local development
	_ = godotenv.Load()

	return Parse()
}

// Parse parses the current environment without touching .env files
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values the env tags cannot express
func (c *Config) Validate() error {
	if c.RedisAddr == "" {
		return errors.New("REDIS_ADDR cannot be empty")
	}

	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR cannot be empty")
	}

	if c.StartingLives < 1 {
		return fmt.Errorf("STARTING_LIVES must be at least 1, got %d", c.StartingLives)
	}

	if c.DiscordToken != "" && c.ApplicationID == "" {
		return errors.New("APPLICATION_ID is required when DISCORD_TOKEN is set")
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return nil
}

// DiscordEnabled reports whether the bot should be started
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

// NewLogger builds the process logger for the configured level
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	if c.DevLogging {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}
