package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Card     CardConfig     `mapstructure:"card" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig selects and configures the card persistence backend.
type DatabaseConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=postgres memory"`
	URL     string `mapstructure:"url" validate:"required_if=Backend postgres"`
}

// RedisConfig configures the optional Redis-backed PAN sequence.
// An empty URL disables it.
type RedisConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// CardConfig contains card numbering settings.
type CardConfig struct {
	BIN       string `mapstructure:"bin" validate:"required,numeric,len=6|len=8"`
	PANLength int    `mapstructure:"pan_length" validate:"gte=13,lte=19"`
}
