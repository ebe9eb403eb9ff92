package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration for the service. Values come from
// environment variables (optionally an inventory.env file in the working
// directory) with sensible defaults for local development.
type Config struct {
	ServerAddr  string `mapstructure:"SERVER_ADDR"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	TokenTTLMin int    `mapstructure:"TOKEN_TTL_MIN"`
	BcryptCost  int    `mapstructure:"BCRYPT_COST"`
	UploadDir   string `mapstructure:"UPLOAD_DIR"`
	RedisAddr   string `mapstructure:"REDIS_ADDR"`
	AMQPURL     string `mapstructure:"AMQP_URL"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
}

func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL_MIN", 15)
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("UPLOAD_DIR", "uploads/images")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetConfigName("inventory")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.TokenTTLMin <= 0 {
		return fmt.Errorf("TOKEN_TTL_MIN must be positive")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}
	return nil
}
