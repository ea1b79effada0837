// internal/config/config.go
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"wallet-ledger/pkg/db"
)

// AppConfig holds all application-wide configuration.
type AppConfig struct {
	ServerPort string
	LogLevel   string
	DB         db.Config
}

// LoadConfig reads configuration with viper: an optional .env file in the
// working directory, overridden by environment variables, with sensible
// local-development defaults.
func LoadConfig() (*AppConfig, error) {
	v := viper.New()

	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "wallet")
	v.SetDefault("DB_PASSWORD", "wallet")
	v.SetDefault("DB_NAME", "walletledger")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// The .env file is optional; environment variables and defaults apply.
	}

	cfg := &AppConfig{
		ServerPort: v.GetString("SERVER_PORT"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		DB: db.Config{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetInt("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			DBName:       v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
	}

	if cfg.DB.Port <= 0 {
		return nil, fmt.Errorf("invalid DB_PORT: %d", cfg.DB.Port)
	}
	return cfg, nil
}
