// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Data struct {
		Directory  string `mapstructure:"directory" yaml:"directory"`
		LedgerFile string `mapstructure:"ledger_file" yaml:"ledger_file"`
	} `mapstructure:"data" yaml:"data"`

	Bootstrap struct {
		AdminID       string `mapstructure:"admin_id" yaml:"admin_id"`
		AdminName     string `mapstructure:"admin_name" yaml:"admin_name"`
		AdminEmail    string `mapstructure:"admin_email" yaml:"admin_email"`
		AdminPassword string `mapstructure:"admin_password" yaml:"-"` // Never serialize the password
	} `mapstructure:"bootstrap" yaml:"bootstrap"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.bookctl")
	v.AddConfigPath(".bookctl")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("BOOKCTL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// Data defaults
	v.SetDefault("data.directory", "data")
	v.SetDefault("data.ledger_file", "bookings.yaml")

	// Bootstrap admin used when no user directory exists yet
	v.SetDefault("bootstrap.admin_id", "A001")
	v.SetDefault("bootstrap.admin_name", "System Admin")
	v.SetDefault("bootstrap.admin_email", "admin@booking.com")
	v.SetDefault("bootstrap.admin_password", "admin123")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Data.Directory == "" {
		return fmt.Errorf("data.directory must not be empty")
	}

	if config.Bootstrap.AdminID == "" {
		return fmt.Errorf("bootstrap.admin_id must not be empty")
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
