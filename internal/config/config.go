// Package config provides functionality for loading and accessing configuration.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	// Logger is the global logger instance shared across the application
	Logger = logrus.New()
)

// LoadEnv loads environment variables from a .env file if one exists
func LoadEnv() {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			// Try the parent directory (project root)
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			Logger.Warnf("Error loading .env file: %v", err)
		}
	})
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
