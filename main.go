package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/bookctl/cmd/admin"
	"fjacquet/bookctl/cmd/book"
	"fjacquet/bookctl/cmd/bookings"
	"fjacquet/bookctl/cmd/catalog"
	"fjacquet/bookctl/cmd/register"
	"fjacquet/bookctl/cmd/root"
	"fjacquet/bookctl/cmd/shell"
	"fjacquet/bookctl/internal/config"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logger is created
	configureLogLevelDirectly()

	// 3. Initialize root command and flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(shell.Cmd)
	root.Cmd.AddCommand(register.Cmd)
	root.Cmd.AddCommand(catalog.Cmd)
	root.Cmd.AddCommand(book.Cmd)
	root.Cmd.AddCommand(bookings.Cmd)
	root.Cmd.AddCommand(admin.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
func configureLogLevelDirectly() {
	logLevelStr := config.GetEnv("LOG_LEVEL", "info")

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
