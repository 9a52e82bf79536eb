// Package root contains the root command for the application
package root

import (
	"path/filepath"

	"fjacquet/bookctl/internal/booking"
	"fjacquet/bookctl/internal/catalog"
	"fjacquet/bookctl/internal/common"
	"fjacquet/bookctl/internal/config"
	"fjacquet/bookctl/internal/directory"
	"fjacquet/bookctl/internal/fileutils"
	"fjacquet/bookctl/internal/ledger"
	"fjacquet/bookctl/internal/models"
	"fjacquet/bookctl/internal/recordstore"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// DataDir is the resolved directory holding the CSV resources
	DataDir string

	dataFlag string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bookctl",
		Short: "A CLI tool to browse and book travel, stay and trip offerings from CSV catalogs.",
		Long: `bookctl is a CLI tool for a flat-file booking system.
Customers browse CSV-backed catalogs of flights, buses, trains, trips,
hotels, homestays and farmhouses, reserve a slot and record a payment.
Administrators manage users and catalog rows.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bookctl!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Push the configured logger into every package
			fileutils.SetLogger(Log)
			common.SetLogger(Log)
			recordstore.SetLogger(Log)
			catalog.SetLogger(Log)
			directory.SetLogger(Log)
			ledger.SetLogger(Log)
			booking.SetLogger(Log)

			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])

			DataDir = cfg.Data.Directory
			if dataFlag != "" {
				DataDir = dataFlag
			}
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&dataFlag, "data", "d", "", "Data directory holding the CSV resources (overrides config)")
}

// UsersPath returns the path of the user directory resource
func UsersPath() string {
	return filepath.Join(DataDir, "users.csv")
}

// LedgerPath returns the path of the booking ledger file
func LedgerPath() string {
	return filepath.Join(DataDir, Cfg.Data.LedgerFile)
}

// NewLoader returns a catalog loader rooted at the data directory
func NewLoader() *catalog.Loader {
	return catalog.NewLoader(DataDir)
}

// NewEngine returns a booking engine wired to the ledger and stdout
func NewEngine(cmd *cobra.Command) *booking.Engine {
	return booking.NewEngine(ledger.NewStore(LedgerPath()), cmd.OutOrStdout())
}

// LoadDirectory loads the user directory, bootstrapping the configured admin
// when no users resource exists yet
func LoadDirectory() (*directory.Directory, error) {
	bootstrap := models.User{
		ID:       Cfg.Bootstrap.AdminID,
		Name:     Cfg.Bootstrap.AdminName,
		Email:    Cfg.Bootstrap.AdminEmail,
		Password: Cfg.Bootstrap.AdminPassword,
		Role:     models.RoleAdmin,
	}
	return directory.Load(UsersPath(), bootstrap)
}
