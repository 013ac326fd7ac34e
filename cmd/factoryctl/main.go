package main

import (
	"context"
	"fmt"
	"os"

	"aircraft-factory-backend/internal/config"
	"aircraft-factory-backend/internal/database"
	"aircraft-factory-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "factoryctl",
	Short: "Administrative tool for the aircraft factory backend",
	Long:  `Runs schema migrations, loads seed data and mints bearer tokens for existing users.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			logrus.Debug("No .env file found, using system environment variables")
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logger.Setup(cfg.LogLevel)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd, tokenCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDatabase connects without running migrations unless migrate is set
func openDatabase(migrate bool) (*gorm.DB, error) {
	opts := database.OptionsFromConfig(cfg)
	opts.AutoMigrate = migrate
	return database.Initialize(cfg.DatabaseURL, opts)
}
