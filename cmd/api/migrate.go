package main

import (
	"fmt"

	"product-catalog/internal/config"
	"product-catalog/internal/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database migration commands",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Run all pending migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runMigrations("up")
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Rollback the last migration",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runMigrations("down")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}

func runMigrations(direction string) error {
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	connString := cfg.Database.ConnectionString()

	switch direction {
	case "up":
		if err := database.MigrateUp(connString, logger); err != nil {
			return err
		}
		logger.Info().Msg("migrations completed successfully")
	case "down":
		if err := database.MigrateDown(connString, logger); err != nil {
			return err
		}
		logger.Info().Msg("migration rolled back successfully")
	}

	return nil
}
