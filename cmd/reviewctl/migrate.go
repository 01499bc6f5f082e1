package main

import (
	"context"
	"fmt"

	"github.com/jbeshir/interview-insights/internal/app"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return migrateRun(commandContext(cmd))
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func migrateRun(ctx context.Context) error {
	cfg := databaseConfig(true)
	_, conn, err := app.OpenRepository(ctx, cfg)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	if err := conn.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}

	ui.Success("Migrated %s database", cfg.Driver)
	return nil
}
