package main

import (
	"github.com/spf13/cobra"

	"github.com/eduveda/course-backend/internal/app"
	"github.com/eduveda/course-backend/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long:  `Applies every embedded migration that has not run yet. Safe to run repeatedly.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return app.Migrate(cmd.Context(), cfg, app.NewLogger(cfg.Log))
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
