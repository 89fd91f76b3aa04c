package main

import (
	"github.com/spf13/cobra"

	"github.com/eduveda/course-backend/internal/app"
	"github.com/eduveda/course-backend/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return app.Serve(cmd.Context(), cfg, app.NewLogger(cfg.Log))
}
