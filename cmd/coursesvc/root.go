package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coursesvc",
	Short: "Course resources and assessments service",
	Long: `coursesvc stores the resources and assessments of each course.
Instructors replace a whole list at once; the service works out what was
created, updated and deleted, applies it in one transaction and tells
enrolled students what changed.

Without a subcommand it runs the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}
