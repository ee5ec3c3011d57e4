// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interlinker-ceditor",
	Short: "interlinker-ceditor is a collaborative editor backend",
	Long: `interlinker-ceditor exposes a REST API for creating, cloning and
deleting collaborative documents ("assets") backed by an Etherpad-compatible
editing service, and renders embeddable editing views for authenticated users.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
