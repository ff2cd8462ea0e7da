package cli

import (
	"github.com/spf13/cobra"
)

// configPath is set by the --config persistent flag; empty means defaults
// plus environment variables only.
var configPath string

var rootCmd = &cobra.Command{
	Use:   "stockroom",
	Short: "Server-rendered inventory management web application",
	Long:  "Stockroom lists, searches, creates, and deletes inventory items organised into categories, with an HTML dashboard.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
