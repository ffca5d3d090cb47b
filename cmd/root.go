// Package cmd provides the command-line interface for tarmac.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "tarmac",
	Short: "Discrete-event simulator with a single-runway airport model",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// A .env file can provide defaults such as TARMAC_MONITOR_PORT.
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
