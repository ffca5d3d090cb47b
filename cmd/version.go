package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release version, overridable at link time.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tarmac version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("tarmac " + Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
