package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gatehouse-cli",
	Short: "Gatehouse CLI tool",
	Long: `Gatehouse CLI is a command-line companion to the Gatehouse sign-in service.

Available commands:
  check-config    Load the environment and report the resulting configuration
  version         Print the version number

Use "gatehouse-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
