package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ecowaste-cli",
	Short: "EcoWaste site tooling",
	Long: `ecowaste-cli is a command-line companion for the EcoWaste site.

Available commands:
  routes           List every HTTP route the server registers
  topics           List the events published on the notification bus
  check-password   Evaluate a password against the strength rules
  version          Print the CLI version

Use "ecowaste-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
