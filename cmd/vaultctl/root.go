package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vaultctl",
	Short: "Manage the config-vault credential server",
	Long: `vaultctl manages the config-vault credential server.

It runs the API server, manages the database schema, inspects the
effective configuration, and waits for a running server to become ready.`,
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
