// Package main provides the entry point for the content-binder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "content_binder",
		Short:         "Bind content.json copy into static HTML pages",
		Long:          "content_binder copies fields from a JSON content document into a pre-rendered HTML template, so copy can change without editing markup.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newBindCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRulesCmd())

	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
