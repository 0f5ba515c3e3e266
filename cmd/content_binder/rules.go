package main

import (
	"github.com/jonathan/content-binder/internal/binding"
	"github.com/jonathan/content-binder/internal/observability"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the binding rules and the selectors they expect in the page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			observability.NewPrinter(cmd.OutOrStdout()).PrintRules(binding.DefaultRules())
			return nil
		},
	}
}
