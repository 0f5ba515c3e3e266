package main

import (
	"fmt"

	"github.com/jonathan/content-binder/internal/config"
	"github.com/spf13/cobra"
)

// resolveConfig layers env over the config file over built-in defaults.
// Flags are applied by each command afterwards.
func resolveConfig(configPath string) (config.Config, error) {
	base := config.Defaults()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		base = fileCfg.MergeWithDefaults(base)
	}

	envCfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	return envCfg.MergeWithDefaults(base), nil
}

func overrideString(cmd *cobra.Command, name string, dst *string, value string) {
	if cmd.Flags().Changed(name) {
		*dst = value
	}
}

func overrideInt(cmd *cobra.Command, name string, dst *int, value int) {
	if cmd.Flags().Changed(name) {
		*dst = value
	}
}

func overrideBool(cmd *cobra.Command, name string, dst *bool, value bool) {
	if cmd.Flags().Changed(name) {
		*dst = value
	}
}
