// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/modforge/cli/internal/cmdtypes"
	mfconfig "github.com/modforge/cli/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the modforge CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// configPath returns the config file to operate on: --config, then
// MODFORGE_CONFIG, then ./modforge.yaml, then ~/.modforge/config.yaml.
func configPath(cfg *cmdtypes.GlobalConfig) (string, error) {
	if cfg.ConfigPath != "" {
		return cfg.ConfigPath, nil
	}
	resolved, err := mfconfig.ResolveConfigPath(mfconfig.ResolveConfigPathOptions{FlagValue: cfg.ConfigFlag})
	if err != nil {
		return "", err
	}
	return resolved.ConfigPath, nil
}
