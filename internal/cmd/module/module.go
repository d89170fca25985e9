// Package module provides the `modforge module` command group.
package module

import (
	"github.com/spf13/cobra"

	"github.com/modforge/cli/internal/cmdtypes"
)

// NewModuleCmd creates the module command group.
func NewModuleCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "module",
		Short: "Module operations",
		Long:  `Commands for scaffolding application modules.`,
	}

	c.AddCommand(NewMakeCmd(cfg))

	return c
}
