// Package stubs provides the `modforge stubs` command group.
package stubs

import (
	"github.com/spf13/cobra"

	"github.com/modforge/cli/internal/cmdtypes"
)

// NewStubsCmd creates the stubs command group.
func NewStubsCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "stubs",
		Short: "Stub template management",
		Long:  `List the stub templates used to generate modules and publish them for customisation.`,
	}

	c.AddCommand(NewListCmd(cfg))
	c.AddCommand(NewPublishCmd(cfg))

	return c
}
