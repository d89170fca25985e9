package stubs

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modforge/cli/internal/cmdtypes"
	oerrors "github.com/modforge/cli/internal/errors"
	"github.com/modforge/cli/internal/output"
	"github.com/modforge/cli/internal/stubs"
)

// NewListCmd creates the `stubs list` command.
func NewListCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list [stub...]",
		Short: "List stub templates",
		Long: `List the stub templates, the tokens each one is rendered with, and where
each stub will be read from for the current project.

Pass stub names (for example model.stub) to show only those.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runList(c, cfg, args)
		},
	}
}

func runList(c *cobra.Command, cfg *cmdtypes.GlobalConfig, names []string) error {
	selected, err := selectStubs(names)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	}

	resolved := cfg.Config.WithDefaults()

	src, err := stubs.Resolve(resolved.StubsDir, resolved.BasePath)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	tbl := output.NewTable("STUB", "DESCRIPTION", "TOKENS", "SOURCE")
	for _, s := range selected {
		source := src.Origin()
		if !src.Has(s.Name) {
			source = "missing"
		}

		tokens := strings.Join(s.Tokens, ", ")
		if tokens == "" {
			tokens = "-"
		}

		tbl.Row(s.Name, s.Description, tokens, source)
	}

	_, err = fmt.Fprintln(c.OutOrStdout(), tbl.String())
	return err
}

// selectStubs returns the named stubs, or every stub when names is empty.
func selectStubs(names []string) ([]stubs.Stub, error) {
	if len(names) == 0 {
		return stubs.List(), nil
	}

	out := make([]stubs.Stub, 0, len(names))
	for _, name := range names {
		s, err := stubs.Get(name)
		if err != nil {
			return nil, oerrors.NewValidationError("stub", err.Error(),
				"Known stubs: "+strings.Join(stubs.Names(), ", ")+".")
		}
		out = append(out, s)
	}
	return out, nil
}
