package module

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/modforge/cli/internal/cmdtypes"
	"github.com/modforge/cli/internal/cmdutil"
	oerrors "github.com/modforge/cli/internal/errors"
	"github.com/modforge/cli/internal/naming"
	"github.com/modforge/cli/internal/output"
	"github.com/modforge/cli/internal/scaffold"
)

const makeLong = `Create a new module with the selected artifacts.

The module name may be nested with "/" (for example Blog/Posts). Only the last
segment is used for class, table and route names. Files that already exist are
never overwritten.

Examples:
  # Model, controller and web routes
  modforge module make Blog/Posts --model --controller

  # Everything
  modforge make:module Posts --all

  # Preview without writing
  modforge module make Posts --all --dry-run`

// NewMakeCmd creates the `module make` command.
func NewMakeCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return newMakeCmd(cfg, "make <name>", "Create a new module")
}

// NewMakeModuleCmd creates the top-level `make:module` command, an alias of
// `module make` kept for users of the framework command of the same name.
func NewMakeModuleCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := newMakeCmd(cfg, "make:module <name>", "Create a new module (alias of 'module make')")
	c.Hidden = true
	return c
}

func newMakeCmd(cfg *cmdtypes.GlobalConfig, use, short string) *cobra.Command {
	var flags cmdutil.ArtifactFlags

	c := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  makeLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runMake(c, cfg, args[0], &flags)
		},
	}

	flags.AddTo(c)

	return c
}

func runMake(c *cobra.Command, cfg *cmdtypes.GlobalConfig, name string, flags *cmdutil.ArtifactFlags) error {
	m, err := naming.Parse(name)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	}

	if err := flags.Validate(); err != nil {
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	}

	opts, err := cmdutil.GeneratorOptions(cfg.Config, flags.DryRun)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	gen, err := scaffold.NewGenerator(opts)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	output.ModuleLogger(m.String()).Debug("making module",
		"artifacts", len(flags.Selection().Artifacts()),
		"dry_run", flags.DryRun,
	)

	report, genErr := gen.Generate(c.Context(), m, flags.Selection())

	return finishMake(c.OutOrStdout(), report, genErr, output.IsTTY())
}

// finishMake prints the report and turns the run error into an ExitError.
// Plain output already carries the message of the failed artifact, so the
// error is marked as printed in that case.
func finishMake(w io.Writer, report *scaffold.Report, genErr error, styled bool) error {
	shown := false

	if report != nil {
		if err := cmdutil.PrintReport(w, report, styled); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		if report.HasFailures() {
			for _, res := range report.Results {
				if res.Status != scaffold.StatusFailed {
					continue
				}
				if genErr != nil && errors.Is(res.Err, genErr) {
					shown = !styled
					continue
				}
				output.Error(res.Artifact.Label()+" failed", "path", res.Path, "error", res.Err)
			}
		}
	}

	if genErr != nil {
		exitErr := oerrors.NewExitError(genErr, oerrors.ExitCodeFromError(genErr))
		exitErr.Printed = shown
		return exitErr
	}

	return nil
}
