package stubs

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modforge/cli/internal/cmdtypes"
	oerrors "github.com/modforge/cli/internal/errors"
	"github.com/modforge/cli/internal/output"
	"github.com/modforge/cli/internal/stubs"
)

// NewPublishCmd creates the `stubs publish` command.
func NewPublishCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		dirFlag   string
		forceFlag bool
	)

	c := &cobra.Command{
		Use:   "publish",
		Short: "Copy the built-in stubs into the project",
		Long: `Copy the built-in stubs into the project so they can be customised.

Stubs are written to resources/stubs under the base path unless --dir is set.
Once published, module generation reads stubs from that directory.
Existing files are kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runPublish(c, cfg, dirFlag, forceFlag)
		},
	}

	c.Flags().StringVarP(&dirFlag, "dir", "d", "", "Destination directory (default: <base>/resources/stubs)")
	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing stub files")

	return c
}

func runPublish(c *cobra.Command, cfg *cmdtypes.GlobalConfig, dir string, force bool) error {
	resolved := cfg.Config.WithDefaults()

	switch {
	case dir == "":
		dir = filepath.Join(resolved.BasePath, stubs.ProjectStubsDir)
	case !filepath.IsAbs(dir):
		dir = filepath.Join(resolved.BasePath, dir)
	}

	results, err := stubs.Publish(dir, force)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	published := 0
	for _, r := range results {
		status := output.StatusCreated
		if r.Skipped {
			status = output.StatusExists
		} else {
			published++
		}
		if _, err := fmt.Fprintln(c.OutOrStdout(), output.FormatArtifactLine("stub", r.Path, status)); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(
		fmt.Sprintf("Published %d of %d stubs to %s", published, len(results), dir)))
	return err
}
