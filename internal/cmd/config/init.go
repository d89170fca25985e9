package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/modforge/cli/internal/cmdtypes"
	mfconfig "github.com/modforge/cli/internal/config"
	oerrors "github.com/modforge/cli/internal/errors"
	"github.com/modforge/cli/internal/output"
)

const configHeader = `# modforge configuration
# Keys can be overridden with MODFORGE_* environment variables
# (for example MODFORGE_BASE_PATH) and global flags.

`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new modforge configuration file",
		Long: `Create a new modforge configuration file with default values.

The file is written to the resolved config path: --config, MODFORGE_CONFIG,
./modforge.yaml when present, otherwise ~/.modforge/config.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, forceFlag)
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	configFile, err := configPath(cfg)
	if err != nil {
		return fmt.Errorf("getting config file path: %w", err)
	}

	expandedPath, err := mfconfig.ExpandPath(configFile)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := mfconfig.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}

	if exists && !force {
		return oerrors.NewExitError(
			oerrors.NewAlreadyExistsError(
				expandedPath,
				fmt.Sprintf("config file already exists at %s", expandedPath),
				"Pass --force to overwrite it.",
			),
			oerrors.ExitGeneralError,
		)
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(mfconfig.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(expandedPath, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	output.Debug("config file written", "path", expandedPath, "overwrite", exists)

	_, err = fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+expandedPath))
	return err
}
