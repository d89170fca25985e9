package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modforge/cli/internal/cmdtypes"
	mfconfig "github.com/modforge/cli/internal/config"
	oerrors "github.com/modforge/cli/internal/errors"
	"github.com/modforge/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the modforge configuration file",
		Long: `Validate the modforge configuration file against the internal schema.

Unknown keys, wrong types, absolute output directories and a root namespace
that does not end in "\" are reported.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
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

	if !exists {
		return oerrors.NewExitError(
			oerrors.NewNotFoundError(
				expandedPath,
				fmt.Sprintf("config file not found: %s", expandedPath),
				"Run 'modforge config init' to create one.",
			),
			oerrors.ExitNotFound,
		)
	}

	validator, err := mfconfig.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validator.ValidateFile(expandedPath); err != nil {
		var validationErrs mfconfig.ValidationErrors
		if errors.As(err, &validationErrs) {
			fmt.Fprintln(c.ErrOrStderr(), "Error: config validation failed")
			fmt.Fprintf(c.ErrOrStderr(), "  File: %s\n\n", expandedPath)
			for _, e := range validationErrs {
				fmt.Fprintf(c.ErrOrStderr(), "  %s: %s\n", e.Field, e.Message)
			}
			return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err, Printed: true}
		}
		return fmt.Errorf("validating config: %w", err)
	}

	_, err = fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+expandedPath))
	return err
}
