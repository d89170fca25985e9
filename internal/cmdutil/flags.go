// Package cmdutil provides shared command utilities for the module and stubs
// subcommands. It centralizes artifact flag handling, generator option
// assembly from configuration, and report output.
package cmdutil

import (
	"github.com/spf13/cobra"

	oerrors "github.com/modforge/cli/internal/errors"
	"github.com/modforge/cli/internal/scaffold"
)

// ArtifactFlags holds the artifact selection flags of `module make`.
type ArtifactFlags struct {
	All        bool
	Migration  bool
	Vue        bool
	View       bool
	Controller bool
	Model      bool
	API        bool
	DryRun     bool
}

// AddTo registers the artifact flags on the given cobra command.
func (f *ArtifactFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.All, "all", "a", false,
		"Generate a migration, model, controller, api controller, vue component and views")
	cmd.Flags().BoolVarP(&f.Migration, "migration", "m", false,
		"Create a new migration file for the model")
	cmd.Flags().BoolVar(&f.Vue, "vue", false,
		"Create a Vue component")
	cmd.Flags().BoolVar(&f.View, "view", false,
		"Create the create, edit, index and show views")
	cmd.Flags().BoolVarP(&f.Controller, "controller", "c", false,
		"Create a controller and web routes for the module")
	cmd.Flags().BoolVar(&f.Model, "model", false,
		"Create a model for the module")
	cmd.Flags().BoolVar(&f.API, "api", false,
		"Create an API controller and api routes for the module")
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Show what would be generated without writing files")
}

// Selection converts the flags into a scaffold selection.
func (f *ArtifactFlags) Selection() scaffold.Selection {
	return scaffold.Selection{
		Model:      f.Model,
		Controller: f.Controller,
		API:        f.API,
		Migration:  f.Migration,
		Vue:        f.Vue,
		View:       f.View,
		All:        f.All,
	}
}

// Validate checks that at least one artifact is selected.
func (f *ArtifactFlags) Validate() error {
	if f.Selection().Empty() {
		return oerrors.NewValidationError(
			"flags",
			"no artifacts selected",
			"Pass --all or at least one of --model, --controller, --api, --migration, --vue, --view.",
		)
	}
	return nil
}
