// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/module, internal/cmd/stubs, internal/cmd/config).
package cmdtypes

import (
	"github.com/modforge/cli/internal/config"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded configuration with flag overrides and defaults applied.
	Config *config.Config

	// ConfigPath is the resolved config file path.
	ConfigPath string

	// ConfigFlag is the raw --config flag value.
	ConfigFlag string

	Verbose bool
}
