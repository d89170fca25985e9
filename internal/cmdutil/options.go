package cmdutil

import (
	"errors"

	"github.com/modforge/cli/internal/config"
	oerrors "github.com/modforge/cli/internal/errors"
	"github.com/modforge/cli/internal/output"
	"github.com/modforge/cli/internal/scaffold"
	"github.com/modforge/cli/internal/stubs"
)

// GeneratorOptions builds scaffold options from resolved configuration.
// The configuration is checked against the config schema and the stub source
// is resolved here, so bad settings fail before any file is written.
func GeneratorOptions(cfg *config.Config, dryRun bool) (scaffold.Options, error) {
	cfg = cfg.WithDefaults()

	validator, err := config.NewValidator()
	if err != nil {
		return scaffold.Options{}, err
	}
	if err := validator.Validate(cfg); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return scaffold.Options{}, oerrors.NewValidationError(
				verrs[0].Field, verrs[0].Message,
				"Check flags, MODFORGE_* variables and the config file ('modforge config vet').",
			)
		}
		return scaffold.Options{}, err
	}

	src, err := stubs.Resolve(cfg.StubsDir, cfg.BasePath)
	if err != nil {
		return scaffold.Options{}, err
	}

	output.Debug("generator options",
		"base", cfg.BasePath,
		"app", cfg.AppDir,
		"modules", cfg.ModulesDir,
		"namespace", cfg.RootNamespace,
		"stubs", src.Origin(),
	)

	return scaffold.Options{
		BasePath:      cfg.BasePath,
		AppDir:        cfg.AppDir,
		ModulesDir:    cfg.ModulesDir,
		RootNamespace: cfg.RootNamespace,
		ComponentsDir: cfg.ComponentsDir,
		ViewsDir:      cfg.ViewsDir,
		Stubs:         src,
		DryRun:        dryRun,
	}, nil
}
