package scaffold

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	oerrors "github.com/modforge/cli/internal/errors"
	"github.com/modforge/cli/internal/stubs"
)

// Options configures a Generator.
type Options struct {
	// BasePath is the project root. All other paths are relative to it.
	BasePath string `validate:"required"`

	// AppDir is the application source directory, e.g. "app".
	AppDir string `validate:"required"`

	// ModulesDir is the modules directory under AppDir, also used as the
	// namespace segment after RootNamespace.
	ModulesDir string `validate:"required,excludesall=/\\"`

	// RootNamespace is the application root namespace ending in "\".
	RootNamespace string `validate:"required,endswith=\\"`

	// ComponentsDir receives Vue components.
	ComponentsDir string `validate:"required"`

	// ViewsDir receives Blade views.
	ViewsDir string `validate:"required"`

	// Stubs provides the stub templates.
	Stubs *stubs.Source `validate:"required"`

	// Now returns the time used for migration file names. Defaults to time.Now.
	Now func() time.Time `validate:"-"`

	// DryRun reports what would be written without touching the filesystem.
	DryRun bool
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that every required option is set.
func (o Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validating options: %w", err)
	}

	fe := verrs[0]
	return oerrors.NewValidationError(
		fe.Field(),
		fmt.Sprintf("invalid generator option %s: failed %q check", fe.Field(), fe.Tag()),
		"Check the modforge configuration with 'modforge config vet'.",
	)
}
