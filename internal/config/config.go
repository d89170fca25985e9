// Package config provides configuration loading and management.
package config

// Default values for configuration keys.
const (
	DefaultBasePath      = "."
	DefaultAppDir        = "app"
	DefaultModulesDir    = "Modules"
	DefaultRootNamespace = `App\`
	DefaultComponentsDir = "resources/js/components"
	DefaultViewsDir      = "resources/views"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the modforge configuration.
// Loaded from modforge.yaml or ~/.modforge/config.yaml, validated against the
// embedded CUE schema.
type Config struct {
	// BasePath is the project root every other path is relative to.
	// Env: MODFORGE_BASE_PATH, Default: "."
	BasePath string `json:"basePath,omitempty" yaml:"basePath,omitempty" mapstructure:"basePath"`

	// AppDir is the application source directory under BasePath.
	// Env: MODFORGE_APP_DIR, Default: "app"
	AppDir string `json:"appDir,omitempty" yaml:"appDir,omitempty" mapstructure:"appDir"`

	// ModulesDir is the directory under AppDir holding modules.
	// Env: MODFORGE_MODULES_DIR, Default: "Modules"
	ModulesDir string `json:"modulesDir,omitempty" yaml:"modulesDir,omitempty" mapstructure:"modulesDir"`

	// RootNamespace is the application root namespace, ending in "\".
	// Env: MODFORGE_ROOT_NAMESPACE, Default: "App\"
	RootNamespace string `json:"rootNamespace,omitempty" yaml:"rootNamespace,omitempty" mapstructure:"rootNamespace"`

	// StubsDir overrides where stubs are read from.
	// Env: MODFORGE_STUBS_DIR, Default: resources/stubs if present, else built-in.
	StubsDir string `json:"stubsDir,omitempty" yaml:"stubsDir,omitempty" mapstructure:"stubsDir"`

	// ComponentsDir is where Vue components are written.
	// Env: MODFORGE_COMPONENTS_DIR, Default: "resources/js/components"
	ComponentsDir string `json:"componentsDir,omitempty" yaml:"componentsDir,omitempty" mapstructure:"componentsDir"`

	// ViewsDir is where Blade views are written.
	// Env: MODFORGE_VIEWS_DIR, Default: "resources/views"
	ViewsDir string `json:"viewsDir,omitempty" yaml:"viewsDir,omitempty" mapstructure:"viewsDir"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log" yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `modforge config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		BasePath:      DefaultBasePath,
		AppDir:        DefaultAppDir,
		ModulesDir:    DefaultModulesDir,
		RootNamespace: DefaultRootNamespace,
		ComponentsDir: DefaultComponentsDir,
		ViewsDir:      DefaultViewsDir,
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	d := DefaultConfig()

	if out.BasePath == "" {
		out.BasePath = d.BasePath
	}
	if out.AppDir == "" {
		out.AppDir = d.AppDir
	}
	if out.ModulesDir == "" {
		out.ModulesDir = d.ModulesDir
	}
	if out.RootNamespace == "" {
		out.RootNamespace = d.RootNamespace
	}
	if out.ComponentsDir == "" {
		out.ComponentsDir = d.ComponentsDir
	}
	if out.ViewsDir == "" {
		out.ViewsDir = d.ViewsDir
	}

	return &out
}
