package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for modforge configuration.
const envPrefix = "MODFORGE"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("basePath", "MODFORGE_BASE_PATH")
	_ = v.BindEnv("appDir", "MODFORGE_APP_DIR")
	_ = v.BindEnv("modulesDir", "MODFORGE_MODULES_DIR")
	_ = v.BindEnv("rootNamespace", "MODFORGE_ROOT_NAMESPACE")
	_ = v.BindEnv("stubsDir", "MODFORGE_STUBS_DIR")
	_ = v.BindEnv("componentsDir", "MODFORGE_COMPONENTS_DIR")
	_ = v.BindEnv("viewsDir", "MODFORGE_VIEWS_DIR")
	_ = v.BindEnv("log.timestamps", "MODFORGE_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, the default config path is resolved.
// A missing file is not an error. Environment variables take precedence over
// file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		resolved, err := ResolveConfigPath(ResolveConfigPathOptions{})
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
		configFile = resolved.ConfigPath
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
