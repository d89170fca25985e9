package config

import (
	"os"

	"github.com/modforge/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from the config file.
	SourceConfig ConfigSource = "config"
	// SourceLocal indicates value came from the project-local config file.
	SourceLocal ConfigSource = "local"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) MODFORGE_CONFIG env, (3) ./modforge.yaml when it
// exists, (4) ~/.modforge/config.yaml.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv("MODFORGE_CONFIG")

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	localPath := ""
	if info, err := os.Stat(LocalConfigFile); err == nil && !info.IsDir() {
		localPath = LocalConfigFile
	}

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if localPath != "" {
			result.Shadowed[SourceLocal] = localPath
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		if localPath != "" {
			result.Shadowed[SourceLocal] = localPath
		}
		result.Shadowed[SourceDefault] = defaultPath
	case localPath != "":
		result.ConfigPath = localPath
		result.Source = SourceLocal
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedPath logs config path resolution at DEBUG level.
func LogResolvedPath(r ResolveConfigPathResult) {
	output.Debug("config path resolved",
		"path", r.ConfigPath,
		"source", r.Source,
	)
	for source, shadowed := range r.Shadowed {
		output.Debug("  shadowed by higher precedence",
			"shadowed_source", source,
			"shadowed_value", shadowed,
		)
	}
}

// ResolvedValue tracks a resolved config value and its source.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// ResolveValueOptions contains the candidate values for a single key.
type ResolveValueOptions struct {
	Key          string
	FlagValue    string
	EnvVar       string
	ConfigValue  string
	DefaultValue string
}

// ResolveValue resolves one string key with precedence
// flag > env > config > default.
func ResolveValue(opts ResolveValueOptions) ResolvedValue {
	rv := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := ""
	if opts.EnvVar != "" {
		envValue = os.Getenv(opts.EnvVar)
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, envValue},
		{SourceConfig, opts.ConfigValue},
		{SourceDefault, opts.DefaultValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if rv.Source == "" {
			rv.Value = c.value
			rv.Source = c.source
			continue
		}
		// Env values are also visible through the loaded config.
		if c.source == SourceConfig && c.value == envValue {
			continue
		}
		rv.Shadowed[c.source] = c.value
	}

	return rv
}

// Log logs the resolution at DEBUG level.
func (rv ResolvedValue) Log() {
	output.Debug("config value resolved",
		"key", rv.Key,
		"value", rv.Value,
		"source", rv.Source,
	)
}
