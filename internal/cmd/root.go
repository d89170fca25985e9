// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/modforge/cli/internal/cmd/config"
	"github.com/modforge/cli/internal/cmd/module"
	"github.com/modforge/cli/internal/cmd/stubs"
	"github.com/modforge/cli/internal/cmdtypes"
	mfconfig "github.com/modforge/cli/internal/config"
	"github.com/modforge/cli/internal/output"
)

// rootFlags holds the persistent flags of the root command.
type rootFlags struct {
	config     string
	basePath   string
	stubsDir   string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the modforge CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "modforge",
		Short: "Module scaffolding for modular MVC applications",
		Long: `modforge scaffolds self-contained modules (models, controllers, routes,
migrations, Vue components and Blade views) from stub templates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, &flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: MODFORGE_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flags.basePath, "base-path", "", "Project root (env: MODFORGE_BASE_PATH)")
	rootCmd.PersistentFlags().StringVar(&flags.stubsDir, "stubs-dir", "", "Directory to read stubs from (env: MODFORGE_STUBS_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(module.NewModuleCmd(cfg))
	rootCmd.AddCommand(module.NewMakeModuleCmd(cfg))
	rootCmd.AddCommand(stubs.NewStubsCmd(cfg))
	rootCmd.AddCommand(config.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration, applies flag overrides and sets up
// logging.
func initializeGlobals(c *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	resolvedPath, err := mfconfig.ResolveConfigPath(mfconfig.ResolveConfigPathOptions{
		FlagValue: flags.config,
	})
	if err != nil {
		return err
	}

	var loadErr error
	loaded, err := mfconfig.NewLoader().Load(resolvedPath.ConfigPath)
	if err != nil {
		// Commands such as `config vet` and `config init` must still run.
		loadErr = err
		loaded = &mfconfig.Config{}
	}

	basePath := mfconfig.ResolveValue(mfconfig.ResolveValueOptions{
		Key:          "basePath",
		FlagValue:    flags.basePath,
		EnvVar:       "MODFORGE_BASE_PATH",
		ConfigValue:  loaded.BasePath,
		DefaultValue: mfconfig.DefaultBasePath,
	})
	stubsDir := mfconfig.ResolveValue(mfconfig.ResolveValueOptions{
		Key:         "stubsDir",
		FlagValue:   flags.stubsDir,
		EnvVar:      "MODFORGE_STUBS_DIR",
		ConfigValue: loaded.StubsDir,
	})
	loaded.BasePath = basePath.Value
	loaded.StubsDir = stubsDir.Value

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{
		Verbose: flags.verbose,
		Writer:  c.ErrOrStderr(),
	}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring config file", "path", resolvedPath.ConfigPath, "error", loadErr)
	}
	mfconfig.LogResolvedPath(resolvedPath)
	basePath.Log()
	stubsDir.Log()

	cfg.Config = loaded.WithDefaults()
	cfg.ConfigPath = resolvedPath.ConfigPath
	cfg.ConfigFlag = flags.config
	cfg.Verbose = flags.verbose

	return nil
}
