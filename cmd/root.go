package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"todoctl/internal/app"
	"todoctl/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// rootOptions carries persistent flag values and the configuration source shared by subcommands.
type rootOptions struct {
	cfgFile string
	verbose bool
	viper   *viper.Viper
}

// NewRootCmd builds the todoctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "todoctl",
		Short: "A CLI tool for managing tasks on a to-do API",
		Long: `Todoctl lists, creates and deletes tasks on a HAL-based to-do API.

The API root is read from --base-url, the TODO_API_BASE_URL environment
variable, or api.base_url in $HOME/.config/todoctl/config.yaml.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/todoctl/config.yaml)")
	rootCmd.PersistentFlags().
		BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		String("base-url", "", "API base URL (overrides TODO_API_BASE_URL)")
	_ = opts.viper.BindPFlag(config.KeyBaseURL, rootCmd.PersistentFlags().Lookup("base-url"))

	rootCmd.AddCommand(
		newListCmd(opts),
		newAddCmd(opts),
		newDeleteCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// initConfig resolves the configuration from the config file, environment and flags.
func (o *rootOptions) initConfig() (*config.Config, error) {
	if o.cfgFile != "" {
		o.viper.SetConfigFile(o.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		o.viper.AddConfigPath(filepath.Join(home, ".config", "todoctl"))
		o.viper.SetConfigType("yaml")
		o.viper.SetConfigName("config")
	}

	config.SetDefaults(o.viper)

	// The default config file is optional; an explicit one is not.
	if err := o.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return config.Load(o.viper)
}

// loadApp initializes the application with dependency injection.
func (o *rootOptions) loadApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := o.initConfig()
	if err != nil {
		return nil, err
	}

	application, err := app.NewApp(cmd.Context(), cfg,
		app.WithVerbose(o.verbose),
		app.WithInput(cmd.InOrStdin()),
		app.WithOutput(cmd.ErrOrStderr()),
		app.WithUserAgent("todoctl/"+versionInfo.Version),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return application, nil
}
