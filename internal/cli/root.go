// Package cli provides the command-line interface for the Snowflake
// adapter: profile doctoring and metadata listing against a configured
// warehouse target.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapsql-snowflake/internal/config"
	"github.com/leapstack-labs/leapsql-snowflake/pkg/adapter"
	_ "github.com/leapstack-labs/leapsql-snowflake/pkg/snowflake" // register the snowflake adapter
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

var (
	cfgFile string
	cfg     *config.Profile
	logger  *slog.Logger
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "leapsql-snowflake",
		Short: "Snowflake warehouse adapter for LeapSQL",
		Long: `Snowflake warehouse adapter for the LeapSQL transformation engine.

The adapter is normally loaded as a plugin by the engine itself; this
binary exposes its metadata operations directly for inspecting a target
and verifying a profile.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "Path to the profile file (default snowflake.yaml)")
	flags.Bool("verbose", false, "Enable debug logging")
	flags.String("account", "", "Snowflake account identifier")
	flags.String("user", "", "Username")
	flags.StringP("database", "d", "", "Default database")
	flags.StringP("schema", "s", "", "Default schema")
	flags.StringP("warehouse", "w", "", "Default compute warehouse")
	flags.String("role", "", "Role to assume")

	rootCmd.AddCommand(newSchemasCommand())
	rootCmd.AddCommand(newRelationsCommand())
	rootCmd.AddCommand(newDoctorCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logErr := logger
		if logErr == nil {
			logErr = slog.New(slog.NewTextHandler(os.Stderr, nil))
		}
		logErr.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// connectAdapter validates the profile, instantiates the registered
// adapter, and opens the warehouse connection.
func connectAdapter(ctx context.Context) (adapter.Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a, err := adapter.New(cfg.AdapterConfig(), logger)
	if err != nil {
		return nil, err
	}
	if err := a.Connect(ctx, cfg.AdapterConfig()); err != nil {
		return nil, err
	}
	return a, nil
}
