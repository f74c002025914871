package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/salesq/salesq/internal/config"
	"github.com/salesq/salesq/internal/logging"
)

var (
	flagDBPath   string
	flagLogLevel string

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "salesq",
	Short: "Ask questions about your sales data in plain English",
	Long: `salesq translates plain-English questions into SQL and runs them against
a local DuckDB database holding a single orders table. Translation is
deterministic: the same question always produces the same SQL, and
unrecognized questions fall back to listing all orders.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupApp,
}

func Execute() error {
	ctx := context.Background()
	return rootCmd.ExecuteContext(ctx)
}

// setupApp loads configuration and initializes logging before any
// subcommand runs.
func setupApp(cmd *cobra.Command, _ []string) error {
	overrides := map[string]interface{}{
		"db-path":   flagDBPath,
		"log-level": flagLogLevel,
	}

	cfg, err := config.LoadConfigWithOverrides(overrides)
	if err != nil {
		return err
	}

	if err := logging.InitializeLogger(cfg.Logging); err != nil {
		logging.SetupFallbackLogger()
	}

	appConfig = cfg

	return nil
}

// getConfig returns the active configuration, loading defaults when a
// command runs outside the normal cobra lifecycle (tests, mostly).
func getConfig() (*config.Config, error) {
	if appConfig != nil {
		return appConfig, nil
	}

	return config.LoadConfig()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db-path", "", "Override the database file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Override the log level (debug, info, warn, error)")
}
