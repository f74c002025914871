package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var configJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the active configuration",
	Long:  `Show the current active configuration including all settings from file, environment variables, and command-line flags.`,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configJSON, "json", false, "Emit the configuration as JSON")

	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}

	if configJSON {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %w", err)
		}

		fmt.Println(string(data))

		return nil
	}

	fmt.Println("Active Configuration:")

	fmt.Println("\nDatabase:")
	fmt.Printf("  Path: %s\n", cfg.Database.Path)
	fmt.Printf("  Max Connections: %d\n", cfg.Database.MaxConnections)
	fmt.Printf("  Query Timeout: %s\n", cfg.Database.QueryTimeout)

	fmt.Println("\nDataset:")

	csvPath := cfg.Dataset.CSVPath
	if csvPath == "" {
		csvPath = "(built-in sample data)"
	}

	fmt.Printf("  CSV Path: %s\n", csvPath)
	fmt.Printf("  Seed On Empty: %t\n", cfg.Dataset.SeedOnEmpty)

	fmt.Println("\nLogging:")
	fmt.Printf("  Level: %s\n", cfg.Logging.Level)
	fmt.Printf("  Format: %s\n", cfg.Logging.Format)
	fmt.Printf("  Output: %s\n", cfg.Logging.Output)

	if cfg.Logging.Output == "file" {
		fmt.Printf("  File: %s\n", cfg.Logging.File)
	}

	fmt.Println("\nOutput:")
	fmt.Printf("  Max Table Rows: %d\n", cfg.Output.MaxTableRows)
	fmt.Printf("  Chart Width: %d\n", cfg.Output.ChartWidth)
	fmt.Printf("  Charts Enabled: %t\n", cfg.Output.ChartsEnabled)

	return nil
}
