package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salesq/salesq/internal/storage"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the local database",
	Long:  `Remove all loaded orders and load history. This action requires confirmation.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return runClear(cmd.Context(), force, nil)
	},
}

func init() {
	clearCmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")

	rootCmd.AddCommand(clearCmd)
}

func runClear(ctx context.Context, force bool, repo storage.Repository) error {
	// Initialize storage if not provided (for testing)
	if repo == nil {
		cfg, err := getConfig()
		if err != nil {
			return err
		}

		repo, err = initializeStorage(ctx, cfg)
		if err != nil {
			return err
		}

		defer repo.Close()
	}

	stats, err := repo.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get statistics: %w", err)
	}

	if stats.TotalOrders == 0 {
		fmt.Println("Database is already empty.")
		return nil
	}

	fmt.Printf("This will delete:\n")
	fmt.Printf("  • %d orders\n", stats.TotalOrders)
	fmt.Printf("  • %.2f MB of data\n", stats.DatabaseSizeMB)

	if !force {
		fmt.Printf("\nAre you sure you want to clear all data? This action cannot be undone.\n")
		fmt.Printf("Type 'yes' to confirm: ")

		reader := bufio.NewReader(os.Stdin)

		response, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		response = strings.TrimSpace(strings.ToLower(response))
		if response != "yes" {
			fmt.Println("Operation cancelled.")
			return nil
		}
	}

	if err := repo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear database: %w", err)
	}

	fmt.Println("Database cleared successfully.")

	return nil
}
