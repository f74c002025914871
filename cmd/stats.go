package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/salesq/salesq/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display database statistics",
	Long:  `Show statistics about the local database: order counts, date range, total amount, and per-region and per-category breakdowns.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runStats(cmd.Context(), nil)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(ctx context.Context, repo storage.Repository) error {
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

	fmt.Printf("Database Statistics\n")
	fmt.Printf("==================\n\n")

	fmt.Printf("Total Orders: %d\n", stats.TotalOrders)
	fmt.Printf("Total Amount: %.2f\n", stats.TotalAmount)
	fmt.Printf("Database Size: %.2f MB\n", stats.DatabaseSizeMB)

	if !stats.FirstOrderDate.IsZero() {
		fmt.Printf("Order Dates: %s to %s\n",
			stats.FirstOrderDate.Format("2006-01-02"),
			stats.LastOrderDate.Format("2006-01-02"))
	}

	if !stats.LastLoadTime.IsZero() {
		fmt.Printf("Last Load: %s\n", stats.LastLoadTime.Format("2006-01-02 15:04:05"))
	} else {
		fmt.Printf("Last Load: Never\n")
	}

	printBreakdown("Region Breakdown", stats.RegionBreakdown, stats.TotalOrders)
	printBreakdown("Category Breakdown", stats.CategoryBreakdown, stats.TotalOrders)

	return nil
}

// printBreakdown prints a value-count map sorted by count descending, with
// name as the tiebreak for deterministic output.
func printBreakdown(title string, breakdown map[string]int, total int) {
	if len(breakdown) == 0 || total == 0 {
		return
	}

	type entry struct {
		name  string
		count int
	}

	entries := make([]entry, 0, len(breakdown))
	for name, count := range breakdown {
		entries = append(entries, entry{name, count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}

		return entries[i].name < entries[j].name
	})

	fmt.Printf("\n%s:\n", title)

	for _, e := range entries {
		percentage := float64(e.count) / float64(total) * 100
		fmt.Printf("  %-15s %4d orders (%.1f%%)\n", e.name, e.count, percentage)
	}
}
