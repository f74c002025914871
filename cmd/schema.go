package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salesq/salesq/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the orders table schema and recognized vocabulary",
	Long: `Print the columns of the orders table, the allowed values of the
categorical columns, and the metric columns aggregate questions can target.`,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(_ *cobra.Command, _ []string) error {
	reg := &schema.Orders

	fmt.Printf("Table: %s\n\n", reg.Table)
	fmt.Println("Columns:")

	for _, col := range reg.Columns {
		line := fmt.Sprintf("  %-12s %s", col.Name, col.Type)

		if len(col.Values) > 0 {
			line += "  (" + strings.Join(col.Values, ", ") + ")"
		}

		fmt.Println(line)
	}

	fmt.Printf("\nMetric columns: %s\n", strings.Join(reg.MetricColumns, ", "))

	return nil
}
