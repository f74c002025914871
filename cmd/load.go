package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/salesq/salesq/internal/dataset"
	"github.com/salesq/salesq/internal/errors"
	"github.com/salesq/salesq/internal/logging"
	"github.com/salesq/salesq/internal/schema"
	"github.com/salesq/salesq/internal/storage"
)

var (
	loadCSVPath string
	loadForce   bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load orders into the local database",
	Long: `Load the orders dataset. With --csv, rows are read from the given file;
otherwise the built-in sample dataset is loaded. Loading into a non-empty
database requires --force, which clears existing data first.

Examples:
  salesq load
  salesq load --csv orders.csv
  salesq load --csv orders.csv --force`,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadCSVPath, "csv", "", "Path to a CSV file to load")
	loadCmd.Flags().BoolVarP(&loadForce, "force", "f", false, "Replace existing data")

	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := logging.GetLogger()

	cfg, err := getConfig()
	if err != nil {
		return err
	}

	csvPath := loadCSVPath
	if csvPath == "" {
		csvPath = cfg.Dataset.CSVPath
	}

	// Resolve the rows before touching the database so a bad file leaves
	// existing data untouched.
	var (
		orders []storage.Order
		source string
	)

	if csvPath != "" {
		orders, err = dataset.LoadCSVFile(csvPath, &schema.Orders)
		if err != nil {
			return err
		}

		source = filepath.Base(csvPath)
	} else {
		orders = dataset.SeedOrders()
		source = "seed"
	}

	repo, err := initializeStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	count, err := repo.CountOrders(ctx)
	if err != nil {
		return errors.Wrap(err, errors.ErrTypeDatabase, "failed to count orders")
	}

	if count > 0 {
		if !loadForce {
			return errors.Newf(errors.ErrTypeValidation,
				"database already holds %d orders; use --force to replace them", count).
				WithSuggestion("Run 'salesq load --force' to clear and reload")
		}

		if err := repo.Clear(ctx); err != nil {
			return errors.Wrap(err, errors.ErrTypeDatabase, "failed to clear existing data")
		}

		logger.WithField("rows", count).Info("cleared existing orders")
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Loading %d orders from %s...", len(orders), source)
	s.Start()

	result, err := repo.InsertOrders(ctx, source, orders)

	s.Stop()

	if err != nil {
		return errors.Wrap(err, errors.ErrTypeDataset, "failed to load orders")
	}

	logger.WithFields(map[string]interface{}{
		"batch_id": result.BatchID,
		"source":   result.Source,
		"rows":     result.RowCount,
	}).Info("dataset loaded")

	fmt.Printf("Loaded %d orders from %s (batch %s).\n",
		result.RowCount, result.Source, result.BatchID)

	return nil
}
