package cmd

import (
	"context"

	"github.com/salesq/salesq/internal/config"
	"github.com/salesq/salesq/internal/dataset"
	"github.com/salesq/salesq/internal/errors"
	"github.com/salesq/salesq/internal/logging"
	"github.com/salesq/salesq/internal/storage"
)

// initializeStorage creates a repository from configuration and applies
// pending migrations.
func initializeStorage(ctx context.Context, cfg *config.Config) (storage.Repository, error) {
	repo, err := storage.NewDuckDBRepositoryFromConfig(&cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeDatabase, "failed to open database")
	}

	if err := repo.Initialize(ctx); err != nil {
		repo.Close()
		return nil, errors.Wrap(err, errors.ErrTypeDatabase, "failed to initialize database schema")
	}

	return repo, nil
}

// ensureData seeds the built-in dataset when the orders table is empty and
// seeding is enabled. Returns the number of rows present afterwards.
func ensureData(ctx context.Context, cfg *config.Config, repo storage.Repository) (int, error) {
	count, err := repo.CountOrders(ctx)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrTypeDatabase, "failed to count orders")
	}

	if count > 0 || !cfg.Dataset.SeedOnEmpty {
		return count, nil
	}

	orders := dataset.SeedOrders()

	result, err := repo.InsertOrders(ctx, "seed", orders)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrTypeDataset, "failed to seed dataset")
	}

	logging.GetLogger().WithField("rows", result.RowCount).Info("seeded built-in dataset")

	return result.RowCount, nil
}
