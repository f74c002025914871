package storage

import (
	"fmt"
	"time"

	"github.com/salesq/salesq/internal/config"
)

// NewDuckDBRepositoryFromConfig creates a new DuckDB repository with settings from config
func NewDuckDBRepositoryFromConfig(cfg *config.DatabaseConfig) (*DuckDBRepository, error) {
	queryTimeout, err := time.ParseDuration(cfg.QueryTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid query_timeout: %w", err)
	}

	connLifetime, err := time.ParseDuration(cfg.ConnMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("invalid conn_max_lifetime: %w", err)
	}

	return NewDuckDBRepositoryWithOptions(
		cfg.Path,
		cfg.MaxConnections,
		cfg.MaxIdleConns,
		connLifetime,
		queryTimeout,
	)
}
