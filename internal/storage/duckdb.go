package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/marcboeker/go-duckdb"
)

// DuckDBRepository implements the Repository interface using DuckDB
type DuckDBRepository struct {
	db           *sql.DB
	path         string
	queryTimeout time.Duration
}

const defaultQueryTimeout = 30 * time.Second

// NewDuckDBRepository creates a new DuckDB repository instance with the
// default connection settings.
func NewDuckDBRepository(dbPath string) (*DuckDBRepository, error) {
	return NewDuckDBRepositoryWithOptions(dbPath, 4, 2, 30*time.Minute, defaultQueryTimeout)
}

// NewDuckDBRepositoryWithOptions creates a repository with explicit
// connection pool settings.
func NewDuckDBRepositoryWithOptions(
	dbPath string,
	maxConns, maxIdle int,
	connLifetime, queryTimeout time.Duration,
) (*DuckDBRepository, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(connLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DuckDBRepository{
		db:           db,
		path:         dbPath,
		queryTimeout: queryTimeout,
	}, nil
}

// Initialize creates the database schema using migrations
func (r *DuckDBRepository) Initialize(ctx context.Context) error {
	return NewMigrationManager(r.db).MigrateUp(ctx)
}

// InsertOrders stores a batch of orders, computing the derived month and
// year columns, and records the load in load_history.
func (r *DuckDBRepository) InsertOrders(
	ctx context.Context,
	source string,
	orders []Order,
) (*LoadResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	insertSQL := `
	INSERT INTO orders (
		id, customer, region, category, amount, quantity,
		order_date, order_month, order_year
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}

	defer stmt.Close()

	for _, o := range orders {
		_, err = stmt.ExecContext(ctx,
			o.ID,
			o.Customer,
			o.Region,
			o.Category,
			o.Amount,
			o.Quantity,
			o.Date.Format("2006-01-02"),
			o.Date.Format("2006-01"),
			o.Date.Year(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order %d: %w", o.ID, err)
		}
	}

	result := &LoadResult{
		BatchID:  uuid.New().String(),
		Source:   source,
		RowCount: len(orders),
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO load_history (id, source, row_count) VALUES (?, ?, ?)",
		result.BatchID, result.Source, result.RowCount)
	if err != nil {
		return nil, fmt.Errorf("failed to record load: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit load: %w", err)
	}

	return result, nil
}

// Execute runs an arbitrary SELECT statement and returns all columns and
// rows. The statement comes from the translator, which only ever emits
// well-formed SELECTs; execution errors are surfaced to the caller.
func (r *DuckDBRepository) Execute(ctx context.Context, query string) (*ResultSet, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	result := &ResultSet{Columns: columns}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))

		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		for i, v := range values {
			values[i] = normalizeValue(v)
		}

		result.Rows = append(result.Rows, values)
	}

	return result, rows.Err()
}

// normalizeValue maps driver-specific numeric types onto plain Go numbers
// so consumers of a ResultSet never see them. DECIMAL aggregates scan as
// duckdb.Decimal and integer SUMs as *big.Int (DuckDB widens them to
// HUGEINT).
func normalizeValue(v interface{}) interface{} {
	switch n := v.(type) {
	case duckdb.Decimal:
		return n.Float64()
	case *big.Int:
		if n.IsInt64() {
			return n.Int64()
		}

		f, _ := new(big.Float).SetInt(n).Float64()

		return f
	default:
		return v
	}
}

// CountOrders returns the number of stored orders
func (r *DuckDBRepository) CountOrders(ctx context.Context) (int, error) {
	var count int

	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return count, nil
}

// GetStats returns summary statistics about the stored dataset
func (r *DuckDBRepository) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		RegionBreakdown:   make(map[string]int),
		CategoryBreakdown: make(map[string]int),
	}

	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders").Scan(&stats.TotalOrders)
	if err != nil {
		return nil, fmt.Errorf("failed to get order count: %w", err)
	}

	if stats.TotalOrders > 0 {
		var first, last time.Time

		// DECIMAL aggregates come back as duckdb.Decimal; cast so the
		// result scans into a float64.
		err = r.db.QueryRowContext(ctx,
			"SELECT MIN(order_date), MAX(order_date), CAST(SUM(amount) AS DOUBLE) FROM orders").
			Scan(&first, &last, &stats.TotalAmount)
		if err != nil {
			return nil, fmt.Errorf("failed to get date span: %w", err)
		}

		stats.FirstOrderDate = first
		stats.LastOrderDate = last
	}

	var lastLoad *time.Time

	err = r.db.QueryRowContext(ctx, "SELECT MAX(loaded_at) FROM load_history").Scan(&lastLoad)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get last load time: %w", err)
	}

	if lastLoad != nil {
		stats.LastLoadTime = *lastLoad
	}

	// Approximate on-disk size
	if info, err := os.Stat(r.path); err == nil {
		stats.DatabaseSizeMB = float64(info.Size()) / (1024 * 1024)
	}

	for column, breakdown := range map[string]map[string]int{
		"region":   stats.RegionBreakdown,
		"category": stats.CategoryBreakdown,
	} {
		rows, err := r.db.QueryContext(ctx,
			fmt.Sprintf("SELECT %s, COUNT(*) FROM orders GROUP BY %s", column, column))
		if err != nil {
			return nil, fmt.Errorf("failed to get %s breakdown: %w", column, err)
		}

		for rows.Next() {
			var value string

			var count int

			if err := rows.Scan(&value, &count); err != nil {
				rows.Close()
				return nil, err
			}

			breakdown[value] = count
		}

		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}

		rows.Close()
	}

	return stats, nil
}

// Clear removes all data from the database
func (r *DuckDBRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM orders")
	if err != nil {
		return fmt.Errorf("failed to clear orders: %w", err)
	}

	_, err = r.db.ExecContext(ctx, "DELETE FROM load_history")
	if err != nil {
		return fmt.Errorf("failed to clear load history: %w", err)
	}

	return nil
}

// Close closes the database connection
func (r *DuckDBRepository) Close() error {
	return r.db.Close()
}
