package storage

import (
	"context"
	"time"
)

// Repository defines the interface for database operations
type Repository interface {
	Initialize(ctx context.Context) error
	InsertOrders(ctx context.Context, source string, orders []Order) (*LoadResult, error)
	Execute(ctx context.Context, query string) (*ResultSet, error)
	CountOrders(ctx context.Context) (int, error)
	GetStats(ctx context.Context) (*Stats, error)
	Clear(ctx context.Context) error
	Close() error
}

// Order represents one row of the orders dataset. The derived month and
// year columns are computed from Date at insert time.
type Order struct {
	ID       int       `json:"id"`
	Customer string    `json:"customer"`
	Region   string    `json:"region"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
	Quantity int       `json:"quantity"`
	Date     time.Time `json:"order_date"`
}

// ResultSet holds the columns and rows returned by an executed query.
// Values keep the driver's native types; formatting is the presentation
// layer's concern.
type ResultSet struct {
	Columns []string
	Rows    [][]interface{}
}

// LoadResult describes one completed dataset load.
type LoadResult struct {
	BatchID  string
	Source   string
	RowCount int
}

// Stats contains summary statistics about the stored dataset
type Stats struct {
	TotalOrders       int
	FirstOrderDate    time.Time
	LastOrderDate     time.Time
	TotalAmount       float64
	RegionBreakdown   map[string]int
	CategoryBreakdown map[string]int
	DatabaseSizeMB    float64
	LastLoadTime      time.Time
}
