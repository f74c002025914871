package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

// NewTestDB creates a temporary test database with auto-cleanup.
func NewTestDB(t *testing.T) *DuckDBRepository {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	repo, err := NewDuckDBRepository(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}

	if err := repo.Initialize(context.Background()); err != nil {
		repo.Close()
		t.Fatalf("failed to initialize test repository: %v", err)
	}

	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close test repository: %v", err)
		}
	})

	return repo
}

// TestOrders returns a small fixed set of orders spanning two calendar
// years, enough to exercise filters, grouping, and month ranges.
func TestOrders() []Order {
	date := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}

	return []Order{
		{ID: 1, Customer: "Acme Corp", Region: "North", Category: "Electronics", Amount: 1200.50, Quantity: 3, Date: date("2023-01-15")},
		{ID: 2, Customer: "Globex", Region: "South", Category: "Grocery", Amount: 89.99, Quantity: 12, Date: date("2023-02-20")},
		{ID: 3, Customer: "Initech", Region: "East", Category: "Clothing", Amount: 240.00, Quantity: 4, Date: date("2023-03-05")},
		{ID: 4, Customer: "Acme Corp", Region: "West", Category: "Furniture", Amount: 860.25, Quantity: 1, Date: date("2023-06-30")},
		{ID: 5, Customer: "Umbrella", Region: "South", Category: "Electronics", Amount: 2300.00, Quantity: 2, Date: date("2024-02-10")},
		{ID: 6, Customer: "Globex", Region: "North", Category: "Toys", Amount: 54.75, Quantity: 9, Date: date("2024-03-18")},
	}
}

// NewTestDBWithData creates a temporary test database pre-seeded with the
// fixed order set.
func NewTestDBWithData(t *testing.T) *DuckDBRepository {
	t.Helper()

	repo := NewTestDB(t)

	if _, err := repo.InsertOrders(context.Background(), "test", TestOrders()); err != nil {
		t.Fatalf("failed to seed test orders: %v", err)
	}

	return repo
}
