package cmd

import (
	"context"

	"github.com/google/uuid"

	"github.com/salesq/salesq/internal/storage"
)

// MockRepository implements storage.Repository for testing
type MockRepository struct {
	orders   []storage.Order
	stats    *storage.Stats
	results  *storage.ResultSet
	cleared  bool
	closed   bool
	execSQL  []string
	inserted [][]storage.Order
}

func (m *MockRepository) Initialize(_ context.Context) error {
	return nil
}

func (m *MockRepository) InsertOrders(
	_ context.Context,
	source string,
	orders []storage.Order,
) (*storage.LoadResult, error) {
	m.orders = append(m.orders, orders...)
	m.inserted = append(m.inserted, orders)

	return &storage.LoadResult{
		BatchID:  uuid.New().String(),
		Source:   source,
		RowCount: len(orders),
	}, nil
}

func (m *MockRepository) Execute(_ context.Context, query string) (*storage.ResultSet, error) {
	m.execSQL = append(m.execSQL, query)

	if m.results != nil {
		return m.results, nil
	}

	return &storage.ResultSet{}, nil
}

func (m *MockRepository) CountOrders(_ context.Context) (int, error) {
	return len(m.orders), nil
}

func (m *MockRepository) GetStats(_ context.Context) (*storage.Stats, error) {
	if m.stats != nil {
		return m.stats, nil
	}

	return &storage.Stats{TotalOrders: len(m.orders)}, nil
}

func (m *MockRepository) Clear(_ context.Context) error {
	m.cleared = true
	m.orders = nil

	return nil
}

func (m *MockRepository) Close() error {
	m.closed = true
	return nil
}
