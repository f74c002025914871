package cmd

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesq/salesq/internal/storage"
	"github.com/salesq/salesq/internal/testutil"
)

func TestRunStats(t *testing.T) {
	stats := &storage.Stats{
		TotalOrders:    30,
		TotalAmount:    12345.67,
		DatabaseSizeMB: 1.25,
		FirstOrderDate: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC),
		LastOrderDate:  time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		LastLoadTime:   time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC),
		RegionBreakdown: map[string]int{
			"North": 10, "South": 8, "East": 7, "West": 5,
		},
		CategoryBreakdown: map[string]int{
			"Electronics": 12, "Grocery": 18,
		},
	}

	output := captureStdout(t, func() {
		err := runStats(context.Background(), &MockRepository{stats: stats})
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Total Orders: 30")
	assert.Contains(t, output, "Total Amount: 12345.67")
	assert.Contains(t, output, "Order Dates: 2023-01-05 to 2024-03-20")
	assert.Contains(t, output, "Last Load: 2024-04-01 09:30:00")
	assert.Contains(t, output, "Region Breakdown:")
	assert.Contains(t, output, "Category Breakdown:")

	// Breakdowns are sorted by count descending.
	assert.Less(t, strings.Index(output, "North"), strings.Index(output, "South"))
	assert.Less(t, strings.Index(output, "Grocery"), strings.Index(output, "Electronics"))
}

func TestRunStats_DefaultsToOrderCount(t *testing.T) {
	repo := &MockRepository{orders: testutil.NewTestOrders(5)}

	output := captureStdout(t, func() {
		err := runStats(context.Background(), repo)
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Total Orders: 5")
}

func TestRunStats_EmptyDatabase(t *testing.T) {
	output := captureStdout(t, func() {
		err := runStats(context.Background(), &MockRepository{stats: &storage.Stats{}})
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Total Orders: 0")
	assert.Contains(t, output, "Last Load: Never")
	assert.NotContains(t, output, "Region Breakdown:")
}
