// Package testutil provides common constants and utilities for tests
package testutil

import "time"

const (
	// TestTimeout is the default timeout for test operations
	TestTimeout = 30 * time.Second

	// ShortTestTimeout is a shorter timeout for quick operations
	ShortTestTimeout = 5 * time.Second

	// TestOrderCount is a common number of test orders to create
	TestOrderCount = 10

	// TestLargeOrderCount is a large number of test orders for bulk-load tests
	TestLargeOrderCount = 100
)

// Common test values
const (
	// TestOrderID is a default order ID
	TestOrderID = 1

	// TestCustomer is a default customer name
	TestCustomer = "Acme Corp"

	// TestRegion is a default region
	TestRegion = "North"

	// TestCategory is a default product category
	TestCategory = "Electronics"

	// TestAmount is a default order amount
	TestAmount = 199.99
)
