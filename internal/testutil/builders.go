package testutil

import (
	"time"

	"github.com/salesq/salesq/internal/storage"
)

// OrderOption is a functional option for configuring test orders
type OrderOption func(*storage.Order)

// WithID sets the order ID
func WithID(id int) OrderOption {
	return func(o *storage.Order) {
		o.ID = id
	}
}

// WithCustomer sets the customer name
func WithCustomer(name string) OrderOption {
	return func(o *storage.Order) {
		o.Customer = name
	}
}

// WithRegion sets the region
func WithRegion(region string) OrderOption {
	return func(o *storage.Order) {
		o.Region = region
	}
}

// WithCategory sets the product category
func WithCategory(category string) OrderOption {
	return func(o *storage.Order) {
		o.Category = category
	}
}

// WithAmount sets the order amount
func WithAmount(amount float64) OrderOption {
	return func(o *storage.Order) {
		o.Amount = amount
	}
}

// WithQuantity sets the unit quantity
func WithQuantity(quantity int) OrderOption {
	return func(o *storage.Order) {
		o.Quantity = quantity
	}
}

// WithDate sets the order date
func WithDate(date time.Time) OrderOption {
	return func(o *storage.Order) {
		o.Date = date
	}
}

// NewTestOrder creates a test order with sensible defaults and applies any
// provided options.
func NewTestOrder(opts ...OrderOption) storage.Order {
	order := storage.Order{
		ID:       TestOrderID,
		Customer: TestCustomer,
		Region:   TestRegion,
		Category: TestCategory,
		Amount:   TestAmount,
		Quantity: 2,
		Date:     time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC),
	}

	for _, opt := range opts {
		opt(&order)
	}

	return order
}

// NewTestOrders creates n distinct test orders, cycling through the regions
// and categories so grouped queries have something to group.
func NewTestOrders(n int) []storage.Order {
	regions := []string{"North", "South", "East", "West"}
	categories := []string{"Electronics", "Grocery", "Clothing", "Furniture", "Toys"}

	orders := make([]storage.Order, 0, n)

	for i := 0; i < n; i++ {
		orders = append(orders, NewTestOrder(
			WithID(i+1),
			WithRegion(regions[i%len(regions)]),
			WithCategory(categories[i%len(categories)]),
			WithAmount(float64(50+i*10)),
			WithDate(time.Date(2024, time.Month(1+i%12), 5, 0, 0, 0, 0, time.UTC)),
		))
	}

	return orders
}
