package dataset

import (
	"time"

	"github.com/salesq/salesq/internal/storage"
)

// seedRow keeps the literal table below compact.
type seedRow struct {
	id       int
	customer string
	region   string
	category string
	amount   float64
	quantity int
	date     string
}

// seedRows spans two calendar years so month filters behave the same as
// on real multi-year data.
var seedRows = []seedRow{
	{1, "Acme Corp", "North", "Electronics", 1249.99, 2, "2023-01-08"},
	{2, "Globex", "South", "Grocery", 86.40, 14, "2023-01-19"},
	{3, "Initech", "East", "Clothing", 310.00, 5, "2023-02-02"},
	{4, "Umbrella", "West", "Furniture", 1480.00, 1, "2023-02-14"},
	{5, "Stark Industries", "North", "Toys", 96.25, 8, "2023-02-27"},
	{6, "Acme Corp", "South", "Electronics", 2150.75, 3, "2023-03-06"},
	{7, "Wayne Enterprises", "East", "Grocery", 134.10, 22, "2023-03-21"},
	{8, "Globex", "West", "Clothing", 205.50, 4, "2023-04-03"},
	{9, "Initech", "North", "Furniture", 920.00, 2, "2023-04-25"},
	{10, "Umbrella", "South", "Toys", 61.80, 6, "2023-05-11"},
	{11, "Stark Industries", "East", "Electronics", 3420.00, 4, "2023-06-07"},
	{12, "Wayne Enterprises", "West", "Grocery", 98.65, 17, "2023-07-14"},
	{13, "Acme Corp", "North", "Clothing", 410.20, 7, "2023-08-09"},
	{14, "Globex", "East", "Furniture", 1333.33, 1, "2023-09-28"},
	{15, "Initech", "South", "Toys", 149.90, 11, "2023-10-16"},
	{16, "Umbrella", "West", "Electronics", 980.45, 1, "2023-11-22"},
	{17, "Stark Industries", "North", "Grocery", 210.30, 26, "2023-12-05"},
	{18, "Wayne Enterprises", "South", "Clothing", 275.00, 3, "2023-12-18"},
	{19, "Acme Corp", "East", "Electronics", 1875.00, 2, "2024-01-12"},
	{20, "Globex", "North", "Furniture", 640.00, 1, "2024-01-29"},
	{21, "Initech", "West", "Grocery", 112.95, 19, "2024-02-08"},
	{22, "Umbrella", "East", "Toys", 88.50, 10, "2024-02-23"},
	{23, "Stark Industries", "South", "Electronics", 2990.10, 3, "2024-03-04"},
	{24, "Wayne Enterprises", "North", "Clothing", 356.75, 6, "2024-03-27"},
	{25, "Acme Corp", "West", "Grocery", 74.20, 12, "2024-04-15"},
	{26, "Globex", "South", "Toys", 129.99, 7, "2024-05-20"},
	{27, "Initech", "East", "Furniture", 1760.00, 2, "2024-06-11"},
	{28, "Umbrella", "North", "Electronics", 540.60, 1, "2024-07-02"},
	{29, "Stark Industries", "West", "Clothing", 188.40, 3, "2024-08-19"},
	{30, "Wayne Enterprises", "East", "Grocery", 243.55, 31, "2024-09-09"},
}

// SeedOrders returns the bundled sample dataset.
func SeedOrders() []storage.Order {
	orders := make([]storage.Order, 0, len(seedRows))

	for _, r := range seedRows {
		date, _ := time.Parse("2006-01-02", r.date)

		orders = append(orders, storage.Order{
			ID:       r.id,
			Customer: r.customer,
			Region:   r.region,
			Category: r.category,
			Amount:   r.amount,
			Quantity: r.quantity,
			Date:     date,
		})
	}

	return orders
}
