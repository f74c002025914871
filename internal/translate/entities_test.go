package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesq/salesq/internal/schema"
)

func recognize(t *testing.T, input string) Entities {
	t.Helper()
	return RecognizeEntities(Normalize(input), &schema.Orders)
}

func TestRecognizeEntities_Categorical(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		filters []Filter
	}{
		{
			name:  "single region canonical casing",
			input: "orders in the SOUTH region",
			filters: []Filter{
				{Column: "region", Op: OpEquals, Value: "South"},
			},
		},
		{
			name:  "category and region in sentence order",
			input: "list grocery orders in the south region",
			filters: []Filter{
				{Column: "category", Op: OpEquals, Value: "Grocery"},
				{Column: "region", Op: OpEquals, Value: "South"},
			},
		},
		{
			name:  "first region wins when two are named",
			input: "compare north and south sales",
			filters: []Filter{
				{Column: "region", Op: OpEquals, Value: "North"},
			},
		},
		{
			name:    "no categorical values",
			input:   "total sales by month",
			filters: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ents := recognize(t, tt.input)
			assert.Equal(t, tt.filters, ents.Filters)
		})
	}
}

func TestRecognizeEntities_Months(t *testing.T) {
	t.Run("single month", func(t *testing.T) {
		ents := recognize(t, "average amount in february")

		require.Len(t, ents.Filters, 1)
		assert.Equal(t, OpInMonth, ents.Filters[0].Op)
		assert.Equal(t, "order_month", ents.Filters[0].Column)
		assert.Equal(t, 2, ents.Filters[0].Month)
	})

	t.Run("month abbreviation", func(t *testing.T) {
		ents := recognize(t, "orders in sep")

		require.Len(t, ents.Filters, 1)
		assert.Equal(t, 9, ents.Filters[0].Month)
	})

	t.Run("between range inclusive endpoints", func(t *testing.T) {
		ents := recognize(t, "orders between january and march")

		require.Len(t, ents.Filters, 1)
		assert.Equal(t, OpBetweenMonths, ents.Filters[0].Op)
		assert.Equal(t, 1, ents.Filters[0].MonthStart)
		assert.Equal(t, 3, ents.Filters[0].MonthEnd)
	})

	t.Run("range wins over single month", func(t *testing.T) {
		ents := recognize(t, "between june and august")

		require.Len(t, ents.Filters, 1)
		assert.Equal(t, OpBetweenMonths, ents.Filters[0].Op)
	})

	t.Run("between without months is not a range", func(t *testing.T) {
		ents := recognize(t, "between north and south")

		// Only the first region match remains.
		require.Len(t, ents.Filters, 1)
		assert.Equal(t, OpEquals, ents.Filters[0].Op)
	})
}

func TestRecognizeEntities_TopN(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
	}{
		{name: "top five", input: "top 5 customers", limit: 5},
		{name: "best three", input: "best 3 regions", limit: 3},
		{name: "top without numeral", input: "top customers", limit: 0},
		{name: "numeral without top", input: "5 customers", limit: 0},
		{name: "zero ignored", input: "top 0 customers", limit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ents := recognize(t, tt.input)
			assert.Equal(t, tt.limit, ents.Limit)
		})
	}
}

func TestRecognizeEntities_GroupBy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		groupBy string
		bare    string
	}{
		{name: "by region", input: "total sales by region", groupBy: "region", bare: "region"},
		{name: "by area synonym", input: "count by area", groupBy: "region", bare: "region"},
		{name: "by month", input: "sales by month", groupBy: "order_month", bare: "order_month"},
		{name: "by metric is not a group", input: "top 5 customers by revenue", groupBy: "", bare: "customer"},
		{name: "bare dimension only", input: "grocery customers", groupBy: "", bare: "customer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ents := recognize(t, tt.input)
			assert.Equal(t, tt.groupBy, ents.GroupBy)
			assert.Equal(t, tt.bare, ents.BareDimension)
		})
	}
}

func TestRecognizeEntities_Metric(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		metric string
	}{
		{name: "revenue maps to amount", input: "total revenue", metric: "amount"},
		{name: "sales maps to amount", input: "sales by region", metric: "amount"},
		{name: "units maps to quantity", input: "average units", metric: "quantity"},
		{name: "no metric", input: "orders by region", metric: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ents := recognize(t, tt.input)
			assert.Equal(t, tt.metric, ents.Metric)
		})
	}
}

func TestRecognizeEntities_EmptyInput(t *testing.T) {
	ents := RecognizeEntities(nil, &schema.Orders)

	assert.Empty(t, ents.Filters)
	assert.Zero(t, ents.Limit)
	assert.Empty(t, ents.GroupBy)
	assert.Empty(t, ents.BareDimension)
	assert.Empty(t, ents.Metric)
}
