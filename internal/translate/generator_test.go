package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salesq/salesq/internal/schema"
)

func TestGenerate_SelectClause(t *testing.T) {
	tests := []struct {
		name string
		plan Plan
		sql  string
	}{
		{
			name: "list all",
			plan: Plan{Aggregate: AggregateList},
			sql:  "SELECT * FROM orders",
		},
		{
			name: "sum grouped",
			plan: Plan{Aggregate: AggregateSum, MetricColumn: "amount", GroupByColumn: "region"},
			sql:  "SELECT region, SUM(amount) AS total_amount FROM orders GROUP BY region",
		},
		{
			name: "average ungrouped",
			plan: Plan{Aggregate: AggregateAvg, MetricColumn: "amount"},
			sql:  "SELECT AVG(amount) AS average_amount FROM orders",
		},
		{
			name: "count grouped",
			plan: Plan{Aggregate: AggregateCount, GroupByColumn: "category"},
			sql:  "SELECT category, COUNT(*) AS order_count FROM orders GROUP BY category",
		},
		{
			name: "list with group-by selects distinct values",
			plan: Plan{Aggregate: AggregateList, GroupByColumn: "region"},
			sql:  "SELECT region FROM orders GROUP BY region",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Generate(tt.plan, &schema.Orders)
			assert.Equal(t, tt.sql, result.SQL)
			assert.NotEmpty(t, result.Explanation)
		})
	}
}

func TestGenerate_WhereClause(t *testing.T) {
	tests := []struct {
		name    string
		filters []Filter
		where   string
	}{
		{
			name:    "equality",
			filters: []Filter{{Column: "region", Op: OpEquals, Value: "South"}},
			where:   "WHERE region = 'South'",
		},
		{
			name: "multiple filters joined with AND in order",
			filters: []Filter{
				{Column: "category", Op: OpEquals, Value: "Grocery"},
				{Column: "region", Op: OpEquals, Value: "South"},
			},
			where: "WHERE category = 'Grocery' AND region = 'South'",
		},
		{
			name:    "month matches by calendar month across years",
			filters: []Filter{{Column: "order_month", Op: OpInMonth, Month: 2}},
			where:   "WHERE CAST(substr(order_month, 6, 2) AS INTEGER) = 2",
		},
		{
			name:    "month range inclusive",
			filters: []Filter{{Column: "order_month", Op: OpBetweenMonths, MonthStart: 1, MonthEnd: 3}},
			where:   "WHERE CAST(substr(order_month, 6, 2) AS INTEGER) BETWEEN 1 AND 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Plan{Aggregate: AggregateList, Filters: tt.filters}
			result := Generate(plan, &schema.Orders)
			assert.Equal(t, "SELECT * FROM orders "+tt.where, result.SQL)
		})
	}
}

func TestGenerate_EscapesQuotes(t *testing.T) {
	plan := Plan{
		Aggregate: AggregateList,
		Filters:   []Filter{{Column: "customer", Op: OpEquals, Value: "O'Brien's"}},
	}

	result := Generate(plan, &schema.Orders)

	assert.Contains(t, result.SQL, "customer = 'O''Brien''s'")
}

func TestGenerate_OrderAndLimit(t *testing.T) {
	plan := Plan{
		Aggregate:     AggregateSum,
		MetricColumn:  "amount",
		GroupByColumn: "customer",
		Limit:         5,
		OrderBy:       "revenue",
		OrderDesc:     true,
	}

	result := Generate(plan, &schema.Orders)

	assert.Equal(t,
		"SELECT customer, SUM(amount) AS revenue FROM orders GROUP BY customer ORDER BY revenue DESC LIMIT 5",
		result.SQL)
}

func TestGenerate_Explanations(t *testing.T) {
	tests := []struct {
		name        string
		plan        Plan
		explanation string
	}{
		{
			name:        "fallback",
			plan:        Plan{Aggregate: AggregateList},
			explanation: "Listing all orders; no specific condition was recognized.",
		},
		{
			name:        "sum grouped",
			plan:        Plan{Aggregate: AggregateSum, MetricColumn: "amount", GroupByColumn: "region"},
			explanation: "Summing amount grouped by region.",
		},
		{
			name: "list filtered",
			plan: Plan{Aggregate: AggregateList, Filters: []Filter{
				{Column: "category", Op: OpEquals, Value: "Grocery"},
				{Column: "region", Op: OpEquals, Value: "South"},
			}},
			explanation: "Listing orders filtered by category = Grocery and region = South.",
		},
		{
			name: "top-N",
			plan: Plan{
				Aggregate: AggregateSum, MetricColumn: "amount",
				GroupByColumn: "customer", Limit: 5, OrderBy: "revenue", OrderDesc: true,
			},
			explanation: "Showing the top 5 customers ranked by revenue.",
		},
		{
			name: "count with month range",
			plan: Plan{
				Aggregate: AggregateCount, GroupByColumn: "category",
				Filters: []Filter{{Column: "order_month", Op: OpBetweenMonths, MonthStart: 1, MonthEnd: 3}},
			},
			explanation: "Counting orders grouped by category filtered by month between January and March.",
		},
		{
			name: "average with month filter",
			plan: Plan{
				Aggregate: AggregateAvg, MetricColumn: "amount",
				Filters: []Filter{
					{Column: "category", Op: OpEquals, Value: "Electronics"},
					{Column: "order_month", Op: OpInMonth, Month: 2},
				},
			},
			explanation: "Averaging amount filtered by category = Electronics and month = February.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Generate(tt.plan, &schema.Orders)
			assert.Equal(t, tt.explanation, result.Explanation)
		})
	}
}
