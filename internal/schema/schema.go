// Package schema describes the one queryable table: the orders dataset.
// The registry is a process-wide constant; nothing mutates it after init.
package schema

import "strings"

// ColumnType is the semantic type of a column, not its storage type.
type ColumnType string

const (
	TypeInteger     ColumnType = "integer"
	TypeDecimal     ColumnType = "decimal"
	TypeText        ColumnType = "text"
	TypeDate        ColumnType = "date"
	TypeCategorical ColumnType = "categorical"
)

// Column describes a single column of the orders table.
type Column struct {
	Name string
	Type ColumnType
	// Values holds the closed set of valid values, canonical casing,
	// for categorical columns only.
	Values []string
}

// Registry is the static description of the queryable table.
type Registry struct {
	Table   string
	Columns []Column

	// MetricColumns are the numeric columns an aggregate may target.
	MetricColumns []string

	// DateColumn and its derived companions used for date filtering.
	DateColumn  string
	MonthColumn string // YYYY-MM, derived from DateColumn
	YearColumn  string // derived from DateColumn
}

// Orders is the registry for the sales orders dataset. The column shape is
// fixed; changing the dataset means changing this table and the migrations
// in internal/storage together.
var Orders = Registry{
	Table: "orders",
	Columns: []Column{
		{Name: "id", Type: TypeInteger},
		{Name: "customer", Type: TypeText},
		{Name: "region", Type: TypeCategorical, Values: []string{"North", "South", "East", "West"}},
		{Name: "category", Type: TypeCategorical, Values: []string{"Electronics", "Grocery", "Clothing", "Furniture", "Toys"}},
		{Name: "amount", Type: TypeDecimal},
		{Name: "quantity", Type: TypeInteger},
		{Name: "order_date", Type: TypeDate},
		{Name: "order_month", Type: TypeText},
		{Name: "order_year", Type: TypeInteger},
	},
	MetricColumns: []string{"amount", "quantity"},
	DateColumn:    "order_date",
	MonthColumn:   "order_month",
	YearColumn:    "order_year",
}

// Column returns the column with the given name, or nil.
func (r *Registry) Column(name string) *Column {
	for i := range r.Columns {
		if r.Columns[i].Name == name {
			return &r.Columns[i]
		}
	}

	return nil
}

// CategoricalColumns returns the columns with a closed value set.
func (r *Registry) CategoricalColumns() []Column {
	var cols []Column

	for _, c := range r.Columns {
		if c.Type == TypeCategorical {
			cols = append(cols, c)
		}
	}

	return cols
}

// CanonicalValue resolves a case-insensitive candidate against a
// categorical column's closed value set, returning the canonical casing.
func (r *Registry) CanonicalValue(column, candidate string) (string, bool) {
	col := r.Column(column)
	if col == nil || col.Type != TypeCategorical {
		return "", false
	}

	for _, v := range col.Values {
		if strings.EqualFold(v, candidate) {
			return v, true
		}
	}

	return "", false
}

// IsMetric reports whether the named column can be the target of an
// aggregate expression.
func (r *Registry) IsMetric(name string) bool {
	for _, m := range r.MetricColumns {
		if m == name {
			return true
		}
	}

	return false
}
