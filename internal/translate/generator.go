package translate

import (
	"fmt"
	"strings"

	"github.com/salesq/salesq/internal/schema"
)

// Generate renders a query plan into a SQL statement and a parallel
// explanation sentence. Rendering is fully determined by the plan and the
// registry; it performs no recognition of its own.
func Generate(plan Plan, reg *schema.Registry) Result {
	return Result{
		SQL:         renderSQL(plan, reg),
		Explanation: renderExplanation(plan),
	}
}

// aggregateAlias names the aggregate expression in the SELECT clause. The
// alias doubles as the ORDER BY target on the top-N path and must read as
// a numeric column so downstream charting picks it up.
func aggregateAlias(plan Plan) string {
	switch plan.Aggregate {
	case AggregateCount:
		return "order_count"
	case AggregateAvg:
		return "average_" + plan.MetricColumn
	case AggregateSum:
		if plan.Limit > 0 && plan.MetricColumn == "amount" {
			return "revenue"
		}

		return "total_" + plan.MetricColumn
	default:
		return ""
	}
}

func renderSQL(plan Plan, reg *schema.Registry) string {
	var b strings.Builder

	b.WriteString("SELECT ")

	switch {
	case plan.Aggregate == AggregateList && plan.GroupByColumn != "":
		// "list ... by region" means the distinct grouping values.
		b.WriteString(plan.GroupByColumn)
	case plan.Aggregate == AggregateList:
		b.WriteString("*")
	default:
		if plan.GroupByColumn != "" {
			b.WriteString(plan.GroupByColumn)
			b.WriteString(", ")
		}

		b.WriteString(aggregateExpr(plan))
	}

	b.WriteString(" FROM ")
	b.WriteString(reg.Table)

	if len(plan.Filters) > 0 {
		b.WriteString(" WHERE ")

		for i, f := range plan.Filters {
			if i > 0 {
				b.WriteString(" AND ")
			}

			b.WriteString(renderFilter(f, reg))
		}
	}

	if plan.GroupByColumn != "" {
		b.WriteString(" GROUP BY ")
		b.WriteString(plan.GroupByColumn)
	}

	if plan.Limit > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(plan.OrderBy)

		if plan.OrderDesc {
			b.WriteString(" DESC")
		}

		fmt.Fprintf(&b, " LIMIT %d", plan.Limit)
	}

	return b.String()
}

func aggregateExpr(plan Plan) string {
	switch plan.Aggregate {
	case AggregateCount:
		return "COUNT(*) AS " + aggregateAlias(plan)
	case AggregateAvg:
		return fmt.Sprintf("AVG(%s) AS %s", plan.MetricColumn, aggregateAlias(plan))
	default:
		return fmt.Sprintf("SUM(%s) AS %s", plan.MetricColumn, aggregateAlias(plan))
	}
}

// renderFilter renders one predicate. Month filters match by calendar
// month independent of year, so "in february" covers February of every
// year present in the dataset.
func renderFilter(f Filter, reg *schema.Registry) string {
	switch f.Op {
	case OpInMonth:
		return fmt.Sprintf("%s = %d", monthNumberExpr(reg), f.Month)
	case OpBetweenMonths:
		return fmt.Sprintf("%s BETWEEN %d AND %d", monthNumberExpr(reg), f.MonthStart, f.MonthEnd)
	default:
		return fmt.Sprintf("%s = '%s'", f.Column, escapeLiteral(f.Value))
	}
}

// monthNumberExpr extracts the month number from the derived YYYY-MM
// column.
func monthNumberExpr(reg *schema.Registry) string {
	return fmt.Sprintf("CAST(substr(%s, 6, 2) AS INTEGER)", reg.MonthColumn)
}

// escapeLiteral doubles embedded quotes before interpolation. Entity text
// comes from a closed value set, but the generator does not trust it to be
// quote-free.
func escapeLiteral(v string) string {
	return strings.ReplaceAll(v, "'", "''")
}

// dimensionPlurals gives the noun used in top-N explanations.
var dimensionPlurals = map[string]string{
	"customer":    "customers",
	"region":      "regions",
	"category":    "categories",
	"order_month": "months",
}

// dimensionLabels gives the noun used in "grouped by" explanations.
var dimensionLabels = map[string]string{
	"order_month": "month",
}

func renderExplanation(plan Plan) string {
	if plan.Limit > 0 {
		subject := "orders"
		if p, ok := dimensionPlurals[plan.GroupByColumn]; ok {
			subject = p
		}

		s := fmt.Sprintf("Showing the top %d %s ranked by %s", plan.Limit, subject, plan.OrderBy)

		return s + filterSuffix(plan.Filters) + "."
	}

	var s string

	switch plan.Aggregate {
	case AggregateCount:
		s = "Counting orders"
	case AggregateSum:
		s = "Summing " + plan.MetricColumn
	case AggregateAvg:
		s = "Averaging " + plan.MetricColumn
	default:
		if len(plan.Filters) == 0 && plan.GroupByColumn == "" {
			return "Listing all orders; no specific condition was recognized."
		}

		s = "Listing orders"
	}

	if plan.GroupByColumn != "" {
		label := plan.GroupByColumn
		if l, ok := dimensionLabels[label]; ok {
			label = l
		}

		s += " grouped by " + label
	}

	return s + filterSuffix(plan.Filters) + "."
}

func filterSuffix(filters []Filter) string {
	if len(filters) == 0 {
		return ""
	}

	parts := make([]string, 0, len(filters))

	for _, f := range filters {
		switch f.Op {
		case OpInMonth:
			parts = append(parts, "month = "+monthLabel(f.Month))
		case OpBetweenMonths:
			parts = append(parts, fmt.Sprintf("month between %s and %s",
				monthLabel(f.MonthStart), monthLabel(f.MonthEnd)))
		default:
			parts = append(parts, fmt.Sprintf("%s = %s", f.Column, f.Value))
		}
	}

	return " filtered by " + strings.Join(parts, " and ")
}
