package translate

// The lexicon maps surface synonyms to canonical concepts. All tables are
// package constants in effect: initialized once, never mutated.

// metricNouns maps metric synonyms to the metric column they select.
var metricNouns = map[string]string{
	"sales":      "amount",
	"revenue":    "amount",
	"amount":     "amount",
	"amounts":    "amount",
	"spend":      "amount",
	"spending":   "amount",
	"quantity":   "quantity",
	"quantities": "quantity",
	"units":      "quantity",
	"unit":       "quantity",
	"items":      "quantity",
}

// dimensionNouns maps grouping-dimension synonyms to column names.
var dimensionNouns = map[string]string{
	"region":     "region",
	"regions":    "region",
	"area":       "region",
	"areas":      "region",
	"category":   "category",
	"categories": "category",
	"customer":   "customer",
	"customers":  "customer",
	"client":     "customer",
	"clients":    "customer",
	"month":      "order_month",
	"months":     "order_month",
}

// monthNumbers maps month names and their common abbreviations to 1-12.
var monthNumbers = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may": 5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

// monthLabels gives the display name for a month number in explanations.
var monthLabels = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Aggregate keyword families, checked in precedence order by the intent
// classifier. "number of" and "how many" are two-token phrases and are
// matched on adjacent tokens rather than listed here.
var (
	countWords = map[string]bool{"count": true}
	sumWords   = map[string]bool{"total": true, "totals": true, "sum": true}
	avgWords   = map[string]bool{"average": true, "avg": true, "mean": true}
	topWords   = map[string]bool{"top": true, "best": true}
)

// lookupMetric returns the metric column a token selects, if any.
func lookupMetric(token string) (string, bool) {
	col, ok := metricNouns[token]
	return col, ok
}

// lookupDimension returns the column a dimension noun maps to, if any.
func lookupDimension(token string) (string, bool) {
	col, ok := dimensionNouns[token]
	return col, ok
}

// lookupMonth returns the month number (1-12) for a month-name token.
func lookupMonth(token string) (int, bool) {
	n, ok := monthNumbers[token]
	return n, ok
}

// monthLabel returns the display name for a month number.
func monthLabel(n int) string {
	if n < 1 || n > 12 {
		return ""
	}

	return monthLabels[n-1]
}
