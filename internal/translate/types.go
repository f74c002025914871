package translate

// Aggregate represents the top-level operation applied to matching rows.
type Aggregate string

const (
	AggregateSum   Aggregate = "SUM"
	AggregateAvg   Aggregate = "AVG"
	AggregateCount Aggregate = "COUNT"
	AggregateList  Aggregate = "LIST"
)

// Operator represents a filter predicate kind.
type Operator string

const (
	OpEquals        Operator = "EQUALS"
	OpInMonth       Operator = "IN_MONTH"
	OpBetweenMonths Operator = "BETWEEN_MONTHS"
)

// Filter is a single (column, operator, value) predicate. For EQUALS the
// value is the canonical-cased categorical value; for the month operators
// the month numbers (1-12) are used instead.
type Filter struct {
	Column     string
	Op         Operator
	Value      string
	Month      int
	MonthStart int
	MonthEnd   int
}

// Plan is the structured representation of one translated request. It is
// built fresh per call and discarded after rendering.
type Plan struct {
	Aggregate     Aggregate
	MetricColumn  string
	GroupByColumn string
	Filters       []Filter
	Limit         int // 0 means no limit
	OrderBy       string
	OrderDesc     bool
}

// Result is the output of a translation: an executable SQL statement and a
// human-readable explanation of what it does. Both are always non-empty.
type Result struct {
	SQL         string `json:"sql"`
	Explanation string `json:"explanation"`
}
