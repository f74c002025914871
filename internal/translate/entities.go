package translate

import (
	"strconv"
	"strings"

	"github.com/salesq/salesq/internal/schema"
)

// Entities is the set of literals and ranges recognized in a token
// sequence. Every field is optional; an empty Entities is a normal result
// for input with no recognizable signal.
type Entities struct {
	Filters       []Filter
	Limit         int    // top-N candidate, 0 when absent
	GroupBy       string // column named by an explicit "by <dimension>"
	BareDimension string // first dimension noun anywhere in the sentence
	Metric        string // first metric noun anywhere in the sentence
}

// positioned pairs a filter with the token index it was recognized at so
// filters can be emitted in sentence order.
type positioned struct {
	filter Filter
	pos    int
}

// RecognizeEntities scans normalized tokens for known categorical values,
// month names and ranges, a top-N numeral, and a group-by dimension.
func RecognizeEntities(tokens []string, reg *schema.Registry) Entities {
	var ents Entities

	var found []positioned

	for _, col := range reg.CategoricalColumns() {
		if f, pos, ok := matchCategorical(tokens, reg, col); ok {
			found = append(found, positioned{filter: f, pos: pos})
		}
	}

	if f, pos, ok := matchMonthRange(tokens, reg); ok {
		found = append(found, positioned{filter: f, pos: pos})
	} else if f, pos, ok := matchSingleMonth(tokens, reg); ok {
		found = append(found, positioned{filter: f, pos: pos})
	}

	// Emit filters in the order they appear in the sentence.
	for i := 0; i < len(found)-1; i++ {
		for j := i + 1; j < len(found); j++ {
			if found[j].pos < found[i].pos {
				found[i], found[j] = found[j], found[i]
			}
		}
	}

	for _, p := range found {
		ents.Filters = append(ents.Filters, p.filter)
	}

	ents.Limit = matchTopN(tokens)
	ents.GroupBy = matchGroupBy(tokens)

	for _, tok := range tokens {
		if ents.BareDimension == "" {
			if col, ok := lookupDimension(tok); ok {
				ents.BareDimension = col
			}
		}

		if ents.Metric == "" {
			if col, ok := lookupMetric(tok); ok {
				ents.Metric = col
			}
		}
	}

	return ents
}

// matchCategorical finds the first contiguous token run equal to a known
// value of the column, case-insensitively. Greedy left to right; the first
// match wins, so a sentence naming two regions yields only the first.
func matchCategorical(tokens []string, reg *schema.Registry, col schema.Column) (Filter, int, bool) {
	for i := range tokens {
		for _, value := range col.Values {
			words := strings.Fields(strings.ToLower(value))
			if len(words) == 0 || i+len(words) > len(tokens) {
				continue
			}

			run := strings.Join(tokens[i:i+len(words)], " ")
			if run != strings.Join(words, " ") {
				continue
			}

			canonical, ok := reg.CanonicalValue(col.Name, run)
			if !ok {
				continue
			}

			return Filter{Column: col.Name, Op: OpEquals, Value: canonical}, i, true
		}
	}

	return Filter{}, 0, false
}

// matchMonthRange recognizes "between <month> and <month>", inclusive of
// both endpoints.
func matchMonthRange(tokens []string, reg *schema.Registry) (Filter, int, bool) {
	for i := 0; i+3 < len(tokens); i++ {
		if tokens[i] != "between" || tokens[i+2] != "and" {
			continue
		}

		start, okStart := lookupMonth(tokens[i+1])
		end, okEnd := lookupMonth(tokens[i+3])

		if !okStart || !okEnd {
			continue
		}

		return Filter{
			Column:     reg.MonthColumn,
			Op:         OpBetweenMonths,
			MonthStart: start,
			MonthEnd:   end,
		}, i, true
	}

	return Filter{}, 0, false
}

// matchSingleMonth recognizes a standalone month name ("in february",
// "february sales").
func matchSingleMonth(tokens []string, reg *schema.Registry) (Filter, int, bool) {
	for i, tok := range tokens {
		if n, ok := lookupMonth(tok); ok {
			return Filter{Column: reg.MonthColumn, Op: OpInMonth, Month: n}, i, true
		}
	}

	return Filter{}, 0, false
}

// matchTopN recognizes a small integer immediately preceded by a top
// marker ("top 5"). Returns 0 when absent or unparseable.
func matchTopN(tokens []string) int {
	for i := 0; i+1 < len(tokens); i++ {
		if !topWords[tokens[i]] {
			continue
		}

		n, err := strconv.Atoi(tokens[i+1])
		if err != nil || n < 1 {
			continue
		}

		return n
	}

	return 0
}

// matchGroupBy recognizes a dimension noun immediately preceded by "by".
// "by revenue" names a metric, not a dimension, and is ignored here.
func matchGroupBy(tokens []string) string {
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i] != "by" {
			continue
		}

		if col, ok := lookupDimension(tokens[i+1]); ok {
			return col
		}
	}

	return ""
}
