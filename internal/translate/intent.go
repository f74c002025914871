package translate

// Intent is the classified aggregate mode and target metric for one
// request.
type Intent struct {
	Aggregate Aggregate
	Metric    string
	TopN      bool
}

// ClassifyIntent decides the aggregate by keyword precedence. The rules
// are evaluated in a fixed order and the first match wins:
//
//  1. top-N numeral -> SUM with limit/ordering (handled by the planner)
//  2. count family ("count", "how many", "number of") -> COUNT
//  3. sum family ("total", "sum") -> SUM
//  4. average family ("average", "avg", "mean") -> AVG
//  5. otherwise -> LIST
//
// Metric-noun recognition is independent of the aggregate family and has
// already happened during entity recognition.
func ClassifyIntent(tokens []string, ents Entities) Intent {
	metric := ents.Metric

	if ents.Limit > 0 {
		return Intent{Aggregate: AggregateSum, Metric: defaultMetric(metric), TopN: true}
	}

	if hasCountKeyword(tokens) {
		return Intent{Aggregate: AggregateCount}
	}

	for _, tok := range tokens {
		if sumWords[tok] {
			return Intent{Aggregate: AggregateSum, Metric: defaultMetric(metric)}
		}
	}

	for _, tok := range tokens {
		if avgWords[tok] {
			return Intent{Aggregate: AggregateAvg, Metric: defaultMetric(metric)}
		}
	}

	return Intent{Aggregate: AggregateList}
}

// hasCountKeyword checks the single-word count keywords plus the
// two-token phrases "how many" and "number of".
func hasCountKeyword(tokens []string) bool {
	for i, tok := range tokens {
		if countWords[tok] {
			return true
		}

		if i+1 < len(tokens) {
			if tok == "how" && tokens[i+1] == "many" {
				return true
			}

			if tok == "number" && tokens[i+1] == "of" {
				return true
			}
		}
	}

	return false
}

func defaultMetric(metric string) string {
	if metric == "" {
		return "amount"
	}

	return metric
}
