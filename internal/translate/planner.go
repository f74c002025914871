package translate

// maxLimit caps top-N limits to keep generated statements sane.
const maxLimit = 1000

// BuildPlan merges the classified intent and recognized entities into a
// single query plan.
func BuildPlan(intent Intent, ents Entities) Plan {
	plan := Plan{
		Aggregate:    intent.Aggregate,
		MetricColumn: intent.Metric,
		Filters:      ents.Filters,
	}

	plan.GroupByColumn = ents.GroupBy

	if intent.TopN {
		// Ranking requires a grouping dimension: a bare dimension noun
		// ("top 5 customers ...") stands in for an explicit "by".
		if plan.GroupByColumn == "" {
			plan.GroupByColumn = ents.BareDimension
		}

		plan.Limit = ents.Limit
		if plan.Limit > maxLimit {
			plan.Limit = maxLimit
		}

		plan.OrderBy = aggregateAlias(plan)
		plan.OrderDesc = true
	}

	// Grouping by a column already pinned to a single value is
	// meaningless; drop the group-by.
	for _, f := range plan.Filters {
		if f.Op == OpEquals && f.Column == plan.GroupByColumn {
			plan.GroupByColumn = ""

			if plan.Limit > 0 {
				plan.OrderBy = aggregateAlias(plan)
			}

			break
		}
	}

	if plan.Aggregate == AggregateCount || plan.Aggregate == AggregateList {
		plan.MetricColumn = ""
	} else if plan.MetricColumn == "" {
		plan.MetricColumn = "amount"
	}

	return plan
}
