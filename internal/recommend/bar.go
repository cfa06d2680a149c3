package recommend

import (
	"chartscout/domain/chart"
	"chartscout/domain/column"
)

// barGenerator enumerates bar chart candidates: one comparison chart per
// (grouping column, numerical column) pair, then one distribution chart per
// grouping column. Grouping columns are the categorical bucket plus the
// low-cardinality text bucket.
type barGenerator struct{}

func (barGenerator) generate(b column.Buckets) []chart.Recommendation {
	groups := b.CategoricalLike()
	var out []chart.Recommendation

	for _, group := range groups {
		for _, num := range b.Numerical {
			out = append(out, chart.Recommendation{
				Title: num.Name + " by " + group.Name,
				Type:  chart.TypeBar,
				XAxis: group.Name,
				YAxis: num.Name,
			})
		}
	}

	for _, group := range groups {
		out = append(out, chart.Recommendation{
			Title: "Distribution of " + group.Name,
			Type:  chart.TypeBar,
			XAxis: group.Name,
			YAxis: chart.CountAxis,
		})
	}

	return out
}
