package recommend

import (
	"strings"

	"chartscout/domain/chart"
	"chartscout/domain/column"
)

// sequentialNameHints mark a numerical column as an index/ordering key rather
// than a measured quantity.
var sequentialNameHints = []string{"index", "id", "sequence", "order", "rank", "position"}

// isSequentialName reports whether a column name suggests a sequential axis.
func isSequentialName(name string) bool {
	lower := strings.ToLower(name)
	for _, hint := range sequentialNameHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

func sequentialColumns(numerical []column.Info) []column.Info {
	var out []column.Info
	for _, col := range numerical {
		if isSequentialName(col.Name) {
			out = append(out, col)
		}
	}
	return out
}

// lineGenerator enumerates line chart candidates. The four rules are
// independently applicable except the implicit-index fallback, which only
// fires when no datetime and no sequential column exists:
//
//  1. every (datetime, numerical) pair
//  2. every sequential column against every other numerical column
//  3. implicit index: first numerical column as x, remaining numericals as y
//  4. cumulative series over the first datetime column
type lineGenerator struct{}

func (lineGenerator) generate(b column.Buckets) []chart.Recommendation {
	var out []chart.Recommendation
	seq := sequentialColumns(b.Numerical)

	for _, date := range b.Datetime {
		for _, num := range b.Numerical {
			out = append(out, chart.Recommendation{
				Title: num.Name + " over " + date.Name,
				Type:  chart.TypeLine,
				XAxis: date.Name,
				YAxis: num.Name,
			})
		}
	}

	for _, s := range seq {
		for _, num := range b.Numerical {
			if num.Name == s.Name {
				continue
			}
			out = append(out, chart.Recommendation{
				Title: num.Name + " trend over " + s.Name,
				Type:  chart.TypeLine,
				XAxis: s.Name,
				YAxis: num.Name,
			})
		}
	}

	if len(b.Datetime) == 0 && len(seq) == 0 && len(b.Numerical) >= 2 {
		index := b.Numerical[0]
		for _, num := range b.Numerical[1:] {
			out = append(out, chart.Recommendation{
				Title: num.Name + " trend over " + index.Name,
				Type:  chart.TypeLine,
				XAxis: index.Name,
				YAxis: num.Name,
			})
		}
	}

	if len(b.Datetime) > 0 {
		date := b.Datetime[0]
		for _, num := range b.Numerical {
			out = append(out, chart.Recommendation{
				Title: chart.CumulativePrefix + num.Name + " over " + date.Name,
				Type:  chart.TypeLine,
				XAxis: date.Name,
				YAxis: chart.CumulativePrefix + num.Name,
			})
		}
	}

	return out
}
