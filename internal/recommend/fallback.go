package recommend

import (
	"chartscout/domain/chart"
	"chartscout/domain/column"
)

// fallbackCharts builds a minimal chart set when the main pipeline yields
// nothing: a distribution chart for the first usable column, and at most one
// pairing chart when a second usable column exists. Columns are scanned in
// input order; usable means some data and a bucket the generators recognize
// (categorical, low-cardinality text, or numerical). The pair becomes a
// scatter only when both columns are numerical; with exactly one numerical
// column it becomes a bar with the categorical-like column on x. Returns nil
// only when no column has any data at all.
func fallbackCharts(columns []column.Info) []chart.Recommendation {
	var usable []column.Info
	for _, col := range columns {
		if col.UniqueValues == 0 {
			continue
		}
		switch col.Type {
		case column.TypeCategorical, column.TypeNumerical:
			usable = append(usable, col)
		case column.TypeText:
			if col.UniqueValues <= column.TextLimitedMaxUnique {
				usable = append(usable, col)
			}
		}
		if len(usable) == 2 {
			break
		}
	}
	if len(usable) == 0 {
		return nil
	}

	out := []chart.Recommendation{{
		Title: "Distribution of " + usable[0].Name,
		Type:  chart.TypeBar,
		XAxis: usable[0].Name,
		YAxis: chart.CountAxis,
	}}
	if len(usable) < 2 {
		return out
	}

	first, second := usable[0], usable[1]
	switch {
	case first.Type == column.TypeNumerical && second.Type == column.TypeNumerical:
		out = append(out, chart.Recommendation{
			Title: second.Name + " vs " + first.Name,
			Type:  chart.TypeScatter,
			XAxis: first.Name,
			YAxis: second.Name,
		})
	case second.Type == column.TypeNumerical:
		out = append(out, chart.Recommendation{
			Title: second.Name + " by " + first.Name,
			Type:  chart.TypeBar,
			XAxis: first.Name,
			YAxis: second.Name,
		})
	case first.Type == column.TypeNumerical:
		out = append(out, chart.Recommendation{
			Title: first.Name + " by " + second.Name,
			Type:  chart.TypeBar,
			XAxis: second.Name,
			YAxis: first.Name,
		})
	}
	return out
}
