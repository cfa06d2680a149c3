package recommend

import (
	"sort"
	"strings"

	"chartscout/domain/chart"
	"chartscout/domain/column"
)

// diversityFilter decides which candidate charts survive: exact duplicates
// (by canonical key) are always rejected, and within one analytical aspect a
// further chart is only kept when it exercises a column combination not yet
// shown for that aspect. Enhanced variants bypass the aspect rule, since the
// extra title information is the point.
type diversityFilter struct {
	types map[string]column.Type
}

func newDiversityFilter(columns []column.Info) *diversityFilter {
	return &diversityFilter{types: column.TypesByName(columns)}
}

// accept applies the acceptance rule against the run context and records the
// chart when it survives.
func (f *diversityFilter) accept(gc *generationContext, rec chart.Recommendation) bool {
	if _, dup := gc.usedKeys[chart.CanonicalKey(rec)]; dup {
		return false
	}

	aspect := f.aspectOf(rec)
	names, types := f.axisColumns(rec)
	combo := strings.Join(names, "+")

	if !chart.IsEnhanced(rec.Title) && gc.aspectSeen[aspect] > 0 {
		if _, seen := gc.aspectCombos[aspect][combo]; seen {
			return false
		}
	}

	gc.record(chartRecord{
		rec:      rec,
		aspect:   aspect,
		columns:  combo,
		colTypes: strings.Join(types, "+"),
	})
	return true
}

// aspectOf derives the analytical aspect from chart type and axis column
// types.
func (f *diversityFilter) aspectOf(rec chart.Recommendation) chart.Aspect {
	switch rec.Type {
	case chart.TypeBar:
		if rec.YAxis == chart.CountAxis {
			return chart.AspectDistribution
		}
		xt := f.types[f.resolveAxis(rec.XAxis)]
		yt := f.types[f.resolveAxis(rec.YAxis)]
		if (xt == column.TypeCategorical || xt == column.TypeText) && yt == column.TypeNumerical {
			return chart.AspectComparison
		}
		return chart.AspectComposition
	case chart.TypeLine:
		if f.types[rec.XAxis] == column.TypeDatetime || isSequentialName(rec.XAxis) {
			return chart.AspectTrend
		}
		return chart.AspectComparison
	default:
		return chart.AspectCorrelation
	}
}

// axisColumns resolves the input columns feeding the two axes, ignoring the
// synthetic Count axis and unwrapping cumulative labels, and returns their
// sorted names and types.
func (f *diversityFilter) axisColumns(rec chart.Recommendation) ([]string, []string) {
	var names []string
	for _, axis := range []string{rec.XAxis, rec.YAxis} {
		if name := f.resolveAxis(axis); name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	types := make([]string, 0, len(names))
	for _, name := range names {
		types = append(types, string(f.types[name]))
	}
	sort.Strings(types)
	return names, types
}

// resolveAxis maps an axis label back to the input column that feeds it. The
// synthetic Count axis resolves to nothing; a cumulative label resolves to
// its base column.
func (f *diversityFilter) resolveAxis(axis string) string {
	if axis == chart.CountAxis {
		return ""
	}
	if base, ok := strings.CutPrefix(axis, chart.CumulativePrefix); ok {
		if _, known := f.types[base]; known {
			return base
		}
	}
	if _, known := f.types[axis]; known {
		return axis
	}
	return ""
}
