package chart

import "strings"

// Type identifies the visualization family of a recommendation.
type Type string

const (
	TypeBar     Type = "bar"
	TypeLine    Type = "line"
	TypeScatter Type = "scatter"
)

// CountAxis is the synthetic y-axis label used by distribution charts.
const CountAxis = "Count"

// CumulativePrefix marks a synthesized running-total axis or title.
const CumulativePrefix = "Cumulative "

// Recommendation is a single suggested visualization. Axis values are either
// an input column name, CountAxis, or CumulativePrefix + an input column name.
// Never mutated after creation.
type Recommendation struct {
	Title string `json:"title"`
	Type  Type   `json:"type"`
	XAxis string `json:"x_axis"`
	YAxis string `json:"y_axis"`
}

// Aspect classifies what a chart reveals about the data. Used only for
// diversity bookkeeping and run statistics.
type Aspect string

const (
	AspectDistribution Aspect = "distribution"
	AspectComparison   Aspect = "comparison"
	AspectCorrelation  Aspect = "correlation"
	AspectTrend        Aspect = "trend"
	AspectComposition  Aspect = "composition"
)

// AspectCount is the size of the aspect enumeration, the denominator of the
// diversity score.
const AspectCount = 5

// IsEnhanced reports whether a title marks an enhanced chart variant: a size
// dimension or a cumulative framing. Enhanced variants are intentionally
// redundant in aspect terms and bypass the diversity acceptance rule.
func IsEnhanced(title string) bool {
	return strings.Contains(title, "sized by") || strings.Contains(title, strings.TrimSpace(CumulativePrefix))
}

// RunStats summarizes one completed generation run. Purely observational.
type RunStats struct {
	TotalCharts              int            `json:"total_charts"`
	AspectCoverage           map[Aspect]int `json:"aspect_coverage"`
	UniqueColumnCombinations int            `json:"unique_column_combinations"`
	DiversityScore           float64        `json:"diversity_score"`
}
