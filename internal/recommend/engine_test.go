package recommend

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartscout/domain/chart"
	"chartscout/domain/column"
	"chartscout/internal/errors"
)

func TestGenerateChartsRetailShape(t *testing.T) {
	// One categorical, one numerical, one datetime column.
	columns := []column.Info{
		catCol("Category", 3),
		numCol("Sales"),
		dateCol("Date"),
	}

	charts, err := NewEngine().GenerateCharts(columns)
	require.NoError(t, err)

	wantTitles := []string{
		"Sales by Category",
		"Distribution of Category",
		"Sales over Date",
		"Cumulative Sales over Date",
	}
	require.Len(t, charts, len(wantTitles))
	for i, want := range wantTitles {
		assert.Equal(t, want, charts[i].Title, "chart %d", i)
	}
	assert.Equal(t, chart.TypeBar, charts[0].Type)
	assert.Equal(t, chart.TypeBar, charts[1].Type)
	assert.Equal(t, chart.TypeLine, charts[2].Type)
	assert.Equal(t, chart.TypeLine, charts[3].Type)
}

func TestGenerateChartsMinimalPair(t *testing.T) {
	columns := []column.Info{
		catCol("SingleCategory", 2),
		{Name: "SingleValue", Type: column.TypeNumerical, UniqueValues: 2},
	}

	charts, err := NewEngine().GenerateCharts(columns)
	require.NoError(t, err)
	require.Len(t, charts, 2)
	assert.Equal(t, "SingleValue by SingleCategory", charts[0].Title)
	assert.Equal(t, "Distribution of SingleCategory", charts[1].Title)
	for _, c := range charts {
		assert.Equal(t, chart.TypeBar, c.Type)
	}
}

func TestGenerateChartsScatterSet(t *testing.T) {
	columns := []column.Info{
		numCol("Height"),
		numCol("Weight"),
		numCol("Age"),
	}

	charts, err := NewEngine().GenerateCharts(columns)
	require.NoError(t, err)

	var scatters []chart.Recommendation
	for _, c := range charts {
		if c.Type == chart.TypeScatter {
			scatters = append(scatters, c)
		}
	}
	// All three base pairs survive diversity filtering, plus exactly one
	// capped size-dimension variant.
	require.Len(t, scatters, 4)
	assert.Equal(t, "Weight vs Height", scatters[0].Title)
	assert.Equal(t, "Age vs Height", scatters[1].Title)
	assert.Equal(t, "Age vs Weight", scatters[2].Title)
	assert.Equal(t, "Weight vs Height (sized by Age)", scatters[3].Title)
}

func TestGenerateChartsEmptyColumnList(t *testing.T) {
	_, err := NewEngine().GenerateCharts(nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInsufficientData, errors.GetCode(err))
}

func TestGenerateChartsNoColumnWithData(t *testing.T) {
	columns := []column.Info{
		{Name: "A", Type: column.TypeText, UniqueValues: 0, HasNulls: true},
		{Name: "B", Type: column.TypeText, UniqueValues: 0, HasNulls: true},
	}
	_, err := NewEngine().GenerateCharts(columns)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInsufficientData, errors.GetCode(err))
}

func TestGenerateChartsHighCardinalityTextNeverCharted(t *testing.T) {
	columns := []column.Info{
		textCol("Notes", 50),
		numCol("Amount"),
	}

	charts, err := NewEngine().GenerateCharts(columns)
	require.NoError(t, err)
	require.NotEmpty(t, charts)
	for _, c := range charts {
		assert.NotEqual(t, "Notes", c.XAxis, "high-cardinality text column leaked into %q", c.Title)
		assert.NotEqual(t, "Notes", c.YAxis, "high-cardinality text column leaked into %q", c.Title)
	}
}

func TestGenerateChartsNoDuplicateCanonicalKeys(t *testing.T) {
	columns := []column.Info{
		catCol("Region", 4),
		textCol("Status", 5),
		numCol("Sales"),
		numCol("Quantity"),
		numCol("CustomerID"),
		dateCol("OrderDate"),
	}

	charts, err := NewEngine().GenerateCharts(columns)
	require.NoError(t, err)

	seen := make(map[string]string)
	for _, c := range charts {
		key := chart.CanonicalKey(c)
		if prev, dup := seen[key]; dup {
			t.Errorf("duplicate canonical key %q for %q and %q", key, prev, c.Title)
		}
		seen[key] = c.Title
	}
}

func TestGenerateChartsAxisClosure(t *testing.T) {
	columns := []column.Info{
		catCol("Region", 4),
		numCol("Sales"),
		numCol("Quantity"),
		dateCol("OrderDate"),
	}
	valid := map[string]bool{chart.CountAxis: true}
	for _, col := range columns {
		valid[col.Name] = true
		valid[chart.CumulativePrefix+col.Name] = true
	}

	charts, err := NewEngine().GenerateCharts(columns)
	require.NoError(t, err)
	for _, c := range charts {
		assert.True(t, valid[c.XAxis], "xAxis %q of %q is not closed over the input", c.XAxis, c.Title)
		assert.True(t, valid[c.YAxis], "yAxis %q of %q is not closed over the input", c.YAxis, c.Title)
	}
}

func TestGenerateChartsIdempotentAcrossRuns(t *testing.T) {
	columns := []column.Info{
		catCol("Region", 4),
		numCol("Sales"),
		numCol("Quantity"),
		dateCol("OrderDate"),
	}

	engine := NewEngine()
	first, err := engine.GenerateCharts(columns)
	require.NoError(t, err)
	second, err := engine.GenerateCharts(columns)
	require.NoError(t, err)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("runs differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestGenerateChartsScatterSymmetry(t *testing.T) {
	columns := []column.Info{numCol("A"), numCol("B"), numCol("C"), numCol("D")}

	charts, err := NewEngine().GenerateCharts(columns)
	require.NoError(t, err)

	seenPairs := make(map[string]bool)
	for _, c := range charts {
		if c.Type != chart.TypeScatter || strings.Contains(c.Title, "sized by") {
			continue
		}
		x, y := c.XAxis, c.YAxis
		if y < x {
			x, y = y, x
		}
		pair := x + "|" + y
		if seenPairs[pair] {
			t.Errorf("both orientations of scatter pair %q appear", pair)
		}
		seenPairs[pair] = true
	}
}

func TestRunStatistics(t *testing.T) {
	engine := NewEngine()
	columns := []column.Info{
		catCol("Category", 3),
		numCol("Sales"),
		dateCol("Date"),
	}
	charts, err := engine.GenerateCharts(columns)
	require.NoError(t, err)

	stats := engine.RunStatistics()
	assert.Equal(t, len(charts), stats.TotalCharts)
	assert.GreaterOrEqual(t, stats.DiversityScore, 0.0)
	assert.LessOrEqual(t, stats.DiversityScore, 1.0)
	assert.Equal(t, 1, stats.AspectCoverage[chart.AspectComparison])
	assert.Equal(t, 1, stats.AspectCoverage[chart.AspectDistribution])
	assert.Equal(t, 2, stats.AspectCoverage[chart.AspectTrend])
	// comparison, distribution, trend out of the five aspects.
	assert.InDelta(t, 3.0/5.0, stats.DiversityScore, 1e-9)
	// Category+Sales, Category alone, Date+Sales (the cumulative chart
	// resolves to the same base pair).
	assert.Equal(t, 3, stats.UniqueColumnCombinations)
}

func TestRunStatisticsDiversityBound(t *testing.T) {
	datasets := [][]column.Info{
		{catCol("A", 3), numCol("B")},
		{numCol("A"), numCol("B"), numCol("C")},
		{catCol("A", 2), numCol("B"), dateCol("C"), textCol("D", 4)},
	}
	for _, columns := range datasets {
		engine := NewEngine()
		_, err := engine.GenerateCharts(columns)
		require.NoError(t, err)
		stats := engine.RunStatistics()
		assert.GreaterOrEqual(t, stats.DiversityScore, 0.0)
		assert.LessOrEqual(t, stats.DiversityScore, 1.0)
	}
}
