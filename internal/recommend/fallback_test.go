package recommend

import (
	"testing"

	"chartscout/domain/chart"
	"chartscout/domain/column"
)

func TestFallbackChartsTwoNumericals(t *testing.T) {
	got := fallbackCharts([]column.Info{numCol("Height"), numCol("Weight")})
	if len(got) != 2 {
		t.Fatalf("got %d charts, want 2: %+v", len(got), got)
	}
	if got[0].Title != "Distribution of Height" || got[0].YAxis != chart.CountAxis {
		t.Errorf("unexpected distribution chart: %+v", got[0])
	}
	if got[1].Title != "Weight vs Height" || got[1].Type != chart.TypeScatter {
		t.Errorf("unexpected pair chart: %+v", got[1])
	}
}

func TestFallbackChartsNumericalWithCategorical(t *testing.T) {
	got := fallbackCharts([]column.Info{catCol("Region", 3), numCol("Sales")})
	if len(got) != 2 {
		t.Fatalf("got %d charts, want 2: %+v", len(got), got)
	}
	if got[1].Title != "Sales by Region" || got[1].Type != chart.TypeBar {
		t.Errorf("unexpected pair chart: %+v", got[1])
	}
	if got[1].XAxis != "Region" || got[1].YAxis != "Sales" {
		t.Errorf("numerical column must land on y: %+v", got[1])
	}

	// Same pairing when the numerical column comes first.
	got = fallbackCharts([]column.Info{numCol("Sales"), catCol("Region", 3)})
	if len(got) != 2 || got[1].Title != "Sales by Region" || got[1].XAxis != "Region" {
		t.Errorf("reversed input should still chart Sales by Region: %+v", got)
	}
}

func TestFallbackChartsSkipsUnusableColumns(t *testing.T) {
	got := fallbackCharts([]column.Info{
		{Name: "Empty", Type: column.TypeNumerical, UniqueValues: 0},
		textCol("FreeText", 50),
		numCol("Amount"),
	})
	if len(got) != 1 {
		t.Fatalf("got %d charts, want 1: %+v", len(got), got)
	}
	if got[0].Title != "Distribution of Amount" {
		t.Errorf("unexpected chart: %+v", got[0])
	}
}

func TestFallbackChartsTwoCategoricals(t *testing.T) {
	got := fallbackCharts([]column.Info{catCol("Region", 3), textCol("Status", 4)})
	if len(got) != 1 {
		t.Fatalf("got %d charts, want 1 (no numerical pairing possible): %+v", len(got), got)
	}
	if got[0].Title != "Distribution of Region" {
		t.Errorf("unexpected chart: %+v", got[0])
	}
}

func TestFallbackChartsNothingUsable(t *testing.T) {
	got := fallbackCharts([]column.Info{
		{Name: "A", Type: column.TypeText, UniqueValues: 0},
		dateCol("When"),
	})
	if got != nil {
		t.Errorf("want nil for no usable columns, got %+v", got)
	}
}
