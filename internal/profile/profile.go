package profile

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"chartscout/domain/column"
	"chartscout/domain/dataset"
	"chartscout/internal/classify"
)

// Summary holds descriptive statistics for one numerical column. Purely
// observational; it feeds the narrative report and is never used to gate
// chart generation.
type Summary struct {
	Column   string  `json:"column"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// Profiler computes summaries for the numerical columns of a dataset.
type Profiler struct{}

// NewProfiler creates a profiler.
func NewProfiler() Profiler {
	return Profiler{}
}

// ProfileDataset summarizes every numerical column, in column order. Columns
// whose values fail to parse are skipped rather than reported with zeros.
func (Profiler) ProfileDataset(columns []column.Info, d *dataset.Dataset) []Summary {
	index := make(map[string]int, len(d.Headers))
	for i, h := range d.Headers {
		index[h] = i
	}

	var out []Summary
	for _, col := range columns {
		if col.Type != column.TypeNumerical {
			continue
		}
		i, ok := index[col.Name]
		if !ok {
			continue
		}
		data := numericVector(d.Column(i))
		if len(data) == 0 {
			continue
		}
		out = append(out, summarize(col.Name, data))
	}
	return out
}

func summarize(name string, data []float64) Summary {
	mean, _ := stats.Mean(data)
	stdDev, _ := stats.StandardDeviation(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	median, _ := stats.Median(data)
	q25, _ := stats.Percentile(data, 25)
	q75, _ := stats.Percentile(data, 75)

	s := Summary{
		Column: name,
		Count:  len(data),
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Median: median,
		Q25:    q25,
		Q75:    q75,
	}
	// Shape statistics need variation to be meaningful.
	if len(data) >= 3 && stdDev > 0 {
		s.Skewness = stat.Skew(data, nil)
		s.Kurtosis = stat.ExKurtosis(data, nil)
	}
	return s
}

func numericVector(values []interface{}) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if classify.IsMissing(v) {
			continue
		}
		if f, ok := classify.NumericValue(v); ok {
			out = append(out, f)
		}
	}
	return out
}
