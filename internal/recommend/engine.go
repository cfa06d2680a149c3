package recommend

import (
	"sync"

	"chartscout/domain/chart"
	"chartscout/domain/column"
	"chartscout/internal"
	"chartscout/internal/errors"
)

// Engine runs the full recommendation pipeline: bucket the classified
// columns, enumerate bar, line and scatter candidates in a fixed order, pass
// the stream through the diversity filter, and fall back to a degenerate
// chart set when the pipeline yields nothing. All run state lives in a
// per-call generation context, so concurrent invocations are safe.
type Engine struct {
	log *internal.Logger

	mu        sync.Mutex
	lastStats chart.RunStats
}

// NewEngine creates a recommendation engine with the default logger.
func NewEngine() *Engine {
	return &Engine{log: internal.DefaultLogger}
}

// GenerateCharts produces the final recommendation list for a classified
// column set. Returns an insufficient-data error when there is nothing to
// chart: no columns, no column with any data, or no chart producible even by
// the fallback path.
func (e *Engine) GenerateCharts(columns []column.Info) ([]chart.Recommendation, error) {
	recs, _, err := e.GenerateChartsWithStats(columns)
	return recs, err
}

// GenerateChartsWithStats is GenerateCharts returning the run statistics of
// this specific invocation alongside the result, for callers that run the
// engine concurrently.
func (e *Engine) GenerateChartsWithStats(columns []column.Info) ([]chart.Recommendation, chart.RunStats, error) {
	if len(columns) == 0 {
		return nil, chart.RunStats{}, errors.InsufficientData("no columns to analyze")
	}
	hasData := false
	for _, col := range columns {
		if col.UniqueValues > 0 {
			hasData = true
			break
		}
	}
	if !hasData {
		return nil, chart.RunStats{}, errors.InsufficientData("no column contains any data")
	}

	gc := newGenerationContext()
	recs := e.runPipeline(columns, gc)
	if len(recs) == 0 {
		recs = e.runFallback(columns, gc)
	}
	stats := gc.stats()

	e.mu.Lock()
	e.lastStats = stats
	e.mu.Unlock()

	if len(recs) == 0 {
		return nil, stats, errors.InsufficientData("no chart could be produced from the classified columns")
	}
	return recs, stats, nil
}

// RunStatistics returns the statistics of the most recently completed run.
func (e *Engine) RunStatistics() chart.RunStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	stats := e.lastStats
	coverage := make(map[chart.Aspect]int, len(stats.AspectCoverage))
	for aspect, n := range stats.AspectCoverage {
		coverage[aspect] = n
	}
	stats.AspectCoverage = coverage
	return stats
}

// runPipeline enumerates and filters candidates. A panic in any generator or
// in the filter is recovered here and logged as a warning; the caller then
// takes the fallback path.
func (e *Engine) runPipeline(columns []column.Info, gc *generationContext) (out []chart.Recommendation) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("chart pipeline failed, taking fallback path: %v", r)
			out = nil
		}
	}()

	buckets := column.Categorize(columns)
	filter := newDiversityFilter(columns)

	var candidates []chart.Recommendation
	candidates = append(candidates, barGenerator{}.generate(buckets)...)
	candidates = append(candidates, lineGenerator{}.generate(buckets)...)
	candidates = append(candidates, scatterGenerator{}.generate(buckets)...)

	for _, c := range candidates {
		if filter.accept(gc, c) {
			out = append(out, c)
		}
	}
	return out
}

// runFallback produces the degenerate chart set, recording it into the run
// context so statistics still reflect the output. Never panics outward.
func (e *Engine) runFallback(columns []column.Info, gc *generationContext) (out []chart.Recommendation) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("fallback chart production failed: %v", r)
			out = nil
		}
	}()

	filter := newDiversityFilter(columns)
	for _, c := range fallbackCharts(columns) {
		if filter.accept(gc, c) {
			out = append(out, c)
		}
	}
	return out
}
