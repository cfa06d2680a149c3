package recommend

import (
	"chartscout/domain/chart"
)

// chartRecord is the metadata kept for each accepted chart: what it shows,
// which analytical aspect it serves, and which input columns feed its axes.
type chartRecord struct {
	rec      chart.Recommendation
	aspect   chart.Aspect
	columns  string // sorted axis column names, joined
	colTypes string // sorted axis column types, joined
}

// generationContext carries the run-scoped dedup and diversity state. A fresh
// context is allocated for every GenerateCharts call so a timed-out or
// overlapping run can never mutate state another run reads.
type generationContext struct {
	usedKeys     map[string]struct{}
	records      []chartRecord
	aspectSeen   map[chart.Aspect]int
	aspectCombos map[chart.Aspect]map[string]struct{}
	combosSeen   map[string]struct{}
}

func newGenerationContext() *generationContext {
	return &generationContext{
		usedKeys:     make(map[string]struct{}),
		aspectSeen:   make(map[chart.Aspect]int),
		aspectCombos: make(map[chart.Aspect]map[string]struct{}),
		combosSeen:   make(map[string]struct{}),
	}
}

func (g *generationContext) record(r chartRecord) {
	g.usedKeys[chart.CanonicalKey(r.rec)] = struct{}{}
	g.records = append(g.records, r)
	g.aspectSeen[r.aspect]++
	if g.aspectCombos[r.aspect] == nil {
		g.aspectCombos[r.aspect] = make(map[string]struct{})
	}
	g.aspectCombos[r.aspect][r.columns] = struct{}{}
	g.combosSeen[r.columns] = struct{}{}
}

// stats derives the observational run statistics from the accepted records.
func (g *generationContext) stats() chart.RunStats {
	coverage := make(map[chart.Aspect]int, len(g.aspectSeen))
	for aspect, n := range g.aspectSeen {
		coverage[aspect] = n
	}
	return chart.RunStats{
		TotalCharts:              len(g.records),
		AspectCoverage:           coverage,
		UniqueColumnCombinations: len(g.combosSeen),
		DiversityScore:           float64(len(g.aspectSeen)) / float64(chart.AspectCount),
	}
}
