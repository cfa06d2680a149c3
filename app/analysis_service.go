package app

import (
	"context"
	"time"

	"chartscout/domain/chart"
	"chartscout/domain/column"
	"chartscout/domain/core"
	"chartscout/domain/dataset"
	"chartscout/internal"
	"chartscout/internal/classify"
	"chartscout/internal/config"
	"chartscout/internal/errors"
	"chartscout/internal/guard"
	"chartscout/internal/insight"
	"chartscout/internal/profile"
	"chartscout/internal/recommend"
	"chartscout/internal/report"
	"chartscout/internal/validate"
)

// AnalysisResult is the full outcome of analyzing one dataset sample.
type AnalysisResult struct {
	RunID          core.RunID              `json:"run_id"`
	Dataset        string                  `json:"dataset"`
	Columns        []column.Info           `json:"columns"`
	Charts         []chart.Recommendation  `json:"charts"`
	Statistics     chart.RunStats          `json:"statistics"`
	Profiles       []profile.Summary       `json:"profiles,omitempty"`
	Insights       insight.Insights        `json:"insights"`
	ReportMarkdown string                  `json:"report_markdown"`
	ReportHTML     string                  `json:"report_html,omitempty"`
}

// AnalysisService orchestrates one dataset analysis end to end: structural
// validation, column classification, chart recommendation, numerical
// profiling, scripted insights and the narrative report. Classification and
// generation each run under the configured cooperative budget.
type AnalysisService struct {
	classifier *classify.Classifier
	engine     *recommend.Engine
	profiler   profile.Profiler
	insights   insight.Generator
	reports    *report.Builder
	budget     time.Duration
	maxRows    int
	renderHTML bool
	log        *internal.Logger
}

// NewAnalysisService wires the pipeline from configuration.
func NewAnalysisService(cfg *config.Config) *AnalysisService {
	return &AnalysisService{
		classifier: classify.NewClassifier(),
		engine:     recommend.NewEngine(),
		profiler:   profile.NewProfiler(),
		insights:   insight.NewGenerator(),
		reports:    report.NewBuilder(),
		budget:     cfg.Analysis.Budget,
		maxRows:    cfg.Analysis.MaxSampleRows,
		renderHTML: cfg.Report.RenderHTML,
		log:        internal.DefaultLogger,
	}
}

// Analyze runs the full pipeline for one dataset. Invalid input,
// insufficient data and timeouts come back as coded errors; a classification
// failure in a single column is recovered inside the classifier and never
// surfaces here.
func (s *AnalysisService) Analyze(ctx context.Context, d *dataset.Dataset) (*AnalysisResult, error) {
	if err := validate.CheckStructure(d); err != nil {
		return nil, err
	}
	d = d.Truncated(s.maxRows)
	runID := core.NewRunID()
	s.log.Info("run %s: analyzing %q (%d columns, %d rows)", runID, d.Name, d.ColumnCount(), d.RowCount())

	var columns []column.Info
	err := guard.Do(ctx, "classify_columns", s.budget, func() error {
		columns = s.classifier.ClassifyColumns(d.Headers, d.Rows)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var charts []chart.Recommendation
	var stats chart.RunStats
	err = guard.Do(ctx, "generate_charts", s.budget, func() error {
		var genErr error
		charts, stats, genErr = s.engine.GenerateChartsWithStats(columns)
		return genErr
	})
	if err != nil {
		return nil, err
	}

	result := &AnalysisResult{
		RunID:      runID,
		Dataset:    d.Name,
		Columns:    columns,
		Charts:     charts,
		Statistics: stats,
		Profiles:   s.profiler.ProfileDataset(columns, d),
		Insights:   s.insights.Generate(columns),
	}

	data := report.Data{
		RunID:       runID,
		Dataset:     d.Name,
		GeneratedAt: time.Now().UTC(),
		RowCount:    d.RowCount(),
		Columns:     columns,
		Charts:      charts,
		Stats:       stats,
		Profiles:    result.Profiles,
		Insights:    result.Insights,
	}
	md, err := s.reports.Markdown(data)
	if err != nil {
		return nil, errors.Wrap(err, "report build failed")
	}
	result.ReportMarkdown = md

	if s.renderHTML {
		// Rendering failures downgrade to Markdown-only output.
		if htmlOut, htmlErr := s.reports.HTML(data); htmlErr == nil {
			result.ReportHTML = htmlOut
		} else {
			s.log.Warn("run %s: HTML rendering failed: %v", runID, htmlErr)
		}
	}

	s.log.Info("run %s: %d charts, diversity %.2f", runID, stats.TotalCharts, stats.DiversityScore)
	return result, nil
}

// RunStatistics exposes the statistics of the most recently completed
// generation run.
func (s *AnalysisService) RunStatistics() chart.RunStats {
	return s.engine.RunStatistics()
}
