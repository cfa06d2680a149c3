package insight

import (
	"fmt"
	"strings"

	"chartscout/domain/column"
)

// Insights is the deterministic business-context summary derived from column
// names: a detected industry plus scripted analytical questions.
type Insights struct {
	Industry   string   `json:"industry"`
	Confidence float64  `json:"confidence"`
	Questions  []string `json:"questions"`
}

// industryKeywords maps an industry label to the column-name fragments that
// suggest it. Matching is case-insensitive substring matching; the industry
// with the most matched columns wins.
var industryKeywords = map[string][]string{
	"Retail":     {"product", "price", "sales", "order", "customer", "quantity", "sku", "store", "discount"},
	"Finance":    {"balance", "amount", "transaction", "account", "credit", "debit", "interest", "revenue", "cost"},
	"Healthcare": {"patient", "diagnosis", "treatment", "dosage", "admission", "provider", "symptom"},
	"Marketing":  {"campaign", "click", "impression", "conversion", "channel", "ctr", "audience"},
	"Operations": {"shipment", "inventory", "warehouse", "supplier", "delivery", "downtime", "defect"},
}

// industryOrder fixes the tie-break so detection is deterministic.
var industryOrder = []string{"Retail", "Finance", "Healthcare", "Marketing", "Operations"}

const generalIndustry = "General"

// questionTemplates are scripted per industry; %s slots take a grouping
// column and a measure column when the dataset provides them.
var questionTemplates = map[string][]string{
	"Retail": {
		"Which %s segments drive the most %s?",
		"How has %s developed over the sampled period?",
		"Are there outlier products or regions worth a closer look?",
	},
	"Finance": {
		"How does each %s compare on total %s?",
		"Does %s show a consistent trend or one-off spikes?",
		"Which accounts or categories concentrate the most volume?",
	},
	"Healthcare": {
		"How do %s groups differ in %s?",
		"Are there cohorts with unusually high or low %s?",
		"Does the sample suggest seasonal or admission-driven patterns?",
	},
	"Marketing": {
		"Which %s delivers the best %s?",
		"How does %s trend across the sampled period?",
		"Are any channels underperforming relative to their volume?",
	},
	"Operations": {
		"Which %s segments concentrate the most %s?",
		"Is %s stable over time or drifting?",
		"Which suppliers or sites account for most variance?",
	},
	generalIndustry: {
		"How does each %s compare on %s?",
		"Which columns move together strongly enough to investigate?",
		"Does %s change meaningfully over the sampled rows?",
	},
}

// Generator produces deterministic business insights from classified columns.
// No model calls; keyword matching only.
type Generator struct{}

// NewGenerator creates an insight generator.
func NewGenerator() Generator {
	return Generator{}
}

// Generate detects the industry and fills the scripted question templates
// with the dataset's own column names.
func (Generator) Generate(columns []column.Info) Insights {
	industry, matched := detectIndustry(columns)

	confidence := 0.0
	if len(columns) > 0 {
		confidence = float64(matched) / float64(len(columns))
		if confidence > 1 {
			confidence = 1
		}
	}

	return Insights{
		Industry:   industry,
		Confidence: confidence,
		Questions:  buildQuestions(industry, columns),
	}
}

func detectIndustry(columns []column.Info) (string, int) {
	best, bestCount := generalIndustry, 0
	for _, industry := range industryOrder {
		count := 0
		for _, col := range columns {
			name := strings.ToLower(col.Name)
			for _, kw := range industryKeywords[industry] {
				if strings.Contains(name, kw) {
					count++
					break
				}
			}
		}
		if count > bestCount {
			best, bestCount = industry, count
		}
	}
	return best, bestCount
}

// buildQuestions substitutes the first grouping and measure columns into the
// industry's templates. Templates without slots pass through unchanged; slots
// that cannot be filled fall back to generic labels.
func buildQuestions(industry string, columns []column.Info) []string {
	group := firstOfType(columns, column.TypeCategorical)
	if group == "" {
		group = "category"
	}
	measure := firstOfType(columns, column.TypeNumerical)
	if measure == "" {
		measure = "value"
	}

	templates := questionTemplates[industry]
	out := make([]string, 0, len(templates))
	for _, tmpl := range templates {
		switch strings.Count(tmpl, "%s") {
		case 2:
			out = append(out, fmt.Sprintf(tmpl, group, measure))
		case 1:
			out = append(out, fmt.Sprintf(tmpl, measure))
		default:
			out = append(out, tmpl)
		}
	}
	return out
}

func firstOfType(columns []column.Info, t column.Type) string {
	for _, col := range columns {
		if col.Type == t {
			return col.Name
		}
	}
	return ""
}
