package classify

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"chartscout/domain/column"
	"chartscout/internal"
)

// Classification thresholds. These are load-bearing: changing any of them
// changes classification outcomes for the boundary datasets covered by the
// package tests.
const (
	// NumericThreshold is the fraction of non-missing values that must parse
	// as finite numbers for a column to be numerical.
	NumericThreshold = 0.8
	// DatetimeThreshold is the fraction of non-missing values that must match
	// a known date pattern and parse to a valid calendar date.
	DatetimeThreshold = 0.7
	// CategoricalUniqueRatio is the maximum distinct/non-missing ratio under
	// which a short-valued column counts as categorical.
	CategoricalUniqueRatio = 0.7
	// CategoricalMaxAvgLen is the maximum mean string length for a
	// categorical column.
	CategoricalMaxAvgLen = 20
	// CategoricalBaseDistinct and CategoricalDistinctRatio bound the
	// alternative distinct-count acceptance: distinct <= max(base, n*ratio).
	CategoricalBaseDistinct  = 10
	CategoricalDistinctRatio = 0.8
	// MaxSampleValues is the number of raw values retained per column.
	MaxSampleValues = 5
)

// datePatterns pairs a textual shape check with the time layout used to
// verify the value is a real calendar date.
var datePatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), "2006-01-02"},
	{regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`), "1/2/2006"},
	{regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{4}$`), "1-2-2006"},
	{regexp.MustCompile(`^\d{4}/\d{1,2}/\d{1,2}$`), "2006/1/2"},
	{regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2}$`), "1/2/06"},
}

// Classifier infers semantic column types from raw sample values. Stateless;
// safe for concurrent use.
type Classifier struct {
	log *internal.Logger
}

// NewClassifier creates a classifier with the default logger.
func NewClassifier() *Classifier {
	return &Classifier{log: internal.DefaultLogger}
}

// Classify determines the semantic type of a raw value vector. Pure and
// deterministic; missing values (nil or empty string) are ignored for the
// type decision.
func (c *Classifier) Classify(values []interface{}) column.Type {
	present := nonMissing(values)
	if len(present) == 0 {
		return column.TypeText
	}

	numeric := 0
	for _, v := range present {
		if _, ok := NumericValue(v); ok {
			numeric++
		}
	}
	if float64(numeric)/float64(len(present)) >= NumericThreshold {
		return column.TypeNumerical
	}

	dateLike := 0
	for _, v := range present {
		if isDateLike(v) {
			dateLike++
		}
	}
	if float64(dateLike)/float64(len(present)) >= DatetimeThreshold {
		return column.TypeDatetime
	}

	// Mixed primitive kinds are never categorical.
	kind := primitiveKind(present[0])
	uniform := kind != kindOther
	for _, v := range present[1:] {
		if primitiveKind(v) != kind {
			uniform = false
			break
		}
	}
	if uniform && isCategorical(present) {
		return column.TypeCategorical
	}

	return column.TypeText
}

// ClassifyColumns classifies every column of the sample, one Info per header
// in header order. A failure in a single column is recovered locally: that
// column defaults to text with hasNulls set, and the rest of the dataset is
// unaffected.
func (c *Classifier) ClassifyColumns(headers []string, rows [][]interface{}) []column.Info {
	columns := make([]column.Info, 0, len(headers))
	for i, name := range headers {
		values := columnValues(rows, i)
		columns = append(columns, c.classifyColumn(name, values))
	}
	return columns
}

func (c *Classifier) classifyColumn(name string, values []interface{}) (info column.Info) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Warn("classification failed for column %q, defaulting to text: %v", name, r)
			info = column.Info{
				Name:         name,
				Type:         column.TypeText,
				UniqueValues: 0,
				HasNulls:     true,
				SampleValues: []interface{}{},
			}
		}
	}()

	present := nonMissing(values)
	sample := values
	if len(sample) > MaxSampleValues {
		sample = sample[:MaxSampleValues]
	}

	return column.Info{
		Name:         name,
		Type:         c.Classify(values),
		UniqueValues: distinctCount(present),
		HasNulls:     len(present) < len(values),
		SampleValues: append([]interface{}{}, sample...),
	}
}

// isCategorical applies the cardinality heuristic to a uniform-kind value
// vector: short values and either a low unique ratio or a small absolute
// distinct count. A single short string always qualifies.
func isCategorical(present []interface{}) bool {
	n := len(present)
	distinct := distinctCount(present)
	uniqueRatio := float64(distinct) / float64(n)

	lenSum := 0
	for _, v := range present {
		if s, ok := v.(string); ok {
			lenSum += len(s)
		}
	}
	avgLen := float64(lenSum) / float64(n)

	if avgLen > CategoricalMaxAvgLen {
		return false
	}
	distinctCap := math.Max(CategoricalBaseDistinct, float64(n)*CategoricalDistinctRatio)
	return uniqueRatio <= CategoricalUniqueRatio || float64(distinct) <= distinctCap
}

// NumericValue reports whether a raw cell value represents a finite number
// and returns it. Strings are parsed; booleans are not numbers.
func NumericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsInf(n, 0) && !math.IsNaN(n)
	case float32:
		f := float64(n)
		return f, !math.IsInf(f, 0) && !math.IsNaN(f)
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// isDateLike matches a value against the supported textual date shapes and
// verifies it parses to a valid calendar date.
func isDateLike(v interface{}) bool {
	if _, ok := v.(time.Time); ok {
		return true
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	for _, p := range datePatterns {
		if !p.re.MatchString(s) {
			continue
		}
		if _, err := time.Parse(p.layout, s); err == nil {
			return true
		}
	}
	return false
}

// IsMissing reports whether a raw cell value counts as missing: nil or an
// empty string.
func IsMissing(v interface{}) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

func nonMissing(values []interface{}) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		if !IsMissing(v) {
			out = append(out, v)
		}
	}
	return out
}

func distinctCount(values []interface{}) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[valueKey(v)] = struct{}{}
	}
	return len(seen)
}

// valueKey builds a distinctness key that keeps values of different primitive
// kinds apart even when they print identically ("1" vs 1).
func valueKey(v interface{}) string {
	return fmt.Sprintf("%T:%v", v, v)
}

const kindOther = "other"

func primitiveKind(v interface{}) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "number"
	default:
		return kindOther
	}
}

func columnValues(rows [][]interface{}, i int) []interface{} {
	values := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		if i < len(row) {
			values = append(values, row[i])
		} else {
			values = append(values, nil)
		}
	}
	return values
}
