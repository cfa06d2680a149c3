package column

// Type is the semantic type inferred for a column from its raw sample values.
type Type string

const (
	TypeNumerical   Type = "numerical"
	TypeCategorical Type = "categorical"
	TypeDatetime    Type = "datetime"
	TypeText        Type = "text"
)

// TextLimitedMaxUnique is the cardinality ceiling under which a text column is
// treated as quasi-categorical for chart purposes.
const TextLimitedMaxUnique = 20

// Info describes a single classified column. Created once by the classifier
// and consumed read-only by the recommendation engine.
type Info struct {
	Name         string        `json:"name"`
	Type         Type          `json:"type"`
	UniqueValues int           `json:"unique_values"`
	HasNulls     bool          `json:"has_nulls"`
	SampleValues []interface{} `json:"sample_values,omitempty"`
}

// Buckets partitions a classified column list by type so the chart generators
// do not re-filter the full list on every pass. TextLimited holds the text
// columns with at most TextLimitedMaxUnique distinct values; Text holds the
// rest, which never appear on a chart axis.
type Buckets struct {
	Numerical   []Info
	Categorical []Info
	Datetime    []Info
	Text        []Info
	TextLimited []Info
}

// Categorize partitions columns into disjoint type buckets, preserving input
// order within each bucket.
func Categorize(columns []Info) Buckets {
	var b Buckets
	for _, col := range columns {
		switch col.Type {
		case TypeNumerical:
			b.Numerical = append(b.Numerical, col)
		case TypeCategorical:
			b.Categorical = append(b.Categorical, col)
		case TypeDatetime:
			b.Datetime = append(b.Datetime, col)
		default:
			if col.UniqueValues <= TextLimitedMaxUnique {
				b.TextLimited = append(b.TextLimited, col)
			} else {
				b.Text = append(b.Text, col)
			}
		}
	}
	return b
}

// CategoricalLike returns the columns usable as a grouping axis: the
// categorical bucket followed by the low-cardinality text bucket.
func (b Buckets) CategoricalLike() []Info {
	out := make([]Info, 0, len(b.Categorical)+len(b.TextLimited))
	out = append(out, b.Categorical...)
	out = append(out, b.TextLimited...)
	return out
}

// TypesByName returns a name-to-type lookup over the original column list.
func TypesByName(columns []Info) map[string]Type {
	types := make(map[string]Type, len(columns))
	for _, col := range columns {
		types[col.Name] = col.Type
	}
	return types
}
