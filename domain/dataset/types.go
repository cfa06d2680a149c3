package dataset

// Dataset is a small tabular sample ready for analysis: column headers plus a
// sample of rows, each row holding one raw cell value per header.
type Dataset struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	Rows    [][]interface{} `json:"rows"`
}

// RowCount returns the number of sample rows.
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}

// ColumnCount returns the number of headers.
func (d *Dataset) ColumnCount() int {
	return len(d.Headers)
}

// Truncated returns a dataset limited to at most maxRows sample rows. The
// original is left untouched.
func (d *Dataset) Truncated(maxRows int) *Dataset {
	if maxRows <= 0 || len(d.Rows) <= maxRows {
		return d
	}
	return &Dataset{
		Name:    d.Name,
		Headers: d.Headers,
		Rows:    d.Rows[:maxRows],
	}
}

// Column extracts the raw value vector for column index i. Rows that are too
// short contribute a nil (missing) value.
func (d *Dataset) Column(i int) []interface{} {
	values := make([]interface{}, 0, len(d.Rows))
	for _, row := range d.Rows {
		if i < len(row) {
			values = append(values, row[i])
		} else {
			values = append(values, nil)
		}
	}
	return values
}
