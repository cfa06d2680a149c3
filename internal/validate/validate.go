package validate

import (
	"fmt"
	"strings"

	"chartscout/domain/dataset"
	"chartscout/internal/errors"
)

// CheckStructure verifies the shape of a dataset before classification:
// non-empty unique headers, at least one sample row, and every row as wide as
// the header list. Violations come back as invalid-input errors.
func CheckStructure(d *dataset.Dataset) error {
	if d == nil || len(d.Headers) == 0 {
		return errors.InvalidInput("headers are required")
	}
	seen := make(map[string]int, len(d.Headers))
	for i, h := range d.Headers {
		if strings.TrimSpace(h) == "" {
			return errors.InvalidInput(fmt.Sprintf("header %d is empty", i))
		}
		if prev, dup := seen[h]; dup {
			return errors.InvalidInput(fmt.Sprintf("duplicate header %q at positions %d and %d", h, prev, i))
		}
		seen[h] = i
	}
	if len(d.Rows) == 0 {
		return errors.InvalidInput("at least one sample row is required")
	}
	for r, row := range d.Rows {
		if len(row) != len(d.Headers) {
			return errors.InvalidInput(fmt.Sprintf("row %d has %d cells, want %d", r, len(row), len(d.Headers)))
		}
	}
	return nil
}
