package ports

import "chartscout/domain/dataset"

// TabularReader loads column headers and a sample of rows from an external
// source (spreadsheet, CSV, upload). Implementations report structural
// problems; semantic validation happens downstream.
type TabularReader interface {
	Read() (*dataset.Dataset, error)
}
