package tabular

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"chartscout/domain/dataset"
	"chartscout/internal/errors"
)

// Reader loads Excel (.xlsx) and CSV files into a dataset. Cells come back as
// raw strings; the classifier decides what they mean.
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewReader creates a reader, picking the parser from the file extension.
func NewReader(filePath string) *Reader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Read loads the file into headers plus sample rows.
func (r *Reader) Read() (*dataset.Dataset, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.ReadFailed(r.filePath, err)
	}
	switch r.fileType {
	case "csv":
		return r.readCSV()
	default:
		return r.readExcel()
	}
}

func (r *Reader) readExcel() (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.ReadFailed(r.filePath, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.ReadFailed(r.filePath, errors.InvalidInput("workbook has no sheets"))
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.ReadFailed(r.filePath, err)
	}
	return r.assemble(rows)
}

func (r *Reader) readCSV() (*dataset.Dataset, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.ReadFailed(r.filePath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.ReadFailed(r.filePath, err)
	}
	return r.assemble(records)
}

// assemble turns the raw string grid into a dataset: first row as headers,
// remaining rows padded or trimmed to the header width so downstream
// structural validation sees a rectangle. Empty cells stay as empty strings
// and count as missing values.
func (r *Reader) assemble(grid [][]string) (*dataset.Dataset, error) {
	if len(grid) < 2 {
		return nil, errors.InvalidInput("file must have a header row and at least one data row")
	}
	headers := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([][]interface{}, 0, len(grid)-1)
	for _, record := range grid[1:] {
		row := make([]interface{}, len(headers))
		for i := range headers {
			if i < len(record) {
				row[i] = record[i]
			} else {
				row[i] = ""
			}
		}
		rows = append(rows, row)
	}

	return &dataset.Dataset{
		Name:    strings.TrimSuffix(filepath.Base(r.filePath), filepath.Ext(r.filePath)),
		Headers: headers,
		Rows:    rows,
	}, nil
}
