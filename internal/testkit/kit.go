package testkit

import (
	"fmt"
	"math/rand"
	"time"

	"chartscout/domain/dataset"
)

// Kit builds small synthetic tabular datasets for tests. All output is
// deterministic for a given seed.
type Kit struct {
	rng *rand.Rand
}

// NewKit creates a kit seeded for reproducible datasets.
func NewKit(seed int64) *Kit {
	return &Kit{rng: rand.New(rand.NewSource(seed))}
}

var (
	regions  = []string{"North", "South", "East", "West"}
	products = []string{"Widget", "Gadget", "Gizmo", "Doohickey"}
)

// RetailDataset produces a typical small retail sample: an order id, two
// categorical columns, two numeric measures and an order date.
func (k *Kit) RetailDataset(rows int) *dataset.Dataset {
	headers := []string{"OrderID", "Region", "Product", "Sales", "Quantity", "OrderDate"}
	data := make([][]interface{}, 0, rows)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < rows; i++ {
		data = append(data, []interface{}{
			fmt.Sprintf("%d", 1000+i),
			regions[k.rng.Intn(len(regions))],
			products[k.rng.Intn(len(products))],
			fmt.Sprintf("%.2f", 50+k.rng.Float64()*450),
			fmt.Sprintf("%d", 1+k.rng.Intn(9)),
			start.AddDate(0, 0, i).Format("2006-01-02"),
		})
	}
	return &dataset.Dataset{Name: "retail_sample", Headers: headers, Rows: data}
}

// NumericDataset produces cols purely numerical columns named Metric1..N,
// each with distinct values across every row.
func (k *Kit) NumericDataset(cols, rows int) *dataset.Dataset {
	headers := make([]string, cols)
	for c := 0; c < cols; c++ {
		headers[c] = fmt.Sprintf("Metric%d", c+1)
	}
	data := make([][]interface{}, 0, rows)
	for r := 0; r < rows; r++ {
		row := make([]interface{}, cols)
		for c := 0; c < cols; c++ {
			row[c] = fmt.Sprintf("%.3f", float64(r*cols+c)+k.rng.Float64())
		}
		data = append(data, row)
	}
	return &dataset.Dataset{Name: "numeric_sample", Headers: headers, Rows: data}
}

// SparseDataset produces a dataset whose cells are all missing, for
// insufficient-data paths.
func (k *Kit) SparseDataset(rows int) *dataset.Dataset {
	data := make([][]interface{}, 0, rows)
	for i := 0; i < rows; i++ {
		data = append(data, []interface{}{nil, ""})
	}
	return &dataset.Dataset{Name: "sparse_sample", Headers: []string{"A", "B"}, Rows: data}
}
