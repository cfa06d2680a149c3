package recommend

import (
	"chartscout/domain/chart"
	"chartscout/domain/column"
)

// Triple enumeration caps for size-dimension scatter variants. These bound
// the candidate count to a constant on wide datasets; downstream report text
// and the package tests assume this exact cap.
const (
	tripleCapX    = 3
	tripleCapY    = 4
	tripleCapSize = 5
)

// scatterGenerator enumerates scatter candidates from the numerical bucket:
// every unordered column pair, plus capped (x, y, size) triples when at least
// three numerical columns exist. The size column appears only in the title.
type scatterGenerator struct{}

func (scatterGenerator) generate(b column.Buckets) []chart.Recommendation {
	nums := b.Numerical
	if len(nums) < 2 {
		return nil
	}

	var out []chart.Recommendation
	for i := 0; i < len(nums); i++ {
		for j := i + 1; j < len(nums); j++ {
			out = append(out, chart.Recommendation{
				Title: nums[j].Name + " vs " + nums[i].Name,
				Type:  chart.TypeScatter,
				XAxis: nums[i].Name,
				YAxis: nums[j].Name,
			})
		}
	}

	if len(nums) < 3 {
		return out
	}
	for i := 0; i < len(nums) && i < tripleCapX; i++ {
		for j := i + 1; j < len(nums) && j < tripleCapY; j++ {
			for k := j + 1; k < len(nums) && k < tripleCapSize; k++ {
				out = append(out, chart.Recommendation{
					Title: nums[j].Name + " vs " + nums[i].Name + " (sized by " + nums[k].Name + ")",
					Type:  chart.TypeScatter,
					XAxis: nums[i].Name,
					YAxis: nums[j].Name,
				})
			}
		}
	}

	return out
}
