package calculation

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// ReportedPercentiles is the percentile set the distribution reports use.
var ReportedPercentiles = []int{5, 10, 25, 50, 75, 90, 95}

// Sum returns the sum of a decimal slice.
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Mean returns the arithmetic mean, or zero for an empty slice.
func Mean(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	return Sum(values).Div(decimal.NewFromInt(int64(len(values))))
}

// PopulationStdDev returns the population standard deviation (divide by N,
// not N-1).
func PopulationStdDev(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	mean := Mean(values)
	sumSquares := decimal.Zero
	for _, v := range values {
		diff := v.Sub(mean)
		sumSquares = sumSquares.Add(diff.Mul(diff))
	}
	variance := sumSquares.Div(decimal.NewFromInt(int64(len(values))))
	return decimal.NewFromFloat(math.Sqrt(variance.InexactFloat64()))
}

// MinMax returns the minimum and maximum of a non-empty slice.
func MinMax(values []decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if len(values) == 0 {
		return decimal.Zero, decimal.Zero
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v.LessThan(min) {
			min = v
		}
		if v.GreaterThan(max) {
			max = v
		}
	}
	return min, max
}

// SortDecimals returns an ascending copy of a decimal slice.
func SortDecimals(values []decimal.Decimal) []decimal.Decimal {
	sorted := make([]decimal.Decimal, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LessThan(sorted[j])
	})
	return sorted
}

// Median returns the median of a slice, or zero when empty.
func Median(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	sorted := SortDecimals(values)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2))
	}
	return sorted[mid]
}

// Percentile returns the pth percentile (0-100) of an ascending-sorted slice
// using linear interpolation between the surrounding ranks.
func Percentile(sorted []decimal.Decimal, p float64) decimal.Decimal {
	if len(sorted) == 0 {
		return decimal.Zero
	}
	index := p / 100 * float64(len(sorted)-1)
	lowerIdx := int(index)
	if index == float64(lowerIdx) {
		return sorted[lowerIdx]
	}

	lower := sorted[lowerIdx]
	upper := sorted[lowerIdx+1]
	fraction := decimal.NewFromFloat(index - float64(lowerIdx))
	return lower.Add(upper.Sub(lower).Mul(fraction))
}
