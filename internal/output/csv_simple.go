package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/openmedicare/medisim/internal/calculation"
)

// StatisticsCSVFormatter exports the per-year statistics table: one row per
// projection year with mean/std/min/max/total cost across all trials.
type StatisticsCSVFormatter struct{}

func (StatisticsCSVFormatter) Name() string { return "csv" }

func (StatisticsCSVFormatter) Format(result *calculation.ComprehensiveResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("simulation result is required")
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Year", "Mean_Cost", "Std_Cost", "Min_Cost", "Max_Cost", "Total_Cost"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for _, stats := range result.YearlyStatistics {
		row := []string{
			strconv.Itoa(stats.Year),
			stats.Mean.StringFixed(2),
			stats.StdDev.StringFixed(2),
			stats.Min.StringFixed(2),
			stats.Max.StringFixed(2),
			stats.Total.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write year row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LifetimeCSVFormatter exports one row per trial with its lifetime cost.
type LifetimeCSVFormatter struct{}

func (LifetimeCSVFormatter) Name() string { return "lifetime-csv" }

func (LifetimeCSVFormatter) Format(result *calculation.ComprehensiveResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("simulation result is required")
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Trial", "Lifetime_Cost"}); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, cost := range result.LifetimeCosts {
		row := []string{strconv.Itoa(i + 1), cost.StringFixed(2)}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write trial row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PercentileCSVFormatter exports the reported percentiles of the
// lifetime-cost distribution.
type PercentileCSVFormatter struct{}

func (PercentileCSVFormatter) Name() string { return "percentiles-csv" }

func (PercentileCSVFormatter) Format(result *calculation.ComprehensiveResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("simulation result is required")
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Percentile", "Lifetime_Cost"}); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	sorted := calculation.SortDecimals(result.LifetimeCosts)
	for _, p := range calculation.ReportedPercentiles {
		value := calculation.Percentile(sorted, float64(p))
		row := []string{strconv.Itoa(p), value.StringFixed(2)}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write percentile row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
