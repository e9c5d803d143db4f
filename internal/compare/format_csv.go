package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats a comparison as CSV.
type CSVFormatter struct{}

// Format generates CSV output with one row per plan plus a difference row.
func (cf *CSVFormatter) Format(result *ComparisonResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("comparison result is required")
	}

	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Plan",
		"Trials",
		"Mean_Lifetime_Cost",
		"Median_Lifetime_Cost",
		"Std_Lifetime_Cost",
		"Min_Lifetime_Cost",
		"Max_Lifetime_Cost",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(&result.PlanA, result.NumTrials)); err != nil {
		return "", err
	}
	if err := writer.Write(cf.formatRow(&result.PlanB, result.NumTrials)); err != nil {
		return "", err
	}

	difference := []string{
		"Difference (A - B)",
		formatInt(result.NumTrials),
		result.MeanDifference.StringFixed(2),
		"",
		result.StdDifference.StringFixed(2),
		"",
		"",
	}
	if err := writer.Write(difference); err != nil {
		return "", err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a plan summary as a CSV row.
func (cf *CSVFormatter) formatRow(summary *PlanSummary, numTrials int) []string {
	return []string{
		summary.PlanName,
		formatInt(numTrials),
		summary.Mean.StringFixed(2),
		summary.Median.StringFixed(2),
		summary.StdDev.StringFixed(2),
		summary.Min.StringFixed(2),
		summary.Max.StringFixed(2),
	}
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
