package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats a comparison as a console table.
type TableFormatter struct{}

// Format generates a formatted table comparing the two plans.
func (tf *TableFormatter) Format(result *ComparisonResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("comparison result is required")
	}

	var sb strings.Builder

	sb.WriteString("MEDIGAP PLAN COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Trials per plan: %d\n", result.NumTrials))
	sb.WriteString("\n")

	nameWidth := 28
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Plan",
		numWidth, "Mean",
		numWidth, "Median",
		numWidth, "Std Dev",
		numWidth, "Min",
		numWidth, "Max"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	sb.WriteString(tf.formatRow(&result.PlanA, nameWidth, numWidth))
	sb.WriteString(tf.formatRow(&result.PlanB, nameWidth, numWidth))

	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString("\nLIFETIME COST DIFFERENCE (A - B)\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("  Mean difference:  %s$%s\n",
		tf.deltaSymbol(result.MeanDifference),
		tf.formatDecimal(result.MeanDifference.Abs())))
	sb.WriteString(fmt.Sprintf("  Std difference:   $%s\n",
		tf.formatDecimal(result.StdDifference)))
	sb.WriteString("\n" + result.Recommendation() + "\n")

	return sb.String(), nil
}

// formatRow formats a single plan summary row.
func (tf *TableFormatter) formatRow(summary *PlanSummary, nameWidth, numWidth int) string {
	return fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(summary.PlanName, nameWidth),
		numWidth, "$"+tf.formatDecimal(summary.Mean),
		numWidth, "$"+tf.formatDecimal(summary.Median),
		numWidth, "$"+tf.formatDecimal(summary.StdDev),
		numWidth, "$"+tf.formatDecimal(summary.Min),
		numWidth, "$"+tf.formatDecimal(summary.Max))
}

// formatDecimal formats a decimal for display in compact K/M units.
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + or - symbol for deltas.
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen.
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
