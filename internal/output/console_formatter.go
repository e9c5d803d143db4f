package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/openmedicare/medisim/internal/calculation"
)

// ConsoleFormatter renders the full simulation report as plain text: plan
// echo, per-year statistics table, and the lifetime-cost summary with
// percentiles.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (cf ConsoleFormatter) Format(result *calculation.ComprehensiveResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("simulation result is required")
	}

	var buf bytes.Buffer

	fmt.Fprintln(&buf, "MEDIGAP COST SIMULATION")
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	cf.writePlanEcho(&buf, result)

	fmt.Fprintln(&buf, "\nPER-YEAR COST STATISTICS")
	fmt.Fprintln(&buf, strings.Repeat("-", 80))
	fmt.Fprintf(&buf, "%-6s %14s %14s %14s %14s\n", "Year", "Mean", "Std Dev", "Min", "Max")
	for _, stats := range result.YearlyStatistics {
		fmt.Fprintf(&buf, "%-6d %14s %14s %14s %14s\n",
			stats.Year,
			FormatCurrency(stats.Mean),
			FormatCurrency(stats.StdDev),
			FormatCurrency(stats.Min),
			FormatCurrency(stats.Max))
	}

	fmt.Fprintln(&buf, "\nLIFETIME COST DISTRIBUTION")
	fmt.Fprintln(&buf, strings.Repeat("-", 80))
	min, max := calculation.MinMax(result.LifetimeCosts)
	fmt.Fprintf(&buf, "Mean:    %s\n", FormatCurrency(calculation.Mean(result.LifetimeCosts)))
	fmt.Fprintf(&buf, "Median:  %s\n", FormatCurrency(calculation.Median(result.LifetimeCosts)))
	fmt.Fprintf(&buf, "Std Dev: %s\n", FormatCurrency(calculation.PopulationStdDev(result.LifetimeCosts)))
	fmt.Fprintf(&buf, "Min:     %s\n", FormatCurrency(min))
	fmt.Fprintf(&buf, "Max:     %s\n", FormatCurrency(max))

	fmt.Fprintln(&buf, "\nPercentiles:")
	sorted := calculation.SortDecimals(result.LifetimeCosts)
	for _, p := range calculation.ReportedPercentiles {
		fmt.Fprintf(&buf, "  p%-3d %s\n", p, FormatCurrency(calculation.Percentile(sorted, float64(p))))
	}

	return buf.Bytes(), nil
}

// writePlanEcho prints the plan configuration the simulation ran with.
func (ConsoleFormatter) writePlanEcho(buf *bytes.Buffer, result *calculation.ComprehensiveResult) {
	plan := result.Plan
	fmt.Fprintf(buf, "Plan:            %s\n", plan.Name)
	fmt.Fprintf(buf, "Trials:          %d\n", result.NumTrials)
	fmt.Fprintf(buf, "Horizon:         %d years starting %d\n", plan.SimulationYears, plan.StartYear)
	fmt.Fprintf(buf, "Percent sick:    %s\n", FormatPercentage(plan.PercentSick))
	fmt.Fprintf(buf, "Premium:         %s/mo growing %s\n",
		FormatCurrency(plan.Premium2026), FormatPercentage(plan.PremiumGrowthRate))
	fmt.Fprintf(buf, "Part D premium:  %s/mo growing %s\n",
		FormatCurrency(plan.PartDPremium2026), FormatPercentage(plan.PartDPremiumGrowthRate))
	fmt.Fprintf(buf, "Plan deductible: %s/yr growing %s\n",
		FormatCurrency(plan.PlanDeductible2026), FormatPercentage(plan.PlanDeductibleGrowthRate))
	fmt.Fprintf(buf, "Part B deduct.:  %s/yr growing %s\n",
		FormatCurrency(plan.PartBDeductible2026), FormatPercentage(plan.PartBDeductibleGrowthRate))
	if s := plan.Specialist; s != nil {
		fmt.Fprintf(buf, "Specialist:      %d visits/yr at %s growing %s\n",
			s.VisitsPerYear, FormatCurrency(s.Copay2026), FormatPercentage(s.CopayGrowthRate))
	}
}
