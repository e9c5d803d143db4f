package compare

import (
	"fmt"

	"github.com/openmedicare/medisim/internal/calculation"
	"github.com/shopspring/decimal"
)

// PlanSummary condenses one plan's lifetime-cost distribution for display.
type PlanSummary struct {
	PlanName string          `json:"planName"`
	Mean     decimal.Decimal `json:"mean"`
	Median   decimal.Decimal `json:"median"`
	StdDev   decimal.Decimal `json:"stdDev"`
	Min      decimal.Decimal `json:"min"`
	Max      decimal.Decimal `json:"max"`

	// Result carries the full comprehensive result for downstream consumers
	// (charts, exports); it is elided from JSON output.
	Result *calculation.ComprehensiveResult `json:"-"`
}

// ComparisonResult holds two independently simulated plans and the
// distribution of their lifetime-cost difference.
type ComparisonResult struct {
	PlanA     PlanSummary `json:"planA"`
	PlanB     PlanSummary `json:"planB"`
	NumTrials int         `json:"numTrials"`

	// MeanDifference is mean(A) - mean(B): positive means plan A costs more.
	MeanDifference decimal.Decimal `json:"meanDifference"`

	// StdDifference is the population standard deviation of the elementwise
	// difference of the two lifetime-cost sequences, paired by trial index.
	// The two sequences are drawn independently, so this pairing is an
	// artifact of trial ordering rather than a matched-pair statistic; it is
	// kept for compatibility with the historical report shape.
	StdDifference decimal.Decimal `json:"stdDifference"`
}

// CheaperPlan names the plan with the lower mean lifetime cost, or empty
// when the means are equal.
func (cr *ComparisonResult) CheaperPlan() string {
	switch {
	case cr.MeanDifference.IsPositive():
		return cr.PlanB.PlanName
	case cr.MeanDifference.IsNegative():
		return cr.PlanA.PlanName
	default:
		return ""
	}
}

// Recommendation renders a one-line summary naming the cheaper plan and the
// expected lifetime saving.
func (cr *ComparisonResult) Recommendation() string {
	cheaper := cr.CheaperPlan()
	if cheaper == "" {
		return "Both plans have equal expected lifetime cost"
	}
	return fmt.Sprintf("%s is expected to cost $%s less over the simulated horizon",
		cheaper, cr.MeanDifference.Abs().StringFixed(2))
}

// summarize reduces a comprehensive result to its lifetime-cost summary.
func summarize(result *calculation.ComprehensiveResult) PlanSummary {
	min, max := calculation.MinMax(result.LifetimeCosts)
	return PlanSummary{
		PlanName: result.Plan.Name,
		Mean:     calculation.Mean(result.LifetimeCosts),
		Median:   calculation.Median(result.LifetimeCosts),
		StdDev:   calculation.PopulationStdDev(result.LifetimeCosts),
		Min:      min,
		Max:      max,
		Result:   result,
	}
}
