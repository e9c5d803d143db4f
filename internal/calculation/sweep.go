package calculation

import (
	"fmt"

	"github.com/openmedicare/medisim/internal/domain"
	"github.com/shopspring/decimal"
)

// The sweep uses the deterministic expected-cost model rather than Monte
// Carlo draws: a year's expected cost is premiums plus specialist copays
// plus percent_sick times the deductible exposure, so expected lifetime
// cost is linear in percent_sick.

// SweepPoint is one grid point of a percent-sick sensitivity sweep.
type SweepPoint struct {
	PercentSick          decimal.Decimal `json:"percentSick"`
	ExpectedLifetimeCost decimal.Decimal `json:"expectedLifetimeCost"`
}

// ExpectedAnnualCost returns the expectation of AnnualCost over the health
// state for one year offset.
func ExpectedAnnualCost(plan *domain.Plan, year int) (decimal.Decimal, error) {
	healthy, err := plan.AnnualCost(year, false)
	if err != nil {
		return decimal.Zero, err
	}
	deductibles, err := plan.TotalDeductibles(year)
	if err != nil {
		return decimal.Zero, err
	}
	return healthy.Add(deductibles.Mul(plan.PercentSick)), nil
}

// ExpectedLifetimeCost sums the expected annual cost over the plan horizon.
func ExpectedLifetimeCost(plan *domain.Plan) (decimal.Decimal, error) {
	total := decimal.Zero
	for year := 0; year < plan.SimulationYears; year++ {
		expected, err := ExpectedAnnualCost(plan, year)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(expected)
	}
	return total, nil
}

// RunPercentSickSweep evaluates the expected lifetime cost on an evenly
// spaced percent-sick grid from 0 to 1 inclusive. The plan's own
// percent_sick is ignored for the swept points.
func RunPercentSickSweep(plan *domain.Plan, steps int) ([]SweepPoint, error) {
	if steps < 2 {
		return nil, fmt.Errorf("sweep steps must be at least 2, got %d", steps)
	}

	points := make([]SweepPoint, steps)
	stepSize := decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(steps - 1)))
	for i := range points {
		swept := *plan
		swept.PercentSick = stepSize.Mul(decimal.NewFromInt(int64(i)))

		cost, err := ExpectedLifetimeCost(&swept)
		if err != nil {
			return nil, err
		}
		points[i] = SweepPoint{PercentSick: swept.PercentSick, ExpectedLifetimeCost: cost}
	}
	return points, nil
}
