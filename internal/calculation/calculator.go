package calculation

import (
	"fmt"

	"github.com/openmedicare/medisim/internal/domain"
	"github.com/shopspring/decimal"
)

// CostCalculator is a thin computed-value layer over a validated Plan. It
// exposes the plan's per-year quantities plus a whole-horizon projection
// given a health-state sequence. All randomness lives upstream in the
// simulation engine; everything here is a pure mapping.
type CostCalculator struct {
	plan *domain.Plan
}

// NewCostCalculator creates a cost calculator for a plan.
func NewCostCalculator(plan *domain.Plan) (*CostCalculator, error) {
	if plan == nil {
		return nil, fmt.Errorf("plan is required")
	}
	return &CostCalculator{plan: plan}, nil
}

// Plan returns the underlying plan.
func (cc *CostCalculator) Plan() *domain.Plan {
	return cc.plan
}

// TotalPremiums returns the combined annual premium cost for a year offset.
func (cc *CostCalculator) TotalPremiums(year int) (decimal.Decimal, error) {
	return cc.plan.TotalPremiums(year)
}

// TotalDeductibles returns the combined annual deductible exposure for a
// year offset.
func (cc *CostCalculator) TotalDeductibles(year int) (decimal.Decimal, error) {
	return cc.plan.TotalDeductibles(year)
}

// AnnualCost returns the total cost for one year under a given health state.
func (cc *CostCalculator) AnnualCost(year int, isSick bool) (decimal.Decimal, error) {
	return cc.plan.AnnualCost(year, isSick)
}

// AllYearsCosts maps a health-state sequence to per-year costs across the
// whole simulation horizon. The sequence length must equal the plan's
// simulation_years.
func (cc *CostCalculator) AllYearsCosts(healthStates []bool) ([]decimal.Decimal, error) {
	if len(healthStates) != cc.plan.SimulationYears {
		return nil, fmt.Errorf("health states length %d does not match simulation years %d",
			len(healthStates), cc.plan.SimulationYears)
	}

	costs := make([]decimal.Decimal, len(healthStates))
	for year, isSick := range healthStates {
		cost, err := cc.plan.AnnualCost(year, isSick)
		if err != nil {
			return nil, err
		}
		costs[year] = cost
	}
	return costs, nil
}
