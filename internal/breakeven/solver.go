package breakeven

import (
	"fmt"

	"github.com/openmedicare/medisim/internal/domain"
	"github.com/shopspring/decimal"
)

// Expected lifetime cost is linear in percent-sick: E(p) = F + p*D, where F
// is the lifetime fixed cost (premiums plus specialist copays) and D is the
// lifetime deductible exposure. The crossing of two such lines has a closed
// form; no Monte Carlo draws are needed here.

// NewAnalysis creates a break-even analysis over two plans. The plans must
// share the same simulation horizon for their lifetime costs to be
// comparable.
func NewAnalysis(planA, planB *domain.Plan) (*Analysis, error) {
	if planA == nil || planB == nil {
		return nil, fmt.Errorf("both plans are required")
	}
	if planA.SimulationYears != planB.SimulationYears {
		return nil, fmt.Errorf("plans must share a simulation horizon: %d years vs %d years",
			planA.SimulationYears, planB.SimulationYears)
	}
	return &Analysis{PlanA: planA, PlanB: planB}, nil
}

// Solve computes the break-even percent-sick value between the two plans.
func (a *Analysis) Solve() (*Result, error) {
	fixedA, deductibleA, err := lifetimeComponents(a.PlanA)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", a.PlanA.Name, err)
	}
	fixedB, deductibleB, err := lifetimeComponents(a.PlanB)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", a.PlanB.Name, err)
	}

	result := &Result{
		FixedCostDelta:  fixedA.Sub(fixedB),
		DeductibleDelta: deductibleA.Sub(deductibleB),
	}

	costAtZeroA := fixedA
	costAtZeroB := fixedB
	costAtOneA := fixedA.Add(deductibleA)
	costAtOneB := fixedB.Add(deductibleB)
	result.CheaperWhenHealthy = cheaperName(a.PlanA, a.PlanB, costAtZeroA, costAtZeroB)
	result.CheaperWhenSick = cheaperName(a.PlanA, a.PlanB, costAtOneA, costAtOneB)

	// Equal deductible exposure means the two cost lines are parallel; they
	// never cross unless fixed costs are also equal.
	if result.DeductibleDelta.IsZero() {
		return result, nil
	}

	crossing := result.FixedCostDelta.Neg().Div(result.DeductibleDelta)
	if crossing.IsNegative() || crossing.GreaterThan(decimal.NewFromInt(1)) {
		// One plan dominates across the whole probability range.
		return result, nil
	}

	result.BreakEvenPercentSick = crossing
	result.Exists = true
	return result, nil
}

// lifetimeComponents sums a plan's fixed costs and deductible exposure over
// its horizon.
func lifetimeComponents(plan *domain.Plan) (fixed, deductible decimal.Decimal, err error) {
	for year := 0; year < plan.SimulationYears; year++ {
		healthy, err := plan.AnnualCost(year, false)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		yearDeductible, err := plan.TotalDeductibles(year)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		fixed = fixed.Add(healthy)
		deductible = deductible.Add(yearDeductible)
	}
	return fixed, deductible, nil
}

func cheaperName(planA, planB *domain.Plan, costA, costB decimal.Decimal) string {
	switch {
	case costA.LessThan(costB):
		return planA.Name
	case costB.LessThan(costA):
		return planB.Name
	default:
		return ""
	}
}
