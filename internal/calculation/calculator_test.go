package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmedicare/medisim/internal/domain"
)

func TestNewCostCalculator_RequiresPlan(t *testing.T) {
	_, err := NewCostCalculator(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan is required")
}

func TestCostCalculator_DelegatesToPlan(t *testing.T) {
	plan := domain.DefaultPlanG()
	calc, err := NewCostCalculator(plan)
	require.NoError(t, err)

	premiums, err := calc.TotalPremiums(0)
	require.NoError(t, err)
	assert.True(t, premiums.Equal(decimal.NewFromFloat(2448.0)))

	deductibles, err := calc.TotalDeductibles(0)
	require.NoError(t, err)
	assert.True(t, deductibles.Equal(decimal.NewFromFloat(467.0)))

	sick, err := calc.AnnualCost(0, true)
	require.NoError(t, err)
	assert.True(t, sick.Equal(decimal.NewFromFloat(2915.0)))

	assert.Same(t, plan, calc.Plan())
}

func TestAllYearsCosts_MapsHealthStates(t *testing.T) {
	plan := domain.DefaultPlanG()
	plan.SimulationYears = 3
	calc, err := NewCostCalculator(plan)
	require.NoError(t, err)

	costs, err := calc.AllYearsCosts([]bool{false, true, false})
	require.NoError(t, err)
	require.Len(t, costs, 3)

	healthy0, _ := plan.AnnualCost(0, false)
	sick1, _ := plan.AnnualCost(1, true)
	healthy2, _ := plan.AnnualCost(2, false)

	assert.True(t, costs[0].Equal(healthy0))
	assert.True(t, costs[1].Equal(sick1))
	assert.True(t, costs[2].Equal(healthy2))
}

func TestAllYearsCosts_LengthMismatch(t *testing.T) {
	plan := domain.DefaultPlanG()
	calc, err := NewCostCalculator(plan)
	require.NoError(t, err)

	_, err = calc.AllYearsCosts([]bool{true, false})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "health states length 2 does not match simulation years 20")
}
