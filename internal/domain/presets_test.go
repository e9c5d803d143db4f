package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetNames_SortedAndComplete(t *testing.T) {
	assert.Equal(t, []string{"plan-g", "plan-hdg", "plan-n"}, PresetNames())
}

func TestPresetPlan_ResolvesCanonicalKeys(t *testing.T) {
	plan, err := PresetPlan("plan-g")
	require.NoError(t, err)
	assert.Equal(t, "Plan G", plan.Name)

	plan, err = PresetPlan("plan-hdg")
	require.NoError(t, err)
	assert.Equal(t, "High-Deductible Plan G", plan.Name)

	plan, err = PresetPlan("plan-n")
	require.NoError(t, err)
	assert.Equal(t, "Plan N", plan.Name)
	require.NotNil(t, plan.Specialist)
	assert.Equal(t, 4, plan.Specialist.VisitsPerYear)
}

func TestPresetPlan_TolerantMatching(t *testing.T) {
	for _, spelling := range []string{"Plan G", "PLAN_G", "  plan-g  ", "Plan_G"} {
		plan, err := PresetPlan(spelling)
		require.NoError(t, err, "spelling %q should resolve", spelling)
		assert.Equal(t, "Plan G", plan.Name)
	}
}

func TestPresetPlan_UnknownName(t *testing.T) {
	_, err := PresetPlan("plan-x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown plan preset "plan-x"`)
	assert.Contains(t, err.Error(), "plan-g, plan-hdg, plan-n")
}

func TestPresetPlan_ReturnsFreshCopies(t *testing.T) {
	first, err := PresetPlan("plan-g")
	require.NoError(t, err)
	first.Premium2026 = decimal.NewFromInt(999)

	second, err := PresetPlan("plan-g")
	require.NoError(t, err)
	assert.True(t, second.Premium2026.Equal(decimal.NewFromFloat(155.0)),
		"mutating one resolved preset must not leak into the next")
}

func TestPresets_ShareDefaults(t *testing.T) {
	for _, plan := range []*Plan{DefaultPlanG(), DefaultPlanHDG(), DefaultPlanN()} {
		assert.True(t, plan.PercentSick.Equal(decimal.NewFromFloat(DefaultPercentSick)))
		assert.Equal(t, DefaultSimulationYears, plan.SimulationYears)
		assert.Equal(t, DefaultStartYear, plan.StartYear)
	}
}
