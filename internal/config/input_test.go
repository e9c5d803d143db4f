package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_PresetWithDefaults(t *testing.T) {
	yamlData := `
plans:
  - preset: plan-g
  - preset: plan-hdg
`
	scenario, err := NewInputParser().LoadScenario([]byte(yamlData))
	require.NoError(t, err)

	assert.Equal(t, DefaultTrials, scenario.Simulation.Trials)
	assert.Equal(t, int64(DefaultSeed), scenario.Simulation.Seed)
	require.Len(t, scenario.Plans, 2)

	plan, err := scenario.Plans[0].Resolve()
	require.NoError(t, err)
	assert.Equal(t, "Plan G", plan.Name)
}

func TestLoadScenario_ExplicitSimulationSettings(t *testing.T) {
	yamlData := `
simulation:
  trials: 5000
  seed: 7
plans:
  - preset: plan-n
`
	scenario, err := NewInputParser().LoadScenario([]byte(yamlData))
	require.NoError(t, err)

	assert.Equal(t, 5000, scenario.Simulation.Trials)
	assert.Equal(t, int64(7), scenario.Simulation.Seed)
}

func TestLoadScenario_PresetOverrides(t *testing.T) {
	yamlData := `
plans:
  - preset: plan-g
    name: Discounted Plan G
    premium_2026: 120.50
    percent_sick: 0.4
    simulation_years: 10
`
	scenario, err := NewInputParser().LoadScenario([]byte(yamlData))
	require.NoError(t, err)

	plan, err := scenario.Plans[0].Resolve()
	require.NoError(t, err)

	assert.Equal(t, "Discounted Plan G", plan.Name)
	assert.True(t, plan.Premium2026.Equal(decimal.NewFromFloat(120.50)))
	assert.True(t, plan.PercentSick.Equal(decimal.NewFromFloat(0.4)))
	assert.Equal(t, 10, plan.SimulationYears)

	// Fields without overrides keep the preset values
	assert.True(t, plan.PlanDeductible2026.Equal(decimal.NewFromFloat(257.0)))
	assert.True(t, plan.PremiumGrowthRate.Equal(decimal.NewFromFloat(0.07)))
}

func TestLoadScenario_InlineCustomPlan(t *testing.T) {
	yamlData := `
plans:
  - name: Custom Supplement
    premium_2026: 99.00
    plan_deductible_2026: 500
    part_d_premium_2026: 45
    part_b_deductible_2026: 210
    premium_growth_rate: 0.05
    plan_deductible_growth_rate: 0.05
    part_d_premium_growth_rate: 0.05
    part_b_deductible_growth_rate: 0.05
    percent_sick: 0.25
    specialist_visits:
      visits_per_year: 2
      copay_2026: 30
      copay_growth_rate: 0.04
`
	scenario, err := NewInputParser().LoadScenario([]byte(yamlData))
	require.NoError(t, err)

	plan, err := scenario.Plans[0].Resolve()
	require.NoError(t, err)

	assert.Equal(t, "Custom Supplement", plan.Name)
	assert.Equal(t, 20, plan.SimulationYears, "inline plans inherit the default horizon")
	assert.Equal(t, 2026, plan.StartYear)
	require.NotNil(t, plan.Specialist)
	assert.Equal(t, 2, plan.Specialist.VisitsPerYear)
	assert.True(t, plan.Specialist.Copay2026.Equal(decimal.NewFromInt(30)))
}

func TestLoadScenario_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			yaml:    "plans: [",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "no plans",
			yaml:    "simulation:\n  trials: 100\n",
			wantErr: "at least one plan is required",
		},
		{
			name:    "negative trials",
			yaml:    "simulation:\n  trials: -5\nplans:\n  - preset: plan-g\n",
			wantErr: "simulation trials must be positive",
		},
		{
			name:    "unknown preset",
			yaml:    "plans:\n  - preset: plan-z\n",
			wantErr: "unknown plan preset",
		},
		{
			name:    "inline plan without name",
			yaml:    "plans:\n  - premium_2026: 100\n",
			wantErr: "a plan without a preset requires a name",
		},
		{
			name:    "invalid override",
			yaml:    "plans:\n  - preset: plan-g\n    percent_sick: 1.8\n",
			wantErr: "percent_sick must be between 0 and 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().LoadScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenarioFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	content := `
simulation:
  trials: 250
plans:
  - preset: plan-g
  - preset: plan-n
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	scenario, err := NewInputParser().LoadScenarioFile(path)
	require.NoError(t, err)
	assert.Equal(t, 250, scenario.Simulation.Trials)
	assert.Len(t, scenario.Plans, 2)
}

func TestLoadScenarioFile_Missing(t *testing.T) {
	_, err := NewInputParser().LoadScenarioFile("does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file does-not-exist.yaml")
}
