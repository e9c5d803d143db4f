package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanValidate_AcceptsPresets(t *testing.T) {
	for _, plan := range []*Plan{DefaultPlanG(), DefaultPlanHDG(), DefaultPlanN()} {
		assert.NoError(t, plan.Validate(), "preset %s should validate", plan.Name)
	}
}

func TestPlanValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Plan)
		wantErr string
	}{
		{
			name:    "missing name",
			mutate:  func(p *Plan) { p.Name = "" },
			wantErr: "plan name is required",
		},
		{
			name:    "zero premium",
			mutate:  func(p *Plan) { p.Premium2026 = decimal.Zero },
			wantErr: "premium_2026 must be positive",
		},
		{
			name:    "negative plan deductible",
			mutate:  func(p *Plan) { p.PlanDeductible2026 = decimal.NewFromInt(-10) },
			wantErr: "plan_deductible_2026 must be positive",
		},
		{
			name:    "negative growth rate",
			mutate:  func(p *Plan) { p.PremiumGrowthRate = decimal.NewFromFloat(-0.01) },
			wantErr: "premium_growth_rate must be non-negative",
		},
		{
			name:    "percent sick above one",
			mutate:  func(p *Plan) { p.PercentSick = decimal.NewFromFloat(1.5) },
			wantErr: "percent_sick must be between 0 and 1",
		},
		{
			name:    "percent sick negative",
			mutate:  func(p *Plan) { p.PercentSick = decimal.NewFromFloat(-0.1) },
			wantErr: "percent_sick must be between 0 and 1",
		},
		{
			name:    "zero simulation years",
			mutate:  func(p *Plan) { p.SimulationYears = 0 },
			wantErr: "simulation_years must be positive",
		},
		{
			name:    "zero start year",
			mutate:  func(p *Plan) { p.StartYear = 0 },
			wantErr: "start_year must be positive",
		},
		{
			name: "negative specialist copay",
			mutate: func(p *Plan) {
				p.Specialist = &SpecialistVisits{VisitsPerYear: 2, Copay2026: decimal.NewFromInt(-5)}
			},
			wantErr: "specialist copay_2026 must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := DefaultPlanG()
			tt.mutate(plan)
			err := plan.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewCustomPlan_RunsValidation(t *testing.T) {
	good := *DefaultPlanG()
	good.Name = "My Custom Plan"
	plan, err := NewCustomPlan(good)
	require.NoError(t, err)
	assert.Equal(t, "My Custom Plan", plan.Name)

	bad := *DefaultPlanG()
	bad.SimulationYears = -3
	_, err = NewCustomPlan(bad)
	assert.Error(t, err)
}

func TestPlanGrowth_YearZeroIsExact(t *testing.T) {
	plan := DefaultPlanG()

	premium, err := plan.Premium(0)
	require.NoError(t, err)
	assert.True(t, premium.Equal(decimal.NewFromFloat(155.0)),
		"year 0 premium should be exactly the base amount, got %s", premium)

	deductible, err := plan.PlanDeductible(0)
	require.NoError(t, err)
	assert.True(t, deductible.Equal(decimal.NewFromFloat(257.0)))
}

func TestPlanGrowth_Compounds(t *testing.T) {
	plan := DefaultPlanG()

	// 155 * 1.07 after one year
	premium, err := plan.Premium(1)
	require.NoError(t, err)
	assert.True(t, premium.Equal(decimal.NewFromFloat(165.85)),
		"expected 165.85, got %s", premium)

	// Two years of compounding must exceed two years of simple growth
	premium2, err := plan.Premium(2)
	require.NoError(t, err)
	simple := decimal.NewFromFloat(155.0).Mul(decimal.NewFromFloat(1.14))
	assert.True(t, premium2.GreaterThan(simple))
}

func TestPlanGrowth_NegativeYear(t *testing.T) {
	plan := DefaultPlanG()
	_, err := plan.Premium(-1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year must be non-negative")
}

func TestPlanAnnualCost_BaseYear(t *testing.T) {
	plan := DefaultPlanG()

	// (155 + 49) * 12 = 2448 for a healthy base year
	healthy, err := plan.AnnualCost(0, false)
	require.NoError(t, err)
	assert.True(t, healthy.Equal(decimal.NewFromFloat(2448.0)),
		"expected 2448.00, got %s", healthy)

	// 2448 + 257 + 210 = 2915 when sick
	sick, err := plan.AnnualCost(0, true)
	require.NoError(t, err)
	assert.True(t, sick.Equal(decimal.NewFromFloat(2915.0)),
		"expected 2915.00, got %s", sick)
}

func TestPlanAnnualCost_SpecialistAppliesEveryYear(t *testing.T) {
	plan := DefaultPlanN()

	// 4 visits at $20 in the base year
	specialist, err := plan.SpecialistCost(0)
	require.NoError(t, err)
	assert.True(t, specialist.Equal(decimal.NewFromFloat(80.0)))

	healthy, err := plan.AnnualCost(0, false)
	require.NoError(t, err)
	sick, err := plan.AnnualCost(0, true)
	require.NoError(t, err)

	// Specialist copays appear in both, deductibles only when sick
	deductibles, err := plan.TotalDeductibles(0)
	require.NoError(t, err)
	assert.True(t, sick.Sub(healthy).Equal(deductibles))

	premiums, err := plan.TotalPremiums(0)
	require.NoError(t, err)
	assert.True(t, healthy.Equal(premiums.Add(specialist)))
}

func TestPlanSpecialistCost_ZeroWithoutExtension(t *testing.T) {
	plan := DefaultPlanG()
	cost, err := plan.SpecialistCost(5)
	require.NoError(t, err)
	assert.True(t, cost.IsZero())
}

func TestPlanCalendarYear(t *testing.T) {
	plan := DefaultPlanG()
	assert.Equal(t, 2026, plan.CalendarYear(0))
	assert.Equal(t, 2045, plan.CalendarYear(19))
}
