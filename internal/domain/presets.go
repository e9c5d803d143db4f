package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Preset defaults shared by all named plans. Callers adjust PercentSick,
// SimulationYears and StartYear before running.
const (
	DefaultPercentSick     = 0.2
	DefaultSimulationYears = 20
	DefaultStartYear       = 2026
)

// DefaultPlanG returns the Medigap Plan G preset: full coverage with the
// highest premium and the lowest deductible exposure.
func DefaultPlanG() *Plan {
	return &Plan{
		Name:                      "Plan G",
		Premium2026:               decimal.NewFromFloat(155.0),
		PremiumGrowthRate:         decimal.NewFromFloat(0.07),
		PlanDeductible2026:        decimal.NewFromFloat(257.0),
		PlanDeductibleGrowthRate:  decimal.NewFromFloat(0.06),
		PartDPremium2026:          decimal.NewFromFloat(49.0),
		PartDPremiumGrowthRate:    decimal.NewFromFloat(0.06),
		PartBDeductible2026:       decimal.NewFromFloat(210.0),
		PartBDeductibleGrowthRate: decimal.NewFromFloat(0.06),
		PercentSick:               decimal.NewFromFloat(DefaultPercentSick),
		SimulationYears:           DefaultSimulationYears,
		StartYear:                 DefaultStartYear,
	}
}

// DefaultPlanHDG returns the High-Deductible Plan G preset: a low premium
// traded for a large plan deductible.
func DefaultPlanHDG() *Plan {
	return &Plan{
		Name:                      "High-Deductible Plan G",
		Premium2026:               decimal.NewFromFloat(40.0),
		PremiumGrowthRate:         decimal.NewFromFloat(0.07),
		PlanDeductible2026:        decimal.NewFromFloat(2800.0),
		PlanDeductibleGrowthRate:  decimal.NewFromFloat(0.06),
		PartDPremium2026:          decimal.NewFromFloat(49.0),
		PartDPremiumGrowthRate:    decimal.NewFromFloat(0.06),
		PartBDeductible2026:       decimal.NewFromFloat(210.0),
		PartBDeductibleGrowthRate: decimal.NewFromFloat(0.06),
		PercentSick:               decimal.NewFromFloat(DefaultPercentSick),
		SimulationYears:           DefaultSimulationYears,
		StartYear:                 DefaultStartYear,
	}
}

// DefaultPlanN returns the Plan N preset: a mid-level premium with routine
// specialist copays billed every year regardless of health state.
func DefaultPlanN() *Plan {
	return &Plan{
		Name:                      "Plan N",
		Premium2026:               decimal.NewFromFloat(120.0),
		PremiumGrowthRate:         decimal.NewFromFloat(0.07),
		PlanDeductible2026:        decimal.NewFromFloat(257.0),
		PlanDeductibleGrowthRate:  decimal.NewFromFloat(0.06),
		PartDPremium2026:          decimal.NewFromFloat(49.0),
		PartDPremiumGrowthRate:    decimal.NewFromFloat(0.06),
		PartBDeductible2026:       decimal.NewFromFloat(210.0),
		PartBDeductibleGrowthRate: decimal.NewFromFloat(0.06),
		PercentSick:               decimal.NewFromFloat(DefaultPercentSick),
		SimulationYears:           DefaultSimulationYears,
		StartYear:                 DefaultStartYear,
		Specialist: &SpecialistVisits{
			VisitsPerYear:   4,
			Copay2026:       decimal.NewFromFloat(20.0),
			CopayGrowthRate: decimal.NewFromFloat(0.05),
		},
	}
}

// presetFactories maps canonical preset keys to their factories.
var presetFactories = map[string]func() *Plan{
	"plan-g":   DefaultPlanG,
	"plan-hdg": DefaultPlanHDG,
	"plan-n":   DefaultPlanN,
}

// PresetNames returns the canonical preset keys in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presetFactories))
	for name := range presetFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetPlan resolves a preset by key. Matching is case-insensitive and
// tolerant of spaces and underscores ("Plan G" resolves to "plan-g").
func PresetPlan(name string) (*Plan, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	if factory, ok := presetFactories[key]; ok {
		return factory(), nil
	}
	return nil, fmt.Errorf("unknown plan preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
}
