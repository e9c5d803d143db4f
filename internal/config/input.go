package config

import (
	"fmt"
	"os"

	"github.com/openmedicare/medisim/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Default simulation settings applied when a scenario file omits them.
const (
	DefaultTrials = 1000
	DefaultSeed   = 42
)

// Scenario is the root of a simulation scenario file.
type Scenario struct {
	Simulation SimulationSettings `yaml:"simulation" json:"simulation"`
	Plans      []PlanSpec         `yaml:"plans" json:"plans"`
}

// SimulationSettings controls the Monte Carlo run.
type SimulationSettings struct {
	Trials int   `yaml:"trials" json:"trials"`
	Seed   int64 `yaml:"seed" json:"seed"`
}

// PlanSpec describes one plan in a scenario file: either a preset reference
// with optional overrides, or a fully inline custom plan. Override fields
// are pointers so that an omitted field keeps the preset's value.
type PlanSpec struct {
	Preset string `yaml:"preset,omitempty" json:"preset,omitempty"`
	Name   string `yaml:"name,omitempty" json:"name,omitempty"`

	Premium2026         *decimal.Decimal `yaml:"premium_2026,omitempty" json:"premium_2026,omitempty"`
	PlanDeductible2026  *decimal.Decimal `yaml:"plan_deductible_2026,omitempty" json:"plan_deductible_2026,omitempty"`
	PartDPremium2026    *decimal.Decimal `yaml:"part_d_premium_2026,omitempty" json:"part_d_premium_2026,omitempty"`
	PartBDeductible2026 *decimal.Decimal `yaml:"part_b_deductible_2026,omitempty" json:"part_b_deductible_2026,omitempty"`

	PremiumGrowthRate         *decimal.Decimal `yaml:"premium_growth_rate,omitempty" json:"premium_growth_rate,omitempty"`
	PlanDeductibleGrowthRate  *decimal.Decimal `yaml:"plan_deductible_growth_rate,omitempty" json:"plan_deductible_growth_rate,omitempty"`
	PartDPremiumGrowthRate    *decimal.Decimal `yaml:"part_d_premium_growth_rate,omitempty" json:"part_d_premium_growth_rate,omitempty"`
	PartBDeductibleGrowthRate *decimal.Decimal `yaml:"part_b_deductible_growth_rate,omitempty" json:"part_b_deductible_growth_rate,omitempty"`

	PercentSick     *decimal.Decimal `yaml:"percent_sick,omitempty" json:"percent_sick,omitempty"`
	SimulationYears *int             `yaml:"simulation_years,omitempty" json:"simulation_years,omitempty"`
	StartYear       *int             `yaml:"start_year,omitempty" json:"start_year,omitempty"`

	Specialist *domain.SpecialistVisits `yaml:"specialist_visits,omitempty" json:"specialist_visits,omitempty"`
}

// InputParser handles parsing of scenario files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadScenarioFile loads and validates a scenario from a YAML file.
func (ip *InputParser) LoadScenarioFile(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", filename, err)
	}
	scenario, err := ip.LoadScenario(data)
	if err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", filename, err)
	}
	return scenario, nil
}

// LoadScenario parses and validates scenario YAML, applying defaults for
// omitted simulation settings.
func (ip *InputParser) LoadScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Simulation.Trials == 0 {
		scenario.Simulation.Trials = DefaultTrials
	}
	if scenario.Simulation.Seed == 0 {
		scenario.Simulation.Seed = DefaultSeed
	}

	if err := ip.ValidateScenario(&scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// ValidateScenario validates the scenario structure and resolves every plan
// spec to surface configuration errors at load time.
func (ip *InputParser) ValidateScenario(scenario *Scenario) error {
	if scenario.Simulation.Trials <= 0 {
		return fmt.Errorf("simulation trials must be positive, got %d", scenario.Simulation.Trials)
	}
	if len(scenario.Plans) == 0 {
		return fmt.Errorf("at least one plan is required")
	}
	for i := range scenario.Plans {
		if _, err := scenario.Plans[i].Resolve(); err != nil {
			return fmt.Errorf("plan %d validation failed: %w", i, err)
		}
	}
	return nil
}

// Resolve merges a plan spec into a validated plan. A preset reference
// starts from the preset's constants with overrides applied on top; a spec
// without a preset must supply every base amount and rate inline.
func (ps *PlanSpec) Resolve() (*domain.Plan, error) {
	var plan *domain.Plan

	if ps.Preset != "" {
		preset, err := domain.PresetPlan(ps.Preset)
		if err != nil {
			return nil, err
		}
		plan = preset
	} else {
		if ps.Name == "" {
			return nil, fmt.Errorf("a plan without a preset requires a name")
		}
		plan = &domain.Plan{
			SimulationYears: domain.DefaultSimulationYears,
			StartYear:       domain.DefaultStartYear,
		}
	}

	if ps.Name != "" {
		plan.Name = ps.Name
	}

	applyDecimal := func(dst *decimal.Decimal, src *decimal.Decimal) {
		if src != nil {
			*dst = *src
		}
	}
	applyDecimal(&plan.Premium2026, ps.Premium2026)
	applyDecimal(&plan.PlanDeductible2026, ps.PlanDeductible2026)
	applyDecimal(&plan.PartDPremium2026, ps.PartDPremium2026)
	applyDecimal(&plan.PartBDeductible2026, ps.PartBDeductible2026)
	applyDecimal(&plan.PremiumGrowthRate, ps.PremiumGrowthRate)
	applyDecimal(&plan.PlanDeductibleGrowthRate, ps.PlanDeductibleGrowthRate)
	applyDecimal(&plan.PartDPremiumGrowthRate, ps.PartDPremiumGrowthRate)
	applyDecimal(&plan.PartBDeductibleGrowthRate, ps.PartBDeductibleGrowthRate)
	applyDecimal(&plan.PercentSick, ps.PercentSick)

	if ps.SimulationYears != nil {
		plan.SimulationYears = *ps.SimulationYears
	}
	if ps.StartYear != nil {
		plan.StartYear = *ps.StartYear
	}
	if ps.Specialist != nil {
		specialist := *ps.Specialist
		plan.Specialist = &specialist
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}
