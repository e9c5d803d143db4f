package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Plan represents a single Medicare supplemental insurance plan: base
// premium/deductible amounts anchored at 2026 plus annual compounding
// growth rates. A Plan is immutable once validated; the simulation never
// mutates it.
type Plan struct {
	Name string `yaml:"name" json:"name"`

	// Base monetary amounts (2026 dollars). Premiums are monthly,
	// deductibles are annual.
	Premium2026         decimal.Decimal `yaml:"premium_2026" json:"premium_2026"`
	PlanDeductible2026  decimal.Decimal `yaml:"plan_deductible_2026" json:"plan_deductible_2026"`
	PartDPremium2026    decimal.Decimal `yaml:"part_d_premium_2026" json:"part_d_premium_2026"`
	PartBDeductible2026 decimal.Decimal `yaml:"part_b_deductible_2026" json:"part_b_deductible_2026"`

	// Annual compounding growth rates (e.g. 0.07 = 7%)
	PremiumGrowthRate         decimal.Decimal `yaml:"premium_growth_rate" json:"premium_growth_rate"`
	PlanDeductibleGrowthRate  decimal.Decimal `yaml:"plan_deductible_growth_rate" json:"plan_deductible_growth_rate"`
	PartDPremiumGrowthRate    decimal.Decimal `yaml:"part_d_premium_growth_rate" json:"part_d_premium_growth_rate"`
	PartBDeductibleGrowthRate decimal.Decimal `yaml:"part_b_deductible_growth_rate" json:"part_b_deductible_growth_rate"`

	// PercentSick is the Bernoulli probability that any simulated year is a
	// high-utilization year.
	PercentSick decimal.Decimal `yaml:"percent_sick" json:"percent_sick"`

	SimulationYears int `yaml:"simulation_years" json:"simulation_years"`
	StartYear       int `yaml:"start_year" json:"start_year"`

	// Specialist is an optional extension: routine specialist visits billed
	// every year regardless of health state.
	Specialist *SpecialistVisits `yaml:"specialist_visits,omitempty" json:"specialist_visits,omitempty"`
}

// SpecialistVisits configures the optional routine specialist copay costs.
type SpecialistVisits struct {
	VisitsPerYear   int             `yaml:"visits_per_year" json:"visits_per_year"`
	Copay2026       decimal.Decimal `yaml:"copay_2026" json:"copay_2026"`
	CopayGrowthRate decimal.Decimal `yaml:"copay_growth_rate" json:"copay_growth_rate"`
}

// Validate checks every plan invariant. Violations are configuration errors
// and fail here at construction time, never at simulation time.
func (p *Plan) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("plan name is required")
	}

	positives := []struct {
		label string
		value decimal.Decimal
	}{
		{"premium_2026", p.Premium2026},
		{"plan_deductible_2026", p.PlanDeductible2026},
		{"part_d_premium_2026", p.PartDPremium2026},
		{"part_b_deductible_2026", p.PartBDeductible2026},
	}
	for _, b := range positives {
		if b.value.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%s must be positive, got %s", b.label, b.value)
		}
	}

	rates := []struct {
		label string
		value decimal.Decimal
	}{
		{"premium_growth_rate", p.PremiumGrowthRate},
		{"plan_deductible_growth_rate", p.PlanDeductibleGrowthRate},
		{"part_d_premium_growth_rate", p.PartDPremiumGrowthRate},
		{"part_b_deductible_growth_rate", p.PartBDeductibleGrowthRate},
	}
	for _, r := range rates {
		if r.value.IsNegative() {
			return fmt.Errorf("%s must be non-negative, got %s", r.label, r.value)
		}
	}

	if p.PercentSick.IsNegative() || p.PercentSick.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("percent_sick must be between 0 and 1, got %s", p.PercentSick)
	}
	if p.SimulationYears <= 0 {
		return fmt.Errorf("simulation_years must be positive, got %d", p.SimulationYears)
	}
	if p.StartYear <= 0 {
		return fmt.Errorf("start_year must be positive, got %d", p.StartYear)
	}

	if s := p.Specialist; s != nil {
		if s.VisitsPerYear < 0 {
			return fmt.Errorf("specialist visits_per_year must be non-negative, got %d", s.VisitsPerYear)
		}
		if s.Copay2026.IsNegative() {
			return fmt.Errorf("specialist copay_2026 must be non-negative, got %s", s.Copay2026)
		}
		if s.CopayGrowthRate.IsNegative() {
			return fmt.Errorf("specialist copay_growth_rate must be non-negative, got %s", s.CopayGrowthRate)
		}
	}

	return nil
}

// NewCustomPlan validates a user-supplied plan and returns it. Custom plans
// run through exactly the same validation as the named presets.
func NewCustomPlan(p Plan) (*Plan, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// growAmount applies compound growth to a base amount. Year 0 returns the
// base exactly, with no floating-point growth applied.
func growAmount(base, rate decimal.Decimal, year int) (decimal.Decimal, error) {
	if year < 0 {
		return decimal.Zero, fmt.Errorf("year must be non-negative, got %d", year)
	}
	if year == 0 {
		return base, nil
	}
	factor := decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(year)))
	return base.Mul(factor), nil
}

// Premium returns the monthly Medigap premium for a year offset from the
// base year.
func (p *Plan) Premium(year int) (decimal.Decimal, error) {
	return growAmount(p.Premium2026, p.PremiumGrowthRate, year)
}

// PlanDeductible returns the annual plan deductible for a year offset.
func (p *Plan) PlanDeductible(year int) (decimal.Decimal, error) {
	return growAmount(p.PlanDeductible2026, p.PlanDeductibleGrowthRate, year)
}

// PartDPremium returns the monthly Part D premium for a year offset.
func (p *Plan) PartDPremium(year int) (decimal.Decimal, error) {
	return growAmount(p.PartDPremium2026, p.PartDPremiumGrowthRate, year)
}

// PartBDeductible returns the annual Part B deductible for a year offset.
func (p *Plan) PartBDeductible(year int) (decimal.Decimal, error) {
	return growAmount(p.PartBDeductible2026, p.PartBDeductibleGrowthRate, year)
}

// TotalPremiums returns the combined annual premium cost. Premiums are
// monthly amounts; the x12 converts only the premium components.
func (p *Plan) TotalPremiums(year int) (decimal.Decimal, error) {
	premium, err := p.Premium(year)
	if err != nil {
		return decimal.Zero, err
	}
	partD, err := p.PartDPremium(year)
	if err != nil {
		return decimal.Zero, err
	}
	return premium.Add(partD).Mul(decimal.NewFromInt(12)), nil
}

// TotalDeductibles returns the combined annual deductible exposure.
func (p *Plan) TotalDeductibles(year int) (decimal.Decimal, error) {
	planDed, err := p.PlanDeductible(year)
	if err != nil {
		return decimal.Zero, err
	}
	partB, err := p.PartBDeductible(year)
	if err != nil {
		return decimal.Zero, err
	}
	return planDed.Add(partB), nil
}

// SpecialistCost returns the annual routine specialist copay cost, zero when
// the extension is not configured. Specialist visits are routine, so this
// cost applies every year independent of health state.
func (p *Plan) SpecialistCost(year int) (decimal.Decimal, error) {
	if year < 0 {
		return decimal.Zero, fmt.Errorf("year must be non-negative, got %d", year)
	}
	if p.Specialist == nil {
		return decimal.Zero, nil
	}
	copay, err := growAmount(p.Specialist.Copay2026, p.Specialist.CopayGrowthRate, year)
	if err != nil {
		return decimal.Zero, err
	}
	return copay.Mul(decimal.NewFromInt(int64(p.Specialist.VisitsPerYear))), nil
}

// AnnualCost returns the total cost for one simulated year. Premiums and
// specialist copays apply every year; deductibles apply only on sick years.
func (p *Plan) AnnualCost(year int, isSick bool) (decimal.Decimal, error) {
	premiums, err := p.TotalPremiums(year)
	if err != nil {
		return decimal.Zero, err
	}
	specialist, err := p.SpecialistCost(year)
	if err != nil {
		return decimal.Zero, err
	}
	total := premiums.Add(specialist)
	if isSick {
		deductibles, err := p.TotalDeductibles(year)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(deductibles)
	}
	return total, nil
}

// CalendarYear maps a year offset to its calendar year.
func (p *Plan) CalendarYear(offset int) int {
	return p.StartYear + offset
}
