package breakeven

import (
	"github.com/openmedicare/medisim/internal/domain"
	"github.com/shopspring/decimal"
)

// Analysis holds the two plans whose break-even point is being solved.
type Analysis struct {
	PlanA *domain.Plan
	PlanB *domain.Plan
}

// Result describes where (if anywhere) the two plans' expected lifetime
// costs cross as percent-sick sweeps from 0 to 1.
type Result struct {
	// BreakEvenPercentSick is the sickness probability at which the two
	// plans have equal expected lifetime cost. Only meaningful when Exists.
	BreakEvenPercentSick decimal.Decimal `json:"breakEvenPercentSick"`

	// Exists reports whether a crossing point falls inside [0, 1].
	Exists bool `json:"exists"`

	// CheaperWhenHealthy names the cheaper plan at percent_sick = 0;
	// CheaperWhenSick names the cheaper plan at percent_sick = 1. Either may
	// be empty when the plans tie at that endpoint.
	CheaperWhenHealthy string `json:"cheaperWhenHealthy"`
	CheaperWhenSick    string `json:"cheaperWhenSick"`

	// FixedCostDelta is plan A's fixed lifetime cost (premiums plus
	// specialist copays) minus plan B's. DeductibleDelta is the same for
	// lifetime deductible exposure.
	FixedCostDelta  decimal.Decimal `json:"fixedCostDelta"`
	DeductibleDelta decimal.Decimal `json:"deductibleDelta"`
}
