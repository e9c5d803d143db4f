package compare

import (
	"fmt"

	"github.com/openmedicare/medisim/internal/calculation"
	"github.com/openmedicare/medisim/internal/domain"
	"github.com/shopspring/decimal"
)

// Comparator runs the simulation engine independently for two plans under
// the same trial count and reports the distribution of their difference.
type Comparator struct {
	Logger calculation.Logger
}

// NewComparator creates a comparator with a no-op logger.
func NewComparator() *Comparator {
	return &Comparator{Logger: calculation.NopLogger{}}
}

// SetLogger sets the comparator logger; nil resets to the no-op logger.
func (c *Comparator) SetLogger(logger calculation.Logger) {
	if logger == nil {
		c.Logger = calculation.NopLogger{}
		return
	}
	c.Logger = logger
}

// ComparePlans runs a comprehensive simulation for each plan. The plans'
// trials are statistically independent of each other: plan A draws from
// seed and plan B from seed+1, with no shared draws.
func (c *Comparator) ComparePlans(planA, planB *domain.Plan, numTrials int, seed int64) (*ComparisonResult, error) {
	if planA == nil || planB == nil {
		return nil, fmt.Errorf("both plans are required")
	}
	if numTrials <= 0 {
		return nil, fmt.Errorf("number of trials must be positive, got %d", numTrials)
	}

	c.Logger.Infof("comparing %s against %s over %d trials", planA.Name, planB.Name, numTrials)

	resultA, err := runPlan(planA, c.Logger, numTrials, seed)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", planA.Name, err)
	}
	resultB, err := runPlan(planB, c.Logger, numTrials, seed+1)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", planB.Name, err)
	}

	summaryA := summarize(resultA)
	summaryB := summarize(resultB)

	differences := make([]decimal.Decimal, numTrials)
	for i := range differences {
		differences[i] = resultA.LifetimeCosts[i].Sub(resultB.LifetimeCosts[i])
	}

	return &ComparisonResult{
		PlanA:          summaryA,
		PlanB:          summaryB,
		NumTrials:      numTrials,
		MeanDifference: summaryA.Mean.Sub(summaryB.Mean),
		StdDifference:  calculation.PopulationStdDev(differences),
	}, nil
}

func runPlan(plan *domain.Plan, logger calculation.Logger, numTrials int, seed int64) (*calculation.ComprehensiveResult, error) {
	engine, err := calculation.NewEngine(plan)
	if err != nil {
		return nil, err
	}
	engine.SetLogger(logger)
	return engine.RunComprehensiveSeeded(seed, numTrials)
}
