package calculation

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/openmedicare/medisim/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine runs Monte Carlo cost projections for a single plan. It carries no
// persistent state between runs; randomness is always threaded in explicitly
// so callers (and tests) control reproducibility.
type Engine struct {
	plan   *domain.Plan
	calc   *CostCalculator
	Logger Logger
}

// TrialResult is one complete simulated lifetime: a health-state draw and
// the per-year costs it produced, aligned index for index.
type TrialResult struct {
	Costs        []decimal.Decimal `json:"costs"`
	HealthStates []bool            `json:"healthStates"`
}

// LifetimeCost returns the sum of the trial's per-year costs.
func (tr *TrialResult) LifetimeCost() decimal.Decimal {
	return Sum(tr.Costs)
}

// YearStatistics aggregates one projection year across all trials.
type YearStatistics struct {
	Year   int             `json:"year"`
	Mean   decimal.Decimal `json:"mean"`
	StdDev decimal.Decimal `json:"stdDev"`
	Min    decimal.Decimal `json:"min"`
	Max    decimal.Decimal `json:"max"`
	Total  decimal.Decimal `json:"total"`
}

// ComprehensiveResult bundles everything a consumer needs from one
// simulation request: the raw trials, the per-year statistics, the
// per-trial lifetime costs, and an echo of the plan configuration.
type ComprehensiveResult struct {
	Plan             *domain.Plan      `json:"plan"`
	NumTrials        int               `json:"numTrials"`
	Trials           []*TrialResult    `json:"trials,omitempty"`
	YearlyStatistics []YearStatistics  `json:"yearlyStatistics"`
	LifetimeCosts    []decimal.Decimal `json:"lifetimeCosts"`
}

// NewEngine creates a simulation engine for a validated plan.
func NewEngine(plan *domain.Plan) (*Engine, error) {
	calc, err := NewCostCalculator(plan)
	if err != nil {
		return nil, err
	}
	return &Engine{
		plan:   plan,
		calc:   calc,
		Logger: NopLogger{},
	}, nil
}

// SetLogger sets the engine logger; nil resets to the no-op logger.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = logger
}

// Plan returns the plan this engine simulates.
func (e *Engine) Plan() *domain.Plan {
	return e.plan
}

// GenerateHealthStates draws an independent Bernoulli health state for each
// year: year i is sick iff a uniform draw in [0,1) falls below the plan's
// percent_sick. There is no autocorrelation across years.
func (e *Engine) GenerateHealthStates(rng *rand.Rand, numYears int) ([]bool, error) {
	if numYears <= 0 {
		return nil, fmt.Errorf("number of years must be positive, got %d", numYears)
	}

	percentSick := e.plan.PercentSick.InexactFloat64()
	states := make([]bool, numYears)
	for i := range states {
		states[i] = rng.Float64() < percentSick
	}
	return states, nil
}

// RunSingleTrial generates one health-state sequence over the plan's horizon
// and maps it through the cost calculator.
func (e *Engine) RunSingleTrial(rng *rand.Rand) (*TrialResult, error) {
	states, err := e.GenerateHealthStates(rng, e.plan.SimulationYears)
	if err != nil {
		return nil, err
	}
	costs, err := e.calc.AllYearsCosts(states)
	if err != nil {
		return nil, err
	}
	return &TrialResult{Costs: costs, HealthStates: states}, nil
}

// RunMultipleTrials runs numTrials independent trials sequentially from a
// single random source.
func (e *Engine) RunMultipleTrials(rng *rand.Rand, numTrials int) ([]*TrialResult, error) {
	if numTrials <= 0 {
		return nil, fmt.Errorf("number of trials must be positive, got %d", numTrials)
	}

	trials := make([]*TrialResult, numTrials)
	for i := range trials {
		trial, err := e.RunSingleTrial(rng)
		if err != nil {
			return nil, err
		}
		trials[i] = trial
	}
	return trials, nil
}

// AggregateStatistics computes per-year mean, population standard deviation,
// min, max and total across a non-empty trial set.
func (e *Engine) AggregateStatistics(trials []*TrialResult) ([]YearStatistics, error) {
	if len(trials) == 0 {
		return nil, fmt.Errorf("at least one trial is required")
	}

	numYears := e.plan.SimulationYears
	stats := make([]YearStatistics, numYears)
	yearCosts := make([]decimal.Decimal, len(trials))

	for year := 0; year < numYears; year++ {
		for i, trial := range trials {
			yearCosts[i] = trial.Costs[year]
		}
		min, max := MinMax(yearCosts)
		stats[year] = YearStatistics{
			Year:   e.plan.CalendarYear(year),
			Mean:   Mean(yearCosts),
			StdDev: PopulationStdDev(yearCosts),
			Min:    min,
			Max:    max,
			Total:  Sum(yearCosts),
		}
	}
	return stats, nil
}

// LifetimeCosts returns each trial's total cost over the whole horizon.
func (e *Engine) LifetimeCosts(trials []*TrialResult) []decimal.Decimal {
	costs := make([]decimal.Decimal, len(trials))
	for i, trial := range trials {
		costs[i] = trial.LifetimeCost()
	}
	return costs
}

// RunComprehensive is the top-level entry point: it runs the trials and both
// aggregations and bundles them with the plan echo.
func (e *Engine) RunComprehensive(rng *rand.Rand, numTrials int) (*ComprehensiveResult, error) {
	e.Logger.Debugf("running %d trials for plan %s over %d years",
		numTrials, e.plan.Name, e.plan.SimulationYears)

	trials, err := e.RunMultipleTrials(rng, numTrials)
	if err != nil {
		return nil, err
	}
	stats, err := e.AggregateStatistics(trials)
	if err != nil {
		return nil, err
	}

	return &ComprehensiveResult{
		Plan:             e.plan,
		NumTrials:        numTrials,
		Trials:           trials,
		YearlyStatistics: stats,
		LifetimeCosts:    e.LifetimeCosts(trials),
	}, nil
}

// RunComprehensiveSeeded runs a comprehensive simulation from a fresh
// generator seeded with the given value. The same seed and trial count
// reproduce identical results.
func (e *Engine) RunComprehensiveSeeded(seed int64, numTrials int) (*ComprehensiveResult, error) {
	return e.RunComprehensive(rand.New(rand.NewSource(seed)), numTrials)
}

// RunComprehensiveParallel fans the trials out across a bounded worker pool.
// Each trial draws from its own generator seeded with seed+index, so results
// are identical for the same seed regardless of worker count. Results land
// in indexed slots; ordering is preserved.
func (e *Engine) RunComprehensiveParallel(seed int64, numTrials, workers int) (*ComprehensiveResult, error) {
	if numTrials <= 0 {
		return nil, fmt.Errorf("number of trials must be positive, got %d", numTrials)
	}
	if workers <= 0 {
		return nil, fmt.Errorf("number of workers must be positive, got %d", workers)
	}

	e.Logger.Debugf("running %d trials for plan %s across %d workers",
		numTrials, e.plan.Name, workers)

	trials := make([]*TrialResult, numTrials)
	errs := make([]error, numTrials)
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i := 0; i < numTrials; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			rng := rand.New(rand.NewSource(seed + int64(idx)))
			trial, err := e.RunSingleTrial(rng)
			trials[idx] = trial
			errs[idx] = err
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	stats, err := e.AggregateStatistics(trials)
	if err != nil {
		return nil, err
	}

	return &ComprehensiveResult{
		Plan:             e.plan,
		NumTrials:        numTrials,
		Trials:           trials,
		YearlyStatistics: stats,
		LifetimeCosts:    e.LifetimeCosts(trials),
	}, nil
}
