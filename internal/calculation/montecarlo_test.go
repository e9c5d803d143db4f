package calculation

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmedicare/medisim/internal/domain"
)

func newTestEngine(t *testing.T, plan *domain.Plan) *Engine {
	t.Helper()
	engine, err := NewEngine(plan)
	require.NoError(t, err)
	return engine
}

func TestGenerateHealthStates_Extremes(t *testing.T) {
	alwaysSick := domain.DefaultPlanG()
	alwaysSick.PercentSick = decimal.NewFromInt(1)
	engine := newTestEngine(t, alwaysSick)

	states, err := engine.GenerateHealthStates(rand.New(rand.NewSource(1)), 50)
	require.NoError(t, err)
	for _, sick := range states {
		assert.True(t, sick, "percent_sick 1.0 must make every year sick")
	}

	neverSick := domain.DefaultPlanG()
	neverSick.PercentSick = decimal.Zero
	engine = newTestEngine(t, neverSick)

	states, err = engine.GenerateHealthStates(rand.New(rand.NewSource(1)), 50)
	require.NoError(t, err)
	for _, sick := range states {
		assert.False(t, sick, "percent_sick 0.0 must make every year healthy")
	}
}

func TestGenerateHealthStates_InvalidYears(t *testing.T) {
	engine := newTestEngine(t, domain.DefaultPlanG())
	_, err := engine.GenerateHealthStates(rand.New(rand.NewSource(1)), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "number of years must be positive")
}

func TestRunSingleTrial_AlignedCosts(t *testing.T) {
	plan := domain.DefaultPlanG()
	plan.SimulationYears = 5
	engine := newTestEngine(t, plan)

	trial, err := engine.RunSingleTrial(rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Len(t, trial.Costs, 5)
	require.Len(t, trial.HealthStates, 5)

	for year, sick := range trial.HealthStates {
		want, err := plan.AnnualCost(year, sick)
		require.NoError(t, err)
		assert.True(t, trial.Costs[year].Equal(want),
			"year %d cost should match its health state", year)
	}
	assert.True(t, trial.LifetimeCost().Equal(Sum(trial.Costs)))
}

func TestRunMultipleTrials_Validation(t *testing.T) {
	engine := newTestEngine(t, domain.DefaultPlanG())

	_, err := engine.RunMultipleTrials(rand.New(rand.NewSource(1)), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "number of trials must be positive, got 0")
}

func TestRunComprehensive_Reproducible(t *testing.T) {
	engine := newTestEngine(t, domain.DefaultPlanG())

	first, err := engine.RunComprehensiveSeeded(42, 200)
	require.NoError(t, err)
	second, err := engine.RunComprehensiveSeeded(42, 200)
	require.NoError(t, err)

	require.Equal(t, first.NumTrials, second.NumTrials)
	for i := range first.LifetimeCosts {
		assert.True(t, first.LifetimeCosts[i].Equal(second.LifetimeCosts[i]),
			"trial %d must be identical for identical seeds", i)
	}

	different, err := engine.RunComprehensiveSeeded(43, 200)
	require.NoError(t, err)
	same := true
	for i := range first.LifetimeCosts {
		if !first.LifetimeCosts[i].Equal(different.LifetimeCosts[i]) {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds should produce different draws")
}

func TestRunComprehensive_DeterministicAtExtremes(t *testing.T) {
	plan := domain.DefaultPlanG()
	plan.PercentSick = decimal.NewFromInt(1)
	engine := newTestEngine(t, plan)

	result, err := engine.RunComprehensiveSeeded(42, 1000)
	require.NoError(t, err)

	// Every trial is identical when everyone is sick every year, so the
	// base-year stats collapse onto the sick-year cost.
	year0 := result.YearlyStatistics[0]
	assert.Equal(t, 2026, year0.Year)
	assert.True(t, year0.Mean.Equal(decimal.NewFromFloat(2915.0)),
		"expected mean 2915.00, got %s", year0.Mean)
	assert.True(t, year0.Min.Equal(year0.Max))
	assert.True(t, year0.StdDev.IsZero())
	assert.True(t, year0.Total.Equal(decimal.NewFromFloat(2915.0).Mul(decimal.NewFromInt(1000))))
}

func TestAggregateStatistics_RequiresTrials(t *testing.T) {
	engine := newTestEngine(t, domain.DefaultPlanG())
	_, err := engine.AggregateStatistics(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one trial is required")
}

func TestAggregateStatistics_YearsAreCalendarYears(t *testing.T) {
	plan := domain.DefaultPlanG()
	plan.SimulationYears = 3
	engine := newTestEngine(t, plan)

	trials, err := engine.RunMultipleTrials(rand.New(rand.NewSource(9)), 10)
	require.NoError(t, err)
	stats, err := engine.AggregateStatistics(trials)
	require.NoError(t, err)

	require.Len(t, stats, 3)
	assert.Equal(t, 2026, stats[0].Year)
	assert.Equal(t, 2027, stats[1].Year)
	assert.Equal(t, 2028, stats[2].Year)
}

func TestRunComprehensiveParallel_MatchesItself(t *testing.T) {
	engine := newTestEngine(t, domain.DefaultPlanG())

	two, err := engine.RunComprehensiveParallel(42, 300, 2)
	require.NoError(t, err)
	eight, err := engine.RunComprehensiveParallel(42, 300, 8)
	require.NoError(t, err)

	require.Equal(t, two.NumTrials, eight.NumTrials)
	for i := range two.LifetimeCosts {
		assert.True(t, two.LifetimeCosts[i].Equal(eight.LifetimeCosts[i]),
			"trial %d must not depend on worker count", i)
	}
}

func TestRunComprehensiveParallel_Validation(t *testing.T) {
	engine := newTestEngine(t, domain.DefaultPlanG())

	_, err := engine.RunComprehensiveParallel(42, 0, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "number of trials must be positive")

	_, err = engine.RunComprehensiveParallel(42, 100, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "number of workers must be positive")
}

func TestSetLogger_NilResetsToNop(t *testing.T) {
	engine := newTestEngine(t, domain.DefaultPlanG())

	engine.SetLogger(StdLogger{})
	assert.IsType(t, StdLogger{}, engine.Logger)

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
