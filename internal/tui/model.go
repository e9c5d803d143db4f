package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/openmedicare/medisim/internal/breakeven"
	"github.com/openmedicare/medisim/internal/calculation"
	"github.com/openmedicare/medisim/internal/compare"
	"github.com/openmedicare/medisim/internal/domain"
	"github.com/openmedicare/medisim/internal/tui/scenes"
)

const sweepSteps = 21

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Comparison slots (preset keys)
	planAPreset string
	planBPreset string

	// Shared simulation parameters
	percentSick float64
	years       int
	trials      int
	seed        int64

	// Scene models
	homeModel       *scenes.HomeModel
	plansModel      *scenes.PlansModel
	parametersModel *scenes.ParametersModel
	resultsModel    *scenes.ResultsModel
	compareModel    *scenes.CompareModel
	sweepModel      *scenes.SweepModel

	// Error state
	err error

	// Loading state
	loading        bool
	loadingMessage string
}

// NewModel creates a new application model
func NewModel() Model {
	plansModel := scenes.NewPlansModel()
	parametersModel := scenes.NewParametersModel()
	params := parametersModel.Parameters()

	return Model{
		currentScene:    SceneHome,
		planAPreset:     plansModel.SlotA(),
		planBPreset:     plansModel.SlotB(),
		percentSick:     params.PercentSick,
		years:           params.Years,
		trials:          params.Trials,
		seed:            params.Seed,
		homeModel:       scenes.NewHomeModel(),
		plansModel:      plansModel,
		parametersModel: parametersModel,
		resultsModel:    scenes.NewResultsModel(),
		compareModel:    scenes.NewCompareModel(),
		sweepModel:      scenes.NewSweepModel(),
		width:           80,
		height:          24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// buildPlan resolves a preset key and applies the shared slider parameters
// on top of the preset's defaults.
func (m Model) buildPlan(preset string) (*domain.Plan, error) {
	plan, err := domain.PresetPlan(preset)
	if err != nil {
		return nil, err
	}
	plan.PercentSick = decimal.NewFromFloat(m.percentSick)
	plan.SimulationYears = m.years
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// runSimulationCmd returns a command that simulates the slot A plan.
func (m Model) runSimulationCmd() tea.Cmd {
	preset := m.planAPreset
	trials := m.trials
	seed := m.seed
	build := m.buildPlan

	return func() tea.Msg {
		plan, err := build(preset)
		if err != nil {
			return SimulationCompleteMsg{Err: err}
		}

		engine, err := calculation.NewEngine(plan)
		if err != nil {
			return SimulationCompleteMsg{Err: err}
		}

		result, err := engine.RunComprehensiveSeeded(seed, trials)
		return SimulationCompleteMsg{Result: result, Err: err}
	}
}

// runComparisonCmd returns a command that compares the A and B plans.
func (m Model) runComparisonCmd() tea.Cmd {
	presetA := m.planAPreset
	presetB := m.planBPreset
	trials := m.trials
	seed := m.seed
	build := m.buildPlan

	return func() tea.Msg {
		planA, err := build(presetA)
		if err != nil {
			return ComparisonCompleteMsg{Err: err}
		}
		planB, err := build(presetB)
		if err != nil {
			return ComparisonCompleteMsg{Err: err}
		}

		result, err := compare.NewComparator().ComparePlans(planA, planB, trials, seed)
		return ComparisonCompleteMsg{Result: result, Err: err}
	}
}

// runSweepCmd returns a command that sweeps percent-sick over both plans
// and solves for the break-even point between them.
func (m Model) runSweepCmd() tea.Cmd {
	presetA := m.planAPreset
	presetB := m.planBPreset
	build := m.buildPlan

	return func() tea.Msg {
		planA, err := build(presetA)
		if err != nil {
			return SweepCompleteMsg{Err: err}
		}
		planB, err := build(presetB)
		if err != nil {
			return SweepCompleteMsg{Err: err}
		}

		pointsA, err := calculation.RunPercentSickSweep(planA, sweepSteps)
		if err != nil {
			return SweepCompleteMsg{Err: err}
		}
		pointsB, err := calculation.RunPercentSickSweep(planB, sweepSteps)
		if err != nil {
			return SweepCompleteMsg{Err: err}
		}

		analysis, err := breakeven.NewAnalysis(planA, planB)
		if err != nil {
			return SweepCompleteMsg{Err: err}
		}
		be, err := analysis.Solve()
		if err != nil {
			return SweepCompleteMsg{Err: err}
		}

		return SweepCompleteMsg{
			PlanAName: planA.Name,
			PlanBName: planB.Name,
			PointsA:   pointsA,
			PointsB:   pointsB,
			BreakEven: be,
		}
	}
}
