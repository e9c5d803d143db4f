package tui

import (
	"github.com/openmedicare/medisim/internal/breakeven"
	"github.com/openmedicare/medisim/internal/calculation"
	"github.com/openmedicare/medisim/internal/compare"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	ScenePlans
	SceneParameters
	SceneResults
	SceneCompare
	SceneSweep
	SceneHelp
)

// GetSceneName returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case ScenePlans:
		return "Plans"
	case SceneParameters:
		return "Parameters"
	case SceneResults:
		return "Results"
	case SceneCompare:
		return "Compare"
	case SceneSweep:
		return "Sweep"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// SimulationStartedMsg signals a simulation has begun
type SimulationStartedMsg struct {
	PlanName string
}

// SimulationCompleteMsg signals a simulation has finished
type SimulationCompleteMsg struct {
	Result *calculation.ComprehensiveResult
	Err    error
}

// ComparisonCompleteMsg signals an A/B comparison has finished
type ComparisonCompleteMsg struct {
	Result *compare.ComparisonResult
	Err    error
}

// SweepCompleteMsg signals a percent-sick sweep has finished
type SweepCompleteMsg struct {
	PlanAName string
	PlanBName string
	PointsA   []calculation.SweepPoint
	PointsB   []calculation.SweepPoint
	BreakEven *breakeven.Result
	Err       error
}
