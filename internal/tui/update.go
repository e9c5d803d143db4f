package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/openmedicare/medisim/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// Standard tea.Msg types
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.setSceneSizes()
		return m, nil

	// Navigation and errors
	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		m.err = nil
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	// Scene-emitted messages
	case tuimsg.PlanChosenMsg:
		if msg.Slot == tuimsg.SlotA {
			m.planAPreset = msg.Preset
		} else {
			m.planBPreset = msg.Preset
		}
		return m, nil

	case tuimsg.ParametersAppliedMsg:
		m.percentSick = msg.PercentSick
		m.years = msg.Years
		m.trials = msg.Trials
		m.seed = msg.Seed
		return m, nil

	case tuimsg.RunSimulationMsg:
		m.loading = true
		m.loadingMessage = "Running simulation..."
		return m, m.runSimulationCmd()

	case tuimsg.RunComparisonMsg:
		m.loading = true
		m.loadingMessage = "Comparing plans..."
		return m, m.runComparisonCmd()

	case tuimsg.RunSweepMsg:
		m.loading = true
		m.loadingMessage = "Sweeping percent sick..."
		return m, m.runSweepCmd()

	case tuimsg.ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	// Run completions
	case SimulationStartedMsg:
		m.loading = true
		m.loadingMessage = "Running simulation..."
		return m, nil

	case SimulationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.resultsModel.SetResult(msg.Result)
		m.previousScene = m.currentScene
		m.currentScene = SceneResults
		return m, nil

	case ComparisonCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.compareModel.SetResult(msg.Result)
		m.previousScene = m.currentScene
		m.currentScene = SceneCompare
		return m, nil

	case SweepCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.sweepModel.SetResult(msg.PlanAName, msg.PlanBName, msg.PointsA, msg.PointsB, msg.BreakEven)
		m.previousScene = m.currentScene
		m.currentScene = SceneSweep
		return m, nil
	}

	// Delegate to scene-specific update handlers
	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An error screen swallows the next key press
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	// Global keyboard shortcuts
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		return m.navigate(SceneHelp)

	case "esc":
		if m.currentScene != SceneHome {
			if m.previousScene != m.currentScene {
				return m.navigate(m.previousScene)
			}
			return m.navigate(SceneHome)
		}

	case "h":
		return m.navigate(SceneHome)

	case "b":
		return m.navigate(ScenePlans)

	case "p":
		return m.navigate(SceneParameters)

	case "r":
		return m.navigate(SceneResults)

	case "c":
		return m.navigate(SceneCompare)

	case "w":
		return m.navigate(SceneSweep)
	}

	// Let the current scene handle other keys
	return m.updateCurrentScene(msg)
}

func (m Model) navigate(scene Scene) (tea.Model, tea.Cmd) {
	if scene == m.currentScene {
		return m, nil
	}
	m.previousScene = m.currentScene
	m.currentScene = scene
	return m, nil
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentScene {
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case ScenePlans:
		m.plansModel, cmd = m.plansModel.Update(msg)
	case SceneParameters:
		m.parametersModel, cmd = m.parametersModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	case SceneCompare:
		m.compareModel, cmd = m.compareModel.Update(msg)
	case SceneSweep:
		m.sweepModel, cmd = m.sweepModel.Update(msg)
	}

	return m, cmd
}

// setSceneSizes pushes the terminal dimensions into every scene model.
func (m *Model) setSceneSizes() {
	contentHeight := m.height - 4

	m.homeModel.SetSize(m.width, contentHeight)
	m.plansModel.SetSize(m.width, contentHeight)
	m.parametersModel.SetSize(m.width, contentHeight)
	m.resultsModel.SetSize(m.width, contentHeight)
	m.compareModel.SetSize(m.width, contentHeight)
	m.sweepModel.SetSize(m.width, contentHeight)
}
