package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openmedicare/medisim/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case ScenePlans:
		content = m.plansModel.View()
	case SceneParameters:
		content = m.parametersModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneCompare:
		content = m.compareModel.View()
	case SceneSweep:
		content = m.sweepModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	// Title (2) + status (1) + padding (1)
	contentHeight := m.height - 4

	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("MediSim - Medicare Cost Explorer")

	breadcrumb := tuistyles.SubtitleStyle.Render(fmt.Sprintf(
		"%s  (A: %s, B: %s)", m.currentScene.String(), m.planAPreset, m.planBPreset))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		breadcrumb,
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("h", "home"),
		formatShortcut("b", "plans"),
		formatShortcut("p", "parameters"),
		formatShortcut("r", "results"),
		formatShortcut("c", "compare"),
		formatShortcut("w", "sweep"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}

	statusText := strings.Join(shortcuts, " • ")

	params := tuistyles.SubtitleStyle.Render(fmt.Sprintf(
		"sick %.2f / %dy / %d trials / seed %d", m.percentSick, m.years, m.trials, m.seed))
	width := m.width - lipgloss.Width(statusText) - lipgloss.Width(params) - 2
	if width > 0 {
		statusText = statusText + strings.Repeat(" ", width) + params
	}

	return tuistyles.StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return tuistyles.StatusKeyStyle.Render(key) + " " + desc
}

// renderLoading renders a loading message while a run is in flight
func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Working..."
	}

	content := tuistyles.BorderStyle.Render(
		fmt.Sprintf("⠋ %s", message),
	)

	return m.renderApp(content)
}

// renderError renders an error message
func (m Model) renderError() string {
	errorMsg := "An error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	content := tuistyles.ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", errorMsg),
	)

	return m.renderApp(content)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `
MediSim - Medicare Out-of-Pocket Cost Explorer

KEYBOARD SHORTCUTS:
  h        Navigate to Home
  b        Browse plan presets (assign A/B slots)
  p        Edit simulation parameters
  r        Results for the slot A plan
  c        Compare the A and B plans
  w        Percent-sick sensitivity sweep
  ?        Show this help
  ESC      Go back
  q/Ctrl+C Quit

PLANS:
  Arrow keys move between preset cards
  a or Enter assigns the highlighted preset to slot A
  Shift+B assigns it to slot B

PARAMETERS:
  Up/Down moves between sliders
  Left/Right adjusts the focused slider
  Enter runs a simulation with the current values

RUNS:
  Enter on the Results, Compare, or Sweep screen
  starts the matching run with the current plans
  and parameters.
`

	return tuistyles.BorderStyle.Render(helpText)
}
