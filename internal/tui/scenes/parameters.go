package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openmedicare/medisim/internal/domain"
	"github.com/openmedicare/medisim/internal/tui/components"
	"github.com/openmedicare/medisim/internal/tui/tuimsg"
	"github.com/openmedicare/medisim/internal/tui/tuistyles"
)

// ParametersModel edits the shared simulation parameters with slider
// controls. Changes are pushed to the application model on every
// adjustment so a run started from any scene picks them up.
type ParametersModel struct {
	sliders      []*components.ParameterSlider
	focusedIndex int
	width        int
	height       int
}

const (
	paramPercentSick = iota
	paramYears
	paramTrials
	paramSeed
)

// NewParametersModel creates the parameters scene with default values.
func NewParametersModel() *ParametersModel {
	sliders := []*components.ParameterSlider{
		components.NewParameterSlider("Percent sick", domain.DefaultPercentSick, 0, 1, 0.05).
			WithFormat("%.2f").
			WithDescription("Probability that any simulated year is a high-utilization year"),
		components.NewParameterSlider("Simulation years", float64(domain.DefaultSimulationYears), 1, 40, 1).
			WithFormat("%.0f").
			WithUnit(" years"),
		components.NewParameterSlider("Trials", 1000, 100, 10000, 100).
			WithFormat("%.0f").
			WithDescription("Monte Carlo trials per plan"),
		components.NewParameterSlider("Seed", 42, 1, 10000, 1).
			WithFormat("%.0f").
			WithDescription("Random seed; same seed reproduces identical runs"),
	}
	sliders[0].SetFocused(true)

	return &ParametersModel{sliders: sliders}
}

// SetSize updates the scene dimensions.
func (m *ParametersModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Parameters returns the current slider values as a message payload.
func (m *ParametersModel) Parameters() tuimsg.ParametersAppliedMsg {
	return tuimsg.ParametersAppliedMsg{
		PercentSick: m.sliders[paramPercentSick].Value,
		Years:       int(m.sliders[paramYears].Value),
		Trials:      int(m.sliders[paramTrials].Value),
		Seed:        int64(m.sliders[paramSeed].Value),
	}
}

// Update handles messages for the parameters scene.
func (m *ParametersModel) Update(msg tea.Msg) (*ParametersModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j", "tab"))):
		m.moveFocus(1)
		return m, nil

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left"))):
		m.sliders[m.focusedIndex].Decrement()
		return m, m.applyCmd()

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right"))):
		m.sliders[m.focusedIndex].Increment()
		return m, m.applyCmd()

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		return m, func() tea.Msg { return tuimsg.RunSimulationMsg{} }
	}

	return m, nil
}

func (m *ParametersModel) moveFocus(delta int) {
	m.sliders[m.focusedIndex].SetFocused(false)
	m.focusedIndex = (m.focusedIndex + delta + len(m.sliders)) % len(m.sliders)
	m.sliders[m.focusedIndex].SetFocused(true)
}

func (m *ParametersModel) applyCmd() tea.Cmd {
	params := m.Parameters()
	return func() tea.Msg { return params }
}

// View renders the parameters scene.
func (m *ParametersModel) View() string {
	var content strings.Builder

	content.WriteString(tuistyles.SelectedItemStyle.Render("Simulation parameters"))
	content.WriteString("\n\n")

	for _, slider := range m.sliders {
		content.WriteString(slider.Render())
		content.WriteString("\n\n")
	}

	content.WriteString(tuistyles.HelpKeyStyle.Render("enter") + " " +
		tuistyles.HelpDescStyle.Render("run simulation with these parameters"))

	return lipgloss.NewStyle().Padding(1, 2).Render(content.String())
}
