package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openmedicare/medisim/internal/domain"
	"github.com/openmedicare/medisim/internal/tui/components"
	"github.com/openmedicare/medisim/internal/tui/tuistyles"
)

// HomeModel is the landing scene: the preset catalog overview and the
// quick-action key list.
type HomeModel struct {
	presets []*domain.Plan
	width   int
	height  int
}

// NewHomeModel creates the home scene model.
func NewHomeModel() *HomeModel {
	presets := make([]*domain.Plan, 0, len(domain.PresetNames()))
	for _, name := range domain.PresetNames() {
		plan, err := domain.PresetPlan(name)
		if err != nil {
			continue
		}
		presets = append(presets, plan)
	}
	return &HomeModel{presets: presets}
}

// SetSize updates the scene dimensions.
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the home scene.
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	return m, nil
}

// View renders the home scene.
func (m *HomeModel) View() string {
	var content strings.Builder

	welcome := tuistyles.SelectedItemStyle.Render("Medicare out-of-pocket cost simulator")
	content.WriteString(welcome)
	content.WriteString("\n\n")
	content.WriteString(tuistyles.SubtitleStyle.Render(
		fmt.Sprintf("%d plan presets in the catalog", len(m.presets))))
	content.WriteString("\n\n")

	cards := make([]*components.PlanCard, len(m.presets))
	for i, plan := range m.presets {
		cards[i] = components.NewPlanCard(plan).WithWidth(40)
	}
	content.WriteString(components.PlanCardRow(cards))
	content.WriteString("\n\n")

	actions := []struct {
		key  string
		desc string
	}{
		{"b", "browse plans and pick A/B comparison slots"},
		{"p", "edit simulation parameters"},
		{"r", "run the simulation and view results"},
		{"c", "compare the two selected plans"},
		{"w", "percent-sick sensitivity sweep"},
	}
	for _, action := range actions {
		content.WriteString(tuistyles.HelpKeyStyle.Render("  "+action.key) + "  ")
		content.WriteString(tuistyles.HelpDescStyle.Render(action.desc))
		content.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content.String())
}
