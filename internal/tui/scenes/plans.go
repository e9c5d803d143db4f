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

// PlansModel is the preset catalog browser where the A and B comparison
// slots are assigned.
type PlansModel struct {
	presetKeys    []string
	presets       []*domain.Plan
	selectedIndex int
	slotA         string
	slotB         string
	width         int
	height        int
}

// NewPlansModel creates the plans scene model with the first two presets
// pre-assigned to the comparison slots.
func NewPlansModel() *PlansModel {
	keys := domain.PresetNames()
	presets := make([]*domain.Plan, len(keys))
	for i, name := range keys {
		presets[i], _ = domain.PresetPlan(name)
	}

	m := &PlansModel{
		presetKeys: keys,
		presets:    presets,
	}
	if len(keys) > 0 {
		m.slotA = keys[0]
	}
	if len(keys) > 1 {
		m.slotB = keys[1]
	}
	return m
}

// SetSize updates the scene dimensions.
func (m *PlansModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SlotA returns the preset key assigned to comparison slot A.
func (m *PlansModel) SlotA() string { return m.slotA }

// SlotB returns the preset key assigned to comparison slot B.
func (m *PlansModel) SlotB() string { return m.slotB }

// Update handles messages for the plans scene.
func (m *PlansModel) Update(msg tea.Msg) (*PlansModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k", "left"))):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
		return m, nil

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j", "right"))):
		if m.selectedIndex < len(m.presets)-1 {
			m.selectedIndex++
		}
		return m, nil

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("a", "enter"))):
		return m, m.assignSlot(tuimsg.SlotA)

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("B"))):
		return m, m.assignSlot(tuimsg.SlotB)
	}

	return m, nil
}

// assignSlot assigns the highlighted preset to a comparison slot and
// notifies the application model.
func (m *PlansModel) assignSlot(slot tuimsg.PlanSlot) tea.Cmd {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.presetKeys) {
		return nil
	}
	preset := m.presetKeys[m.selectedIndex]
	if slot == tuimsg.SlotA {
		m.slotA = preset
	} else {
		m.slotB = preset
	}
	return func() tea.Msg {
		return tuimsg.PlanChosenMsg{Slot: slot, Preset: preset}
	}
}

// View renders the plans scene.
func (m *PlansModel) View() string {
	var content strings.Builder

	content.WriteString(tuistyles.SelectedItemStyle.Render("Plan catalog"))
	content.WriteString("\n\n")

	cards := make([]*components.PlanCard, len(m.presets))
	for i, plan := range m.presets {
		card := components.NewPlanCard(plan).WithWidth(40).SetSelected(i == m.selectedIndex)
		switch m.presetKeys[i] {
		case m.slotA:
			if m.presetKeys[i] == m.slotB {
				card.SetSlotTag("A+B")
			} else {
				card.SetSlotTag("A")
			}
		case m.slotB:
			card.SetSlotTag("B")
		}
		cards[i] = card
	}
	content.WriteString(components.PlanCardRow(cards))
	content.WriteString("\n\n")

	hints := []string{
		tuistyles.HelpKeyStyle.Render("←/→") + " " + tuistyles.HelpDescStyle.Render("move"),
		tuistyles.HelpKeyStyle.Render("a/enter") + " " + tuistyles.HelpDescStyle.Render("set slot A"),
		tuistyles.HelpKeyStyle.Render("B") + " " + tuistyles.HelpDescStyle.Render("set slot B"),
	}
	content.WriteString(strings.Join(hints, "  •  "))

	return lipgloss.NewStyle().Padding(1, 2).Render(content.String())
}
