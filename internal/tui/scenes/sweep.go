package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/openmedicare/medisim/internal/breakeven"
	"github.com/openmedicare/medisim/internal/calculation"
	"github.com/openmedicare/medisim/internal/tui/components"
	"github.com/openmedicare/medisim/internal/tui/tuimsg"
	"github.com/openmedicare/medisim/internal/tui/tuistyles"
)

var hundred = decimal.NewFromInt(100)

// SweepModel renders the percent-sick sensitivity sweep for both
// comparison slots plus the break-even marker between them.
type SweepModel struct {
	planAName string
	planBName string
	pointsA   []calculation.SweepPoint
	pointsB   []calculation.SweepPoint
	breakEven *breakeven.Result
	width     int
	height    int
}

// NewSweepModel creates the sweep scene model.
func NewSweepModel() *SweepModel {
	return &SweepModel{}
}

// SetSize updates the scene dimensions.
func (m *SweepModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetResult installs a finished sweep.
func (m *SweepModel) SetResult(planAName, planBName string, pointsA, pointsB []calculation.SweepPoint, be *breakeven.Result) {
	m.planAName = planAName
	m.planBName = planBName
	m.pointsA = pointsA
	m.pointsB = pointsB
	m.breakEven = be
}

// Update handles messages for the sweep scene.
func (m *SweepModel) Update(msg tea.Msg) (*SweepModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		return m, func() tea.Msg { return tuimsg.RunSweepMsg{} }
	}
	return m, nil
}

// View renders the sweep scene.
func (m *SweepModel) View() string {
	if len(m.pointsA) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			tuistyles.InfoStyle.Render("No sweep yet — press enter to run one."))
	}

	var content strings.Builder

	content.WriteString(tuistyles.SelectedItemStyle.Render("Expected lifetime cost vs percent sick"))
	content.WriteString("\n\n")

	costsA := make([]float64, len(m.pointsA))
	labels := make([]string, len(m.pointsA))
	for i, point := range m.pointsA {
		costsA[i] = point.ExpectedLifetimeCost.InexactFloat64()
		labels[i] = point.PercentSick.StringFixed(1)
	}
	costsB := make([]float64, len(m.pointsB))
	for i, point := range m.pointsB {
		costsB[i] = point.ExpectedLifetimeCost.InexactFloat64()
	}

	chart := components.NewASCIIChart("").
		AddSeries(m.planAName, costsA, tuistyles.ColorChartLine1).
		WithLabels(labels).
		WithSize(70, 14).
		WithAxisLabels("percent sick", "")
	if len(costsB) > 0 {
		chart.AddSeries(m.planBName, costsB, tuistyles.ColorChartLine2)
	}
	content.WriteString(chart.Render())
	content.WriteString("\n\n")

	if be := m.breakEven; be != nil {
		if be.Exists {
			content.WriteString(tuistyles.TableHighlightStyle.Render(fmt.Sprintf(
				"Break-even at %s%% sick: below it %s is cheaper, above it %s.",
				be.BreakEvenPercentSick.Mul(hundred).StringFixed(1),
				be.CheaperWhenHealthy, be.CheaperWhenSick)))
		} else if be.CheaperWhenHealthy != "" && be.CheaperWhenHealthy == be.CheaperWhenSick {
			content.WriteString(tuistyles.TableHighlightStyle.Render(fmt.Sprintf(
				"%s is cheaper at every sickness probability.", be.CheaperWhenHealthy)))
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content.String())
}
