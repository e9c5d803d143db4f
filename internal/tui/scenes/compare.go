package scenes

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openmedicare/medisim/internal/compare"
	"github.com/openmedicare/medisim/internal/tui/components"
	"github.com/openmedicare/medisim/internal/tui/tuimsg"
	"github.com/openmedicare/medisim/internal/tui/tuistyles"
)

// CompareModel renders the A/B comparison: per-plan summary cards, the
// difference metrics, the dual-series per-year chart, and the
// recommendation line.
type CompareModel struct {
	result *compare.ComparisonResult
	width  int
	height int
}

// NewCompareModel creates the compare scene model.
func NewCompareModel() *CompareModel {
	return &CompareModel{}
}

// SetSize updates the scene dimensions.
func (m *CompareModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetResult installs a finished comparison.
func (m *CompareModel) SetResult(result *compare.ComparisonResult) {
	m.result = result
}

// Update handles messages for the compare scene.
func (m *CompareModel) Update(msg tea.Msg) (*CompareModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		return m, func() tea.Msg { return tuimsg.RunComparisonMsg{} }
	}
	return m, nil
}

// View renders the compare scene.
func (m *CompareModel) View() string {
	if m.result == nil {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			tuistyles.InfoStyle.Render("No comparison yet — press enter to run one."))
	}

	var content strings.Builder

	header := fmt.Sprintf("%s vs %s — %d trials each",
		m.result.PlanA.PlanName, m.result.PlanB.PlanName, m.result.NumTrials)
	content.WriteString(tuistyles.SelectedItemStyle.Render(header))
	content.WriteString("\n\n")

	content.WriteString(m.renderSummaryCards(&m.result.PlanA))
	content.WriteString("\n")
	content.WriteString(m.renderSummaryCards(&m.result.PlanB))
	content.WriteString("\n\n")

	diffCards := []*components.MetricCard{
		components.NewMetricCard("Mean difference (A-B)",
			tuistyles.FormatCurrency(m.result.MeanDifference)).
			WithTrend(m.result.MeanDifference.IsNegative(), "lower is better for A"),
		components.NewMetricCard("Std of difference",
			tuistyles.FormatCurrency(m.result.StdDifference)),
	}
	content.WriteString(components.MetricGrid(diffCards, 2))
	content.WriteString("\n\n")

	content.WriteString(m.renderDualChart())
	content.WriteString("\n")

	content.WriteString(tuistyles.TableHighlightStyle.Render(m.result.Recommendation()))

	return lipgloss.NewStyle().Padding(1, 2).Render(content.String())
}

func (m *CompareModel) renderSummaryCards(summary *compare.PlanSummary) string {
	label := tuistyles.MetricLabelStyle.Render(summary.PlanName)
	cards := []*components.MetricCard{
		components.NewMetricCard("Mean", tuistyles.FormatCurrency(summary.Mean)),
		components.NewMetricCard("Median", tuistyles.FormatCurrency(summary.Median)),
		components.NewMetricCard("Std dev", tuistyles.FormatCurrency(summary.StdDev)),
		components.NewMetricCard("Min", tuistyles.FormatCurrency(summary.Min)),
		components.NewMetricCard("Max", tuistyles.FormatCurrency(summary.Max)),
	}
	return label + "\n" + components.MetricGrid(cards, 5)
}

func (m *CompareModel) renderDualChart() string {
	statsA := m.result.PlanA.Result.YearlyStatistics
	statsB := m.result.PlanB.Result.YearlyStatistics

	meansA := make([]float64, len(statsA))
	labels := make([]string, len(statsA))
	for i, stats := range statsA {
		meansA[i] = stats.Mean.InexactFloat64()
		labels[i] = strconv.Itoa(stats.Year)
	}
	meansB := make([]float64, len(statsB))
	for i, stats := range statsB {
		meansB[i] = stats.Mean.InexactFloat64()
	}

	return components.NewASCIIChart("Mean annual cost by year").
		AddSeries(m.result.PlanA.PlanName, meansA, tuistyles.ColorChartLine1).
		AddSeries(m.result.PlanB.PlanName, meansB, tuistyles.ColorChartLine2).
		WithLabels(labels).
		WithSize(70, 12).
		Render()
}
