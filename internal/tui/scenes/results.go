package scenes

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/openmedicare/medisim/internal/calculation"
	"github.com/openmedicare/medisim/internal/tui/components"
	"github.com/openmedicare/medisim/internal/tui/tuimsg"
	"github.com/openmedicare/medisim/internal/tui/tuistyles"
)

// ResultsModel renders one plan's comprehensive simulation result: metric
// cards, the per-year mean-cost chart, the lifetime-cost histogram, and the
// percentile table.
type ResultsModel struct {
	result *calculation.ComprehensiveResult
	width  int
	height int
}

// NewResultsModel creates the results scene model.
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetSize updates the scene dimensions.
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetResult installs a finished simulation result.
func (m *ResultsModel) SetResult(result *calculation.ComprehensiveResult) {
	m.result = result
}

// Update handles messages for the results scene.
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		return m, func() tea.Msg { return tuimsg.RunSimulationMsg{} }
	}
	return m, nil
}

// View renders the results scene.
func (m *ResultsModel) View() string {
	if m.result == nil {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			tuistyles.InfoStyle.Render("No simulation yet — press enter to run one."))
	}

	var content strings.Builder

	header := fmt.Sprintf("%s — %d trials over %d years",
		m.result.Plan.Name, m.result.NumTrials, m.result.Plan.SimulationYears)
	content.WriteString(tuistyles.SelectedItemStyle.Render(header))
	content.WriteString("\n\n")

	lifetime := m.result.LifetimeCosts
	min, max := calculation.MinMax(lifetime)
	cards := []*components.MetricCard{
		components.NewMetricCard("Mean lifetime", tuistyles.FormatCurrency(calculation.Mean(lifetime))),
		components.NewMetricCard("Median lifetime", tuistyles.FormatCurrency(calculation.Median(lifetime))),
		components.NewMetricCard("Std dev", tuistyles.FormatCurrency(calculation.PopulationStdDev(lifetime))),
		components.NewMetricCard("Min", tuistyles.FormatCurrency(min)),
		components.NewMetricCard("Max", tuistyles.FormatCurrency(max)),
	}
	content.WriteString(components.MetricGrid(cards, 5))
	content.WriteString("\n\n")

	content.WriteString(m.renderYearChart())
	content.WriteString("\n")

	histogram := components.NewHistogram("Lifetime cost distribution", decimalsToFloats(lifetime)).
		WithBins(10).
		WithBarWidth(40)
	content.WriteString(histogram.Render())
	content.WriteString("\n")

	content.WriteString(m.renderPercentileTable())

	return lipgloss.NewStyle().Padding(1, 2).Render(content.String())
}

func (m *ResultsModel) renderYearChart() string {
	means := make([]float64, len(m.result.YearlyStatistics))
	labels := make([]string, len(m.result.YearlyStatistics))
	for i, stats := range m.result.YearlyStatistics {
		means[i] = stats.Mean.InexactFloat64()
		labels[i] = strconv.Itoa(stats.Year)
	}

	return components.NewASCIIChart("Mean annual cost by year").
		AddSeries(m.result.Plan.Name, means, tuistyles.ColorChartLine1).
		WithLabels(labels).
		WithSize(70, 12).
		Render()
}

func (m *ResultsModel) renderPercentileTable() string {
	var sb strings.Builder
	sb.WriteString(tuistyles.TableHeaderStyle.Render("Lifetime cost percentiles"))
	sb.WriteString("\n")

	sorted := calculation.SortDecimals(m.result.LifetimeCosts)
	for _, p := range calculation.ReportedPercentiles {
		value := calculation.Percentile(sorted, float64(p))
		sb.WriteString(tuistyles.TableCellStyle.Render(
			fmt.Sprintf("  p%-3d %12s", p, tuistyles.FormatCurrency(value))))
		sb.WriteString("\n")
	}
	return sb.String()
}

func decimalsToFloats(values []decimal.Decimal) []float64 {
	floats := make([]float64, len(values))
	for i, v := range values {
		floats[i] = v.InexactFloat64()
	}
	return floats
}
