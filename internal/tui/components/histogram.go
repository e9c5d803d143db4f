package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openmedicare/medisim/internal/tui/tuistyles"
)

// Histogram renders a binned horizontal bar chart of a value distribution,
// used for the lifetime-cost panel.
type Histogram struct {
	Title    string
	Values   []float64
	Bins     int
	BarWidth int
	Color    lipgloss.Color
}

// NewHistogram creates a histogram with default sizing.
func NewHistogram(title string, values []float64) *Histogram {
	return &Histogram{
		Title:    title,
		Values:   values,
		Bins:     10,
		BarWidth: 40,
		Color:    tuistyles.ColorChartLine1,
	}
}

// WithBins sets the bin count.
func (h *Histogram) WithBins(bins int) *Histogram {
	if bins > 0 {
		h.Bins = bins
	}
	return h
}

// WithBarWidth sets the maximum bar width in cells.
func (h *Histogram) WithBarWidth(width int) *Histogram {
	if width > 0 {
		h.BarWidth = width
	}
	return h
}

// Render returns the styled histogram.
func (h *Histogram) Render() string {
	if len(h.Values) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder

	if h.Title != "" {
		titleStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(tuistyles.ColorPrimary)
		content.WriteString(titleStyle.Render(h.Title))
		content.WriteString("\n\n")
	}

	min, max := h.Values[0], h.Values[0]
	for _, v := range h.Values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	// Degenerate distribution: everything lands in one bin.
	if max == min {
		max = min + 1
	}

	counts := make([]int, h.Bins)
	binWidth := (max - min) / float64(h.Bins)
	for _, v := range h.Values {
		bin := int((v - min) / binWidth)
		if bin >= h.Bins {
			bin = h.Bins - 1
		}
		counts[bin]++
	}

	maxCount := 0
	for _, count := range counts {
		if count > maxCount {
			maxCount = count
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(h.Color)
	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	countStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground)

	for i, count := range counts {
		lower := min + binWidth*float64(i)
		label := fmt.Sprintf("%10s", formatHistValue(lower))
		barLen := 0
		if maxCount > 0 {
			barLen = int(math.Round(float64(count) / float64(maxCount) * float64(h.BarWidth)))
		}
		if count > 0 && barLen == 0 {
			barLen = 1
		}

		content.WriteString(labelStyle.Render(label))
		content.WriteString(" │")
		content.WriteString(barStyle.Render(strings.Repeat("█", barLen)))
		content.WriteString(countStyle.Render(fmt.Sprintf(" %d", count)))
		content.WriteString("\n")
	}

	return content.String()
}

// formatHistValue formats a bin boundary for display.
func formatHistValue(value float64) string {
	if math.Abs(value) >= 1000000 {
		return fmt.Sprintf("$%.1fM", value/1000000)
	} else if math.Abs(value) >= 1000 {
		return fmt.Sprintf("$%.0fK", value/1000)
	}
	return fmt.Sprintf("$%.0f", value)
}
