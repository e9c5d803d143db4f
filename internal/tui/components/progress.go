package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openmedicare/medisim/internal/tui/tuistyles"
)

// ProgressBar displays completion of a long-running operation.
type ProgressBar struct {
	Current int
	Total   int
	Width   int
	Label   string
}

// NewProgressBar creates a progress bar.
func NewProgressBar(current, total int) *ProgressBar {
	return &ProgressBar{
		Current: current,
		Total:   total,
		Width:   40,
	}
}

// WithLabel sets a label rendered above the bar.
func (pb *ProgressBar) WithLabel(label string) *ProgressBar {
	pb.Label = label
	return pb
}

// WithWidth sets the bar width in cells.
func (pb *ProgressBar) WithWidth(width int) *ProgressBar {
	pb.Width = width
	return pb
}

// Render returns the styled progress bar.
func (pb *ProgressBar) Render() string {
	var content strings.Builder

	if pb.Label != "" {
		content.WriteString(tuistyles.ParameterLabelStyle.Render(pb.Label))
		content.WriteString("\n")
	}

	fraction := 0.0
	if pb.Total > 0 {
		fraction = float64(pb.Current) / float64(pb.Total)
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(fraction * float64(pb.Width))
	empty := pb.Width - filled

	filledStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	content.WriteString("[")
	content.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	content.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	content.WriteString("]")
	content.WriteString(fmt.Sprintf(" %d%%", int(fraction*100)))

	return content.String()
}

// Spinner is a simple frame-based loading indicator advanced by tick
// messages.
type Spinner struct {
	frames []string
	index  int
}

// NewSpinner creates a spinner with braille frames.
func NewSpinner() *Spinner {
	return &Spinner{
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Tick advances to the next frame.
func (s *Spinner) Tick() {
	s.index = (s.index + 1) % len(s.frames)
}

// View returns the current frame.
func (s *Spinner) View() string {
	return tuistyles.InfoStyle.Render(s.frames[s.index])
}
