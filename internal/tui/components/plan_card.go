package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/openmedicare/medisim/internal/domain"
	"github.com/openmedicare/medisim/internal/tui/tuistyles"
)

// PlanCard displays a plan's line items for the catalog browser.
type PlanCard struct {
	Plan       *domain.Plan
	Width      int
	IsSelected bool
	SlotTag    string // "A", "B", or empty when unassigned
}

// NewPlanCard creates a card for a plan.
func NewPlanCard(plan *domain.Plan) *PlanCard {
	return &PlanCard{
		Plan:  plan,
		Width: 44,
	}
}

// WithWidth sets the card width.
func (pc *PlanCard) WithWidth(width int) *PlanCard {
	pc.Width = width
	return pc
}

// SetSelected marks the card as the cursor position.
func (pc *PlanCard) SetSelected(selected bool) *PlanCard {
	pc.IsSelected = selected
	return pc
}

// SetSlotTag labels the card with the comparison slot it occupies.
func (pc *PlanCard) SetSlotTag(tag string) *PlanCard {
	pc.SlotTag = tag
	return pc
}

// Render returns the styled plan card.
func (pc *PlanCard) Render() string {
	var content strings.Builder

	title := pc.Plan.Name
	if pc.SlotTag != "" {
		title += "  " + tuistyles.TableHighlightStyle.Render("["+pc.SlotTag+"]")
	}
	content.WriteString(tuistyles.SelectedItemStyle.Render(title))
	content.WriteString("\n\n")

	content.WriteString(pc.lineItem("Premium", pc.Plan.Premium2026, pc.Plan.PremiumGrowthRate, "/mo"))
	content.WriteString(pc.lineItem("Part D premium", pc.Plan.PartDPremium2026, pc.Plan.PartDPremiumGrowthRate, "/mo"))
	content.WriteString(pc.lineItem("Plan deductible", pc.Plan.PlanDeductible2026, pc.Plan.PlanDeductibleGrowthRate, "/yr"))
	content.WriteString(pc.lineItem("Part B deductible", pc.Plan.PartBDeductible2026, pc.Plan.PartBDeductibleGrowthRate, "/yr"))

	if s := pc.Plan.Specialist; s != nil {
		line := fmt.Sprintf("%-18s %d visits at %s/visit",
			"Specialist", s.VisitsPerYear, tuistyles.FormatCurrency(s.Copay2026))
		content.WriteString(tuistyles.TableCellStyle.Render(line))
		content.WriteString("\n")
	}

	style := tuistyles.BorderStyle
	if pc.IsSelected {
		style = tuistyles.ActiveBorderStyle
	}
	return style.Width(pc.Width).Render(content.String())
}

func (pc *PlanCard) lineItem(label string, base, rate decimal.Decimal, unit string) string {
	line := fmt.Sprintf("%-18s %8s%s  +%s%%/yr",
		label,
		tuistyles.FormatCurrency(base),
		unit,
		rate.Mul(decimal.NewFromInt(100)).StringFixed(0))
	return tuistyles.TableCellStyle.Render(line) + "\n"
}

// PlanCardRow renders cards side by side.
func PlanCardRow(cards []*PlanCard) string {
	rendered := make([]string, len(cards))
	for i, card := range cards {
		rendered[i] = card.Render()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
