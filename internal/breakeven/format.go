package breakeven

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatBreakEven renders a break-even result for the console.
func FormatBreakEven(a *Analysis, result *Result) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Plan A: %s\n", a.PlanA.Name))
	sb.WriteString(fmt.Sprintf("Plan B: %s\n", a.PlanB.Name))
	sb.WriteString(fmt.Sprintf("Horizon: %d years starting %d\n", a.PlanA.SimulationYears, a.PlanA.StartYear))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Fixed cost delta (A - B):      $%s\n", result.FixedCostDelta.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Deductible exposure delta:     $%s\n", result.DeductibleDelta.StringFixed(2)))
	sb.WriteString("\n")

	if result.Exists {
		sb.WriteString(fmt.Sprintf("Break-even percent sick: %s%%\n",
			result.BreakEvenPercentSick.Mul(hundred).StringFixed(1)))
		if result.CheaperWhenHealthy != "" {
			sb.WriteString(fmt.Sprintf("Below that, %s is cheaper; above it, %s is cheaper.\n",
				result.CheaperWhenHealthy, result.CheaperWhenSick))
		}
	} else {
		switch {
		case result.CheaperWhenHealthy == "" && result.CheaperWhenSick == "":
			sb.WriteString("The plans have identical expected lifetime cost at every sickness probability.\n")
		case result.CheaperWhenHealthy == result.CheaperWhenSick:
			sb.WriteString(fmt.Sprintf("No break-even point: %s is cheaper at every sickness probability.\n",
				result.CheaperWhenHealthy))
		default:
			sb.WriteString("No break-even point inside the probability range.\n")
		}
	}

	return sb.String()
}
