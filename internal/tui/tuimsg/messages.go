package tuimsg

// Messages emitted by scene models and interpreted by the top-level update
// loop. They live in their own package so scenes never import the parent
// tui package.

// PlanSlot identifies one side of the A/B comparison.
type PlanSlot string

const (
	SlotA PlanSlot = "A"
	SlotB PlanSlot = "B"
)

// PlanChosenMsg assigns a preset to a comparison slot.
type PlanChosenMsg struct {
	Slot   PlanSlot
	Preset string
}

// ParametersAppliedMsg carries edited simulation parameters back to the
// application model.
type ParametersAppliedMsg struct {
	PercentSick float64
	Years       int
	Trials      int
	Seed        int64
}

// RunSimulationMsg requests a simulation of the slot A plan.
type RunSimulationMsg struct{}

// RunComparisonMsg requests an A/B comparison run.
type RunComparisonMsg struct{}

// RunSweepMsg requests a percent-sick sensitivity sweep.
type RunSweepMsg struct{}

// ErrorMsg surfaces a scene-level error.
type ErrorMsg struct {
	Err error
}
