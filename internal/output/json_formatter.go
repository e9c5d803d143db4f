package output

import (
	"encoding/json"
	"fmt"

	"github.com/openmedicare/medisim/internal/calculation"
)

// trialElisionThreshold keeps JSON reports readable: above this many trials
// the raw per-trial data is dropped unless IncludeTrials is set.
const trialElisionThreshold = 100

// JSONFormatter serializes the full comprehensive result.
type JSONFormatter struct {
	Pretty        bool
	IncludeTrials bool
}

func (JSONFormatter) Name() string { return "json" }

func (jf JSONFormatter) Format(result *calculation.ComprehensiveResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("simulation result is required")
	}

	report := *result
	if !jf.IncludeTrials && len(report.Trials) > trialElisionThreshold {
		report.Trials = nil
	}

	if jf.Pretty {
		return json.MarshalIndent(&report, "", "  ")
	}
	return json.Marshal(&report)
}
