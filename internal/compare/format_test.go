package compare

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComparison() *ComparisonResult {
	return &ComparisonResult{
		PlanA: PlanSummary{
			PlanName: "Plan G",
			Mean:     decimal.NewFromFloat(71500.25),
			Median:   decimal.NewFromFloat(71200.00),
			StdDev:   decimal.NewFromFloat(1500.75),
			Min:      decimal.NewFromFloat(68000.00),
			Max:      decimal.NewFromFloat(76000.00),
		},
		PlanB: PlanSummary{
			PlanName: "High-Deductible Plan G",
			Mean:     decimal.NewFromFloat(52100.50),
			Median:   decimal.NewFromFloat(51800.00),
			StdDev:   decimal.NewFromFloat(3200.10),
			Min:      decimal.NewFromFloat(44000.00),
			Max:      decimal.NewFromFloat(61000.00),
		},
		NumTrials:      1000,
		MeanDifference: decimal.NewFromFloat(19399.75),
		StdDifference:  decimal.NewFromFloat(3600.40),
	}
}

func TestTableFormatter(t *testing.T) {
	text, err := (&TableFormatter{}).Format(sampleComparison())
	require.NoError(t, err)

	assert.Contains(t, text, "MEDIGAP PLAN COMPARISON")
	assert.Contains(t, text, "Trials per plan: 1000")
	assert.Contains(t, text, "Plan G")
	assert.Contains(t, text, "High-Deductible Plan G")
	assert.Contains(t, text, "LIFETIME COST DIFFERENCE (A - B)")
	assert.Contains(t, text, "+$19.4K", "positive delta gets a plus sign and K units")
	assert.Contains(t, text,
		"High-Deductible Plan G is expected to cost $19399.75 less over the simulated horizon")
}

func TestTableFormatter_CompactUnits(t *testing.T) {
	tf := &TableFormatter{}
	assert.Equal(t, "999", tf.formatDecimal(decimal.NewFromInt(999)))
	assert.Equal(t, "71.5K", tf.formatDecimal(decimal.NewFromFloat(71500.25)))
	assert.Equal(t, "1.25M", tf.formatDecimal(decimal.NewFromInt(1250000)))
}

func TestTableFormatter_NilResult(t *testing.T) {
	_, err := (&TableFormatter{}).Format(nil)
	assert.Error(t, err)
}

func TestCSVFormatter(t *testing.T) {
	text, err := (&CSVFormatter{}).Format(sampleComparison())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header, two plan rows, one difference row")

	assert.Equal(t, []string{
		"Plan", "Trials", "Mean_Lifetime_Cost", "Median_Lifetime_Cost",
		"Std_Lifetime_Cost", "Min_Lifetime_Cost", "Max_Lifetime_Cost",
	}, records[0])

	assert.Equal(t, "Plan G", records[1][0])
	assert.Equal(t, "71500.25", records[1][2])
	assert.Equal(t, "Difference (A - B)", records[3][0])
	assert.Equal(t, "19399.75", records[3][2])
}

func TestJSONFormatter(t *testing.T) {
	text, err := (&JSONFormatter{Pretty: true}).Format(sampleComparison())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))

	planA, ok := decoded["planA"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Plan G", planA["planName"])
	assert.NotContains(t, planA, "Result", "full result payload is elided from JSON")
	assert.EqualValues(t, 1000, decoded["numTrials"])
}
