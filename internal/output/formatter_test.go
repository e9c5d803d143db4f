package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmedicare/medisim/internal/calculation"
	"github.com/openmedicare/medisim/internal/domain"
)

func sampleResult(t *testing.T, trials int) *calculation.ComprehensiveResult {
	t.Helper()
	plan := domain.DefaultPlanN()
	plan.SimulationYears = 5
	engine, err := calculation.NewEngine(plan)
	require.NoError(t, err)
	result, err := engine.RunComprehensiveSeeded(42, trials)
	require.NoError(t, err)
	return result
}

func TestGetFormatterByName_AliasesAndUnknown(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"console", "console"},
		{"table", "console"},
		{"CSV", "csv"},
		{"statistics-csv", "csv"},
		{"lifetime-csv", "lifetime-csv"},
		{"percentile-csv", "percentiles-csv"},
		{"json", "json"},
		{"json-pretty", "json"},
		{"  Console  ", "console"},
	}
	for _, tt := range tests {
		f := GetFormatterByName(tt.input)
		require.NotNil(t, f, "formatter %q should resolve", tt.input)
		assert.Equal(t, tt.want, f.Name())
	}

	assert.Nil(t, GetFormatterByName("xml"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t,
		[]string{"console", "csv", "json", "lifetime-csv", "percentiles-csv"},
		AvailableFormatterNames())
}

func TestConsoleFormatter(t *testing.T) {
	result := sampleResult(t, 50)
	data, err := ConsoleFormatter{}.Format(result)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "MEDIGAP COST SIMULATION")
	assert.Contains(t, text, "Plan:            Plan N")
	assert.Contains(t, text, "Trials:          50")
	assert.Contains(t, text, "Horizon:         5 years starting 2026")
	assert.Contains(t, text, "Percent sick:    20.00%")
	assert.Contains(t, text, "Specialist:      4 visits/yr at $20.00 growing 5.00%")
	assert.Contains(t, text, "PER-YEAR COST STATISTICS")
	assert.Contains(t, text, "2026")
	assert.Contains(t, text, "LIFETIME COST DISTRIBUTION")
	assert.Contains(t, text, "p95")
}

func TestStatisticsCSVFormatter(t *testing.T) {
	result := sampleResult(t, 50)
	data, err := StatisticsCSVFormatter{}.Format(result)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6, "header plus five year rows")
	assert.Equal(t, []string{"Year", "Mean_Cost", "Std_Cost", "Min_Cost", "Max_Cost", "Total_Cost"}, records[0])
	assert.Equal(t, "2026", records[1][0])
	assert.Equal(t, "2030", records[5][0])
}

func TestLifetimeCSVFormatter(t *testing.T) {
	result := sampleResult(t, 25)
	data, err := LifetimeCSVFormatter{}.Format(result)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 26)
	assert.Equal(t, []string{"Trial", "Lifetime_Cost"}, records[0])
	assert.Equal(t, "1", records[1][0], "trials are 1-indexed")
	assert.Equal(t, "25", records[25][0])
}

func TestPercentileCSVFormatter(t *testing.T) {
	result := sampleResult(t, 100)
	data, err := PercentileCSVFormatter{}.Format(result)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 8, "header plus seven reported percentiles")
	assert.Equal(t, "5", records[1][0])
	assert.Equal(t, "95", records[7][0])
}

func TestJSONFormatter_TrialElision(t *testing.T) {
	big := sampleResult(t, 200)

	data, err := JSONFormatter{}.Format(big)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "trials", "large runs drop raw trial data")
	assert.EqualValues(t, 200, decoded["numTrials"])

	data, err = JSONFormatter{IncludeTrials: true}.Format(big)
	require.NoError(t, err)
	decoded = map[string]any{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "trials")

	small := sampleResult(t, 10)
	data, err = JSONFormatter{}.Format(small)
	require.NoError(t, err)
	decoded = map[string]any{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "trials", "small runs keep raw trial data")
}

func TestFormattersRejectNilResult(t *testing.T) {
	for _, f := range []Formatter{
		ConsoleFormatter{}, StatisticsCSVFormatter{}, LifetimeCSVFormatter{},
		PercentileCSVFormatter{}, JSONFormatter{},
	} {
		_, err := f.Format(nil)
		assert.Error(t, err, "formatter %s must reject a nil result", f.Name())
	}
}

func TestWriteFormatted(t *testing.T) {
	result := sampleResult(t, 20)
	dir := t.TempDir()

	path, err := WriteFormatted(StatisticsCSVFormatter{}, result, dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))
	assert.Contains(t, path, "medisim_report_")
	assert.True(t, strings.HasSuffix(path, ".csv"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Year,Mean_Cost")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "25.00%", FormatPercentage(decimal.NewFromFloat(0.25)))
}
