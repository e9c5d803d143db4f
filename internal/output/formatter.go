package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/openmedicare/medisim/internal/calculation"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	Format(result *calculation.ComprehensiveResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*calculation.ComprehensiveResult) ([]byte, error)
}

func (ff FormatterFunc) Format(r *calculation.ComprehensiveResult) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                              { return ff.ID }

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	StatisticsCSVFormatter{},
	LifetimeCSVFormatter{},
	PercentileCSVFormatter{},
	JSONFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"table":          "console",
	"statistics-csv": "csv",
	"json-pretty":    "json",
	"percentile-csv": "percentiles-csv",
}

// GetFormatterByName fetches a registered formatter, resolving aliases.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// formatExtensions maps canonical formatter names to file extensions.
var formatExtensions = map[string]string{
	"console":         "txt",
	"csv":             "csv",
	"lifetime-csv":    "csv",
	"percentiles-csv": "csv",
	"json":            "json",
}

// WriteFormatted runs a formatter and writes its output to a timestamped
// file in dir, returning the path written.
func WriteFormatted(f Formatter, result *calculation.ComprehensiveResult, dir string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", err
	}

	ext, ok := formatExtensions[f.Name()]
	if !ok {
		ext = "txt"
	}
	filename := fmt.Sprintf("medisim_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return path, nil
}
