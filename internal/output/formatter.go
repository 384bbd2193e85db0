package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pnlgo/pnl-budgeter/internal/calculation"
)

// Formatter defines a pluggable report renderer. Implementations must be
// pure: same reports in, same bytes out.
type Formatter interface {
	Format(reports []*calculation.ScenarioReport) ([]byte, error)
	// Name returns the canonical identifier used for selection and logging.
	Name() string
}

// WriteFormatted runs a formatter and writes its output to a timestamped
// file with the given extension, returning the filename.
func WriteFormatted(f Formatter, reports []*calculation.ScenarioReport, ext string) (string, error) {
	data, err := f.Format(reports)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("pnl_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVSummarizer{},
	MarkdownFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"pretty":      "console",
	"json-pretty": "json",
	"summary":     "csv",
	"md":          "markdown",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// GetFormatterByName fetches a registered formatter, nil when unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// AvailableFormatterNames returns the canonical formatter names, sorted.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}
