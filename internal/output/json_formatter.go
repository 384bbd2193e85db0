package output

import (
	"encoding/json"

	"github.com/pnlgo/pnl-budgeter/internal/calculation"
)

// JSONFormatter serializes the scenario reports as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(reports []*calculation.ScenarioReport) ([]byte, error) {
	return json.MarshalIndent(reports, "", "  ")
}
