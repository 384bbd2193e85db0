package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/pnlgo/pnl-budgeter/internal/calculation"
)

// CSVSummarizer emits one row per scenario with the headline KPIs and
// category totals.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(reports []*calculation.ScenarioReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Scenario", "Region", "StoreType",
		"GrossFees", "Discounts", "TaxPrepIncome", "TaxRushIncome", "OtherIncome", "TotalRevenue",
		"Personnel", "Facility", "Operations", "Franchise", "Misc", "TotalExpenses",
		"NetIncome", "NetMarginPct", "TotalReturns", "CostPerReturn",
		"NetIncomeStatus", "NetMarginStatus", "CostPerReturnStatus",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range reports {
		res := r.Results
		row := []string{
			r.Name, string(r.Region), string(r.StoreType),
			money(res.GrossFees), money(res.Discounts), money(res.TaxPrepIncome),
			money(res.TaxRushIncome), money(res.OtherIncome), money(res.TotalRevenue),
			money(r.Categories.Personnel), money(r.Categories.Facility),
			money(r.Categories.Operations), money(r.Categories.Franchise), money(r.Categories.Misc),
			money(res.TotalExpenses),
			money(res.NetIncome), pct(res.NetMarginPct), FormatCount(res.TotalReturns), money(res.CostPerReturn),
			string(r.NetIncomeStatus), string(r.NetMarginStatus), string(r.CPRStatus),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
func pct(v float64) string   { return strconv.FormatFloat(v, 'f', 1, 64) }
