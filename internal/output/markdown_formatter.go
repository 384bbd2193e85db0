package output

import (
	"bytes"
	"fmt"

	"github.com/pnlgo/pnl-budgeter/internal/calculation"
	"github.com/pnlgo/pnl-budgeter/internal/domain"
)

// MarkdownFormatter renders the P&L report as markdown tables, one section
// per scenario.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(reports []*calculation.ScenarioReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# Franchise P&L Budget Report")

	for _, r := range reports {
		fmt.Fprintf(&buf, "\n## %s (%s, %s store)\n\n", r.Name, r.Region, r.StoreType)

		res := r.Results
		fmt.Fprintln(&buf, "| Revenue | Amount |")
		fmt.Fprintln(&buf, "|---|---:|")
		fmt.Fprintf(&buf, "| Gross tax prep fees | %s |\n", FormatCurrency(res.GrossFees))
		fmt.Fprintf(&buf, "| Customer discounts | (%s) |\n", FormatCurrency(res.Discounts))
		fmt.Fprintf(&buf, "| Tax prep income | %s |\n", FormatCurrency(res.TaxPrepIncome))
		fmt.Fprintf(&buf, "| TaxRush income | %s |\n", FormatCurrency(res.TaxRushIncome))
		fmt.Fprintf(&buf, "| Other income | %s |\n", FormatCurrency(res.OtherIncome))
		fmt.Fprintf(&buf, "| **Total revenue** | **%s** |\n", FormatCurrency(res.TotalRevenue))

		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "| Expense category | Amount | % of revenue | Status |")
		fmt.Fprintln(&buf, "|---|---:|---:|---|")
		for _, cat := range []struct {
			label string
			key   domain.ExpenseCategory
			total float64
		}{
			{"Personnel", domain.CategoryPersonnel, r.Categories.Personnel},
			{"Facility", domain.CategoryFacility, r.Categories.Facility},
			{"Operations", domain.CategoryOperations, r.Categories.Operations},
			{"Franchise", domain.CategoryFranchise, r.Categories.Franchise},
			{"Miscellaneous", domain.CategoryMisc, r.Categories.Misc},
		} {
			fmt.Fprintf(&buf, "| %s | %s | %s | %s |\n",
				cat.label, FormatCurrency(cat.total),
				FormatPercent(r.CategoryRatios[cat.key]),
				statusLabel(r.CategoryStatuses[cat.key]))
		}
		fmt.Fprintf(&buf, "| **Total expenses** | **%s** | | |\n", FormatCurrency(res.TotalExpenses))

		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "| KPI | Value | Status |")
		fmt.Fprintln(&buf, "|---|---:|---|")
		fmt.Fprintf(&buf, "| Net income | %s | %s |\n", FormatCurrency(res.NetIncome), r.NetIncomeStatus)
		fmt.Fprintf(&buf, "| Net margin | %s | %s |\n", FormatPercent(res.NetMarginPct), r.NetMarginStatus)
		fmt.Fprintf(&buf, "| Cost per return | %s | %s |\n", FormatCurrency(res.CostPerReturn), r.CPRStatus)
		fmt.Fprintf(&buf, "| Total returns | %s | |\n", FormatCount(res.TotalReturns))
	}
	return buf.Bytes(), nil
}
