package output

import (
	"bytes"
	"fmt"

	"github.com/pnlgo/pnl-budgeter/internal/calculation"
	"github.com/pnlgo/pnl-budgeter/internal/domain"
)

// ConsoleFormatter renders a readable P&L summary per scenario.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(reports []*calculation.ScenarioReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FRANCHISE P&L BUDGET SUMMARY")
	fmt.Fprintln(&buf, "============================")

	for _, r := range reports {
		fmt.Fprintf(&buf, "\n%s (%s, %s store)\n", r.Name, r.Region, r.StoreType)

		if r.PriorYear != nil {
			fmt.Fprintf(&buf, "  Last year: revenue %s, net income %s, ANF %s\n",
				FormatCurrency(r.PriorYear.Revenue),
				FormatCurrency(r.PriorYear.NetIncome),
				FormatCurrency(r.PriorYear.AvgNetFee))
		}
		if r.Projection != nil {
			fmt.Fprintf(&buf, "  Plan: %s returns at %s ANF (blended growth %s)\n",
				FormatCount(r.Projection.TaxPrepReturns),
				FormatCurrency(r.Projection.AvgNetFee),
				FormatPercent(r.Projection.BlendedGrowthPct))
			for _, adj := range r.Projection.Adjustments {
				fmt.Fprintf(&buf, "  Note: %s set to %s%% growth vs %s%% plan (%+.0f%%)\n",
					adj.Field, FormatCount(adj.ActualGrowth), FormatCount(adj.ExpectedGrowth), adj.Variance)
			}
		}

		res := r.Results
		fmt.Fprintf(&buf, "  Gross fees       %s\n", FormatCurrency(res.GrossFees))
		fmt.Fprintf(&buf, "  Discounts        %s\n", FormatCurrency(res.Discounts))
		fmt.Fprintf(&buf, "  Tax prep income  %s\n", FormatCurrency(res.TaxPrepIncome))
		if res.TaxRushIncome != 0 {
			fmt.Fprintf(&buf, "  TaxRush income   %s\n", FormatCurrency(res.TaxRushIncome))
		}
		if res.OtherIncome != 0 {
			fmt.Fprintf(&buf, "  Other income     %s\n", FormatCurrency(res.OtherIncome))
		}
		fmt.Fprintf(&buf, "  Total revenue    %s\n", FormatCurrency(res.TotalRevenue))
		fmt.Fprintf(&buf, "  Total expenses   %s\n", FormatCurrency(res.TotalExpenses))
		fmt.Fprintf(&buf, "  Net income       %s [%s]\n", FormatCurrency(res.NetIncome), r.NetIncomeStatus)
		fmt.Fprintf(&buf, "  Net margin       %s [%s]\n", FormatPercent(res.NetMarginPct), r.NetMarginStatus)
		fmt.Fprintf(&buf, "  Cost per return  %s [%s] (%s returns)\n",
			FormatCurrency(res.CostPerReturn), r.CPRStatus, FormatCount(res.TotalReturns))

		fmt.Fprintln(&buf, "  Expense categories:")
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
			fmt.Fprintf(&buf, "    %-14s %14s  %7s  %s\n",
				cat.label,
				FormatCurrency(cat.total),
				FormatPercent(r.CategoryRatios[cat.key]),
				statusLabel(r.CategoryStatuses[cat.key]))
		}
	}
	return buf.Bytes(), nil
}

func statusLabel(s domain.CategoryStatus) string {
	switch s {
	case domain.CategoryHigh:
		return "High"
	case domain.CategoryMedium:
		return "Monitor"
	default:
		return "Good"
	}
}
