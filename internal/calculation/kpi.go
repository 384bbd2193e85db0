package calculation

import "github.com/pnlgo/pnl-budgeter/internal/domain"

// The classifiers below are total: every finite input maps to exactly one
// status, no error path.

// StatusForCPR grades cost per return against its ceilings.
func StatusForCPR(v float64, t domain.Thresholds) domain.Status {
	if v <= t.CPRGreen {
		return domain.StatusGreen
	}
	if v <= t.CPRYellow {
		return domain.StatusYellow
	}
	return domain.StatusRed
}

// StatusForMargin grades net margin percentage against its floors.
func StatusForMargin(v float64, t domain.Thresholds) domain.Status {
	if v >= t.NIMGreen {
		return domain.StatusGreen
	}
	if v >= t.NIMYellow {
		return domain.StatusYellow
	}
	return domain.StatusRed
}

// StatusForNetIncome is green at or above break-even, red at or below the
// warning floor, yellow in between.
func StatusForNetIncome(v float64, t domain.Thresholds) domain.Status {
	if v >= 0 {
		return domain.StatusGreen
	}
	if v <= t.NetIncomeWarn {
		return domain.StatusRed
	}
	return domain.StatusYellow
}

// ClassifyKPI dispatches on metric name. Unknown metrics read as red, the
// same fail-visible default the dashboard uses.
func ClassifyKPI(metric string, value float64, t domain.Thresholds) domain.Status {
	switch metric {
	case "costPerReturn":
		return StatusForCPR(value, t)
	case "netMargin":
		return StatusForMargin(value, t)
	case "netIncome":
		return StatusForNetIncome(value, t)
	default:
		return domain.StatusRed
	}
}

// CategoryBand is the high/medium boundary pair for one expense category's
// share of total revenue, in percent.
type CategoryBand struct {
	High   float64
	Medium float64
}

// categoryBands carries the per-category targets from the P&L report:
// a ratio above High flags, above Medium warrants monitoring.
var categoryBands = map[domain.ExpenseCategory]CategoryBand{
	domain.CategoryPersonnel:  {High: 35, Medium: 25},
	domain.CategoryFacility:   {High: 20, Medium: 15},
	domain.CategoryOperations: {High: 15, Medium: 10},
	domain.CategoryFranchise:  {High: 25, Medium: 20},
	domain.CategoryMisc:       {High: 10, Medium: 5},
}

// TotalExpenseBand grades total expenses as a share of revenue.
var TotalExpenseBand = CategoryBand{High: 75, Medium: 65}

// BandFor returns the band for a category; unknown categories reuse the
// total-expense band.
func BandFor(category domain.ExpenseCategory) CategoryBand {
	if b, ok := categoryBands[category]; ok {
		return b
	}
	return TotalExpenseBand
}

// StatusForCategoryRatio grades a category expense ratio against its band.
func StatusForCategoryRatio(pct float64, band CategoryBand) domain.CategoryStatus {
	if pct > band.High {
		return domain.CategoryHigh
	}
	if pct > band.Medium {
		return domain.CategoryMedium
	}
	return domain.CategoryGood
}

// CategoryRatio expresses a category total as a percentage of revenue,
// degrading to 0 when revenue is 0.
func CategoryRatio(amount, totalRevenue float64) float64 {
	amount, totalRevenue = num(amount), num(totalRevenue)
	if totalRevenue <= 0 {
		return 0
	}
	return amount / totalRevenue * 100
}
