package calculation

import (
	"math"

	"github.com/pnlgo/pnl-budgeter/internal/domain"
	"github.com/pnlgo/pnl-budgeter/pkg/round"
)

// DefaultDiscountRate is applied when an operator enters gross fees but no
// discount figure: discounts default to 3% of gross.
const DefaultDiscountRate = 0.03

// StandardExpenseRate is the industry-standard total expense heuristic:
// 76% of gross tax prep fees.
const StandardExpenseRate = 0.76

// DefaultTaxRushShare is the suggested TaxRush share of total returns when
// no explicit count is given.
const DefaultTaxRushShare = 0.15

// num collapses NaN and infinities to 0 so bad upstream input degrades
// instead of propagating.
func num(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// CalculateDiscountPct derives the discount percentage from gross fees and
// the discount dollar amount. Zero gross fees degrades to 0.
func CalculateDiscountPct(grossFees, discountAmount float64) float64 {
	grossFees, discountAmount = num(grossFees), num(discountAmount)
	if grossFees == 0 {
		return 0
	}
	return round.Tenth(discountAmount / grossFees * 100)
}

// CalculateDiscountAmount converts a discount percentage of gross fees to
// dollars.
func CalculateDiscountAmount(grossFees, discountPct float64) float64 {
	return round.Cents(num(grossFees) * num(discountPct) / 100)
}

// CalculateAvgNetFee derives the average net fee per return. Zero returns
// degrades to 0.
func CalculateAvgNetFee(grossFees, taxPrepReturns float64) float64 {
	grossFees, taxPrepReturns = num(grossFees), num(taxPrepReturns)
	if taxPrepReturns == 0 {
		return 0
	}
	return round.Cents(grossFees / taxPrepReturns)
}

// CalculateTaxPrepIncome is gross fees less discounts. A nil discountAmount
// means none was entered and the 3% default applies; zero gross fees
// short-circuits to 0.
func CalculateTaxPrepIncome(grossFees float64, discountAmount *float64) float64 {
	grossFees = num(grossFees)
	if grossFees == 0 {
		return 0
	}
	applied := round.Cents(grossFees * DefaultDiscountRate)
	if discountAmount != nil {
		applied = round.Cents(num(*discountAmount))
	}
	return round.Cents(grossFees - applied)
}

// CalculateGrossTaxPrepFees is average net fee times return count, before
// discounts.
func CalculateGrossTaxPrepFees(avgNetFee, taxPrepReturns float64) float64 {
	avgNetFee, taxPrepReturns = num(avgNetFee), num(taxPrepReturns)
	if avgNetFee == 0 || taxPrepReturns == 0 {
		return 0
	}
	return round.Cents(avgNetFee * taxPrepReturns)
}

// CalculateTaxRushGrossFees derives TaxRush gross fees. An explicit TaxRush
// average fee wins; otherwise the fee falls back to the average net fee
// derived from gross fees and return count. Missing and zero tax prep
// returns are treated identically: both disable the fallback.
func CalculateTaxRushGrossFees(taxRushReturns float64, taxRushAvgNetFee *float64, grossFees, taxPrepReturns float64) float64 {
	taxRushReturns = num(taxRushReturns)
	if taxRushReturns == 0 {
		return 0
	}
	if taxRushAvgNetFee != nil && num(*taxRushAvgNetFee) != 0 {
		return round.Cents(taxRushReturns * num(*taxRushAvgNetFee))
	}
	anf := CalculateAvgNetFee(grossFees, taxPrepReturns)
	if anf == 0 {
		return 0
	}
	return round.Cents(taxRushReturns * anf)
}

// CalculateTaxRushReturnsPct is the TaxRush share of total tax prep
// returns, in tenths of a percent. Zero total returns degrades to 0.
func CalculateTaxRushReturnsPct(taxRushReturns, taxPrepReturns float64) float64 {
	taxRushReturns, taxPrepReturns = num(taxRushReturns), num(taxPrepReturns)
	if taxPrepReturns == 0 {
		return 0
	}
	return round.Tenth(taxRushReturns / taxPrepReturns * 100)
}

// CalculateTaxRushReturnsCount converts a TaxRush percentage back to a
// whole return count.
func CalculateTaxRushReturnsCount(taxPrepReturns, taxRushPct float64) float64 {
	return round.Whole(num(taxPrepReturns) * num(taxRushPct) / 100)
}

// DefaultTaxRushReturns suggests a TaxRush count of 15% of total returns.
// The suggestion is fully overridable by the operator.
func DefaultTaxRushReturns(taxPrepReturns float64) float64 {
	return round.Whole(num(taxPrepReturns) * DefaultTaxRushShare)
}

// CalculateLastYearRevenue combines gross fees, discounts, and other income
// into total prior-year revenue.
func CalculateLastYearRevenue(grossFees, discountAmount, otherIncome float64) float64 {
	return round.Cents(num(grossFees) - num(discountAmount) + num(otherIncome))
}

// CalculateTotalExpensesFromGross applies the 76% industry-standard expense
// heuristic to gross tax prep fees. Gross fees is the canonical base for
// both new and existing stores.
func CalculateTotalExpensesFromGross(grossFees float64) float64 {
	return round.Whole(num(grossFees) * StandardExpenseRate)
}

// CalculateNetIncome is revenue less expenses, cent-rounded.
func CalculateNetIncome(revenue, expenses float64) float64 {
	return round.Cents(num(revenue) - num(expenses))
}

// NormalizePriorYearMetrics produces a complete, internally consistent
// prior-year record from partial operator input. All divide-by-zero paths
// degrade to 0; the function never panics and never emits NaN or Inf.
func NormalizePriorYearMetrics(raw domain.RawPriorYearMetrics) domain.NormalizedPriorYearMetrics {
	grossFees := num(raw.GrossFees)
	otherIncome := num(raw.OtherIncome)
	expenses := num(raw.Expenses)
	taxPrepReturns := num(raw.TaxPrepReturns)
	taxRushReturns := num(raw.TaxRushReturns)

	discountAmount := 0.0
	if raw.DiscountAmount != nil {
		discountAmount = round.Cents(num(*raw.DiscountAmount))
	}

	discountPct := CalculateDiscountPct(grossFees, discountAmount)
	avgNetFee := CalculateAvgNetFee(grossFees, taxPrepReturns)
	taxPrepIncome := CalculateTaxPrepIncome(grossFees, raw.DiscountAmount)
	taxRushGrossFees := CalculateTaxRushGrossFees(taxRushReturns, raw.TaxRushAvgNetFee, grossFees, taxPrepReturns)
	revenue := CalculateLastYearRevenue(grossFees, discountAmount, otherIncome)
	netIncome := CalculateNetIncome(revenue, expenses)

	taxRushAvgNetFee := avgNetFee
	if raw.TaxRushAvgNetFee != nil && num(*raw.TaxRushAvgNetFee) != 0 {
		taxRushAvgNetFee = round.Cents(num(*raw.TaxRushAvgNetFee))
	}

	return domain.NormalizedPriorYearMetrics{
		GrossFees:        grossFees,
		DiscountAmount:   discountAmount,
		DiscountPct:      discountPct,
		TaxPrepIncome:    taxPrepIncome,
		TaxRushGrossFees: taxRushGrossFees,
		Revenue:          revenue,
		Expenses:         expenses,
		NetIncome:        netIncome,
		AvgNetFee:        avgNetFee,
		OtherIncome:      otherIncome,
		TaxPrepReturns:   taxPrepReturns,
		TaxRushReturns:   taxRushReturns,
		TaxRushAvgNetFee: taxRushAvgNetFee,
	}
}
