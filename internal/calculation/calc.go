package calculation

import (
	"github.com/pnlgo/pnl-budgeter/internal/domain"
	"github.com/pnlgo/pnl-budgeter/pkg/round"
)

// Calc is the top-level aggregate entry point: income drivers plus all 17
// expense lines in, the complete KPI record out. It is pure, synchronous,
// and cheap enough to re-run on every input change; callers always receive
// a fully recomputed record, never a partial update.
//
// For the US region every TaxRush contribution is zero and TaxRush returns
// are excluded from total returns.
func Calc(in domain.CalculationInputs) domain.CalculationResults {
	taxRushReturns := 0.0
	if in.Region == domain.RegionCA {
		taxRushReturns = num(in.TaxRushReturns)
	}

	grossFees := CalculateGrossTaxPrepFees(in.AvgNetFee, in.TaxPrepReturns)
	discounts := CalculateDiscountAmount(grossFees, in.DiscountsPct)
	taxPrepIncome := round.Cents(grossFees - discounts)

	taxRushIncome := 0.0
	if taxRushReturns > 0 {
		taxRushIncome = round.Cents(num(in.AvgNetFee) * taxRushReturns)
	}

	otherIncome := num(in.OtherIncome)
	totalRevenue := round.Cents(taxPrepIncome + taxRushIncome + otherIncome)

	ev := in.Expenses
	b := domain.ExpenseBreakdown{
		Salaries:  AmountFromPct(ev.SalariesPct, grossFees),
		Rent:      AmountFromPct(ev.RentPct, grossFees),
		Telephone: round.Cents(num(ev.TelephoneAmt)),
		Utilities: round.Cents(num(ev.UtilitiesAmt)),

		LocalAdv:    round.Cents(num(ev.LocalAdvAmt)),
		Insurance:   round.Cents(num(ev.InsuranceAmt)),
		Postage:     round.Cents(num(ev.PostageAmt)),
		Supplies:    AmountFromPct(ev.SuppliesPct, grossFees),
		Dues:        round.Cents(num(ev.DuesAmt)),
		BankFees:    round.Cents(num(ev.BankFeesAmt)),
		Maintenance: round.Cents(num(ev.MaintenanceAmt)),
		TravelEnt:   round.Cents(num(ev.TravelEntAmt)),

		Royalties:    AmountFromPct(ev.RoyaltiesPct, taxPrepIncome),
		AdvRoyalties: AmountFromPct(ev.AdvRoyaltiesPct, taxPrepIncome),

		Misc: AmountFromPct(ev.MiscPct, grossFees),
	}
	// Employee deductions are a percentage of salaries, not of gross.
	b.EmpDeductions = AmountFromPct(ev.EmpDeductionsPct, b.Salaries)
	if in.Region == domain.RegionCA {
		b.TaxRushRoyalties = AmountFromPct(ev.TaxRushRoyaltiesPct, taxPrepIncome)
	}

	totalExpenses := b.Salaries + b.EmpDeductions +
		b.Rent + b.Telephone + b.Utilities +
		b.LocalAdv + b.Insurance + b.Postage + b.Supplies +
		b.Dues + b.BankFees + b.Maintenance + b.TravelEnt +
		b.Royalties + b.AdvRoyalties + b.TaxRushRoyalties +
		b.Misc

	netIncome := round.Cents(totalRevenue - totalExpenses)
	totalReturns := num(in.TaxPrepReturns) + taxRushReturns

	denom := totalReturns
	if denom < 1 {
		denom = 1
	}
	costPerReturn := round.Cents(totalExpenses / denom)

	netMarginPct := 0.0
	if totalRevenue != 0 {
		netMarginPct = round.Tenth(netIncome / totalRevenue * 100)
	}

	return domain.CalculationResults{
		GrossFees:     grossFees,
		Discounts:     discounts,
		TaxPrepIncome: taxPrepIncome,
		TaxRushIncome: taxRushIncome,
		OtherIncome:   otherIncome,
		TotalRevenue:  totalRevenue,
		Expenses:      b,
		TotalExpenses: totalExpenses,
		NetIncome:     netIncome,
		TotalReturns:  totalReturns,
		CostPerReturn: costPerReturn,
		NetMarginPct:  netMarginPct,
	}
}
