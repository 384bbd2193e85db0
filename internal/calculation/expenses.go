package calculation

import (
	"github.com/pnlgo/pnl-budgeter/internal/domain"
	"github.com/pnlgo/pnl-budgeter/pkg/round"
)

// BaseFor resolves the denominator an expense field's percentage applies
// to. Fixed-amount fields get a base of 1 so their amount stands alone.
// Unknown bases fall back to gross fees.
func BaseFor(field domain.ExpenseFieldDefinition, bases domain.ExpenseBases) float64 {
	switch field.Base {
	case domain.BasePctGross:
		return num(bases.GrossFees)
	case domain.BasePctTPIncome:
		return num(bases.TaxPrepIncome)
	case domain.BasePctSalaries:
		return num(bases.Salaries)
	case domain.BaseFixedAmount:
		return 1
	default:
		return num(bases.GrossFees)
	}
}

// ComputeExpenseTotals reconciles every row against its field's base and
// sums the resulting amounts. Rows without a matching definition are
// carried through untouched and flag the state invalid. Per-row amounts
// are cent-rounded; the grand total is their plain arithmetic sum.
func ComputeExpenseTotals(fields []domain.ExpenseFieldDefinition, bases domain.ExpenseBases, rows []domain.ExpenseRowState) domain.ExpensesState {
	byID := make(map[string]domain.ExpenseFieldDefinition, len(fields))
	for _, f := range fields {
		byID[f.ID] = f
	}

	state := domain.ExpensesState{
		Rows:  make([]domain.ExpenseRowState, 0, len(rows)),
		Valid: true,
	}
	for _, row := range rows {
		field, ok := byID[row.FieldID]
		if !ok {
			state.Valid = false
			state.Rows = append(state.Rows, row)
			continue
		}
		if field.Base == domain.BaseFixedAmount {
			row.Amount = round.Cents(num(row.Amount))
		} else {
			row = ReconcileRow(row, BaseFor(field, bases))
		}
		state.Rows = append(state.Rows, row)
		state.Total += row.Amount
	}
	return state
}

// InsuranceGrouping names the two category layouts the reports use for the
// insurance line. The field registry files insurance under Operations,
// which is the canonical grouping; the dashboard's expense table
// historically showed it under Facility and that layout is kept available
// for that call site.
type InsuranceGrouping int

const (
	InsuranceInOperations InsuranceGrouping = iota
	InsuranceInFacility
)

// CategoryTotals is the per-category expense rollup.
type CategoryTotals struct {
	Personnel  float64 `json:"personnel"`
	Facility   float64 `json:"facility"`
	Operations float64 `json:"operations"`
	Franchise  float64 `json:"franchise"`
	Misc       float64 `json:"misc"`
	Total      float64 `json:"total"`
}

// CategoryTotalsFor rolls the itemized breakdown up into the five category
// totals under the requested insurance grouping.
func CategoryTotalsFor(b domain.ExpenseBreakdown, grouping InsuranceGrouping) CategoryTotals {
	t := CategoryTotals{
		Personnel: b.Salaries + b.EmpDeductions,
		Facility:  b.Rent + b.Telephone + b.Utilities,
		Operations: b.LocalAdv + b.Postage + b.Supplies +
			b.Dues + b.BankFees + b.Maintenance + b.TravelEnt,
		Franchise: b.Royalties + b.AdvRoyalties + b.TaxRushRoyalties,
		Misc:      b.Misc,
	}
	if grouping == InsuranceInFacility {
		t.Facility += b.Insurance
	} else {
		t.Operations += b.Insurance
	}
	t.Total = t.Personnel + t.Facility + t.Operations + t.Franchise + t.Misc
	return t
}
