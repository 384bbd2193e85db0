package calculation

import (
	"github.com/pnlgo/pnl-budgeter/internal/domain"
	"github.com/pnlgo/pnl-budgeter/pkg/round"
)

// AmountFromPct converts a percentage of a base to dollars. Returns 0 when
// either operand is zero or not finite.
func AmountFromPct(pct, base float64) float64 {
	pct, base = num(pct), num(base)
	if pct == 0 || base == 0 {
		return 0
	}
	return round.Cents(pct / 100 * base)
}

// PctFromAmount converts a dollar amount back to a percentage of a base.
// Returns 0 when either operand is zero or not finite.
func PctFromAmount(amount, base float64) float64 {
	amount, base = num(amount), num(base)
	if amount == 0 || base == 0 {
		return 0
	}
	return round.Tenth(amount / base * 100)
}

// ReconcileRow settles one dual-entry row against its base. The field named
// by LastEdited is authoritative and kept verbatim; only the other
// representations are recomputed from it, which is what rules out
// oscillation between the amount and percentage views. A slider edit
// recomputes both. When the base is 0 nothing is recomputed and the
// non-edited fields keep their last valid values.
//
// Fixed-amount rows never reach here; ComputeExpenseTotals treats their
// amount as authoritative with no percentage derivation.
func ReconcileRow(row domain.ExpenseRowState, base float64) domain.ExpenseRowState {
	base = num(base)
	if base == 0 {
		return row
	}

	switch row.LastEdited {
	case domain.EditAmount:
		pct := PctFromAmount(row.Amount, base)
		row.Pct = pct
		row.SliderValue = pct
	case domain.EditSlider:
		row.Pct = num(row.SliderValue)
		row.Amount = AmountFromPct(row.Pct, base)
	default:
		// EditPct, and the zero value for freshly seeded rows.
		row.SliderValue = num(row.Pct)
		row.Amount = AmountFromPct(row.Pct, base)
	}
	return row
}
