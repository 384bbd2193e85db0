package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pnlgo/pnl-budgeter/internal/domain"
)

func TestAmountFromPct(t *testing.T) {
	assert.InDelta(t, 51500.0, AmountFromPct(25, 206000), 1e-9)
	assert.InDelta(t, 0.0, AmountFromPct(0, 206000), 1e-9)
	assert.InDelta(t, 0.0, AmountFromPct(25, 0), 1e-9)
	assert.InDelta(t, 7213.71, AmountFromPct(3.5, 206106), 1e-9)
}

func TestPctFromAmount(t *testing.T) {
	assert.InDelta(t, 25.0, PctFromAmount(51500, 206000), 1e-9)
	assert.InDelta(t, 0.0, PctFromAmount(0, 206000), 1e-9)
	assert.InDelta(t, 0.0, PctFromAmount(51500, 0), 1e-9)
}

func TestReconcileRowPctEdit(t *testing.T) {
	row := domain.ExpenseRowState{
		FieldID:    "salariesPct",
		Pct:        25,
		LastEdited: domain.EditPct,
	}

	got := ReconcileRow(row, 200000)

	assert.InDelta(t, 25.0, got.Pct, 1e-9)
	assert.InDelta(t, 25.0, got.SliderValue, 1e-9)
	assert.InDelta(t, 50000.0, got.Amount, 1e-9)
}

func TestReconcileRowAmountEdit(t *testing.T) {
	row := domain.ExpenseRowState{
		FieldID:    "rentPct",
		Amount:     36000,
		Pct:        18,
		LastEdited: domain.EditAmount,
	}

	got := ReconcileRow(row, 200000)

	// The edited amount is authoritative and untouched.
	assert.InDelta(t, 36000.0, got.Amount, 1e-9)
	assert.InDelta(t, 18.0, got.Pct, 1e-9)
	assert.InDelta(t, 18.0, got.SliderValue, 1e-9)
}

func TestReconcileRowSliderEdit(t *testing.T) {
	row := domain.ExpenseRowState{
		FieldID:     "salariesPct",
		Pct:         25,
		Amount:      50000,
		SliderValue: 30,
		LastEdited:  domain.EditSlider,
	}

	got := ReconcileRow(row, 200000)

	assert.InDelta(t, 30.0, got.Pct, 1e-9)
	assert.InDelta(t, 60000.0, got.Amount, 1e-9)
	assert.InDelta(t, 30.0, got.SliderValue, 1e-9)
}

func TestReconcileRowZeroBase(t *testing.T) {
	row := domain.ExpenseRowState{
		FieldID:    "salariesPct",
		Pct:        25,
		Amount:     50000,
		LastEdited: domain.EditPct,
	}

	got := ReconcileRow(row, 0)

	// Nothing is recomputed against an empty base.
	assert.Equal(t, row, got)
}

func TestReconcileRoundTripStaysClose(t *testing.T) {
	// Deriving an amount from a percentage and converting it back must land
	// within one tenth of a point of the original.
	bases := []float64{200000, 206000, 123456.78, 99.5}
	pcts := []float64{25, 18, 3.5, 14, 2.5, 0.1, 99.9}

	for _, base := range bases {
		for _, pct := range pcts {
			amount := AmountFromPct(pct, base)
			back := PctFromAmount(amount, base)
			assert.InDelta(t, pct, back, 0.1, "base=%v pct=%v", base, pct)
		}
	}
}

func TestReconcileRepeatedSettlesStable(t *testing.T) {
	row := domain.ExpenseRowState{
		FieldID:    "suppliesPct",
		Pct:        3.5,
		LastEdited: domain.EditPct,
	}

	first := ReconcileRow(row, 206106)
	second := ReconcileRow(first, 206106)
	third := ReconcileRow(second, 206106)

	assert.Equal(t, first, second)
	assert.Equal(t, second, third)
}
