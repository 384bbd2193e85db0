package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectValue(t *testing.T) {
	tests := []struct {
		name      string
		lastYear  float64
		growthPct float64
		expected  float64
	}{
		{"five percent fee growth", 125, 5, 131},
		{"five percent return growth", 1600, 5, 1680},
		{"decline", 1600, -10, 1440},
		{"no change", 125, 0, 125},
		{"zero base", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ProjectValue(tt.lastYear, tt.growthPct), 1e-9)
		})
	}
}

func TestFieldGrowth(t *testing.T) {
	assert.InDelta(t, 12.0, FieldGrowth(140, 125), 1e-9)
	assert.InDelta(t, 5.0, FieldGrowth(131, 125), 1e-9)
	assert.InDelta(t, -10.0, FieldGrowth(1440, 1600), 1e-9)
	assert.InDelta(t, 0.0, FieldGrowth(140, 0), 1e-9)
}

func TestProjectUniformGrowth(t *testing.T) {
	got := Project(ProjectionInputs{
		AvgNetFee:         125,
		TaxPrepReturns:    1600,
		ExpectedGrowthPct: 5,
	})

	assert.InDelta(t, 131.0, got.AvgNetFee, 1e-9)
	assert.InDelta(t, 1680.0, got.TaxPrepReturns, 1e-9)
	assert.InDelta(t, 220080.0, got.GrossFees, 1e-9)
	// Discounts default to 3% of gross when unset.
	assert.InDelta(t, 6602.4, got.Discounts, 1e-9)
	assert.InDelta(t, 213477.6, got.TaxPrepIncome, 1e-9)
	assert.InDelta(t, 167261.0, got.StandardExpenses, 1e-9)
	assert.InDelta(t, 0.0, got.RevenueVariance, 1e-9)
	assert.InDelta(t, 10.0, got.BlendedGrowthPct, 1e-9)
	assert.Empty(t, got.Adjustments)
}

func TestProjectExplicitDiscounts(t *testing.T) {
	got := Project(ProjectionInputs{
		AvgNetFee:         125,
		TaxPrepReturns:    1600,
		ExpectedGrowthPct: 5,
		DiscountsPct:      2,
	})

	assert.InDelta(t, 4401.6, got.Discounts, 1e-9)
	assert.InDelta(t, 215678.4, got.TaxPrepIncome, 1e-9)
}

func TestProjectOverrideFlagsAdjustment(t *testing.T) {
	got := Project(ProjectionInputs{
		AvgNetFee:          125,
		TaxPrepReturns:     1600,
		ExpectedGrowthPct:  5,
		ProjectedAvgNetFee: f64(140),
	})

	assert.InDelta(t, 140.0, got.AvgNetFee, 1e-9)
	assert.InDelta(t, 1680.0, got.TaxPrepReturns, 1e-9)

	require.Len(t, got.Adjustments, 1)
	adj := got.Adjustments[0]
	assert.Equal(t, "Average Net Fee", adj.Field)
	assert.InDelta(t, 12.0, adj.ActualGrowth, 1e-9)
	assert.InDelta(t, 5.0, adj.ExpectedGrowth, 1e-9)
	assert.InDelta(t, 7.0, adj.Variance, 1e-9)

	// Variance compares raw revenue products, not rounded display values.
	assert.InDelta(t, 235200.0, got.ActualRevenue, 1e-9)
	assert.InDelta(t, 220080.0, got.TargetRevenue, 1e-9)
	assert.InDelta(t, (235200.0-220080.0)/220080.0*100, got.RevenueVariance, 1e-9)
}

func TestProjectOverrideWithinToleranceSuppressed(t *testing.T) {
	got := Project(ProjectionInputs{
		AvgNetFee:          125,
		TaxPrepReturns:     1600,
		ExpectedGrowthPct:  5,
		ProjectedAvgNetFee: f64(131),
	})

	// 131 from 125 is 4.8%, rounding to the 5% target: no flag.
	assert.Empty(t, got.Adjustments)
}

func TestProjectBlendedGrowthWithOverrides(t *testing.T) {
	got := Project(ProjectionInputs{
		AvgNetFee:               125,
		TaxPrepReturns:          1600,
		ExpectedGrowthPct:       5,
		ProjectedAvgNetFee:      f64(140),
		ProjectedTaxPrepReturns: f64(1600),
	})

	// 140 * 1600 = 224000 against 200000 original: 12% blended.
	assert.InDelta(t, 12.0, got.BlendedGrowthPct, 1e-9)

	// Both overrides drift from target; the returns override held flat.
	require.Len(t, got.Adjustments, 2)
	assert.Equal(t, "Tax Prep Returns", got.Adjustments[1].Field)
	assert.InDelta(t, 0.0, got.Adjustments[1].ActualGrowth, 1e-9)
	assert.InDelta(t, -5.0, got.Adjustments[1].Variance, 1e-9)
}

func TestProjectZeroPriorYear(t *testing.T) {
	got := Project(ProjectionInputs{ExpectedGrowthPct: 5})

	assert.Zero(t, got.GrossFees)
	assert.Zero(t, got.ActualRevenue)
	assert.InDelta(t, 5.0, got.BlendedGrowthPct, 1e-9)
	assert.Empty(t, got.Adjustments)
}

func TestGrowthOptionsOrdered(t *testing.T) {
	require.NotEmpty(t, GrowthOptions)
	for i := 1; i < len(GrowthOptions); i++ {
		assert.Greater(t, GrowthOptions[i].Value, GrowthOptions[i-1].Value)
	}
	assert.InDelta(t, -10.0, GrowthOptions[0].Value, 1e-9)
	assert.InDelta(t, 20.0, GrowthOptions[len(GrowthOptions)-1].Value, 1e-9)
}
