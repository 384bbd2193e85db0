package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pnlgo/pnl-budgeter/internal/domain"
)

func f64(v float64) *float64 { return &v }

func TestCalculateDiscountPct(t *testing.T) {
	tests := []struct {
		name           string
		grossFees      float64
		discountAmount float64
		expected       float64
	}{
		{"three percent of gross", 206000, 6180, 3},
		{"zero gross fees degrades", 0, 6180, 0},
		{"zero discount", 206000, 0, 0},
		{"fractional result rounds to tenth", 100000, 1234, 1.2},
		{"NaN gross degrades", math.NaN(), 6180, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CalculateDiscountPct(tt.grossFees, tt.discountAmount), 1e-9)
		})
	}
}

func TestCalculateDiscountAmount(t *testing.T) {
	assert.InDelta(t, 1000.0, CalculateDiscountAmount(999999.99, 0.1), 1e-9)
	assert.InDelta(t, 6180.0, CalculateDiscountAmount(206000, 3), 1e-9)
	assert.InDelta(t, 0.0, CalculateDiscountAmount(0, 3), 1e-9)
}

func TestCalculateAvgNetFee(t *testing.T) {
	tests := []struct {
		name           string
		grossFees      float64
		taxPrepReturns float64
		expected       float64
	}{
		{"typical store", 206000, 1680, 122.62},
		{"zero returns degrades", 206000, 0, 0},
		{"zero gross", 0, 1680, 0},
		{"infinite gross degrades", math.Inf(1), 1680, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CalculateAvgNetFee(tt.grossFees, tt.taxPrepReturns), 1e-9)
		})
	}
}

func TestCalculateTaxPrepIncome(t *testing.T) {
	t.Run("explicit discount amount wins", func(t *testing.T) {
		assert.InDelta(t, 199820.0, CalculateTaxPrepIncome(206000, f64(6180)), 1e-9)
	})
	t.Run("nil discount applies three percent default", func(t *testing.T) {
		assert.InDelta(t, 199820.0, CalculateTaxPrepIncome(206000, nil), 1e-9)
	})
	t.Run("explicit zero discount means none", func(t *testing.T) {
		assert.InDelta(t, 206000.0, CalculateTaxPrepIncome(206000, f64(0)), 1e-9)
	})
	t.Run("zero gross short-circuits", func(t *testing.T) {
		assert.InDelta(t, 0.0, CalculateTaxPrepIncome(0, nil), 1e-9)
	})
}

func TestCalculateGrossTaxPrepFees(t *testing.T) {
	assert.InDelta(t, 210840.0, CalculateGrossTaxPrepFees(125.5, 1680), 1e-9)
	assert.InDelta(t, 0.0, CalculateGrossTaxPrepFees(0, 1680), 1e-9)
	assert.InDelta(t, 0.0, CalculateGrossTaxPrepFees(125.5, 0), 1e-9)
}

func TestCalculateTaxRushGrossFees(t *testing.T) {
	t.Run("explicit rush fee wins", func(t *testing.T) {
		assert.InDelta(t, 30000.0, CalculateTaxRushGrossFees(240, f64(125), 206000, 1680), 1e-9)
	})
	t.Run("nil rush fee falls back to derived avg net fee", func(t *testing.T) {
		assert.InDelta(t, 29428.8, CalculateTaxRushGrossFees(240, nil, 206000, 1680), 1e-9)
	})
	t.Run("zero rush fee also falls back", func(t *testing.T) {
		assert.InDelta(t, 29428.8, CalculateTaxRushGrossFees(240, f64(0), 206000, 1680), 1e-9)
	})
	t.Run("zero rush returns disables everything", func(t *testing.T) {
		assert.InDelta(t, 0.0, CalculateTaxRushGrossFees(0, f64(125), 206000, 1680), 1e-9)
	})
	t.Run("no fallback without tax prep returns", func(t *testing.T) {
		assert.InDelta(t, 0.0, CalculateTaxRushGrossFees(240, nil, 206000, 0), 1e-9)
	})
}

func TestCalculateTaxRushReturnShares(t *testing.T) {
	assert.InDelta(t, 14.3, CalculateTaxRushReturnsPct(240, 1680), 1e-9)
	assert.InDelta(t, 0.0, CalculateTaxRushReturnsPct(240, 0), 1e-9)
	assert.InDelta(t, 240.0, CalculateTaxRushReturnsCount(1680, 14.3), 1e-9)
	assert.InDelta(t, 252.0, DefaultTaxRushReturns(1680), 1e-9)
}

func TestCalculateLastYearRevenue(t *testing.T) {
	assert.InDelta(t, 97000.63, CalculateLastYearRevenue(100000.55, 3000.12, 0.2), 1e-9)
	assert.InDelta(t, 202320.0, CalculateLastYearRevenue(206000, 6180, 2500), 1e-9)
}

func TestCalculateTotalExpensesFromGross(t *testing.T) {
	assert.InDelta(t, 156560.0, CalculateTotalExpensesFromGross(206000), 1e-9)
	assert.InDelta(t, 0.0, CalculateTotalExpensesFromGross(0), 1e-9)
}

func TestCalculateNetIncome(t *testing.T) {
	assert.InDelta(t, 52319.88, CalculateNetIncome(202320, 150000.12), 1e-9)
	assert.InDelta(t, -5000.0, CalculateNetIncome(95000, 100000), 1e-9)
}

func TestNormalizePriorYearMetrics(t *testing.T) {
	raw := domain.RawPriorYearMetrics{
		GrossFees:        206000,
		DiscountAmount:   f64(6180),
		OtherIncome:      2500,
		Expenses:         150000,
		TaxPrepReturns:   1680,
		TaxRushReturns:   240,
		TaxRushAvgNetFee: f64(125),
	}

	got := NormalizePriorYearMetrics(raw)

	assert.InDelta(t, 206000.0, got.GrossFees, 1e-9)
	assert.InDelta(t, 6180.0, got.DiscountAmount, 1e-9)
	assert.InDelta(t, 3.0, got.DiscountPct, 1e-9)
	assert.InDelta(t, 199820.0, got.TaxPrepIncome, 1e-9)
	assert.InDelta(t, 30000.0, got.TaxRushGrossFees, 1e-9)
	assert.InDelta(t, 202320.0, got.Revenue, 1e-9)
	assert.InDelta(t, 52320.0, got.NetIncome, 1e-9)
	assert.InDelta(t, 122.62, got.AvgNetFee, 1e-9)
	assert.InDelta(t, 125.0, got.TaxRushAvgNetFee, 1e-9)
}

func TestNormalizePriorYearMetricsDegrades(t *testing.T) {
	t.Run("empty input yields all zeros", func(t *testing.T) {
		got := NormalizePriorYearMetrics(domain.RawPriorYearMetrics{})
		assert.Zero(t, got.GrossFees)
		assert.Zero(t, got.DiscountPct)
		assert.Zero(t, got.AvgNetFee)
		assert.Zero(t, got.Revenue)
		assert.Zero(t, got.NetIncome)
	})

	t.Run("NaN input never propagates", func(t *testing.T) {
		got := NormalizePriorYearMetrics(domain.RawPriorYearMetrics{
			GrossFees:      math.NaN(),
			OtherIncome:    math.Inf(1),
			TaxPrepReturns: 1680,
		})
		assert.False(t, math.IsNaN(got.Revenue))
		assert.False(t, math.IsInf(got.Revenue, 0))
		assert.Zero(t, got.AvgNetFee)
	})

	t.Run("missing rush fee defaults to derived avg net fee", func(t *testing.T) {
		got := NormalizePriorYearMetrics(domain.RawPriorYearMetrics{
			GrossFees:      206000,
			TaxPrepReturns: 1680,
		})
		assert.InDelta(t, 122.62, got.TaxRushAvgNetFee, 1e-9)
	})
}
