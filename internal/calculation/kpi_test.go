package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pnlgo/pnl-budgeter/internal/domain"
)

func TestStatusForCPR(t *testing.T) {
	th := domain.DefaultThresholds()

	tests := []struct {
		name     string
		value    float64
		expected domain.Status
	}{
		{"well under green ceiling", 74.50, domain.StatusGreen},
		{"exactly at green ceiling", 95, domain.StatusGreen},
		{"just over green ceiling", 95.01, domain.StatusYellow},
		{"exactly at yellow ceiling", 110, domain.StatusYellow},
		{"over yellow ceiling", 110.01, domain.StatusRed},
		{"zero cost", 0, domain.StatusGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusForCPR(tt.value, th))
		})
	}
}

func TestStatusForMargin(t *testing.T) {
	th := domain.DefaultThresholds()

	tests := []struct {
		name     string
		value    float64
		expected domain.Status
	}{
		{"strong margin", 25.9, domain.StatusGreen},
		{"exactly at green floor", 20, domain.StatusGreen},
		{"just under green floor", 19.9, domain.StatusYellow},
		{"exactly at yellow floor", 15, domain.StatusYellow},
		{"under yellow floor", 14.9, domain.StatusRed},
		{"negative margin", -3, domain.StatusRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusForMargin(tt.value, th))
		})
	}
}

func TestStatusForNetIncome(t *testing.T) {
	th := domain.DefaultThresholds()

	tests := []struct {
		name     string
		value    float64
		expected domain.Status
	}{
		{"profitable", 52320, domain.StatusGreen},
		{"break-even is green", 0, domain.StatusGreen},
		{"small loss is yellow", -0.01, domain.StatusYellow},
		{"loss above warning floor", -4999.99, domain.StatusYellow},
		{"exactly at warning floor", -5000, domain.StatusRed},
		{"deep loss", -20000, domain.StatusRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusForNetIncome(tt.value, th))
		})
	}
}

func TestClassifyKPI(t *testing.T) {
	th := domain.DefaultThresholds()

	assert.Equal(t, domain.StatusGreen, ClassifyKPI("costPerReturn", 90, th))
	assert.Equal(t, domain.StatusYellow, ClassifyKPI("netMargin", 17, th))
	assert.Equal(t, domain.StatusGreen, ClassifyKPI("netIncome", 100, th))
	assert.Equal(t, domain.StatusRed, ClassifyKPI("unheardOfMetric", 100, th))
}

func TestClassifyKPICustomThresholds(t *testing.T) {
	th := domain.Thresholds{
		CPRGreen: 80, CPRYellow: 100,
		NIMGreen: 25, NIMYellow: 18,
		NetIncomeWarn: -1000,
	}

	assert.Equal(t, domain.StatusYellow, StatusForCPR(90, th))
	assert.Equal(t, domain.StatusYellow, StatusForMargin(20, th))
	assert.Equal(t, domain.StatusRed, StatusForNetIncome(-1500, th))
}

func TestStatusForCategoryRatio(t *testing.T) {
	band := BandFor(domain.CategoryPersonnel)

	tests := []struct {
		name     string
		pct      float64
		expected domain.CategoryStatus
	}{
		{"under medium is good", 24, domain.CategoryGood},
		{"exactly medium is good", 25, domain.CategoryGood},
		{"between bounds monitors", 30, domain.CategoryMedium},
		{"exactly high monitors", 35, domain.CategoryMedium},
		{"over high flags", 35.1, domain.CategoryHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusForCategoryRatio(tt.pct, band))
		})
	}
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, CategoryBand{High: 20, Medium: 15}, BandFor(domain.CategoryFacility))
	assert.Equal(t, CategoryBand{High: 15, Medium: 10}, BandFor(domain.CategoryOperations))
	assert.Equal(t, CategoryBand{High: 25, Medium: 20}, BandFor(domain.CategoryFranchise))
	assert.Equal(t, CategoryBand{High: 10, Medium: 5}, BandFor(domain.CategoryMisc))
	assert.Equal(t, TotalExpenseBand, BandFor(domain.ExpenseCategory("nonsense")))
}

func TestCategoryRatio(t *testing.T) {
	assert.InDelta(t, 25.0, CategoryRatio(51500, 206000), 1e-9)
	assert.InDelta(t, 0.0, CategoryRatio(51500, 0), 1e-9)
	assert.InDelta(t, 0.0, CategoryRatio(51500, -100), 1e-9)
}
