package calculation

import (
	"github.com/pnlgo/pnl-budgeter/pkg/round"
)

// GrowthOption is a preset for the performance-change selector.
type GrowthOption struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// GrowthOptions are the standard presets, decline through aggressive growth.
var GrowthOptions = []GrowthOption{
	{Value: -10, Label: "Decline: -10%"},
	{Value: -5, Label: "Decline: -5%"},
	{Value: 0, Label: "No Change: 0%"},
	{Value: 5, Label: "Growth: +5%"},
	{Value: 10, Label: "Growth: +10%"},
	{Value: 15, Label: "Growth: +15%"},
	{Value: 20, Label: "Growth: +20%"},
}

// adjustmentTolerance is how far (in percentage points) an override may
// drift from the strategic target before it is flagged.
const adjustmentTolerance = 1.0

// ProjectValue applies uniform growth to a last-year component, rounded to
// a whole unit (return counts and displayed fee dollars are whole numbers).
func ProjectValue(lastYear, growthPct float64) float64 {
	return round.Whole(num(lastYear) * (1 + num(growthPct)/100))
}

// FieldGrowth reports the growth percentage implied by an override relative
// to its original value, as a whole number of points. Zero original
// degrades to 0.
func FieldGrowth(current, original float64) float64 {
	current, original = num(current), num(original)
	if original == 0 {
		return 0
	}
	return round.Whole((current - original) / original * 100)
}

// ProjectionInputs drives the growth calculator. Last-year figures come
// from the prior-year normalizer; the Projected* overrides are set only
// when the operator rejected the uniform-growth default for that field.
type ProjectionInputs struct {
	AvgNetFee         float64
	TaxPrepReturns    float64
	ExpectedGrowthPct float64

	ProjectedAvgNetFee      *float64
	ProjectedTaxPrepReturns *float64

	// DiscountsPct of 0 means "not set" and takes the 3% default.
	DiscountsPct float64
}

// FieldAdjustment records one override that moved away from the strategic
// growth target.
type FieldAdjustment struct {
	Field          string  `json:"field"`
	ActualGrowth   float64 `json:"actualGrowth"`
	ExpectedGrowth float64 `json:"expectedGrowth"`
	Variance       float64 `json:"variance"`
}

// GrowthProjection is the settled next-period outlook.
type GrowthProjection struct {
	AvgNetFee      float64 `json:"avgNetFee"`
	TaxPrepReturns float64 `json:"taxPrepReturns"`

	GrossFees     float64 `json:"grossFees"`
	Discounts     float64 `json:"discounts"`
	TaxPrepIncome float64 `json:"taxPrepIncome"`

	// StandardExpenses is the 76%-of-gross heuristic, used until the
	// operator supplies a real expense budget.
	StandardExpenses float64 `json:"standardExpenses"`

	ActualRevenue    float64 `json:"actualRevenue"`
	TargetRevenue    float64 `json:"targetRevenue"`
	RevenueVariance  float64 `json:"revenueVariancePct"`
	BlendedGrowthPct float64 `json:"blendedGrowthPct"`

	Adjustments []FieldAdjustment `json:"adjustments,omitempty"`
}

// Project applies the expected growth percentage to each last-year
// component independently, honors per-field overrides, and reports the
// blended growth and target-vs-actual variance those overrides imply.
func Project(in ProjectionInputs) GrowthProjection {
	lastANF := num(in.AvgNetFee)
	lastReturns := num(in.TaxPrepReturns)
	growth := num(in.ExpectedGrowthPct)

	targetANF := ProjectValue(lastANF, growth)
	targetReturns := ProjectValue(lastReturns, growth)

	actualANF := targetANF
	if in.ProjectedAvgNetFee != nil {
		actualANF = num(*in.ProjectedAvgNetFee)
	}
	actualReturns := targetReturns
	if in.ProjectedTaxPrepReturns != nil {
		actualReturns = num(*in.ProjectedTaxPrepReturns)
	}

	discountsPct := num(in.DiscountsPct)
	if discountsPct == 0 {
		discountsPct = DefaultDiscountRate * 100
	}

	grossFees := CalculateGrossTaxPrepFees(actualANF, actualReturns)
	discounts := CalculateDiscountAmount(grossFees, discountsPct)
	taxPrepIncome := round.Cents(grossFees - discounts)

	p := GrowthProjection{
		AvgNetFee:        actualANF,
		TaxPrepReturns:   actualReturns,
		GrossFees:        grossFees,
		Discounts:        discounts,
		TaxPrepIncome:    taxPrepIncome,
		StandardExpenses: CalculateTotalExpensesFromGross(grossFees),
	}

	// The revenue comparison uses raw component products so override
	// variance is not masked by display rounding.
	p.ActualRevenue = actualANF * actualReturns
	p.TargetRevenue = targetANF * targetReturns
	if p.TargetRevenue != 0 {
		p.RevenueVariance = (p.ActualRevenue - p.TargetRevenue) / p.TargetRevenue * 100
	}

	originalRevenue := lastANF * lastReturns
	if originalRevenue > 0 {
		p.BlendedGrowthPct = round.Whole((p.ActualRevenue - originalRevenue) / originalRevenue * 100)
	} else {
		p.BlendedGrowthPct = growth
	}

	if in.ProjectedAvgNetFee != nil && lastANF != 0 {
		p.Adjustments = appendAdjustment(p.Adjustments, "Average Net Fee", *in.ProjectedAvgNetFee, lastANF, growth)
	}
	if in.ProjectedTaxPrepReturns != nil && lastReturns != 0 {
		p.Adjustments = appendAdjustment(p.Adjustments, "Tax Prep Returns", *in.ProjectedTaxPrepReturns, lastReturns, growth)
	}
	return p
}

func appendAdjustment(adjustments []FieldAdjustment, field string, actual, original, expectedGrowth float64) []FieldAdjustment {
	actualGrowth := FieldGrowth(actual, original)
	variance := actualGrowth - expectedGrowth
	if variance > -adjustmentTolerance && variance < adjustmentTolerance {
		return adjustments
	}
	return append(adjustments, FieldAdjustment{
		Field:          field,
		ActualGrowth:   actualGrowth,
		ExpectedGrowth: expectedGrowth,
		Variance:       variance,
	})
}
