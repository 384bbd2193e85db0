package domain

// RawPriorYearMetrics holds the historical figures as the operator entered
// them. Fields left at zero are treated as absent during normalization;
// DiscountAmount and TaxRushAvgNetFee are pointers because "not supplied"
// triggers a defaulting rule that a zero must not.
type RawPriorYearMetrics struct {
	GrossFees        float64  `yaml:"gross_fees" json:"grossFees"`
	DiscountAmount   *float64 `yaml:"discount_amount,omitempty" json:"discountAmount,omitempty"`
	OtherIncome      float64  `yaml:"other_income" json:"otherIncome"`
	Expenses         float64  `yaml:"expenses" json:"expenses"`
	TaxPrepReturns   float64  `yaml:"tax_prep_returns" json:"taxPrepReturns"`
	TaxRushReturns   float64  `yaml:"tax_rush_returns" json:"taxRushReturns"`
	TaxRushAvgNetFee *float64 `yaml:"tax_rush_avg_net_fee,omitempty" json:"taxRushAvgNetFee,omitempty"`
}

// NormalizedPriorYearMetrics is the fully derived, internally consistent
// record produced from RawPriorYearMetrics. It is rebuilt from scratch on
// every input change and never mutated in place.
//
// Invariants (all currency cent-rounded, percentages tenth-rounded):
//
//	TaxPrepIncome = GrossFees - DiscountAmount
//	Revenue       = GrossFees - DiscountAmount + OtherIncome
//	NetIncome     = Revenue - Expenses
type NormalizedPriorYearMetrics struct {
	GrossFees        float64 `yaml:"gross_fees" json:"grossFees"`
	DiscountAmount   float64 `yaml:"discount_amount" json:"discountAmount"`
	DiscountPct      float64 `yaml:"discount_pct" json:"discountPct"`
	TaxPrepIncome    float64 `yaml:"tax_prep_income" json:"taxPrepIncome"`
	TaxRushGrossFees float64 `yaml:"tax_rush_gross_fees" json:"taxRushGrossFees"`
	Revenue          float64 `yaml:"revenue" json:"revenue"`
	Expenses         float64 `yaml:"expenses" json:"expenses"`
	NetIncome        float64 `yaml:"net_income" json:"netIncome"`
	AvgNetFee        float64 `yaml:"avg_net_fee" json:"avgNetFee"`
	OtherIncome      float64 `yaml:"other_income" json:"otherIncome"`
	TaxPrepReturns   float64 `yaml:"tax_prep_returns" json:"taxPrepReturns"`
	TaxRushReturns   float64 `yaml:"tax_rush_returns" json:"taxRushReturns"`
	TaxRushAvgNetFee float64 `yaml:"tax_rush_avg_net_fee" json:"taxRushAvgNetFee"`
}
