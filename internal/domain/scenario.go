package domain

// Scenario is one budget case: either a new store entered from direct
// drivers, or an existing store projected forward from prior-year history.
type Scenario struct {
	Name      string    `yaml:"name" json:"name"`
	Region    Region    `yaml:"region" json:"region"`
	StoreType StoreType `yaml:"store_type" json:"storeType"`

	// Direct income drivers. For existing stores these act as overrides;
	// zero values defer to the prior-year projection.
	AvgNetFee      float64 `yaml:"avg_net_fee,omitempty" json:"avgNetFee,omitempty"`
	TaxPrepReturns float64 `yaml:"tax_prep_returns,omitempty" json:"taxPrepReturns,omitempty"`
	TaxRushReturns float64 `yaml:"tax_rush_returns,omitempty" json:"taxRushReturns,omitempty"`
	OtherIncome    float64 `yaml:"other_income,omitempty" json:"otherIncome,omitempty"`
	DiscountsPct   float64 `yaml:"discounts_pct,omitempty" json:"discountsPct,omitempty"`

	// Existing-store history and growth plan.
	PriorYear               *RawPriorYearMetrics `yaml:"prior_year,omitempty" json:"priorYear,omitempty"`
	ExpectedGrowthPct       float64              `yaml:"expected_growth_pct,omitempty" json:"expectedGrowthPct,omitempty"`
	ProjectedAvgNetFee      *float64             `yaml:"projected_avg_net_fee,omitempty" json:"projectedAvgNetFee,omitempty"`
	ProjectedTaxPrepReturns *float64             `yaml:"projected_tax_prep_returns,omitempty" json:"projectedTaxPrepReturns,omitempty"`

	Expenses   ExpenseValues `yaml:"expenses" json:"expenses"`
	Thresholds *Thresholds   `yaml:"thresholds,omitempty" json:"thresholds,omitempty"`
}

// Configuration is a parsed scenario file.
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}
