package domain

// Status is the three-level traffic light every KPI classifies into.
type Status string

const (
	StatusGreen  Status = "green"
	StatusYellow Status = "yellow"
	StatusRed    Status = "red"
)

// CategoryStatus grades a category expense ratio against its band.
type CategoryStatus string

const (
	CategoryGood   CategoryStatus = "category-good"
	CategoryMedium CategoryStatus = "category-medium"
	CategoryHigh   CategoryStatus = "category-high"
)

// Thresholds is the operator-configurable KPI boundary set. Cost-per-return
// bounds are ceilings, net-margin bounds are floors, NetIncomeWarn is the
// floor below which net income goes red.
type Thresholds struct {
	CPRGreen      float64 `yaml:"cpr_green" json:"cprGreen"`
	CPRYellow     float64 `yaml:"cpr_yellow" json:"cprYellow"`
	NIMGreen      float64 `yaml:"nim_green" json:"nimGreen"`
	NIMYellow     float64 `yaml:"nim_yellow" json:"nimYellow"`
	NetIncomeWarn float64 `yaml:"net_income_warn" json:"netIncomeWarn"`
}

// DefaultThresholds mirrors the boundaries the dashboard ships with.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CPRGreen:      95,
		CPRYellow:     110,
		NIMGreen:      20,
		NIMYellow:     15,
		NetIncomeWarn: -5000,
	}
}

// ExpenseValues holds the stored value for each of the 17 expense lines:
// a percentage for percentage-based lines, dollars for fixed-amount lines.
type ExpenseValues struct {
	// Personnel
	SalariesPct      float64 `yaml:"salaries_pct" json:"salariesPct"`
	EmpDeductionsPct float64 `yaml:"emp_deductions_pct" json:"empDeductionsPct"`

	// Facility
	RentPct      float64 `yaml:"rent_pct" json:"rentPct"`
	TelephoneAmt float64 `yaml:"telephone_amt" json:"telephoneAmt"`
	UtilitiesAmt float64 `yaml:"utilities_amt" json:"utilitiesAmt"`

	// Operations
	LocalAdvAmt    float64 `yaml:"local_adv_amt" json:"localAdvAmt"`
	InsuranceAmt   float64 `yaml:"insurance_amt" json:"insuranceAmt"`
	PostageAmt     float64 `yaml:"postage_amt" json:"postageAmt"`
	SuppliesPct    float64 `yaml:"supplies_pct" json:"suppliesPct"`
	DuesAmt        float64 `yaml:"dues_amt" json:"duesAmt"`
	BankFeesAmt    float64 `yaml:"bank_fees_amt" json:"bankFeesAmt"`
	MaintenanceAmt float64 `yaml:"maintenance_amt" json:"maintenanceAmt"`
	TravelEntAmt   float64 `yaml:"travel_ent_amt" json:"travelEntAmt"`

	// Franchise
	RoyaltiesPct        float64 `yaml:"royalties_pct" json:"royaltiesPct"`
	AdvRoyaltiesPct     float64 `yaml:"adv_royalties_pct" json:"advRoyaltiesPct"`
	TaxRushRoyaltiesPct float64 `yaml:"tax_rush_royalties_pct" json:"taxRushRoyaltiesPct"`

	// Miscellaneous
	MiscPct float64 `yaml:"misc_pct" json:"miscPct"`
}

// CalculationInputs is the full input record for the aggregate Calc entry
// point: income drivers plus all 17 expense lines.
type CalculationInputs struct {
	Region         Region        `yaml:"region" json:"region"`
	AvgNetFee      float64       `yaml:"avg_net_fee" json:"avgNetFee"`
	TaxPrepReturns float64       `yaml:"tax_prep_returns" json:"taxPrepReturns"`
	TaxRushReturns float64       `yaml:"tax_rush_returns" json:"taxRushReturns"`
	DiscountsPct   float64       `yaml:"discounts_pct" json:"discountsPct"`
	OtherIncome    float64       `yaml:"other_income" json:"otherIncome"`
	Expenses       ExpenseValues `yaml:"expenses" json:"expenses"`
	Thresholds     Thresholds    `yaml:"thresholds" json:"thresholds"`
}

// ExpenseBreakdown is the itemized dollar amount of every expense line.
type ExpenseBreakdown struct {
	Salaries      float64 `json:"salaries"`
	EmpDeductions float64 `json:"empDeductions"`

	Rent      float64 `json:"rent"`
	Telephone float64 `json:"telephone"`
	Utilities float64 `json:"utilities"`

	LocalAdv    float64 `json:"localAdv"`
	Insurance   float64 `json:"insurance"`
	Postage     float64 `json:"postage"`
	Supplies    float64 `json:"supplies"`
	Dues        float64 `json:"dues"`
	BankFees    float64 `json:"bankFees"`
	Maintenance float64 `json:"maintenance"`
	TravelEnt   float64 `json:"travelEnt"`

	Royalties        float64 `json:"royalties"`
	AdvRoyalties     float64 `json:"advRoyalties"`
	TaxRushRoyalties float64 `json:"taxRushRoyalties"`

	Misc float64 `json:"misc"`
}

// CalculationResults is the complete KPI record. It is recomputed
// synchronously and in full whenever any upstream input changes, never
// partially updated.
type CalculationResults struct {
	GrossFees     float64 `json:"grossFees"`
	Discounts     float64 `json:"discounts"`
	TaxPrepIncome float64 `json:"taxPrepIncome"`
	TaxRushIncome float64 `json:"taxRushIncome"`
	OtherIncome   float64 `json:"otherIncome"`
	TotalRevenue  float64 `json:"totalRevenue"`

	Expenses      ExpenseBreakdown `json:"expenseBreakdown"`
	TotalExpenses float64          `json:"totalExpenses"`

	NetIncome     float64 `json:"netIncome"`
	TotalReturns  float64 `json:"totalReturns"`
	CostPerReturn float64 `json:"costPerReturn"`
	NetMarginPct  float64 `json:"netMarginPct"`
}
