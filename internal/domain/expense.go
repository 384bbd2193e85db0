package domain

// ExpenseCategory groups the 17 expense lines for reporting.
type ExpenseCategory string

const (
	CategoryPersonnel  ExpenseCategory = "personnel"
	CategoryFacility   ExpenseCategory = "facility"
	CategoryOperations ExpenseCategory = "operations"
	CategoryFranchise  ExpenseCategory = "franchise"
	CategoryMisc       ExpenseCategory = "misc"
)

// CalculationBase selects the denominator an expense percentage applies to.
// Fixed-amount lines use a base of 1 so amount and stored value coincide.
type CalculationBase string

const (
	BasePctGross    CalculationBase = "percentage_gross"
	BasePctTPIncome CalculationBase = "percentage_tp_income"
	BasePctSalaries CalculationBase = "percentage_salaries"
	BaseFixedAmount CalculationBase = "fixed_amount"
)

// RegionScope restricts a field to one market. Gating is by this tag, never
// by matching substrings of field IDs.
type RegionScope string

const (
	ScopeUS   RegionScope = "US"
	ScopeCA   RegionScope = "CA"
	ScopeBoth RegionScope = "both"
)

// AppliesTo reports whether a field with this scope belongs in the active
// field set for the given region.
func (s RegionScope) AppliesTo(r Region) bool {
	return s == ScopeBoth || s == "" || RegionScope(r) == s
}

// ExpenseFieldDefinition is the static configuration for one expense line.
// Definitions are immutable registry data, not user state.
type ExpenseFieldDefinition struct {
	ID           string          `yaml:"id" json:"id"`
	Label        string          `yaml:"label" json:"label"`
	Category     ExpenseCategory `yaml:"category" json:"category"`
	Base         CalculationBase `yaml:"calculation_base" json:"calculationBase"`
	DefaultValue float64         `yaml:"default_value" json:"defaultValue"`
	Min          float64         `yaml:"min" json:"min"`
	Max          float64         `yaml:"max" json:"max"`
	Step         float64         `yaml:"step" json:"step"`
	Description  string          `yaml:"description,omitempty" json:"description,omitempty"`
	Scope        RegionScope     `yaml:"region,omitempty" json:"region,omitempty"`
}

// EditSource tags which representation of a dual-entry row the user touched
// last. Exactly one source is authoritative per reconciliation pass.
type EditSource string

const (
	EditAmount EditSource = "amount"
	EditPct    EditSource = "pct"
	EditSlider EditSource = "slider"
)

// ExpenseRowState is the runtime state of one expense line. For non-fixed
// fields, Amount == Cents(base * Pct / 100) holds after every
// reconciliation pass.
type ExpenseRowState struct {
	FieldID     string     `yaml:"field_id" json:"fieldId"`
	Amount      float64    `yaml:"amount" json:"amount"`
	Pct         float64    `yaml:"pct" json:"pct"`
	SliderValue float64    `yaml:"slider_value" json:"sliderValue"`
	LastEdited  EditSource `yaml:"last_edited" json:"lastEdited"`
	KPIFlag     Status     `yaml:"-" json:"kpiFlag,omitempty"`
}

// ExpenseBases carries the denominators expense percentages resolve against.
type ExpenseBases struct {
	GrossFees     float64 `json:"grossFees"`
	TaxPrepIncome float64 `json:"taxPrepIncome"`
	Salaries      float64 `json:"salaries"`
}

// ExpensesState aggregates all reconciled rows. Total is the arithmetic sum
// of the per-row cent-rounded amounts.
type ExpensesState struct {
	Rows  []ExpenseRowState `json:"rows"`
	Total float64           `json:"total"`
	Valid bool              `json:"valid"`
}
