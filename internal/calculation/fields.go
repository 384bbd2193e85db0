package calculation

import "github.com/pnlgo/pnl-budgeter/internal/domain"

// expenseFields is the static registry of the 17 expense lines, from the
// Liberty-style franchise P&L structure: 2 personnel, 3 facility,
// 8 operations, 3 franchise, 1 miscellaneous. Region gating uses the
// explicit Scope tag.
var expenseFields = []domain.ExpenseFieldDefinition{
	// Personnel
	{
		ID:           "salariesPct",
		Label:        "Salaries",
		Category:     domain.CategoryPersonnel,
		Base:         domain.BasePctGross,
		DefaultValue: 25,
		Min:          0, Max: 60, Step: 0.1,
		Description: "Staff salaries as % of gross fees",
	},
	{
		ID:           "empDeductionsPct",
		Label:        "Employee Deductions",
		Category:     domain.CategoryPersonnel,
		Base:         domain.BasePctSalaries,
		DefaultValue: 10,
		Min:          0, Max: 25, Step: 0.1,
		Description: "Payroll taxes and benefits as % of salaries",
	},

	// Facility
	{
		ID:           "rentPct",
		Label:        "Rent",
		Category:     domain.CategoryFacility,
		Base:         domain.BasePctGross,
		DefaultValue: 18,
		Min:          0, Max: 40, Step: 0.1,
		Description: "Office rent as % of gross fees",
	},
	{
		ID:           "telephoneAmt",
		Label:        "Telephone",
		Category:     domain.CategoryFacility,
		Base:         domain.BaseFixedAmount,
		DefaultValue: 200,
		Min:          0, Max: 1000, Step: 10,
		Description: "Phone and internet costs",
	},
	{
		ID:           "utilitiesAmt",
		Label:        "Utilities",
		Category:     domain.CategoryFacility,
		Base:         domain.BaseFixedAmount,
		DefaultValue: 300,
		Min:          0, Max: 1500, Step: 10,
		Description: "Electric, gas, and water",
	},

	// Operations
	{
		ID:           "localAdvAmt",
		Label:        "Local Advertising",
		Category:     domain.CategoryOperations,
		Base:         domain.BaseFixedAmount,
		DefaultValue: 500,
		Min:          0, Max: 5000, Step: 50,
		Description: "Local marketing and advertising",
	},
	{
		ID:           "insuranceAmt",
		Label:        "Insurance",
		Category:     domain.CategoryOperations,
		Base:         domain.BaseFixedAmount,
		DefaultValue: 150,
		Min:          0, Max: 1000, Step: 10,
		Description: "Business insurance premiums",
	},
	{
		ID:           "postageAmt",
		Label:        "Postage",
		Category:     domain.CategoryOperations,
		Base:         domain.BaseFixedAmount,
		DefaultValue: 100,
		Min:          0, Max: 500, Step: 10,
		Description: "Mailing and shipping",
	},
	{
		ID:           "suppliesPct",
		Label:        "Office Supplies",
		Category:     domain.CategoryOperations,
		Base:         domain.BasePctGross,
		DefaultValue: 3.5,
		Min:          0, Max: 10, Step: 0.1,
		Description: "Office supplies as % of gross fees",
	},
	{
		ID:           "duesAmt",
		Label:        "Dues",
		Category:     domain.CategoryOperations,
		Base:         domain.BaseFixedAmount,
		DefaultValue: 200,
		Min:          0, Max: 1000, Step: 10,
		Description: "Professional dues and subscriptions",
	},
	{
		ID:           "bankFeesAmt",
		Label:        "Bank Fees",
		Category:     domain.CategoryOperations,
		Base:         domain.BaseFixedAmount,
		DefaultValue: 100,
		Min:          0, Max: 500, Step: 10,
		Description: "Banking and card processing fees",
	},
	{
		ID:           "maintenanceAmt",
		Label:        "Maintenance",
		Category:     domain.CategoryOperations,
		Base:         domain.BaseFixedAmount,
		DefaultValue: 150,
		Min:          0, Max: 1000, Step: 10,
		Description: "Equipment and facility maintenance",
	},
	{
		ID:           "travelEntAmt",
		Label:        "Travel/Entertainment",
		Category:     domain.CategoryOperations,
		Base:         domain.BaseFixedAmount,
		DefaultValue: 200,
		Min:          0, Max: 2000, Step: 25,
		Description: "Business travel and entertainment",
	},

	// Franchise
	{
		ID:           "royaltiesPct",
		Label:        "Tax Prep Royalties",
		Category:     domain.CategoryFranchise,
		Base:         domain.BasePctTPIncome,
		DefaultValue: 14,
		Min:          0, Max: 25, Step: 0.1,
		Description: "Franchise royalties on tax prep income",
	},
	{
		ID:           "advRoyaltiesPct",
		Label:        "Advertising Royalties",
		Category:     domain.CategoryFranchise,
		Base:         domain.BasePctTPIncome,
		DefaultValue: 5,
		Min:          0, Max: 15, Step: 0.1,
		Description: "Franchise advertising fees on tax prep income",
	},
	{
		ID:           "taxRushRoyaltiesPct",
		Label:        "TaxRush Franchise",
		Category:     domain.CategoryFranchise,
		Base:         domain.BasePctTPIncome,
		DefaultValue: 0,
		Min:          0, Max: 20, Step: 0.1,
		Description: "TaxRush franchise fees",
		Scope:       domain.ScopeCA,
	},

	// Miscellaneous
	{
		ID:           "miscPct",
		Label:        "Miscellaneous",
		Category:     domain.CategoryMisc,
		Base:         domain.BasePctGross,
		DefaultValue: 2.5,
		Min:          0, Max: 10, Step: 0.1,
		Description: "Other miscellaneous expenses",
	},
}

// ExpenseFields returns a copy of the full registry.
func ExpenseFields() []domain.ExpenseFieldDefinition {
	out := make([]domain.ExpenseFieldDefinition, len(expenseFields))
	copy(out, expenseFields)
	return out
}

// ExpenseFieldsForRegion returns the active field set for a region.
// CA-only fields are absent from the US set entirely, not merely zeroed.
func ExpenseFieldsForRegion(region domain.Region) []domain.ExpenseFieldDefinition {
	out := make([]domain.ExpenseFieldDefinition, 0, len(expenseFields))
	for _, f := range expenseFields {
		if f.Scope.AppliesTo(region) {
			out = append(out, f)
		}
	}
	return out
}

// ExpenseFieldsByCategory filters the registry to one category.
func ExpenseFieldsByCategory(category domain.ExpenseCategory) []domain.ExpenseFieldDefinition {
	var out []domain.ExpenseFieldDefinition
	for _, f := range expenseFields {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// ExpenseFieldByID looks up a single definition.
func ExpenseFieldByID(id string) (domain.ExpenseFieldDefinition, bool) {
	for _, f := range expenseFields {
		if f.ID == id {
			return f, true
		}
	}
	return domain.ExpenseFieldDefinition{}, false
}

// DefaultExpenseValues returns the registry defaults as a flat value set.
func DefaultExpenseValues() domain.ExpenseValues {
	return domain.ExpenseValues{
		SalariesPct:      25,
		EmpDeductionsPct: 10,
		RentPct:          18,
		TelephoneAmt:     200,
		UtilitiesAmt:     300,
		LocalAdvAmt:      500,
		InsuranceAmt:     150,
		PostageAmt:       100,
		SuppliesPct:      3.5,
		DuesAmt:          200,
		BankFeesAmt:      100,
		MaintenanceAmt:   150,
		TravelEntAmt:     200,
		RoyaltiesPct:     14,
		AdvRoyaltiesPct:  5,
		MiscPct:          2.5,
	}
}

// DefaultExpenseRows seeds one row per field at its registry default, with
// the percentage view authoritative.
func DefaultExpenseRows(fields []domain.ExpenseFieldDefinition) []domain.ExpenseRowState {
	rows := make([]domain.ExpenseRowState, len(fields))
	for i, f := range fields {
		rows[i] = domain.ExpenseRowState{
			FieldID:     f.ID,
			Pct:         f.DefaultValue,
			SliderValue: f.DefaultValue,
			LastEdited:  domain.EditPct,
		}
		if f.Base == domain.BaseFixedAmount {
			rows[i].Amount = f.DefaultValue
			rows[i].Pct = 0
			rows[i].SliderValue = f.DefaultValue
			rows[i].LastEdited = domain.EditAmount
		}
	}
	return rows
}
