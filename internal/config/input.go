package config

import (
	"fmt"
	"os"

	"github.com/pnlgo/pnl-budgeter/internal/calculation"
	"github.com/pnlgo/pnl-budgeter/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing and validation of scenario files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file, applies
// defaults, and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Load(data)
}

// Load parses a scenario configuration from raw YAML.
func (ip *InputParser) Load(data []byte) (*domain.Configuration, error) {
	var cfg domain.Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&cfg)

	if err := ip.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// ApplyDefaults fills omitted expense blocks with the registry defaults.
// A scenario whose expense block is entirely zero is treated as omitted;
// individual zeros inside a partially filled block are respected.
func (ip *InputParser) ApplyDefaults(cfg *domain.Configuration) {
	for i := range cfg.Scenarios {
		s := &cfg.Scenarios[i]
		if s.StoreType == "" {
			if s.PriorYear != nil {
				s.StoreType = domain.StoreExisting
			} else {
				s.StoreType = domain.StoreNew
			}
		}
		if s.Expenses == (domain.ExpenseValues{}) {
			s.Expenses = calculation.DefaultExpenseValues()
		}
	}
}

// ValidateConfiguration validates the loaded configuration.
func (ip *InputParser) ValidateConfiguration(cfg *domain.Configuration) error {
	if len(cfg.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}
	for i, s := range cfg.Scenarios {
		if err := ip.validateScenario(&s); err != nil {
			name := s.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return fmt.Errorf("scenario %s validation failed: %w", name, err)
		}
	}
	return nil
}

func (ip *InputParser) validateScenario(s *domain.Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if !s.Region.Valid() {
		return fmt.Errorf("region must be US or CA, got %q", s.Region)
	}
	if !s.StoreType.Valid() {
		return fmt.Errorf("store type must be new or existing, got %q", s.StoreType)
	}
	if s.StoreType == domain.StoreExisting && s.PriorYear == nil {
		return fmt.Errorf("existing store requires a prior_year block")
	}
	if s.StoreType == domain.StoreNew && s.AvgNetFee <= 0 {
		return fmt.Errorf("new store requires a positive avg_net_fee")
	}
	if s.StoreType == domain.StoreNew && s.TaxPrepReturns <= 0 {
		return fmt.Errorf("new store requires a positive tax_prep_returns")
	}
	if s.AvgNetFee < 0 || s.TaxPrepReturns < 0 || s.TaxRushReturns < 0 || s.OtherIncome < 0 {
		return fmt.Errorf("income drivers cannot be negative")
	}
	if s.DiscountsPct < 0 || s.DiscountsPct > 100 {
		return fmt.Errorf("discounts_pct must be between 0 and 100")
	}
	if s.ExpectedGrowthPct < -100 || s.ExpectedGrowthPct > 100 {
		return fmt.Errorf("expected_growth_pct must be between -100 and 100")
	}
	if s.Region != domain.RegionCA && s.TaxRushReturns > 0 {
		return fmt.Errorf("tax_rush_returns is only valid for region CA")
	}
	if s.PriorYear != nil {
		if err := ip.validatePriorYear(s.PriorYear); err != nil {
			return err
		}
	}
	if err := ip.validateExpenses(&s.Expenses, s.Region); err != nil {
		return err
	}
	if s.Thresholds != nil {
		if s.Thresholds.CPRGreen > s.Thresholds.CPRYellow {
			return fmt.Errorf("cpr_green ceiling cannot exceed cpr_yellow")
		}
		if s.Thresholds.NIMGreen < s.Thresholds.NIMYellow {
			return fmt.Errorf("nim_green floor cannot be below nim_yellow")
		}
	}
	return nil
}

func (ip *InputParser) validatePriorYear(p *domain.RawPriorYearMetrics) error {
	if p.GrossFees < 0 || p.OtherIncome < 0 || p.Expenses < 0 {
		return fmt.Errorf("prior_year dollar figures cannot be negative")
	}
	if p.TaxPrepReturns < 0 || p.TaxRushReturns < 0 {
		return fmt.Errorf("prior_year return counts cannot be negative")
	}
	if p.DiscountAmount != nil && *p.DiscountAmount < 0 {
		return fmt.Errorf("prior_year discount_amount cannot be negative")
	}
	if p.TaxRushAvgNetFee != nil && *p.TaxRushAvgNetFee < 0 {
		return fmt.Errorf("prior_year tax_rush_avg_net_fee cannot be negative")
	}
	return nil
}

// validateExpenses checks every stored value against the registry bounds
// for the scenario's region.
func (ip *InputParser) validateExpenses(ev *domain.ExpenseValues, region domain.Region) error {
	checks := []struct {
		id    string
		value float64
	}{
		{"salariesPct", ev.SalariesPct},
		{"empDeductionsPct", ev.EmpDeductionsPct},
		{"rentPct", ev.RentPct},
		{"telephoneAmt", ev.TelephoneAmt},
		{"utilitiesAmt", ev.UtilitiesAmt},
		{"localAdvAmt", ev.LocalAdvAmt},
		{"insuranceAmt", ev.InsuranceAmt},
		{"postageAmt", ev.PostageAmt},
		{"suppliesPct", ev.SuppliesPct},
		{"duesAmt", ev.DuesAmt},
		{"bankFeesAmt", ev.BankFeesAmt},
		{"maintenanceAmt", ev.MaintenanceAmt},
		{"travelEntAmt", ev.TravelEntAmt},
		{"royaltiesPct", ev.RoyaltiesPct},
		{"advRoyaltiesPct", ev.AdvRoyaltiesPct},
		{"taxRushRoyaltiesPct", ev.TaxRushRoyaltiesPct},
		{"miscPct", ev.MiscPct},
	}
	for _, c := range checks {
		field, ok := calculation.ExpenseFieldByID(c.id)
		if !ok {
			return fmt.Errorf("unknown expense field %s", c.id)
		}
		if !field.Scope.AppliesTo(region) {
			if c.value != 0 {
				return fmt.Errorf("%s is not available in region %s", c.id, region)
			}
			continue
		}
		if c.value < field.Min || c.value > field.Max {
			return fmt.Errorf("%s must be between %g and %g, got %g", c.id, field.Min, field.Max, c.value)
		}
	}
	return nil
}

// CreateExampleConfiguration builds the Good/Better/Best starter file for
// an existing CA store, mirroring the quick-start wizard presets.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	discount := 6180.0
	taxRushFee := 125.0
	prior := domain.RawPriorYearMetrics{
		GrossFees:        206000,
		DiscountAmount:   &discount,
		OtherIncome:      2500,
		Expenses:         150000,
		TaxPrepReturns:   1680,
		TaxRushReturns:   240,
		TaxRushAvgNetFee: &taxRushFee,
	}

	expenses := calculation.DefaultExpenseValues()
	expenses.TaxRushRoyaltiesPct = 6

	scenario := func(name string, growth float64) domain.Scenario {
		return domain.Scenario{
			Name:              name,
			Region:            domain.RegionCA,
			StoreType:         domain.StoreExisting,
			PriorYear:         &prior,
			ExpectedGrowthPct: growth,
			Expenses:          expenses,
		}
	}

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			scenario("Good", 5),
			scenario("Better", 10),
			scenario("Best", 15),
		},
	}
}

// WriteExampleFile marshals the example configuration to a YAML file.
func (ip *InputParser) WriteExampleFile(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
