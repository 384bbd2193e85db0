package calculation

import (
	"fmt"

	"github.com/pnlgo/pnl-budgeter/internal/domain"
	"github.com/pnlgo/pnl-budgeter/pkg/round"
)

// Engine orchestrates a full scenario pass: prior-year normalization,
// growth projection, the aggregate calculation, and KPI classification.
// Every pass recomputes everything; the engine holds no mutable scenario
// state of its own.
type Engine struct {
	Logger    Logger
	Insurance InsuranceGrouping
}

// NewEngine creates an engine with a no-op logger and the canonical
// insurance grouping.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}, Insurance: InsuranceInOperations}
}

// SetLogger swaps the observer. Nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// ScenarioReport is the complete output for one scenario.
type ScenarioReport struct {
	Name      string           `json:"name"`
	Region    domain.Region    `json:"region"`
	StoreType domain.StoreType `json:"storeType"`

	PriorYear  *domain.NormalizedPriorYearMetrics `json:"priorYear,omitempty"`
	Projection *GrowthProjection                  `json:"projection,omitempty"`

	Inputs  domain.CalculationInputs  `json:"inputs"`
	Results domain.CalculationResults `json:"results"`

	Categories       CategoryTotals                                   `json:"categories"`
	CategoryRatios   map[domain.ExpenseCategory]float64               `json:"categoryRatios"`
	CategoryStatuses map[domain.ExpenseCategory]domain.CategoryStatus `json:"categoryStatuses"`

	NetIncomeStatus domain.Status `json:"netIncomeStatus"`
	NetMarginStatus domain.Status `json:"netMarginStatus"`
	CPRStatus       domain.Status `json:"costPerReturnStatus"`
}

// RunScenario resolves a scenario's income drivers (projecting from prior
// year for existing stores), runs the aggregate calculation, and grades
// the KPIs. The calculation itself is total; errors only surface for
// structurally invalid scenarios.
func (e *Engine) RunScenario(s domain.Scenario) (*ScenarioReport, error) {
	if !s.Region.Valid() {
		return nil, fmt.Errorf("scenario %q: unknown region %q", s.Name, s.Region)
	}
	storeType := s.StoreType
	if storeType == "" {
		storeType = domain.StoreNew
	}
	if !storeType.Valid() {
		return nil, fmt.Errorf("scenario %q: unknown store type %q", s.Name, s.StoreType)
	}

	thresholds := domain.DefaultThresholds()
	if s.Thresholds != nil {
		thresholds = *s.Thresholds
	}

	report := &ScenarioReport{
		Name:      s.Name,
		Region:    s.Region,
		StoreType: storeType,
	}

	avgNetFee := num(s.AvgNetFee)
	taxPrepReturns := num(s.TaxPrepReturns)
	taxRushReturns := num(s.TaxRushReturns)
	otherIncome := num(s.OtherIncome)
	discountsPct := num(s.DiscountsPct)

	if storeType == domain.StoreExisting && s.PriorYear != nil {
		prior := NormalizePriorYearMetrics(*s.PriorYear)
		report.PriorYear = &prior

		if discountsPct == 0 {
			discountsPct = prior.DiscountPct
		}
		proj := Project(ProjectionInputs{
			AvgNetFee:               prior.AvgNetFee,
			TaxPrepReturns:          prior.TaxPrepReturns,
			ExpectedGrowthPct:       s.ExpectedGrowthPct,
			ProjectedAvgNetFee:      s.ProjectedAvgNetFee,
			ProjectedTaxPrepReturns: s.ProjectedTaxPrepReturns,
			DiscountsPct:            discountsPct,
		})
		report.Projection = &proj
		e.Logger.Debugf("scenario %q: projected gross fees %.2f (blended growth %.0f%%)",
			s.Name, proj.GrossFees, proj.BlendedGrowthPct)

		// Direct drivers are operator overrides; only zero values defer to
		// the projection.
		if avgNetFee == 0 {
			avgNetFee = proj.AvgNetFee
		}
		if taxPrepReturns == 0 {
			taxPrepReturns = proj.TaxPrepReturns
		}
		if otherIncome == 0 {
			otherIncome = round.Cents(prior.OtherIncome * (1 + num(s.ExpectedGrowthPct)/100))
		}
		if taxRushReturns == 0 && s.Region == domain.RegionCA {
			if prior.TaxRushReturns > 0 {
				taxRushReturns = ProjectValue(prior.TaxRushReturns, s.ExpectedGrowthPct)
			} else {
				taxRushReturns = DefaultTaxRushReturns(taxPrepReturns)
			}
		}
		for _, adj := range proj.Adjustments {
			e.Logger.Infof("scenario %q: %s growth %.0f%% vs %.0f%% plan (%+.0f%%)",
				s.Name, adj.Field, adj.ActualGrowth, adj.ExpectedGrowth, adj.Variance)
		}
	}

	if discountsPct == 0 {
		discountsPct = DefaultDiscountRate * 100
	}

	inputs := domain.CalculationInputs{
		Region:         s.Region,
		AvgNetFee:      avgNetFee,
		TaxPrepReturns: taxPrepReturns,
		TaxRushReturns: taxRushReturns,
		DiscountsPct:   discountsPct,
		OtherIncome:    otherIncome,
		Expenses:       s.Expenses,
		Thresholds:     thresholds,
	}
	report.Inputs = inputs
	report.Results = Calc(inputs)

	report.Categories = CategoryTotalsFor(report.Results.Expenses, e.Insurance)
	report.CategoryRatios = make(map[domain.ExpenseCategory]float64, 5)
	report.CategoryStatuses = make(map[domain.ExpenseCategory]domain.CategoryStatus, 5)
	for cat, total := range map[domain.ExpenseCategory]float64{
		domain.CategoryPersonnel:  report.Categories.Personnel,
		domain.CategoryFacility:   report.Categories.Facility,
		domain.CategoryOperations: report.Categories.Operations,
		domain.CategoryFranchise:  report.Categories.Franchise,
		domain.CategoryMisc:       report.Categories.Misc,
	} {
		ratio := CategoryRatio(total, report.Results.TotalRevenue)
		report.CategoryRatios[cat] = round.Tenth(ratio)
		report.CategoryStatuses[cat] = StatusForCategoryRatio(ratio, BandFor(cat))
	}

	report.NetIncomeStatus = StatusForNetIncome(report.Results.NetIncome, thresholds)
	report.NetMarginStatus = StatusForMargin(report.Results.NetMarginPct, thresholds)
	report.CPRStatus = StatusForCPR(report.Results.CostPerReturn, thresholds)

	e.Logger.Debugf("scenario %q: net income %.2f (%s), margin %.1f%% (%s), CPR %.2f (%s)",
		s.Name, report.Results.NetIncome, report.NetIncomeStatus,
		report.Results.NetMarginPct, report.NetMarginStatus,
		report.Results.CostPerReturn, report.CPRStatus)

	return report, nil
}

// RunAll evaluates every scenario in a configuration, in order.
func (e *Engine) RunAll(cfg *domain.Configuration) ([]*ScenarioReport, error) {
	reports := make([]*ScenarioReport, 0, len(cfg.Scenarios))
	for _, s := range cfg.Scenarios {
		r, err := e.RunScenario(s)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}
