package types

// ProjectionYears is how far out the financial projection runs.
const ProjectionYears = 25

// ProjectionYear is one row of the 25-year financial projection.
type ProjectionYear struct {
	Year                    int     `json:"year"`                    // 1-based
	ProductionKWH           float64 `json:"productionKWH"`           // degraded output for the year
	DegradationPercent      float64 `json:"degradationPercent"`      // cumulative output loss vs year 1
	EnergySavings           float64 `json:"energySavings"`           // $ avoided on the bill
	NetMeteringIncome       float64 `json:"netMeteringIncome"`       // $ credited for exported surplus
	TotalBenefit            float64 `json:"totalBenefit"`            // savings + income
	CumulativeSavings       float64 `json:"cumulativeSavings"`       // running total of benefits
	UtilityCostWithoutSolar float64 `json:"utilityCostWithoutSolar"` // $ the utility would have billed that year
	SolarSystemCumulative   float64 `json:"solarSystemCumulative"`   // $ of net system cost not yet recovered
}

// FinancialSummary condenses the projection into the headline numbers.
type FinancialSummary struct {
	TotalSavings   float64  `json:"totalSavings"`
	BreakEvenYear  *float64 `json:"breakEvenYear"` // fractional years, nil when never reached
	BreakEvenLabel string   `json:"breakEvenLabel"`
	NetUpfrontCost float64  `json:"netUpfrontCost"`
	RoiPercent     float64  `json:"roiPercent"`
}

// BatterySimulationResult estimates outage resilience and how much of a
// monthly bill the system offsets.
type BatterySimulationResult struct {
	UsableCapacityKWH       float64 `json:"usableCapacityKWH"`
	AutonomyHours           float64 `json:"autonomyHours"` // hours the battery carries the critical load
	MonthlySavings          float64 `json:"monthlySavings"`
	SavingsInExpensiveMonth float64 `json:"savingsInExpensiveMonth"`
	CoversExpensiveMonth    bool    `json:"coversExpensiveMonth"`
	SavingsInCheapestMonth  float64 `json:"savingsInCheapestMonth"`
	CoversCheapestMonth     bool    `json:"coversCheapestMonth"`
}

// LoanSummary estimates the financing cost when a loan amount is set.
type LoanSummary struct {
	FinancedAmount float64 `json:"financedAmount"`
	AprPercent     float64 `json:"aprPercent"`
	TermYears      float64 `json:"termYears"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalPaid      float64 `json:"totalPaid"`
}

// ModelSnapshot is the complete result of one simulation run. It is rebuilt
// from scratch on every config change and handed whole to every consumer
// (dashboard rendering, context text, export).
type ModelSnapshot struct {
	SystemSizeKW                float64                 `json:"systemSizeKW"`
	AnnualProductionKWH         float64                 `json:"annualProductionKWH"`
	AverageMonthlyProductionKWH float64                 `json:"averageMonthlyProductionKWH"`
	TotalUpfrontCost            float64                 `json:"totalUpfrontCost"`
	NetUpfrontCost              float64                 `json:"netUpfrontCost"`
	Projection                  []ProjectionYear        `json:"projection"`
	Summary                     FinancialSummary        `json:"summary"`
	Battery                     BatterySimulationResult `json:"battery"`
	Loan                        *LoanSummary            `json:"loan,omitempty"`
}
