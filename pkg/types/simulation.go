package types

// SimulationInputs are the outage-planning inputs that sit outside the main
// system config. Only the battery simulator reads them.
type SimulationInputs struct {
	CriticalLoadWatts    float64 `json:"criticalLoadWatts" yaml:"criticalLoadWatts"`       // W the household must keep running in an outage
	CheapestMonthlyBill  float64 `json:"cheapestMonthlyBill" yaml:"cheapestMonthlyBill"`   // $
	ExpensiveMonthlyBill float64 `json:"expensiveMonthlyBill" yaml:"expensiveMonthlyBill"` // $
}

// DefaultSimulationInputs returns a typical outage-planning starting point:
// fridge, lights, router and a small heating load.
func DefaultSimulationInputs() SimulationInputs {
	return SimulationInputs{
		CriticalLoadWatts:    800,
		CheapestMonthlyBill:  90,
		ExpensiveMonthlyBill: 210,
	}
}

// SanitizeSimulationInputs replaces non-finite values with 0, mirroring
// SanitizeConfig.
func SanitizeSimulationInputs(s SimulationInputs) SimulationInputs {
	s.CriticalLoadWatts = finite(s.CriticalLoadWatts)
	s.CheapestMonthlyBill = finite(s.CheapestMonthlyBill)
	s.ExpensiveMonthlyBill = finite(s.ExpensiveMonthlyBill)
	return s
}
