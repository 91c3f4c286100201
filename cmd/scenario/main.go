package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/heliosim/heliosim/pkg/engine"
	"github.com/heliosim/heliosim/pkg/export"
	"github.com/heliosim/heliosim/pkg/scenario"
	"github.com/heliosim/heliosim/pkg/types"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		cmdRun(os.Args[2:])
	case "export":
		cmdExport(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  scenario run --file examples/winter-outage.yaml --projection")
	fmt.Println("  scenario run --json")
	fmt.Println("  scenario export --file examples/winter-outage.yaml --out winter.json --snapshot")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - without --file both commands use the default assumptions")
	fmt.Println("  - export writes a file the app's import screen accepts")
}

func loadScenario(path string) scenario.Scenario {
	if path == "" {
		return scenario.Scenario{
			Name:       "defaults",
			Config:     types.DefaultConfig(),
			Simulation: types.DefaultSimulationInputs(),
		}
	}
	sc, err := scenario.Load(path)
	if err != nil {
		panic(err)
	}
	return sc
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	file := fs.String("file", "", "Path to a scenario YAML")
	asJSON := fs.Bool("json", false, "Print the full snapshot as JSON")
	projection := fs.Bool("projection", false, "Print the year-by-year projection table")
	_ = fs.Parse(args)

	sc := loadScenario(*file)
	snap := engine.BuildSnapshot(sc.Config, sc.Simulation)

	if *asJSON {
		out, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			panic(err)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Printf("Scenario: %s\n", sc.Name)
	fmt.Printf("System size: %.2f kW\n", snap.SystemSizeKW)
	fmt.Printf("Annual production: %.1f kWh\n", snap.AnnualProductionKWH)
	fmt.Printf("Total upfront cost: $%.2f\n", snap.TotalUpfrontCost)
	fmt.Printf("Net upfront cost: $%.2f\n", snap.NetUpfrontCost)
	fmt.Printf("Total %d-year savings: $%.2f\n", len(snap.Projection), snap.Summary.TotalSavings)
	fmt.Printf("Break-even: %s\n", snap.Summary.BreakEvenLabel)
	fmt.Printf("ROI: %.1f%%\n", snap.Summary.RoiPercent)
	if snap.Battery.UsableCapacityKWH > 0 {
		fmt.Printf("Battery: %.1f kWh usable, %.1f h autonomy, $%.2f/month offset\n",
			snap.Battery.UsableCapacityKWH, snap.Battery.AutonomyHours, snap.Battery.MonthlySavings)
	}
	if snap.Loan != nil {
		fmt.Printf("Loan: $%.2f/month (%.1f%% APR, %.0f years)\n",
			snap.Loan.MonthlyPayment, snap.Loan.AprPercent, snap.Loan.TermYears)
	}

	if *projection {
		fmt.Println("")
		fmt.Printf("%-5s %-12s %-7s %-10s %-10s %-10s %-12s %-12s\n",
			"year", "production", "degr%", "savings", "income", "benefit", "cumulative", "remaining")
		for _, row := range snap.Projection {
			fmt.Printf("%-5d %-12.1f %-7.2f %-10.2f %-10.2f %-10.2f %-12.2f %-12.2f\n",
				row.Year,
				row.ProductionKWH,
				row.DegradationPercent,
				row.EnergySavings,
				row.NetMeteringIncome,
				row.TotalBenefit,
				row.CumulativeSavings,
				row.SolarSystemCumulative,
			)
		}
	}
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	file := fs.String("file", "", "Path to a scenario YAML")
	out := fs.String("out", "", "Output path for the export file")
	withSnapshot := fs.Bool("snapshot", false, "Embed the computed snapshot in the file")
	_ = fs.Parse(args)

	if *out == "" {
		fmt.Println("--out is required")
		os.Exit(2)
	}

	sc := loadScenario(*file)

	var env export.Envelope
	if *withSnapshot {
		env = export.BuildSnapshotExport(sc.Config, sc.Simulation, engine.BuildSnapshot(sc.Config, sc.Simulation))
	} else {
		env = export.BuildInputsExport(sc.Config, sc.Simulation)
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %s export for %q to %s\n", env.Kind, sc.Name, *out)
}
