package engine

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	decOne         = decimal.NewFromInt(1)
	decTwelve      = decimal.NewFromInt(12)
	decHundred     = decimal.NewFromInt(100)
	decThousand    = decimal.NewFromInt(1000)
	decDaysPerYear = decimal.NewFromInt(365)

	// stcBaselineEfficiency is the standard-test-condition panel efficiency
	// (in %) that user-entered efficiency is scaled against.
	stcBaselineEfficiency = decimal.NewFromInt(21)
)

// dec converts a float into a decimal, treating non-finite values as 0 so
// the conversion can never panic even if a caller skipped sanitization.
func dec(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// pctFraction converts a 0-100 percent value into a 0-1 fraction.
func pctFraction(f float64) decimal.Decimal {
	return dec(f).Div(decHundred)
}
