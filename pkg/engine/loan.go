package engine

import (
	"github.com/shopspring/decimal"

	"github.com/heliosim/heliosim/pkg/types"
)

// aprForCreditScore estimates a solar loan APR (in %) when the user set a
// loan amount but left the rate at 0.
func aprForCreditScore(score float64) float64 {
	switch {
	case score >= 760:
		return 6.5
	case score >= 700:
		return 7.5
	case score >= 640:
		return 9.0
	default:
		return 11.5
	}
}

// BuildLoan amortizes the financed amount into a monthly payment estimate.
// It returns nil when no loan amount is set or the term rounds to zero
// months.
func BuildLoan(cfg types.SolarConfig) *types.LoanSummary {
	principal := dec(cfg.LoanAmount)
	if !principal.IsPositive() {
		return nil
	}
	months := int64(cfg.LoanTermYears * 12)
	if months <= 0 {
		return nil
	}

	apr := cfg.LoanInterestRate
	if apr == 0 {
		apr = aprForCreditScore(cfg.CreditScore)
	}

	decMonths := decimal.NewFromInt(months)
	monthlyRate := pctFraction(apr).Div(decTwelve)

	// standard amortization: P * r * (1+r)^n / ((1+r)^n - 1), falling back
	// to an even split when there is no interest to compound
	var payment decimal.Decimal
	growth := decOne.Add(monthlyRate).Pow(decMonths)
	if growth.Sub(decOne).IsZero() {
		payment = principal.Div(decMonths)
	} else {
		payment = principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(decOne))
	}
	payment = payment.Round(2)

	totalPaid := payment.Mul(decMonths)
	return &types.LoanSummary{
		FinancedAmount: principal.InexactFloat64(),
		AprPercent:     apr,
		TermYears:      cfg.LoanTermYears,
		MonthlyPayment: payment.InexactFloat64(),
		TotalInterest:  totalPaid.Sub(principal).Round(2).InexactFloat64(),
		TotalPaid:      totalPaid.Round(2).InexactFloat64(),
	}
}
