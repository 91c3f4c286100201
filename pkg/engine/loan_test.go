package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliosim/heliosim/pkg/types"
)

func TestBuildLoan(t *testing.T) {
	t.Run("Standard Ten Year Loan", func(t *testing.T) {
		cfg := types.DefaultConfig()
		cfg.LoanAmount = 10000
		cfg.LoanTermYears = 10
		cfg.LoanInterestRate = 6

		loan := BuildLoan(cfg)
		require.NotNil(t, loan)
		assert.InDelta(t, 10000, loan.FinancedAmount, 1e-9)
		assert.InDelta(t, 6, loan.AprPercent, 1e-9)
		assert.InDelta(t, 10, loan.TermYears, 1e-9)
		// 10000 at 0.5%/month over 120 payments amortizes to 111.02
		assert.InDelta(t, 111.02, loan.MonthlyPayment, 1e-9)
		assert.InDelta(t, 13322.40, loan.TotalPaid, 1e-9)
		assert.InDelta(t, 3322.40, loan.TotalInterest, 1e-9)
	})

	t.Run("APR Estimated From Credit Score", func(t *testing.T) {
		tests := []struct {
			score float64
			apr   float64
		}{
			{780, 6.5},
			{760, 6.5},
			{720, 7.5},
			{660, 9},
			{600, 11.5},
		}
		for _, tt := range tests {
			cfg := types.DefaultConfig()
			cfg.LoanAmount = 10000
			cfg.LoanTermYears = 10
			cfg.LoanInterestRate = 0
			cfg.CreditScore = tt.score

			loan := BuildLoan(cfg)
			require.NotNil(t, loan)
			assert.InDelta(t, tt.apr, loan.AprPercent, 1e-9, "score %v", tt.score)
			assert.Positive(t, loan.MonthlyPayment)
		}
	})

	t.Run("Higher Score Never Pays More", func(t *testing.T) {
		payment := func(score float64) float64 {
			cfg := types.DefaultConfig()
			cfg.LoanAmount = 20000
			cfg.LoanTermYears = 15
			cfg.LoanInterestRate = 0
			cfg.CreditScore = score
			loan := BuildLoan(cfg)
			require.NotNil(t, loan)
			return loan.MonthlyPayment
		}
		assert.LessOrEqual(t, payment(800), payment(700))
		assert.LessOrEqual(t, payment(700), payment(650))
		assert.LessOrEqual(t, payment(650), payment(500))
	})

	t.Run("No Loan Requested", func(t *testing.T) {
		cfg := types.DefaultConfig()
		cfg.LoanAmount = 0

		assert.Nil(t, BuildLoan(cfg))
	})

	t.Run("Zero Term", func(t *testing.T) {
		cfg := types.DefaultConfig()
		cfg.LoanAmount = 10000
		cfg.LoanTermYears = 0

		assert.Nil(t, BuildLoan(cfg))
	})

	t.Run("Negative Amount", func(t *testing.T) {
		cfg := types.DefaultConfig()
		cfg.LoanAmount = -5000
		cfg.LoanTermYears = 10

		assert.Nil(t, BuildLoan(cfg))
	})
}
