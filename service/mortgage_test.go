package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty-agent/domain"
)

func TestEstimate_ThirtyYearFixed(t *testing.T) {
	result, err := Estimate(DefaultMortgagePolicy(), domain.LoanInputs{
		HomePrice:                 750000,
		DownPayment:               150000,
		LoanTermYears:             30,
		AnnualInterestRatePercent: 6.5,
	})
	require.NoError(t, err)

	assert.Equal(t, 600000.0, result.LoanAmount)
	assert.InDelta(t, 3792, result.MonthlyPrincipalAndInterest, 1)
	assert.InDelta(t, 750, result.MonthlyPropertyTax, 1e-9)
	assert.InDelta(t, 218.75, result.MonthlyInsurance, 1e-9)
	assert.Equal(t, 360, result.TotalMonths)
	assert.InDelta(t, 765266.93, result.TotalInterestPaid, 0.01)
}

func TestEstimate_ZeroRateIsStraightLine(t *testing.T) {
	result, err := Estimate(DefaultMortgagePolicy(), domain.LoanInputs{
		HomePrice:                 500000,
		DownPayment:               100000,
		LoanTermYears:             15,
		AnnualInterestRatePercent: 0,
	})
	require.NoError(t, err)

	assert.Equal(t, 400000.0/180, result.MonthlyPrincipalAndInterest)
	assert.InDelta(t, 0, result.TotalInterestPaid, 1e-6)
}

func TestEstimate_ZeroDownZeroRate(t *testing.T) {
	for _, price := range []float64{1, 99999, 250000, 1234567.89} {
		for _, term := range []int{1, 15, 30, 50} {
			result, err := Estimate(DefaultMortgagePolicy(), domain.LoanInputs{
				HomePrice:     price,
				LoanTermYears: term,
			})
			require.NoError(t, err)
			assert.Equal(t, price/float64(term*12), result.MonthlyPrincipalAndInterest)
		}
	}
}

func TestEstimate_Identities(t *testing.T) {
	inputs := []domain.LoanInputs{
		{HomePrice: 750000, DownPayment: 150000, LoanTermYears: 30, AnnualInterestRatePercent: 6.5},
		{HomePrice: 425000, DownPayment: 0, LoanTermYears: 10, AnnualInterestRatePercent: 3.25},
		{HomePrice: 2500000, DownPayment: 1000000, LoanTermYears: 20, AnnualInterestRatePercent: 30},
		{HomePrice: 100, DownPayment: 99, LoanTermYears: 1, AnnualInterestRatePercent: 0.01},
	}
	for _, in := range inputs {
		result, err := Estimate(DefaultMortgagePolicy(), in)
		require.NoError(t, err)

		assert.Equal(t,
			result.MonthlyPrincipalAndInterest+result.MonthlyPropertyTax+result.MonthlyInsurance,
			result.TotalMonthlyPayment)
		assert.Equal(t, in.HomePrice+result.TotalInterestPaid, result.TotalCost)
	}
}

func TestEstimate_HigherRateHigherPayment(t *testing.T) {
	in := domain.LoanInputs{HomePrice: 500000, DownPayment: 50000, LoanTermYears: 30}
	prev := -1.0
	for rate := 0.0; rate <= 30; rate += 0.25 {
		in.AnnualInterestRatePercent = rate
		result, err := Estimate(DefaultMortgagePolicy(), in)
		require.NoError(t, err)
		assert.Greater(t, result.MonthlyPrincipalAndInterest, prev, "rate %v", rate)
		prev = result.MonthlyPrincipalAndInterest
	}
}

func TestEstimate_TinyRatesStayAboveStraightLine(t *testing.T) {
	in := domain.LoanInputs{HomePrice: 500000, DownPayment: 100000, LoanTermYears: 30}
	base, err := Estimate(DefaultMortgagePolicy(), in)
	require.NoError(t, err)

	prev := base.MonthlyPrincipalAndInterest
	for exp := -16; exp <= -6; exp++ {
		rate := math.Pow(10, float64(exp))
		in.AnnualInterestRatePercent = rate
		result, err := Estimate(DefaultMortgagePolicy(), in)
		require.NoError(t, err, "rate %g", rate)

		pi := result.MonthlyPrincipalAndInterest
		assert.False(t, math.IsInf(pi, 0) || math.IsNaN(pi), "rate %g", rate)
		assert.GreaterOrEqual(t, result.TotalInterestPaid, 0.0, "rate %g", rate)
		// Below 1e-13% the increase is smaller than one ulp of the payment.
		if exp >= -13 {
			assert.Greater(t, pi, prev, "rate %g", rate)
		} else {
			assert.GreaterOrEqual(t, pi, prev, "rate %g", rate)
		}
		prev = pi
	}
	assert.InDelta(t, 400000.0/360, prev, 1e-3)
}

func TestEstimate_NonFiniteResultFails(t *testing.T) {
	policy := DefaultMortgagePolicy()
	policy.PropertyTaxRate = math.Inf(1)

	result, err := Estimate(policy, domain.LoanInputs{HomePrice: 300000, AnnualInterestRatePercent: 5})
	require.ErrorIs(t, err, ErrCalculationFailure)
	assert.Equal(t, domain.PaymentBreakdown{}, result)
	assert.False(t, IsValidation(err))
}

func TestEstimate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		in    domain.LoanInputs
		want  error
		field string
	}{
		{"zero price", domain.LoanInputs{HomePrice: 0}, ErrInvalidHomePrice, "homePrice"},
		{"negative price", domain.LoanInputs{HomePrice: -1}, ErrInvalidHomePrice, "homePrice"},
		{"NaN price", domain.LoanInputs{HomePrice: math.NaN()}, ErrInvalidHomePrice, "homePrice"},
		{"infinite price", domain.LoanInputs{HomePrice: math.Inf(1)}, ErrInvalidHomePrice, "homePrice"},
		{"down equals price", domain.LoanInputs{HomePrice: 300000, DownPayment: 300000}, ErrDownPaymentExceedsPrice, "downPayment"},
		{"down above price", domain.LoanInputs{HomePrice: 300000, DownPayment: 300001}, ErrDownPaymentExceedsPrice, "downPayment"},
		{"negative down", domain.LoanInputs{HomePrice: 300000, DownPayment: -5}, ErrInvalidDownPayment, "downPayment"},
		{"negative rate", domain.LoanInputs{HomePrice: 300000, AnnualInterestRatePercent: -0.1}, ErrInterestRateOutOfRange, "interestRate"},
		{"rate above max", domain.LoanInputs{HomePrice: 300000, AnnualInterestRatePercent: 30.0001}, ErrInterestRateOutOfRange, "interestRate"},
		{"NaN rate", domain.LoanInputs{HomePrice: 300000, AnnualInterestRatePercent: math.NaN()}, ErrInterestRateOutOfRange, "interestRate"},
		{"term above max", domain.LoanInputs{HomePrice: 300000, LoanTermYears: 51}, ErrLoanTermOutOfRange, "loanTerm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Estimate(DefaultMortgagePolicy(), tt.in)
			require.ErrorIs(t, err, tt.want)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.NotEmpty(t, UserMessage(err))
		})
	}
}

func TestEstimate_RateBoundaryAccepted(t *testing.T) {
	_, err := Estimate(DefaultMortgagePolicy(), domain.LoanInputs{
		HomePrice: 300000, DownPayment: 60000, AnnualInterestRatePercent: 30,
	})
	assert.NoError(t, err)
}

func TestEstimate_TermDefaults(t *testing.T) {
	for _, term := range []int{0, -4} {
		result, err := Estimate(DefaultMortgagePolicy(), domain.LoanInputs{
			HomePrice: 300000, DownPayment: 60000, LoanTermYears: term, AnnualInterestRatePercent: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, DefaultLoanTermYears, result.LoanTermYears)
		assert.Equal(t, DefaultLoanTermYears*12, result.TotalMonths)
	}

	result, err := Estimate(DefaultMortgagePolicy(), domain.LoanInputs{
		HomePrice: 300000, LoanTermYears: MaxLoanTermYears, AnnualInterestRatePercent: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, MaxLoanTermYears*12, result.TotalMonths)
}

func TestEstimate_CustomEscrowRates(t *testing.T) {
	policy := DefaultMortgagePolicy()
	policy.InsuranceRate = 0.005
	policy.PropertyTaxRate = 0

	result, err := Estimate(policy, domain.LoanInputs{HomePrice: 600000, AnnualInterestRatePercent: 4})
	require.NoError(t, err)
	assert.Zero(t, result.MonthlyPropertyTax)
	assert.InDelta(t, 250, result.MonthlyInsurance, 1e-9)
}

func TestAmortizationSchedule(t *testing.T) {
	in := domain.LoanInputs{HomePrice: 400000, DownPayment: 80000, LoanTermYears: 15, AnnualInterestRatePercent: 5.75}
	rows, err := AmortizationSchedule(DefaultMortgagePolicy(), in)
	require.NoError(t, err)
	require.Len(t, rows, 180)

	result, err := Estimate(DefaultMortgagePolicy(), in)
	require.NoError(t, err)

	var principal, interest float64
	for i, row := range rows {
		assert.Equal(t, i+1, row.Month)
		principal += row.Principal
		interest += row.Interest
	}
	assert.Zero(t, rows[len(rows)-1].Balance)
	assert.InDelta(t, result.LoanAmount, principal, 1e-6)
	assert.InDelta(t, result.TotalInterestPaid, interest, 0.01)
	assert.Greater(t, rows[0].Interest, rows[len(rows)-1].Interest)
}

func TestAmortizationSchedule_RejectsInvalid(t *testing.T) {
	rows, err := AmortizationSchedule(DefaultMortgagePolicy(), domain.LoanInputs{HomePrice: 10, DownPayment: 10})
	assert.ErrorIs(t, err, ErrDownPaymentExceedsPrice)
	assert.Nil(t, rows)
}
