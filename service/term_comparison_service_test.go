package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty-agent/domain"
)

var comparisonLoan = domain.LoanInputs{
	HomePrice:                 400000,
	DownPayment:               80000,
	AnnualInterestRatePercent: 6,
}

func TestCompareTerms_Preferences(t *testing.T) {
	svc := NewTermComparisonService(DefaultMortgagePolicy())

	tests := []struct {
		preference string
		want       int
	}{
		{PreferenceMinimizeInterest, 10},
		{PreferenceMinimizePayment, 20},
		{PreferenceBalanced, 15},
		{"", 15},
	}

	for _, tt := range tests {
		t.Run(tt.preference, func(t *testing.T) {
			result, err := svc.CompareTerms(domain.TermComparisonInput{
				Loan:       comparisonLoan,
				Preference: tt.preference,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.RecommendedTerm)
			assert.Len(t, result.Options, len(DefaultComparisonTerms))
			assert.Equal(t, tt.want, result.Options[0].LoanTermYears)
			assert.NotEmpty(t, result.Options[0].Reason)

			for i := 1; i < len(result.Options); i++ {
				assert.GreaterOrEqual(t, result.Options[i-1].Score, result.Options[i].Score)
			}
		})
	}
}

func TestCompareTerms_MaxMonthlyPayment(t *testing.T) {
	svc := NewTermComparisonService(DefaultMortgagePolicy())

	result, err := svc.CompareTerms(domain.TermComparisonInput{
		Loan:              comparisonLoan,
		MaxMonthlyPayment: 3000,
		Preference:        PreferenceMinimizeInterest,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, result.RecommendedTerm)
	require.Len(t, result.Options, 3)
	for _, o := range result.Options {
		assert.LessOrEqual(t, o.Breakdown.TotalMonthlyPayment, 3000.0)
	}

	_, err = svc.CompareTerms(domain.TermComparisonInput{Loan: comparisonLoan, MaxMonthlyPayment: 2000})
	assert.ErrorIs(t, err, ErrNoAffordableTerm)
}

func TestCompareTerms_CustomTerms(t *testing.T) {
	svc := NewTermComparisonService(DefaultMortgagePolicy())

	result, err := svc.CompareTerms(domain.TermComparisonInput{
		Loan:  comparisonLoan,
		Terms: []int{30, 15, 30},
	})
	require.NoError(t, err)
	assert.Len(t, result.Options, 2)
}

func TestCompareTerms_Invalid(t *testing.T) {
	svc := NewTermComparisonService(DefaultMortgagePolicy())

	tests := []struct {
		name  string
		input domain.TermComparisonInput
		want  error
	}{
		{"unknown preference", domain.TermComparisonInput{Loan: comparisonLoan, Preference: "cheapest"}, ErrInvalidRequest},
		{"negative max payment", domain.TermComparisonInput{Loan: comparisonLoan, MaxMonthlyPayment: -1}, ErrInvalidRequest},
		{"zero term", domain.TermComparisonInput{Loan: comparisonLoan, Terms: []int{0, 15}}, ErrLoanTermOutOfRange},
		{"term above max", domain.TermComparisonInput{Loan: comparisonLoan, Terms: []int{15, 60}}, ErrLoanTermOutOfRange},
		{"bad loan", domain.TermComparisonInput{Loan: domain.LoanInputs{HomePrice: 1, DownPayment: 2}}, ErrDownPaymentExceedsPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CompareTerms(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
