package service

import (
	"errors"
	"math"
	"slices"

	"realty-agent/domain"
)

const (
	PreferenceMinimizeInterest = "minimize_interest"
	PreferenceMinimizePayment  = "minimize_payment"
	PreferenceBalanced         = "balanced"
)

var ErrNoAffordableTerm = errors.New("no loan term fits the maximum monthly payment")

type TermComparisonService struct {
	policy MortgagePolicy
}

func NewTermComparisonService(policy MortgagePolicy) *TermComparisonService {
	return &TermComparisonService{policy: policy}
}

// CompareTerms estimates the loan under each candidate term and ranks them by
// the caller's preference. Terms whose total monthly payment exceeds
// MaxMonthlyPayment (when set) are left out.
func (s *TermComparisonService) CompareTerms(
	input domain.TermComparisonInput,
) (domain.TermComparisonResult, error) {
	if input.Preference == "" {
		input.Preference = PreferenceBalanced
	}
	switch input.Preference {
	case PreferenceMinimizeInterest, PreferenceMinimizePayment, PreferenceBalanced:
	default:
		return domain.TermComparisonResult{}, newValidationError("preference", ErrInvalidRequest,
			"unknown preference %q", input.Preference)
	}
	if input.MaxMonthlyPayment < 0 {
		return domain.TermComparisonResult{}, newValidationError("maxMonthlyPayment", ErrInvalidRequest,
			"maximum monthly payment cannot be negative")
	}

	terms := input.Terms
	if len(terms) == 0 {
		terms = DefaultComparisonTerms
	}
	terms = slices.Compact(slices.Sorted(slices.Values(terms)))

	options := make([]domain.TermOption, 0, len(terms))
	for _, term := range terms {
		if term <= 0 {
			return domain.TermComparisonResult{}, newValidationError("terms", ErrLoanTermOutOfRange,
				"Loan term must be between 1 and %d years", s.policy.MaxLoanTermYears)
		}
		loan := input.Loan
		loan.LoanTermYears = term

		result, err := Estimate(s.policy, loan)
		if err != nil {
			return domain.TermComparisonResult{}, err
		}
		if input.MaxMonthlyPayment > 0 && result.TotalMonthlyPayment > input.MaxMonthlyPayment {
			continue
		}
		options = append(options, domain.TermOption{
			LoanTermYears: term,
			Breakdown:     result,
		})
	}

	if len(options) == 0 {
		return domain.TermComparisonResult{}, ErrNoAffordableTerm
	}

	s.score(options, input.Preference)
	slices.SortStableFunc(options, func(a, b domain.TermOption) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})

	return domain.TermComparisonResult{
		RecommendedTerm: options[0].LoanTermYears,
		Options:         options,
	}, nil
}

// score rates each option 0-10 on interest, payment and term length relative
// to the other candidates, then weights the three by preference.
func (s *TermComparisonService) score(options []domain.TermOption, preference string) {
	minInterest, maxInterest := math.Inf(1), math.Inf(-1)
	minPayment, maxPayment := math.Inf(1), math.Inf(-1)
	minTerm, maxTerm := math.MaxInt, 0
	for _, o := range options {
		minInterest = math.Min(minInterest, o.Breakdown.TotalInterestPaid)
		maxInterest = math.Max(maxInterest, o.Breakdown.TotalInterestPaid)
		minPayment = math.Min(minPayment, o.Breakdown.TotalMonthlyPayment)
		maxPayment = math.Max(maxPayment, o.Breakdown.TotalMonthlyPayment)
		minTerm = min(minTerm, o.LoanTermYears)
		maxTerm = max(maxTerm, o.LoanTermYears)
	}

	for i := range options {
		o := &options[i]
		interestScore := relativeScore(o.Breakdown.TotalInterestPaid, minInterest, maxInterest)
		paymentScore := relativeScore(o.Breakdown.TotalMonthlyPayment, minPayment, maxPayment)
		termScore := relativeScore(float64(o.LoanTermYears), float64(minTerm), float64(maxTerm))

		var score float64
		switch preference {
		case PreferenceMinimizeInterest:
			score = 0.6*interestScore + 0.2*paymentScore + 0.2*termScore
			o.Reason = "Term optimized to minimize total interest paid"
		case PreferenceMinimizePayment:
			score = 0.2*interestScore + 0.6*paymentScore + 0.2*termScore
			o.Reason = "Term optimized to minimize the monthly payment"
		default:
			score = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
			o.Reason = "Balance between monthly payment and total cost"
		}
		o.Score = math.Round(score*100) / 100
	}
}

// relativeScore maps v in [lo, hi] to 10 (at lo) .. 0 (at hi). A degenerate
// range scores 10.
func relativeScore(v, lo, hi float64) float64 {
	if hi <= lo {
		return 10
	}
	return 10 * (1 - (v-lo)/(hi-lo))
}
