package service

import (
	"math"

	"realty-agent/domain"
)

// MortgagePolicy holds the estimator's tunable limits and escrow rates.
type MortgagePolicy struct {
	PropertyTaxRate        float64
	InsuranceRate          float64
	DefaultLoanTermYears   int
	MaxLoanTermYears       int
	MaxInterestRatePercent float64
}

func DefaultMortgagePolicy() MortgagePolicy {
	return MortgagePolicy{
		PropertyTaxRate:        DefaultPropertyTaxRate,
		InsuranceRate:          DefaultInsuranceRate,
		DefaultLoanTermYears:   DefaultLoanTermYears,
		MaxLoanTermYears:       MaxLoanTermYears,
		MaxInterestRatePercent: MaxInterestRatePercent,
	}
}

// normalize validates in and fills the default term. Checks run in a fixed
// order and the first failure is returned.
func (p MortgagePolicy) normalize(in domain.LoanInputs) (domain.LoanInputs, error) {
	if !(in.HomePrice > 0) || math.IsInf(in.HomePrice, 0) {
		return in, newValidationError("homePrice", ErrInvalidHomePrice,
			"Please enter a valid home price")
	}
	if !(in.DownPayment < in.HomePrice) {
		return in, newValidationError("downPayment", ErrDownPaymentExceedsPrice,
			"Down payment cannot exceed home price")
	}
	if in.DownPayment < 0 || math.IsInf(in.DownPayment, 0) {
		return in, newValidationError("downPayment", ErrInvalidDownPayment,
			"Down payment cannot be negative")
	}
	if !(in.AnnualInterestRatePercent >= 0 && in.AnnualInterestRatePercent <= p.MaxInterestRatePercent) {
		return in, newValidationError("interestRate", ErrInterestRateOutOfRange,
			"Interest rate must be between 0%% and %g%%", p.MaxInterestRatePercent)
	}

	if in.LoanTermYears <= 0 {
		in.LoanTermYears = p.DefaultLoanTermYears
	}
	if p.MaxLoanTermYears > 0 && in.LoanTermYears > p.MaxLoanTermYears {
		return in, newValidationError("loanTerm", ErrLoanTermOutOfRange,
			"Loan term must be between 1 and %d years", p.MaxLoanTermYears)
	}
	return in, nil
}

// Estimate computes the monthly payment breakdown and lifetime cost for in.
// It has no side effects; values are not rounded.
func Estimate(policy MortgagePolicy, in domain.LoanInputs) (domain.PaymentBreakdown, error) {
	in, err := policy.normalize(in)
	if err != nil {
		return domain.PaymentBreakdown{}, err
	}

	loanAmount := in.LoanAmount()
	totalMonths := in.LoanTermYears * monthsPerYear
	monthlyPI := monthlyPayment(loanAmount, in.AnnualInterestRatePercent, totalMonths)

	monthlyTax := in.HomePrice * policy.PropertyTaxRate / monthsPerYear
	monthlyInsurance := in.HomePrice * policy.InsuranceRate / monthsPerYear
	// Rounding can leave a straight-line loan a fraction of a cent short.
	totalInterest := max(monthlyPI*float64(totalMonths)-loanAmount, 0)

	result := domain.PaymentBreakdown{
		MonthlyPrincipalAndInterest: monthlyPI,
		MonthlyPropertyTax:          monthlyTax,
		MonthlyInsurance:            monthlyInsurance,
		TotalMonthlyPayment:         monthlyPI + monthlyTax + monthlyInsurance,
		LoanAmount:                  loanAmount,
		TotalInterestPaid:           totalInterest,
		TotalCost:                   in.HomePrice + totalInterest,
		LoanTermYears:               in.LoanTermYears,
		TotalMonths:                 totalMonths,
	}

	for _, v := range []float64{
		result.MonthlyPrincipalAndInterest,
		result.MonthlyPropertyTax,
		result.MonthlyInsurance,
		result.TotalMonthlyPayment,
		result.TotalInterestPaid,
		result.TotalCost,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.PaymentBreakdown{}, ErrCalculationFailure
		}
	}
	return result, nil
}

// seriesThreshold bounds months*r below which the annuity factor is taken
// from its Taylor expansion. The cubic term is then under 1e-16 relative.
const seriesThreshold = 1e-5

// monthlyPayment is the level principal-and-interest payment. A zero rate
// falls back to straight-line repayment since the annuity formula divides by zero.
// (1+r)^n - 1 is computed as expm1(n*log1p(r)) so tiny rates do not cancel.
func monthlyPayment(principal, annualRatePercent float64, months int) float64 {
	r := annualRatePercent / 100 / monthsPerYear
	n := float64(months)
	straight := principal / n
	if !(r > 0) {
		return straight
	}
	if n*r < seriesThreshold {
		// r/(1-(1+r)^-n) = 1/n * (1 + (n+1)r/2 + (n^2-1)r^2/12 + ...)
		return straight + straight*((n+1)*r/2+(n*n-1)*r*r/12)
	}
	denom := math.Expm1(n * math.Log1p(r))
	if denom == 0 {
		return straight
	}
	return max(principal*r*(denom+1)/denom, straight)
}

// AmortizationSchedule splits each monthly payment of in into principal and
// interest. The last row absorbs floating point drift so the balance ends at zero.
func AmortizationSchedule(policy MortgagePolicy, in domain.LoanInputs) ([]domain.AmortizationRow, error) {
	result, err := Estimate(policy, in)
	if err != nil {
		return nil, err
	}

	r := in.AnnualInterestRatePercent / 100 / monthsPerYear
	balance := result.LoanAmount
	rows := make([]domain.AmortizationRow, 0, result.TotalMonths)
	for month := 1; month <= result.TotalMonths; month++ {
		interest := balance * r
		principal := result.MonthlyPrincipalAndInterest - interest
		payment := result.MonthlyPrincipalAndInterest
		if month == result.TotalMonths {
			principal = balance
			payment = principal + interest
		}
		balance -= principal
		if balance < 0 {
			balance = 0
		}
		rows = append(rows, domain.AmortizationRow{
			Month:     month,
			Payment:   payment,
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		})
	}
	return rows, nil
}
