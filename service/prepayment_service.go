package service

import (
	"math"

	"go.uber.org/zap"

	"realty-agent/domain"
)

// balanceTolerance is the leftover balance treated as paid off.
const balanceTolerance = 0.005

type PrepaymentService struct {
	policy MortgagePolicy
	logger *zap.Logger
}

func NewPrepaymentService(policy MortgagePolicy, logger *zap.Logger) *PrepaymentService {
	return &PrepaymentService{policy: policy, logger: logger}
}

// Plan simulates the loan month by month with the extra principal applied
// and compares it against the regular schedule.
func (s *PrepaymentService) Plan(input domain.PrepaymentInput) (domain.PrepaymentResult, error) {
	if input.ExtraMonthlyPayment < 0 || math.IsNaN(input.ExtraMonthlyPayment) || math.IsInf(input.ExtraMonthlyPayment, 0) {
		return domain.PrepaymentResult{}, newValidationError("extraMonthlyPayment", ErrInvalidRequest,
			"Extra monthly payment cannot be negative")
	}
	if input.LumpSum < 0 || math.IsNaN(input.LumpSum) || math.IsInf(input.LumpSum, 0) {
		return domain.PrepaymentResult{}, newValidationError("lumpSum", ErrInvalidRequest,
			"Lump sum cannot be negative")
	}

	base, err := Estimate(s.policy, input.Loan)
	if err != nil {
		return domain.PrepaymentResult{}, err
	}
	if input.LumpSumMonth < 0 || input.LumpSumMonth > base.TotalMonths {
		return domain.PrepaymentResult{}, newValidationError("lumpSumMonth", ErrInvalidRequest,
			"Lump sum month must be between 1 and %d", base.TotalMonths)
	}
	lumpMonth := max(input.LumpSumMonth, 1)

	r := input.Loan.AnnualInterestRatePercent / 100 / monthsPerYear
	balance := base.LoanAmount
	schedule := make([]domain.AmortizationRow, 0, base.TotalMonths)
	totalInterest := 0.0

	for month := 1; month <= base.TotalMonths && balance > balanceTolerance; month++ {
		interest := balance * r
		principal := base.MonthlyPrincipalAndInterest - interest + input.ExtraMonthlyPayment
		if month == lumpMonth {
			principal += input.LumpSum
		}
		if principal > balance || month == base.TotalMonths {
			principal = balance
		}
		balance -= principal
		totalInterest += interest

		schedule = append(schedule, domain.AmortizationRow{
			Month:     month,
			Payment:   principal + interest,
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		})
	}

	result := domain.PrepaymentResult{
		Baseline: domain.PayoffSummary{
			MonthsToPayoff:    base.TotalMonths,
			TotalInterestPaid: base.TotalInterestPaid,
		},
		WithExtra: domain.PayoffSummary{
			MonthsToPayoff:    len(schedule),
			TotalInterestPaid: totalInterest,
		},
		InterestSaved: math.Max(0, base.TotalInterestPaid-totalInterest),
		MonthsSaved:   base.TotalMonths - len(schedule),
		Schedule:      schedule,
	}

	s.logger.Debug("prepayment plan",
		zap.Float64("extra_monthly", input.ExtraMonthlyPayment),
		zap.Float64("lump_sum", input.LumpSum),
		zap.Int("months_saved", result.MonthsSaved))
	return result, nil
}
