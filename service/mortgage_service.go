package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"realty-agent/domain"
	"realty-agent/repository"
)

type MortgageService struct {
	policy  MortgagePolicy
	repo    repository.EstimateRepository
	tracker Tracker
	logger  *zap.Logger
	now     func() time.Time
}

// NewMortgageService creates a MortgageService. tracker may be nil.
func NewMortgageService(
	policy MortgagePolicy,
	repo repository.EstimateRepository,
	tracker Tracker,
	logger *zap.Logger,
) *MortgageService {
	if tracker == nil {
		tracker = NopTracker{}
	}
	return &MortgageService{
		policy:  policy,
		repo:    repo,
		tracker: tracker,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *MortgageService) Policy() MortgagePolicy {
	return s.policy
}

// Calculate estimates the payment breakdown for in. Saving the estimate and
// emitting the telemetry event are best effort and never fail the call.
func (s *MortgageService) Calculate(
	ctx context.Context,
	in domain.LoanInputs,
) (domain.PaymentBreakdown, error) {
	result, err := Estimate(s.policy, in)
	if err != nil {
		s.logger.Debug("mortgage estimate rejected",
			zap.Float64("home_price", in.HomePrice),
			zap.Float64("down_payment", in.DownPayment),
			zap.Error(err))
		return domain.PaymentBreakdown{}, err
	}

	in.LoanTermYears = result.LoanTermYears
	record := domain.EstimateRecord{Inputs: in, Result: result, CalculatedAt: s.now()}
	if err := s.repo.Save(record); err != nil {
		s.logger.Warn("failed to save mortgage estimate", zap.Error(err))
	}

	s.tracker.Track(ctx, domain.EventMortgageCalculation, map[string]any{
		"home_price":      in.HomePrice,
		"down_payment":    in.DownPayment,
		"loan_term":       in.LoanTermYears,
		"interest_rate":   in.AnnualInterestRatePercent,
		"monthly_payment": result.TotalMonthlyPayment,
	})

	return result, nil
}

func (s *MortgageService) Schedule(in domain.LoanInputs) ([]domain.AmortizationRow, error) {
	return AmortizationSchedule(s.policy, in)
}

// PropertyLoanRequest overrides the defaults used when estimating for a listing.
// Nil fields take DefaultDownPaymentPercent, the policy's default term and
// DefaultInterestRate.
type PropertyLoanRequest struct {
	DownPaymentPercent        *float64
	LoanTermYears             int
	AnnualInterestRatePercent *float64
}

// ForProperty prices a loan for a listing using its asking price as the home price.
func (s *MortgageService) ForProperty(
	ctx context.Context,
	property domain.Property,
	req PropertyLoanRequest,
) (domain.LoanInputs, domain.PaymentBreakdown, error) {
	downPct := DefaultDownPaymentPercent
	if req.DownPaymentPercent != nil {
		downPct = *req.DownPaymentPercent
	}
	rate := DefaultInterestRate
	if req.AnnualInterestRatePercent != nil {
		rate = *req.AnnualInterestRatePercent
	}

	price := float64(property.Price)
	in := domain.LoanInputs{
		HomePrice:                 price,
		DownPayment:               math.Round(price * downPct / 100),
		LoanTermYears:             req.LoanTermYears,
		AnnualInterestRatePercent: rate,
	}

	s.tracker.Track(ctx, domain.EventMortgageForProperty, map[string]any{
		"property_id":    property.ID,
		"property_price": property.Price,
	})

	result, err := s.Calculate(ctx, in)
	if err != nil {
		return in, domain.PaymentBreakdown{}, err
	}
	in.LoanTermYears = result.LoanTermYears
	return in, result, nil
}

func (s *MortgageService) Recent(limit int) []domain.EstimateRecord {
	return s.repo.Recent(limit)
}
