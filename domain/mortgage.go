package domain

import "time"

type LoanInputs struct {
	HomePrice                 float64 `json:"homePrice"`
	DownPayment               float64 `json:"downPayment"`
	LoanTermYears             int     `json:"loanTermYears"`
	AnnualInterestRatePercent float64 `json:"annualInterestRatePercent"`
}

// LoanAmount is the financed part of the home price.
func (in LoanInputs) LoanAmount() float64 {
	return in.HomePrice - in.DownPayment
}

type PaymentBreakdown struct {
	MonthlyPrincipalAndInterest float64 `json:"monthlyPrincipalAndInterest"`
	MonthlyPropertyTax          float64 `json:"monthlyPropertyTax"`
	MonthlyInsurance            float64 `json:"monthlyInsurance"`
	TotalMonthlyPayment         float64 `json:"totalMonthlyPayment"`
	LoanAmount                  float64 `json:"loanAmount"`
	TotalInterestPaid           float64 `json:"totalInterestPaid"`
	TotalCost                   float64 `json:"totalCost"`
	LoanTermYears               int     `json:"loanTermYears"`
	TotalMonths                 int     `json:"totalMonths"`
}

// FormattedBreakdown holds the display strings for a PaymentBreakdown.
type FormattedBreakdown struct {
	PrincipalAndInterest string `json:"principalAndInterest"`
	PropertyTax          string `json:"propertyTax"`
	HomeInsurance        string `json:"homeInsurance"`
	TotalPayment         string `json:"totalPayment"`
	LoanAmount           string `json:"loanAmount"`
	TotalInterest        string `json:"totalInterest"`
	TotalCost            string `json:"totalCost"`
}

type AmortizationRow struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

type EstimateRecord struct {
	Inputs       LoanInputs       `json:"inputs"`
	Result       PaymentBreakdown `json:"result"`
	CalculatedAt time.Time        `json:"calculatedAt"`
}
