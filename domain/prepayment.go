package domain

// PrepaymentInput describes extra principal paid on top of the scheduled
// payment. LumpSumMonth is 1-based; zero means the first month.
type PrepaymentInput struct {
	Loan                LoanInputs `json:"loan"`
	ExtraMonthlyPayment float64    `json:"extraMonthlyPayment"`
	LumpSum             float64    `json:"lumpSum"`
	LumpSumMonth        int        `json:"lumpSumMonth"`
}

type PayoffSummary struct {
	MonthsToPayoff    int     `json:"monthsToPayoff"`
	TotalInterestPaid float64 `json:"totalInterestPaid"`
}

type PrepaymentResult struct {
	Baseline      PayoffSummary     `json:"baseline"`
	WithExtra     PayoffSummary     `json:"withExtra"`
	InterestSaved float64           `json:"interestSaved"`
	MonthsSaved   int               `json:"monthsSaved"`
	Schedule      []AmortizationRow `json:"schedule"`
}
