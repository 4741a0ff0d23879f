package domain

type TermComparisonInput struct {
	Loan              LoanInputs `json:"loan"`
	Terms             []int      `json:"terms,omitempty"`
	MaxMonthlyPayment float64    `json:"maxMonthlyPayment,omitempty"`
	Preference        string     `json:"preference"` // "minimize_interest", "minimize_payment", "balanced"
}

type TermOption struct {
	LoanTermYears int              `json:"loanTermYears"`
	Breakdown     PaymentBreakdown `json:"breakdown"`
	Score         float64          `json:"score"`
	Reason        string           `json:"reason"`
}

type TermComparisonResult struct {
	RecommendedTerm int          `json:"recommendedTerm"`
	Options         []TermOption `json:"options"`
}
