package service

const (
	DefaultLoanTermYears   = 30
	MaxLoanTermYears       = 50
	MaxInterestRatePercent = 30.0
	DefaultPropertyTaxRate = 0.012  // annual, fraction of home price
	DefaultInsuranceRate   = 0.0035 // annual, fraction of home price

	DefaultDownPaymentPercent = 20.0
	DefaultInterestRate       = 6.5

	monthsPerYear = 12

	DefaultSimilarLimit = 3
	DefaultRandomLimit  = 6
	SimilarPriceWindow  = 200_000

	MaxSearchHistory   = 1000
	TopPerformingLimit = 5
	PopularQueryLimit  = 10
	DefaultSearchDays  = 30
	MaxSearchDays      = 36500
)

// DefaultComparisonTerms are the loan terms offered by the calculator form.
var DefaultComparisonTerms = []int{10, 15, 20, 25, 30}
