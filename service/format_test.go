package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"realty-agent/domain"
)

func TestFormatCurrency(t *testing.T) {
	tests := map[float64]string{
		0:          "$0",
		0.49:       "$0",
		3792.41:    "$3,792",
		218.75:     "$219",
		1234567.5:  "$1,234,568",
		-1234.5:    "-$1,235",
		600000:     "$600,000",
		4761.15814: "$4,761",
		9.2e18:     "$9,200,000,000,000,000,000",
		1e19:       "$10,000,000,000,000,000,000",
		-1e19:      "-$10,000,000,000,000,000,000",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatCurrency(in), "FormatCurrency(%v)", in)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$1.2M", FormatPrice(1_200_000))
	assert.Equal(t, "$2.5M", FormatPrice(2_500_000))
	assert.Equal(t, "$850K", FormatPrice(850_000))
	assert.Equal(t, "$950", FormatPrice(950))
}

func TestFormatArea(t *testing.T) {
	assert.Equal(t, "1,200 sq ft", FormatArea(1200))
	assert.Equal(t, "600 sq ft", FormatArea(600))
}

func TestFormatBreakdown(t *testing.T) {
	result, err := Estimate(DefaultMortgagePolicy(), domain.LoanInputs{
		HomePrice: 750000, DownPayment: 150000, LoanTermYears: 30, AnnualInterestRatePercent: 6.5,
	})
	assert.NoError(t, err)

	assert.Equal(t, domain.FormattedBreakdown{
		PrincipalAndInterest: "$3,792",
		PropertyTax:          "$750",
		HomeInsurance:        "$219",
		TotalPayment:         "$4,761",
		LoanAmount:           "$600,000",
		TotalInterest:        "$765,267",
		TotalCost:            "$1,515,267",
	}, FormatBreakdown(result))
}
