package service

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"realty-agent/domain"
)

// FormatCurrency rounds to whole dollars and groups thousands: 3792.41 -> "$3,792".
// Amounts beyond the int64 range are grouped from the float.
func FormatCurrency(amount float64) string {
	rounded := math.Round(amount)
	sign := ""
	if rounded < 0 {
		sign, rounded = "-", -rounded
	}
	if rounded < math.MaxInt64 {
		return sign + "$" + humanize.Comma(int64(rounded))
	}
	return sign + "$" + humanize.Commaf(rounded)
}

// FormatPrice is the compact listing price: $1.2M, $850K, $950.
func FormatPrice(price int64) string {
	switch {
	case price >= 1_000_000:
		return fmt.Sprintf("$%.1fM", float64(price)/1_000_000)
	case price >= 1_000:
		return fmt.Sprintf("$%.0fK", float64(price)/1_000)
	default:
		return "$" + humanize.Comma(price)
	}
}

func FormatArea(area int) string {
	return humanize.Comma(int64(area)) + " sq ft"
}

func FormatBreakdown(b domain.PaymentBreakdown) domain.FormattedBreakdown {
	return domain.FormattedBreakdown{
		PrincipalAndInterest: FormatCurrency(b.MonthlyPrincipalAndInterest),
		PropertyTax:          FormatCurrency(b.MonthlyPropertyTax),
		HomeInsurance:        FormatCurrency(b.MonthlyInsurance),
		TotalPayment:         FormatCurrency(b.TotalMonthlyPayment),
		LoanAmount:           FormatCurrency(b.LoanAmount),
		TotalInterest:        FormatCurrency(b.TotalInterestPaid),
		TotalCost:            FormatCurrency(b.TotalCost),
	}
}
