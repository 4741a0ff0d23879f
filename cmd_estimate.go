package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"realty-agent/domain"
	"realty-agent/service"
)

var (
	estimateInputs   domain.LoanInputs
	estimateSchedule bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the monthly payment for a home loan",
	Example: `  realty estimate --price 750000 --down 150000 --term 30 --rate 6.5
  realty estimate --price 500000 --down 100000 --term 15 --rate 0 --schedule`,
	RunE: runEstimate,
}

func init() {
	f := estimateCmd.Flags()
	f.Float64Var(&estimateInputs.HomePrice, "price", 0, "home price")
	f.Float64Var(&estimateInputs.DownPayment, "down", 0, "down payment")
	f.IntVar(&estimateInputs.LoanTermYears, "term", service.DefaultLoanTermYears, "loan term in years")
	f.Float64Var(&estimateInputs.AnnualInterestRatePercent, "rate", service.DefaultInterestRate, "annual interest rate, percent")
	f.BoolVar(&estimateSchedule, "schedule", false, "print the yearly amortization summary")
	_ = estimateCmd.MarkFlagRequired("price")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	policy := mortgagePolicy(cfg.Mortgage)
	result, err := service.Estimate(policy, estimateInputs)
	if err != nil {
		return errors.New(service.UserMessage(err))
	}

	out := cmd.OutOrStdout()
	formatted := service.FormatBreakdown(result)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Principal & interest\t%s\n", formatted.PrincipalAndInterest)
	fmt.Fprintf(tw, "Property tax\t%s\n", formatted.PropertyTax)
	fmt.Fprintf(tw, "Home insurance\t%s\n", formatted.HomeInsurance)
	fmt.Fprintf(tw, "Total monthly payment\t%s\n", formatted.TotalPayment)
	fmt.Fprintf(tw, "Loan amount\t%s\n", formatted.LoanAmount)
	fmt.Fprintf(tw, "Total interest\t%s\n", formatted.TotalInterest)
	fmt.Fprintf(tw, "Total cost\t%s\n", formatted.TotalCost)
	if err := tw.Flush(); err != nil {
		return err
	}

	if !estimateSchedule {
		return nil
	}
	rows, err := service.AmortizationSchedule(policy, estimateInputs)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tPrincipal\tInterest\tBalance\t")
	var principal, interest float64
	for _, row := range rows {
		principal += row.Principal
		interest += row.Interest
		if row.Month%12 == 0 || row.Month == len(rows) {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n", (row.Month+11)/12,
				service.FormatCurrency(principal), service.FormatCurrency(interest),
				service.FormatCurrency(row.Balance))
			principal, interest = 0, 0
		}
	}
	return tw.Flush()
}
