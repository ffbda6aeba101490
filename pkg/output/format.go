// Package output provides utilities for formatting and displaying calculation
// results.
package output

import (
	"fmt"

	"github.com/truenorth-fi/mortgage-affordability/pkg/constants"
	"github.com/truenorth-fi/mortgage-affordability/pkg/format"
	"github.com/truenorth-fi/mortgage-affordability/pkg/mortgage"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ScenarioResult pairs a named scenario with its calculation output.
type ScenarioResult struct {
	Name   string
	Inputs mortgage.Inputs
	Result mortgage.Result
}

// ValidateFormat checks if the output format is one of the supported formats.
func ValidateFormat(outputFormat string) error {
	if outputFormat != constants.OutputFormatPretty && outputFormat != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, outputFormat)
	}
	return nil
}

// PrettyFormat outputs a human-readable rather than machine-readable summary
// and yearly schedule per scenario.
func PrettyFormat(results []ScenarioResult) {
	p := message.NewPrinter(language.English)
	for i, scenario := range results {
		res := scenario.Result
		fmt.Printf("--- Results for scenario %s ---\n", scenario.Name)
		_, _ = p.Printf("Down payment:            %s (%.2f%%)\n", format.Currency(res.ActualDownPayment), res.ActualDownPaymentPercent)
		_, _ = p.Printf("Mortgage insurance:      %s\n", format.Currency(res.MortgageInsurance))
		_, _ = p.Printf("Total principal:         %s\n", format.Currency(res.TotalMortgagePrincipal))
		_, _ = p.Printf("Payment (%s): %s\n", scenario.Inputs.PaymentFrequency, format.Currency(res.PaymentAmount))
		_, _ = p.Printf("Monthly carrying cost:   %s\n", format.Currency(res.TotalMonthlyExpenses))
		_, _ = p.Printf("Closing costs:           %s\n", format.Currency(res.ClosingCosts))
		_, _ = p.Printf("Interest over term:      %s\n", format.Currency(res.InterestPaidOverTerm))
		_, _ = p.Printf("Balance at end of term:  %s\n", format.Currency(res.BalanceAtEndOfTerm))
		_, _ = p.Printf("Effective amortization:  %.2f years\n", res.EffectiveAmortizationYears)
		if res.InterestSavingsOverAmortization > 0 {
			_, _ = p.Printf("Prepayment savings:      %s over term, %s over amortization, %.2f years shaved\n",
				format.Currency(res.InterestSavingsOverTerm),
				format.Currency(res.InterestSavingsOverAmortization),
				res.YearsShavedOffAmortization)
		}

		fmt.Printf("Year | Starting Balance | Principal    | Interest     | Extra        | Ending Balance\n")
		fmt.Printf("____ | ________________ | _________    | ________     | _____        | ______________\n")
		for _, row := range res.PrepaymentSchedule.Years {
			_, _ = p.Printf("%4d | %16s | %12s | %12s | %12s | %14s\n",
				row.Year,
				format.NumericCurrency(row.StartingBalance),
				format.NumericCurrency(row.PrincipalPaid),
				format.NumericCurrency(row.InterestPaid),
				format.NumericCurrency(row.ExtraPrincipalPaid),
				format.NumericCurrency(row.EndingBalance))
		}
		if i < len(results)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format, one row per
// scenario-year.
func CsvFormat(results []ScenarioResult) {
	fmt.Printf(`"scenario","year","starting balance","principal paid","interest paid","extra principal","ending balance","payment","closing costs","interest over term"`)
	fmt.Printf("\n")
	for _, scenario := range results {
		res := scenario.Result
		for _, row := range res.PrepaymentSchedule.Years {
			fmt.Printf(`"%s","%d","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
				scenario.Name, row.Year, row.StartingBalance, row.PrincipalPaid, row.InterestPaid,
				row.ExtraPrincipalPaid, row.EndingBalance, res.PaymentAmount, res.ClosingCosts,
				res.InterestPaidOverTerm)
			fmt.Printf("\n")
		}
	}
}
