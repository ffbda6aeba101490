package mortgage

import (
	"github.com/truenorth-fi/mortgage-affordability/pkg/constants"
	"github.com/truenorth-fi/mortgage-affordability/pkg/mathutil"
)

// Qualification holds the resolved down payment and insurance figures.
type Qualification struct {
	ActualDownPayment        float64
	ActualDownPaymentPercent float64
	MortgageInsurance        float64
	TotalMortgagePrincipal   float64
}

// insurancePremiumBrackets maps loan-to-value floors to default insurance
// premium rates. Evaluated highest floor first; a loan-to-value of exactly 90
// falls in the 3.1% bracket.
var insurancePremiumBrackets = []struct {
	LoanToValueAtLeast float64
	Rate               float64
}{
	{95, 0.040},
	{90, 0.031},
	{85, 0.028},
	{80, 0.024},
}

// MinimumDownPayment returns the legal minimum down payment for a purchase
// price. Foreign buyers require 35% flat; otherwise 5% applies up to $500,000,
// 10% on the portion between $500,000 and $1,000,000, and 20% of the full
// price at or above $1,000,000.
func MinimumDownPayment(purchasePrice float64, foreignBuyer bool) float64 {
	if foreignBuyer {
		return mathutil.ApplyPercentage(purchasePrice, constants.ForeignBuyerMinimumDownPercent)
	}

	switch {
	case purchasePrice <= constants.FirstDownPaymentTier:
		return purchasePrice * 0.05
	case purchasePrice < constants.SecondDownPaymentTier:
		return constants.FirstDownPaymentTier*0.05 + (purchasePrice-constants.FirstDownPaymentTier)*0.10
	default:
		return purchasePrice * 0.20
	}
}

// InsurancePremium returns the mortgage default insurance premium on the base
// loan. Insurance applies only below a 20% down payment.
func InsurancePremium(purchasePrice, downPayment float64) float64 {
	downPercent := mathutil.CalculatePercentage(downPayment, purchasePrice)
	if downPercent >= constants.InsuranceCutoffPercent {
		return 0
	}

	loanToValue := constants.PercentageMultiplier - downPercent
	baseLoan := purchasePrice - downPayment
	for _, bracket := range insurancePremiumBrackets {
		if loanToValue >= bracket.LoanToValueAtLeast {
			return baseLoan * bracket.Rate
		}
	}
	return 0
}

// Qualify resolves the supplied down payment against the legal minimum and
// computes insurance and total principal. Under-funded down payments are
// raised to the minimum rather than rejected.
func Qualify(purchasePrice, downPayment float64, mode DownPaymentMode, foreignBuyer bool) Qualification {
	supplied := downPayment
	if mode == DownPaymentPercent {
		supplied = mathutil.ApplyPercentage(purchasePrice, downPayment)
	}

	actual := mathutil.Max(supplied, MinimumDownPayment(purchasePrice, foreignBuyer))
	insurance := InsurancePremium(purchasePrice, actual)

	return Qualification{
		ActualDownPayment:        actual,
		ActualDownPaymentPercent: mathutil.CalculatePercentage(actual, purchasePrice),
		MortgageInsurance:        insurance,
		TotalMortgagePrincipal:   (purchasePrice - actual) + insurance,
	}
}
