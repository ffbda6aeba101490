package config

import (
	"fmt"

	"github.com/truenorth-fi/mortgage-affordability/pkg/constants"
	"github.com/truenorth-fi/mortgage-affordability/pkg/mortgage"
)

// SanitizeInputs normalizes a raw input record in place so the engine's input
// contract holds: negative currency and percentage fields are floored at zero,
// the down payment percentage is clamped to [0,100], amortization and term
// bounds are enforced, and unknown enum values fall back to their defaults.
// One warning string is returned per correction made. The engine itself never
// performs these corrections.
func SanitizeInputs(in *mortgage.Inputs) []string {
	var warnings []string

	floorAtZero := func(name string, value *float64) {
		if *value < 0 {
			warnings = append(warnings, fmt.Sprintf("%s was negative (%.2f); set to 0", name, *value))
			*value = 0
		}
	}

	floorAtZero("purchasePrice", &in.PurchasePrice)
	floorAtZero("downPayment", &in.DownPayment)
	floorAtZero("interestRate", &in.InterestRate)
	floorAtZero("expenses.propertyTaxesAnnual", &in.Expenses.PropertyTaxesAnnual)
	floorAtZero("expenses.condoFeesMonthly", &in.Expenses.CondoFeesMonthly)
	floorAtZero("expenses.homeInsuranceAnnual", &in.Expenses.HomeInsuranceAnnual)
	floorAtZero("expenses.utilitiesMonthly", &in.Expenses.UtilitiesMonthly)
	floorAtZero("expenses.maintenancePercentAnnual", &in.Expenses.MaintenancePercentAnnual)
	floorAtZero("prepayment.extraPerPayment", &in.Prepayment.ExtraPerPayment)
	floorAtZero("prepayment.paymentIncreasePercent", &in.Prepayment.PaymentIncreasePercent)
	floorAtZero("prepayment.annualLumpSumPercent", &in.Prepayment.AnnualLumpSumPercent)
	floorAtZero("closingCosts.legalFees", &in.ClosingCosts.LegalFees)
	floorAtZero("closingCosts.titleInsurance", &in.ClosingCosts.TitleInsurance)
	floorAtZero("closingCosts.homeInspection", &in.ClosingCosts.HomeInspection)
	floorAtZero("closingCosts.appraisalFee", &in.ClosingCosts.AppraisalFee)
	floorAtZero("closingCosts.brokerageFee", &in.ClosingCosts.BrokerageFee)
	floorAtZero("closingCosts.lenderFee", &in.ClosingCosts.LenderFee)
	floorAtZero("closingCosts.movingCosts", &in.ClosingCosts.MovingCosts)

	switch in.DownPaymentMode {
	case mortgage.DownPaymentAmount, mortgage.DownPaymentPercent:
	case "":
		in.DownPaymentMode = mortgage.DownPaymentAmount
	default:
		warnings = append(warnings, fmt.Sprintf("unknown downPaymentMode '%s'; treating as amount", in.DownPaymentMode))
		in.DownPaymentMode = mortgage.DownPaymentAmount
	}

	if in.DownPaymentMode == mortgage.DownPaymentPercent && in.DownPayment > constants.PercentageMultiplier {
		warnings = append(warnings, fmt.Sprintf("downPayment percent %.2f exceeds 100; clamped to 100", in.DownPayment))
		in.DownPayment = constants.PercentageMultiplier
	}

	switch in.PaymentFrequency {
	case mortgage.FrequencyMonthly, mortgage.FrequencyBiWeekly, mortgage.FrequencyAcceleratedBiWeekly,
		mortgage.FrequencyWeekly, mortgage.FrequencyAcceleratedWeekly:
	case "":
		in.PaymentFrequency = mortgage.FrequencyMonthly
	default:
		warnings = append(warnings, fmt.Sprintf("unknown paymentFrequency '%s'; treating as monthly", in.PaymentFrequency))
		in.PaymentFrequency = mortgage.FrequencyMonthly
	}

	if in.AmortizationYears < constants.MinAmortizationYears {
		warnings = append(warnings, fmt.Sprintf("amortizationYears %d below minimum; set to %d",
			in.AmortizationYears, constants.MinAmortizationYears))
		in.AmortizationYears = constants.MinAmortizationYears
	} else if in.AmortizationYears > constants.MaxAmortizationYears {
		warnings = append(warnings, fmt.Sprintf("amortizationYears %d above maximum; set to %d",
			in.AmortizationYears, constants.MaxAmortizationYears))
		in.AmortizationYears = constants.MaxAmortizationYears
	}

	if in.TermYears < constants.MinTermYears {
		warnings = append(warnings, fmt.Sprintf("termYears %d below minimum; set to %d",
			in.TermYears, constants.MinTermYears))
		in.TermYears = constants.MinTermYears
	} else if in.TermYears > constants.MaxTermYears {
		warnings = append(warnings, fmt.Sprintf("termYears %d above maximum; set to %d",
			in.TermYears, constants.MaxTermYears))
		in.TermYears = constants.MaxTermYears
	}
	if in.TermYears > in.AmortizationYears {
		warnings = append(warnings, fmt.Sprintf("termYears %d exceeds amortizationYears %d; set to %d",
			in.TermYears, in.AmortizationYears, in.AmortizationYears))
		in.TermYears = in.AmortizationYears
	}

	return warnings
}
