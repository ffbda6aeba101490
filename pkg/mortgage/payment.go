package mortgage

import (
	"math"

	"github.com/truenorth-fi/mortgage-affordability/pkg/constants"
)

// CalculatePeriodicPayment calculates the scheduled payment for a loan using
// the standard amortization formula at the requested frequency. Accelerated
// frequencies derive from the monthly payment instead: accelerated bi-weekly
// pays half the monthly payment every two weeks and accelerated weekly pays a
// quarter of it every week, which yields one extra month's worth of principal
// per year versus the non-accelerated equivalents.
func CalculatePeriodicPayment(principal, annualInterestRate float64, amortizationYears int, frequency PaymentFrequency) float64 {
	switch frequency {
	case FrequencyAcceleratedBiWeekly:
		return annuityPayment(principal, annualInterestRate, amortizationYears, constants.MonthsPerYear) / 2
	case FrequencyAcceleratedWeekly:
		return annuityPayment(principal, annualInterestRate, amortizationYears, constants.MonthsPerYear) / 4
	default:
		return annuityPayment(principal, annualInterestRate, amortizationYears, frequency.PaymentsPerYear())
	}
}

// annuityPayment computes the level payment over amortizationYears at
// paymentsPerYear periods per year.
func annuityPayment(principal, annualInterestRate float64, amortizationYears, paymentsPerYear int) float64 {
	periods := amortizationYears * paymentsPerYear
	if periods <= 0 {
		return 0
	}
	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal across the periods
		return principal / float64(periods)
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * float64(paymentsPerYear))
	power := math.Pow(1.00+periodicInterestRate, float64(periods))
	discountFactor := (power - 1.00) / power
	return principal * periodicInterestRate / discountFactor
}

// CalculateInterestPayment calculates the interest portion of one payment.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64, paymentsPerYear int) float64 {
	if paymentsPerYear <= 0 {
		return 0
	}
	return remainingPrincipal * annualInterestRate / (constants.PercentageMultiplier * float64(paymentsPerYear))
}

// MonthlyEquivalent converts a periodic payment to its monthly equivalent for
// expense aggregation.
func MonthlyEquivalent(payment float64, frequency PaymentFrequency) float64 {
	if frequency.PaymentsPerYear() == constants.MonthsPerYear {
		return payment
	}
	return payment * float64(frequency.PaymentsPerYear()) / constants.MonthsPerYear
}
