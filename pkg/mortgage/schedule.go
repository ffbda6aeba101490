package mortgage

import (
	"fmt"
	"math"

	"github.com/truenorth-fi/mortgage-affordability/pkg/mathutil"
	"go.uber.org/zap"
)

// ScheduleGenerator simulates payment-by-payment principal and interest
// allocation over the life of a loan.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// Generate simulates the amortization of a loan and aggregates it into yearly
// rows. The simulation runs at most amortizationYears years and stops early
// once the balance reaches zero. The term snapshot is taken at the final
// payment of the term year; if prepayments retire the loan before then, the
// end-of-term balance is zero and term interest equals total interest.
func (g *ScheduleGenerator) Generate(principal, annualInterestRate float64, amortizationYears int,
	paymentAmount float64, paymentsPerYear, termYears int, prepay Prepayment) Schedule {

	var schedule Schedule
	if paymentsPerYear <= 0 || amortizationYears <= 0 {
		return schedule
	}

	balance := principal
	totalPayments := 0
	termSnapshotTaken := false

	for year := 1; year <= amortizationYears && balance > 0; year++ {
		row := YearRow{Year: year, StartingBalance: balance}
		adjustedPayment := paymentAmount * paymentIncreaseFactor(prepay, year)

		for payment := 1; payment <= paymentsPerYear; payment++ {
			interest := CalculateInterestPayment(balance, annualInterestRate, paymentsPerYear)
			basePrincipal := mathutil.Min(adjustedPayment-interest, balance)

			extra := 0.0
			if prepay.ExtraPerPayment > 0 {
				// Cap the extra payment to prevent overpaying the balance.
				extra = mathutil.Max(0, mathutil.Min(prepay.ExtraPerPayment, balance-basePrincipal))
			}

			balance -= basePrincipal + extra
			row.PrincipalPaid += basePrincipal
			row.InterestPaid += interest
			row.ExtraPrincipalPaid += extra
			schedule.TotalInterestPaid += interest
			totalPayments++

			if !termSnapshotTaken && year == termYears && payment == paymentsPerYear {
				schedule.BalanceAtEndOfTerm = mathutil.Max(balance, 0)
				schedule.InterestPaidOverTerm = schedule.TotalInterestPaid
				termSnapshotTaken = true
			}

			if mathutil.IsZero(balance) {
				// We will get machine error otherwise so just set to 0.
				balance = 0
			}
			if balance <= 0 {
				break
			}
		}

		if prepay.AnnualLumpSumPercent > 0 && balance > 0 {
			lumpSum := mathutil.Min(mathutil.ApplyPercentage(principal, prepay.AnnualLumpSumPercent), balance)
			g.logger.Debug(fmt.Sprintf("year %d: applying lump sum prepayment %.2f", year, lumpSum),
				zap.String("op", "mortgage.Generate"),
			)
			balance -= lumpSum
			row.ExtraPrincipalPaid += lumpSum
		}

		row.EndingBalance = mathutil.Max(balance, 0)
		schedule.Years = append(schedule.Years, row)
	}

	if !termSnapshotTaken {
		// Loan retired before the end of the term.
		schedule.BalanceAtEndOfTerm = mathutil.Max(balance, 0)
		schedule.InterestPaidOverTerm = schedule.TotalInterestPaid
	}

	schedule.EffectiveAmortizationYears = float64(totalPayments) / float64(paymentsPerYear)
	return schedule
}

// paymentIncreaseFactor returns the payment uplift multiplier for a year.
// Flat mode applies the same uplift in every year; compounding mode grows it
// year over year. Year 1 is identical under both strategies.
func paymentIncreaseFactor(prepay Prepayment, year int) float64 {
	if prepay.PaymentIncreasePercent <= 0 {
		return 1
	}
	base := 1 + prepay.PaymentIncreasePercent/100
	if prepay.PaymentIncreaseCompounds {
		return math.Pow(base, float64(year))
	}
	return base
}
