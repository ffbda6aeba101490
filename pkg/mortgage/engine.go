package mortgage

import (
	"github.com/truenorth-fi/mortgage-affordability/pkg/constants"
	"github.com/truenorth-fi/mortgage-affordability/pkg/landtransfer"
	"go.uber.org/zap"
)

// Engine runs the full calculation chain: qualification, payment derivation,
// baseline and prepayment amortization schedules, and jurisdictional closing
// costs. Engines are safe for concurrent use; each Calculate call is an
// independent pure computation.
type Engine struct {
	logger    *zap.Logger
	taxes     landtransfer.Calculator
	generator *ScheduleGenerator
}

// NewEngine creates an Engine over the given tax rule table.
func NewEngine(logger *zap.Logger, table landtransfer.Table) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		logger:    logger,
		taxes:     landtransfer.NewCalculator(table),
		generator: NewScheduleGenerator(logger),
	}
}

// Taxes returns the jurisdictional calculator the engine was built with.
func (e *Engine) Taxes() landtransfer.Calculator {
	return e.taxes
}

// Calculate produces the complete affordability result for one input record.
// It never fails: out-of-range values degrade per the input contract rather
// than erroring.
func (e *Engine) Calculate(in Inputs) Result {
	qualification := Qualify(in.PurchasePrice, in.DownPayment, in.DownPaymentMode, in.Buyer.ForeignBuyer)

	paymentsPerYear := in.PaymentFrequency.PaymentsPerYear()
	payment := CalculatePeriodicPayment(qualification.TotalMortgagePrincipal, in.InterestRate,
		in.AmortizationYears, in.PaymentFrequency)
	firstInterest := CalculateInterestPayment(qualification.TotalMortgagePrincipal, in.InterestRate, paymentsPerYear)
	monthlyEquivalent := MonthlyEquivalent(payment, in.PaymentFrequency)

	baseline := e.generator.Generate(qualification.TotalMortgagePrincipal, in.InterestRate,
		in.AmortizationYears, payment, paymentsPerYear, in.TermYears, Prepayment{})
	withPrepayments := baseline
	if !in.Prepayment.Zero() {
		withPrepayments = e.generator.Generate(qualification.TotalMortgagePrincipal, in.InterestRate,
			in.AmortizationYears, payment, paymentsPerYear, in.TermYears, in.Prepayment)
	}

	taxes := e.taxes.Calculate(in.PurchasePrice, in.Jurisdiction.Province, in.Jurisdiction.Municipality,
		in.Buyer.FirstTimeBuyer, in.Buyer.ForeignBuyer)
	insuranceSalesTax := e.taxes.InsuranceSalesTax(in.Jurisdiction.Province, qualification.MortgageInsurance)
	closingCosts := taxes.Total() + insuranceSalesTax + in.ClosingCosts.Sum()

	result := Result{
		ActualDownPayment:        qualification.ActualDownPayment,
		ActualDownPaymentPercent: qualification.ActualDownPaymentPercent,
		MortgageInsurance:        qualification.MortgageInsurance,
		InsuranceSalesTax:        insuranceSalesTax,
		TotalMortgagePrincipal:   qualification.TotalMortgagePrincipal,

		PaymentAmount:             payment,
		PaymentsPerYear:           paymentsPerYear,
		MonthlyEquivalentPayment:  monthlyEquivalent,
		PrincipalPortionOfPayment: payment - firstInterest,
		InterestPortionOfPayment:  firstInterest,
		TotalMonthlyExpenses:      monthlyEquivalent + monthlyCarryingCosts(in),

		BaselineSchedule:   baseline,
		PrepaymentSchedule: withPrepayments,

		InterestPaidOverTerm:       withPrepayments.InterestPaidOverTerm,
		BalanceAtEndOfTerm:         withPrepayments.BalanceAtEndOfTerm,
		EffectiveAmortizationYears: withPrepayments.EffectiveAmortizationYears,

		Taxes:        taxes,
		ClosingCosts: closingCosts,

		InterestSavingsOverTerm:         baseline.InterestPaidOverTerm - withPrepayments.InterestPaidOverTerm,
		InterestSavingsOverAmortization: baseline.TotalInterestPaid - withPrepayments.TotalInterestPaid,
		YearsShavedOffAmortization:      baseline.EffectiveAmortizationYears - withPrepayments.EffectiveAmortizationYears,
	}

	e.logger.Debug("calculation complete",
		zap.String("op", "mortgage.Calculate"),
		zap.Float64("principal", result.TotalMortgagePrincipal),
		zap.Float64("payment", result.PaymentAmount),
		zap.Float64("closingCosts", result.ClosingCosts),
	)

	return result
}

// monthlyCarryingCosts converts the recurring ownership expenses to a monthly
// total, excluding the mortgage payment itself.
func monthlyCarryingCosts(in Inputs) float64 {
	maintenanceAnnual := in.PurchasePrice * in.Expenses.MaintenancePercentAnnual / constants.PercentageMultiplier
	return in.Expenses.PropertyTaxesAnnual/constants.MonthsPerYear +
		in.Expenses.CondoFeesMonthly +
		in.Expenses.HomeInsuranceAnnual/constants.MonthsPerYear +
		in.Expenses.UtilitiesMonthly +
		maintenanceAnnual/constants.MonthsPerYear
}
