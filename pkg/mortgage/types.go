// Package mortgage implements the Canadian residential mortgage affordability
// engine: down payment qualification and default insurance, periodic payment
// derivation, amortization schedule generation with prepayment strategies, and
// closing cost aggregation. All calculations are deterministic pure functions
// of their inputs.
package mortgage

import (
	"github.com/truenorth-fi/mortgage-affordability/pkg/landtransfer"
)

// DownPaymentMode selects how the supplied down payment value is interpreted.
type DownPaymentMode string

const (
	// DownPaymentAmount treats the down payment as a dollar amount.
	DownPaymentAmount DownPaymentMode = "amount"

	// DownPaymentPercent treats the down payment as a percentage of the
	// purchase price.
	DownPaymentPercent DownPaymentMode = "percent"
)

// PaymentFrequency selects the payment schedule. Accelerated variants share
// the payments-per-year of their base frequency but derive the payment amount
// from the monthly payment instead of the annuity formula.
type PaymentFrequency string

const (
	FrequencyMonthly             PaymentFrequency = "monthly"
	FrequencyBiWeekly            PaymentFrequency = "biweekly"
	FrequencyAcceleratedBiWeekly PaymentFrequency = "accelerated-biweekly"
	FrequencyWeekly              PaymentFrequency = "weekly"
	FrequencyAcceleratedWeekly   PaymentFrequency = "accelerated-weekly"
)

// PaymentsPerYear returns the number of payments made per year at this
// frequency. Unknown frequencies behave as monthly.
func (f PaymentFrequency) PaymentsPerYear() int {
	switch f {
	case FrequencyBiWeekly, FrequencyAcceleratedBiWeekly:
		return 26
	case FrequencyWeekly, FrequencyAcceleratedWeekly:
		return 52
	default:
		return 12
	}
}

// Accelerated reports whether the frequency uses the accelerated payment
// derivation.
func (f PaymentFrequency) Accelerated() bool {
	return f == FrequencyAcceleratedBiWeekly || f == FrequencyAcceleratedWeekly
}

// Jurisdiction locates the purchase for tax purposes.
type Jurisdiction struct {
	Province     landtransfer.Province `json:"province" yaml:"province"`
	Municipality string                `json:"municipality" yaml:"municipality"`
}

// BuyerFlags carries buyer attributes that alter qualification and taxes.
type BuyerFlags struct {
	FirstTimeBuyer bool `json:"firstTimeBuyer" yaml:"firstTimeBuyer"`
	NewlyBuiltHome bool `json:"newlyBuiltHome" yaml:"newlyBuiltHome"`
	ForeignBuyer   bool `json:"foreignBuyer" yaml:"foreignBuyer"`
}

// RecurringExpenses holds ongoing ownership costs used for the monthly
// expense aggregate.
type RecurringExpenses struct {
	PropertyTaxesAnnual      float64 `json:"propertyTaxesAnnual" yaml:"propertyTaxesAnnual"`
	CondoFeesMonthly         float64 `json:"condoFeesMonthly" yaml:"condoFeesMonthly"`
	HomeInsuranceAnnual      float64 `json:"homeInsuranceAnnual" yaml:"homeInsuranceAnnual"`
	UtilitiesMonthly         float64 `json:"utilitiesMonthly" yaml:"utilitiesMonthly"`
	MaintenancePercentAnnual float64 `json:"maintenancePercentAnnual" yaml:"maintenancePercentAnnual"`
}

// Prepayment holds the optional prepayment strategy parameters.
type Prepayment struct {
	// ExtraPerPayment is an additional principal amount added to every
	// scheduled payment.
	ExtraPerPayment float64 `json:"extraPerPayment" yaml:"extraPerPayment"`

	// PaymentIncreasePercent uplifts the scheduled payment amount.
	PaymentIncreasePercent float64 `json:"paymentIncreasePercent" yaml:"paymentIncreasePercent"`

	// PaymentIncreaseCompounds selects the uplift strategy: false applies the
	// same flat uplift every year, true compounds it year over year.
	PaymentIncreaseCompounds bool `json:"paymentIncreaseCompounds" yaml:"paymentIncreaseCompounds"`

	// AnnualLumpSumPercent is an end-of-year lump sum expressed as a
	// percentage of the original principal.
	AnnualLumpSumPercent float64 `json:"annualLumpSumPercent" yaml:"annualLumpSumPercent"`
}

// Zero reports whether no prepayment strategy is in effect.
func (p Prepayment) Zero() bool {
	return p.ExtraPerPayment == 0 && p.PaymentIncreasePercent == 0 && p.AnnualLumpSumPercent == 0
}

// ClosingCostInputs holds caller-supplied one-time purchase costs.
type ClosingCostInputs struct {
	LegalFees      float64 `json:"legalFees" yaml:"legalFees"`
	TitleInsurance float64 `json:"titleInsurance" yaml:"titleInsurance"`
	HomeInspection float64 `json:"homeInspection" yaml:"homeInspection"`
	AppraisalFee   float64 `json:"appraisalFee" yaml:"appraisalFee"`
	BrokerageFee   float64 `json:"brokerageFee" yaml:"brokerageFee"`
	LenderFee      float64 `json:"lenderFee" yaml:"lenderFee"`
	MovingCosts    float64 `json:"movingCosts" yaml:"movingCosts"`
}

// Sum returns the total of all caller-supplied closing cost items.
func (c ClosingCostInputs) Sum() float64 {
	return c.LegalFees + c.TitleInsurance + c.HomeInspection + c.AppraisalFee +
		c.BrokerageFee + c.LenderFee + c.MovingCosts
}

// Inputs is the complete parameter set for one calculation. Callers are
// responsible for sanitizing raw user entry into this record; the engine
// itself never rejects input.
type Inputs struct {
	PurchasePrice   float64         `json:"purchasePrice" yaml:"purchasePrice"`
	DownPayment     float64         `json:"downPayment" yaml:"downPayment"`
	DownPaymentMode DownPaymentMode `json:"downPaymentMode" yaml:"downPaymentMode"`

	Jurisdiction Jurisdiction `json:"jurisdiction" yaml:"jurisdiction"`

	InterestRate      float64          `json:"interestRate" yaml:"interestRate"` // annual, percent
	AmortizationYears int              `json:"amortizationYears" yaml:"amortizationYears"`
	TermYears         int              `json:"termYears" yaml:"termYears"`
	PaymentFrequency  PaymentFrequency `json:"paymentFrequency" yaml:"paymentFrequency"`

	Buyer        BuyerFlags        `json:"buyer" yaml:"buyer"`
	Expenses     RecurringExpenses `json:"expenses" yaml:"expenses"`
	Prepayment   Prepayment        `json:"prepayment" yaml:"prepayment"`
	ClosingCosts ClosingCostInputs `json:"closingCosts" yaml:"closingCosts"`
}

// YearRow aggregates one calendar year of the amortization schedule.
type YearRow struct {
	Year               int     `json:"year" yaml:"year"`
	StartingBalance    float64 `json:"startingBalance" yaml:"startingBalance"`
	PrincipalPaid      float64 `json:"principalPaid" yaml:"principalPaid"`
	InterestPaid       float64 `json:"interestPaid" yaml:"interestPaid"`
	ExtraPrincipalPaid float64 `json:"extraPrincipalPaid" yaml:"extraPrincipalPaid"`
	EndingBalance      float64 `json:"endingBalance" yaml:"endingBalance"`
}

// Schedule is the output of one amortization simulation.
type Schedule struct {
	Years                      []YearRow `json:"years" yaml:"years"`
	TotalInterestPaid          float64   `json:"totalInterestPaid" yaml:"totalInterestPaid"`
	InterestPaidOverTerm       float64   `json:"interestPaidOverTerm" yaml:"interestPaidOverTerm"`
	BalanceAtEndOfTerm         float64   `json:"balanceAtEndOfTerm" yaml:"balanceAtEndOfTerm"`
	EffectiveAmortizationYears float64   `json:"effectiveAmortizationYears" yaml:"effectiveAmortizationYears"`
}

// Result is the full output of one calculation, recomputed wholesale per
// invocation.
type Result struct {
	ActualDownPayment        float64 `json:"actualDownPayment" yaml:"actualDownPayment"`
	ActualDownPaymentPercent float64 `json:"actualDownPaymentPercent" yaml:"actualDownPaymentPercent"`
	MortgageInsurance        float64 `json:"mortgageInsurance" yaml:"mortgageInsurance"`
	InsuranceSalesTax        float64 `json:"insuranceSalesTax" yaml:"insuranceSalesTax"`
	TotalMortgagePrincipal   float64 `json:"totalMortgagePrincipal" yaml:"totalMortgagePrincipal"`

	PaymentAmount             float64 `json:"paymentAmount" yaml:"paymentAmount"`
	PaymentsPerYear           int     `json:"paymentsPerYear" yaml:"paymentsPerYear"`
	MonthlyEquivalentPayment  float64 `json:"monthlyEquivalentPayment" yaml:"monthlyEquivalentPayment"`
	PrincipalPortionOfPayment float64 `json:"principalPortionOfPayment" yaml:"principalPortionOfPayment"`
	InterestPortionOfPayment  float64 `json:"interestPortionOfPayment" yaml:"interestPortionOfPayment"`
	TotalMonthlyExpenses      float64 `json:"totalMonthlyExpenses" yaml:"totalMonthlyExpenses"`

	BaselineSchedule   Schedule `json:"baselineSchedule" yaml:"baselineSchedule"`
	PrepaymentSchedule Schedule `json:"prepaymentSchedule" yaml:"prepaymentSchedule"`

	InterestPaidOverTerm       float64 `json:"interestPaidOverTerm" yaml:"interestPaidOverTerm"`
	BalanceAtEndOfTerm         float64 `json:"balanceAtEndOfTerm" yaml:"balanceAtEndOfTerm"`
	EffectiveAmortizationYears float64 `json:"effectiveAmortizationYears" yaml:"effectiveAmortizationYears"`

	Taxes        landtransfer.Breakdown `json:"taxes" yaml:"taxes"`
	ClosingCosts float64                `json:"closingCosts" yaml:"closingCosts"`

	InterestSavingsOverTerm         float64 `json:"interestSavingsOverTerm" yaml:"interestSavingsOverTerm"`
	InterestSavingsOverAmortization float64 `json:"interestSavingsOverAmortization" yaml:"interestSavingsOverAmortization"`
	YearsShavedOffAmortization      float64 `json:"yearsShavedOffAmortization" yaml:"yearsShavedOffAmortization"`
}
