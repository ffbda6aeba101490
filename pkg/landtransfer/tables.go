// Package landtransfer computes jurisdiction-specific one-time purchase
// taxes: provincial and municipal land transfer tax, first-time-buyer
// rebates, foreign-buyer tax, and sales tax on mortgage default insurance.
package landtransfer

import "math"

// Province is a two-letter Canadian province or territory code.
type Province string

// Supported province and territory codes.
const (
	Alberta              Province = "AB"
	BritishColumbia      Province = "BC"
	Manitoba             Province = "MB"
	NewBrunswick         Province = "NB"
	NewfoundlandLabrador Province = "NL"
	NovaScotia           Province = "NS"
	NorthwestTerritories Province = "NT"
	Nunavut              Province = "NU"
	Ontario              Province = "ON"
	PrinceEdwardIsland   Province = "PE"
	Quebec               Province = "QC"
	Saskatchewan         Province = "SK"
	Yukon                Province = "YT"
)

// Municipality keys with their own land transfer schedules.
const (
	MunicipalityToronto  = "toronto"
	MunicipalityMontreal = "montreal"
	MunicipalityHalifax  = "halifax"
	MunicipalityNone     = "none"
)

// Bracket is one marginal tax bracket: the Rate applies to the portion of the
// price up to UpTo and above the previous bracket's UpTo.
type Bracket struct {
	UpTo float64
	Rate float64
}

// ProvinceRule holds the land transfer tax rules for one province. Exactly one
// of Brackets or FlatRate is set; a rule with neither means no tax is levied.
type ProvinceRule struct {
	Brackets []Bracket
	FlatRate float64

	// FirstTimeRebateCap caps a rebate equal to the tax owed.
	FirstTimeRebateCap float64

	// FirstTimeExemptionLimit grants a full exemption at or below the limit,
	// phasing out linearly until FirstTimePhaseOutLimit.
	FirstTimeExemptionLimit float64
	FirstTimePhaseOutLimit  float64

	// ForeignBuyerRate is applied to the full purchase price for non-resident
	// buyers, in addition to land transfer tax.
	ForeignBuyerRate float64

	// InsuranceSalesTaxRate is the provincial sales tax charged on mortgage
	// default insurance premiums. Paid up front, never added to principal.
	InsuranceSalesTaxRate float64
}

// MunicipalRule holds an additional municipal land transfer schedule. It only
// applies when the purchase is in the named province.
type MunicipalRule struct {
	Province           Province
	Brackets           []Bracket
	FlatRate           float64
	FirstTimeRebateCap float64
}

// Table is the complete, immutable rule set injected into a Calculator.
type Table struct {
	Provinces      map[Province]ProvinceRule
	Municipalities map[string]MunicipalRule

	// DefaultRate is the flat fallback for provinces without an entry.
	DefaultRate float64
}

// DefaultTable returns the canonical rule set. Values reflect the published
// schedules at time of writing; treat as illustrative business rules rather
// than live regulation.
func DefaultTable() Table {
	ontarioBrackets := []Bracket{
		{UpTo: 55000, Rate: 0.005},
		{UpTo: 250000, Rate: 0.01},
		{UpTo: 400000, Rate: 0.015},
		{UpTo: 2000000, Rate: 0.02},
		{UpTo: math.Inf(1), Rate: 0.025},
	}

	return Table{
		Provinces: map[Province]ProvinceRule{
			Ontario: {
				Brackets:              ontarioBrackets,
				FirstTimeRebateCap:    4000,
				ForeignBuyerRate:      0.25,
				InsuranceSalesTaxRate: 0.08,
			},
			BritishColumbia: {
				Brackets: []Bracket{
					{UpTo: 200000, Rate: 0.01},
					{UpTo: 2000000, Rate: 0.02},
					{UpTo: 3000000, Rate: 0.03},
					{UpTo: math.Inf(1), Rate: 0.05},
				},
				FirstTimeExemptionLimit: 500000,
				FirstTimePhaseOutLimit:  525000,
				ForeignBuyerRate:        0.20,
			},
			Manitoba: {
				Brackets: []Bracket{
					{UpTo: 50000, Rate: 0.005},
					{UpTo: 250000, Rate: 0.01},
					{UpTo: math.Inf(1), Rate: 0.015},
				},
				InsuranceSalesTaxRate: 0.07,
			},
			// Alberta levies no land transfer tax, only nominal registry fees.
			Alberta: {},
			NovaScotia: {
				FlatRate: 0.015,
			},
			Quebec: {
				FlatRate:              0.015,
				InsuranceSalesTaxRate: 0.09975,
			},
			Saskatchewan: {
				FlatRate:              0.015,
				InsuranceSalesTaxRate: 0.06,
			},
		},
		Municipalities: map[string]MunicipalRule{
			MunicipalityToronto: {
				Province:           Ontario,
				Brackets:           ontarioBrackets,
				FirstTimeRebateCap: 4475,
			},
			MunicipalityMontreal: {
				Province: Quebec,
				Brackets: []Bracket{
					{UpTo: 55200, Rate: 0.005},
					{UpTo: 276200, Rate: 0.01},
					{UpTo: 552300, Rate: 0.015},
					{UpTo: 1104700, Rate: 0.02},
					{UpTo: math.Inf(1), Rate: 0.025},
				},
			},
			MunicipalityHalifax: {
				Province: NovaScotia,
				FlatRate: 0.015,
			},
		},
		DefaultRate: 0.015,
	}
}
