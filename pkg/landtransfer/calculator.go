package landtransfer

import "github.com/truenorth-fi/mortgage-affordability/pkg/mathutil"

// Breakdown holds the jurisdictional tax components of a purchase.
type Breakdown struct {
	ProvincialTax   float64 `json:"provincialTax" yaml:"provincialTax"`
	MunicipalTax    float64 `json:"municipalTax" yaml:"municipalTax"`
	FirstTimeRebate float64 `json:"firstTimeRebate" yaml:"firstTimeRebate"`
	ForeignBuyerTax float64 `json:"foreignBuyerTax" yaml:"foreignBuyerTax"`
}

// Total returns the net jurisdictional tax: land transfer components less the
// first-time-buyer rebate, plus foreign-buyer tax.
func (b Breakdown) Total() float64 {
	return b.ProvincialTax + b.MunicipalTax - b.FirstTimeRebate + b.ForeignBuyerTax
}

// Calculator evaluates a Table against purchase parameters. The zero value is
// unusable; construct with NewCalculator.
type Calculator struct {
	table Table
}

// NewCalculator returns a Calculator over the given rule table.
func NewCalculator(table Table) Calculator {
	return Calculator{table: table}
}

// Table returns the rule table the calculator was built with.
func (c Calculator) Table() Table {
	return c.table
}

// Calculate produces the full jurisdictional breakdown for a purchase.
// Unrecognized provinces fall back to the default flat rate; unrecognized
// municipalities contribute no municipal tax.
func (c Calculator) Calculate(price float64, province Province, municipality string, firstTimeBuyer, foreignBuyer bool) Breakdown {
	provincial, provincialRebate := c.provincialTax(price, province, firstTimeBuyer)
	municipal, municipalRebate := c.municipalTax(price, province, municipality, firstTimeBuyer)

	var breakdown Breakdown
	breakdown.ProvincialTax = provincial
	breakdown.MunicipalTax = municipal
	breakdown.FirstTimeRebate = provincialRebate + municipalRebate
	if foreignBuyer {
		if rule, ok := c.table.Provinces[province]; ok {
			breakdown.ForeignBuyerTax = price * rule.ForeignBuyerRate
		}
	}
	return breakdown
}

// InsuranceSalesTax returns the provincial sales tax owed on a mortgage
// default insurance premium. Provinces without a configured rate charge none.
func (c Calculator) InsuranceSalesTax(province Province, premium float64) float64 {
	rule, ok := c.table.Provinces[province]
	if !ok || premium <= 0 {
		return 0
	}
	return premium * rule.InsuranceSalesTaxRate
}

func (c Calculator) provincialTax(price float64, province Province, firstTimeBuyer bool) (tax, rebate float64) {
	rule, ok := c.table.Provinces[province]
	if !ok {
		return price * c.table.DefaultRate, 0
	}

	if len(rule.Brackets) > 0 {
		tax = marginalTax(rule.Brackets, price)
	} else {
		tax = price * rule.FlatRate
	}

	if firstTimeBuyer {
		rebate = firstTimeRebate(tax, price, rule.FirstTimeRebateCap,
			rule.FirstTimeExemptionLimit, rule.FirstTimePhaseOutLimit)
	}
	return tax, rebate
}

func (c Calculator) municipalTax(price float64, province Province, municipality string, firstTimeBuyer bool) (tax, rebate float64) {
	rule, ok := c.table.Municipalities[municipality]
	if !ok || rule.Province != province {
		return 0, 0
	}

	if len(rule.Brackets) > 0 {
		tax = marginalTax(rule.Brackets, price)
	} else {
		tax = price * rule.FlatRate
	}

	if firstTimeBuyer {
		rebate = firstTimeRebate(tax, price, rule.FirstTimeRebateCap, 0, 0)
	}
	return tax, rebate
}

// marginalTax applies each bracket's rate to the slice of price that falls
// within the bracket.
func marginalTax(brackets []Bracket, price float64) float64 {
	tax := 0.0
	lower := 0.0
	for _, bracket := range brackets {
		if price <= lower {
			break
		}
		portion := mathutil.Min(price, bracket.UpTo) - lower
		tax += portion * bracket.Rate
		lower = bracket.UpTo
	}
	return tax
}

// firstTimeRebate resolves the rebate for a first-time buyer under either a
// capped-rebate or exemption-with-phase-out rule. The rebate never exceeds the
// tax owed.
func firstTimeRebate(tax, price, cap, exemptionLimit, phaseOutLimit float64) float64 {
	if cap > 0 {
		return mathutil.Min(cap, tax)
	}
	if exemptionLimit > 0 {
		if price <= exemptionLimit {
			return tax
		}
		if price < phaseOutLimit {
			return tax * (phaseOutLimit - price) / (phaseOutLimit - exemptionLimit)
		}
	}
	return 0
}
