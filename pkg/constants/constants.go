// Package constants provides shared constants for the mortgage affordability engine.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Down payment and insurance thresholds
const (
	// InsuranceCutoffPercent is the down payment percentage at or above which
	// mortgage default insurance no longer applies
	InsuranceCutoffPercent = 20.0

	// ForeignBuyerMinimumDownPercent is the minimum down payment for
	// non-resident buyers
	ForeignBuyerMinimumDownPercent = 35.0

	// FirstDownPaymentTier is the price below which the 5% minimum applies
	FirstDownPaymentTier = 500000.0

	// SecondDownPaymentTier is the price at or above which a flat 20%
	// minimum applies
	SecondDownPaymentTier = 1000000.0
)

// Amortization and term bounds
const (
	// MinAmortizationYears is the shortest supported amortization period
	MinAmortizationYears = 5

	// MaxAmortizationYears is the longest supported amortization period
	MaxAmortizationYears = 30

	// MinTermYears is the shortest supported mortgage term
	MinTermYears = 1

	// MaxTermYears is the longest supported mortgage term
	MaxTermYears = 10
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)
