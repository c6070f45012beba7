// Package format turns raw numbers and dates from the backend into display strings.
// Every function is pure. Nullable inputs are pointers: nil renders as Placeholder
// and is never treated as zero.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultPercentageDecimals is the precision used by FormatPercentage
const DefaultPercentageDecimals = 1

// maxGroupedFractionDigits matches the en-US locale default for plain numbers
const maxGroupedFractionDigits = 3

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency formats a value as dollars scaled to T/B/M/K.
// Examples: 1500000000 -> "$1.50B", 250000000 -> "$250.0M", -5000 -> "-$5.0K"
func FormatCurrency(value *float64) string {
	if value == nil {
		return Placeholder
	}

	absValue := math.Abs(*value)
	sign := ""
	if *value < 0 {
		sign = "-"
	}

	switch {
	case absValue >= Trillions:
		return sign + "$" + toFixed(absValue/Trillions, 2) + "T"
	case absValue >= Billions:
		return sign + "$" + toFixed(absValue/Billions, 2) + "B"
	case absValue >= Millions:
		return sign + "$" + toFixed(absValue/Millions, 1) + "M"
	case absValue >= Thousands:
		return sign + "$" + toFixed(absValue/Thousands, 1) + "K"
	default:
		return sign + "$" + toFixed(absValue, 0)
	}
}

// FormatNumber formats a value with en-US thousands separators.
// Example: 1500000 -> "1,500,000"
func FormatNumber(value *float64) string {
	if value == nil {
		return Placeholder
	}
	v := *value
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	fixed := toFixed(v, maxGroupedFractionDigits)
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	fracPart = strings.TrimRight(fracPart, "0")

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		// Beyond int64; fall back to ungrouped digits
		return sign + strings.TrimSuffix(strings.TrimRight(fixed, "0"), ".")
	}

	out := usPrinter.Sprintf("%d", whole)
	if fracPart != "" {
		out += "." + fracPart
	}
	if out == "0" {
		sign = ""
	}
	return sign + out
}

// FormatPercentage formats a value as a percentage with one decimal place.
// Example: 0.125 -> "12.5%", 25 -> "25.0%"
func FormatPercentage(value *float64) string {
	return FormatPercentageWithDecimals(value, DefaultPercentageDecimals)
}

// FormatPercentageWithDecimals formats a value as a percentage.
// Values strictly between -1 and 1 are treated as ratios and multiplied by 100;
// anything else is assumed to already be in percent. A true 0.5% passed as 0.005
// and a 50% ratio passed as 0.5 both take the ratio branch, so callers must agree
// on units up front.
func FormatPercentageWithDecimals(value *float64, decimals int) string {
	if value == nil {
		return Placeholder
	}
	if decimals < 0 {
		decimals = 0
	}

	percentage := *value
	if percentage < 1 && percentage > -1 {
		percentage *= 100
	}
	return toFixed(percentage, decimals) + "%"
}

// CalculateYoYChange returns the year-over-year change of current against previous in percent.
// Example: current=100, previous=80 -> 25
// It returns nil when either value is missing or previous is zero.
func CalculateYoYChange(current, previous *float64) *float64 {
	if current == nil || previous == nil || *previous == 0 {
		return nil
	}
	change := (*current - *previous) / math.Abs(*previous) * 100
	return &change
}

// FromDecimal converts a nullable decimal field into a nullable float for the formatters
func FromDecimal(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}

// Float returns a pointer to v
func Float(v float64) *float64 {
	return &v
}

// toFixed rounds half away from zero on the exact binary value of v, so 1.25
// gives "1.3" while 1.005 (stored just below) gives "1.00"
func toFixed(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	exact := decimal.RequireFromString(strconv.FormatFloat(v, 'f', 1074, 64))
	s := exact.StringFixed(int32(decimals))
	// Avoid "-0", "-0.0" for values that round to zero
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}
