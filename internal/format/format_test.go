package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	testCases := []struct {
		name     string
		input    *float64
		expected string
	}{
		{"missing value", nil, "—"},
		{"zero is not missing", Float(0), "$0"},
		{"small value", Float(999), "$999"},
		{"thousands", Float(1_000), "$1.0K"},
		{"negative thousands", Float(-5_000), "-$5.0K"},
		{"millions", Float(250_000_000), "$250.0M"},
		{"billions", Float(1_500_000_000), "$1.50B"},
		{"negative billions", Float(-2_340_000_000), "-$2.34B"},
		{"trillions", Float(3_120_000_000_000), "$3.12T"},
		{"rounds fractional dollars", Float(12.4), "$12"},
		{"tie rounds away from zero", Float(2.5), "$3"},
		{"half a dollar", Float(0.5), "$1"},
		{"thousands tie", Float(1_250), "$1.3K"},
		{"negative thousands tie", Float(-1_250), "-$1.3K"},
		{"near tie below", Float(1.005e6), "$1.0M"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatCurrency(tc.input))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	testCases := []struct {
		name     string
		input    *float64
		expected string
	}{
		{"missing value", nil, "—"},
		{"zero", Float(0), "0"},
		{"no grouping needed", Float(999), "999"},
		{"millions", Float(1_500_000), "1,500,000"},
		{"negative", Float(-1_234_567), "-1,234,567"},
		{"fraction kept", Float(1234.5), "1,234.5"},
		{"fraction rounded to three digits", Float(1234.5678), "1,234.568"},
		{"tie rounds away from zero", Float(0.0625), "0.063"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatNumber(tc.input))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "12.5%", FormatPercentage(Float(0.125)))
	assert.Equal(t, "25.0%", FormatPercentage(Float(25)))
	assert.Equal(t, "12.50%", FormatPercentageWithDecimals(Float(0.125), 2))
	assert.Equal(t, "—", FormatPercentage(nil))
	assert.Equal(t, "-40.0%", FormatPercentage(Float(-0.4)))
	assert.Equal(t, "0.0%", FormatPercentage(Float(0)))
	assert.Equal(t, "13%", FormatPercentageWithDecimals(Float(0.126), 0))

	// Exact ties round away from zero; values stored just below a tie round down
	assert.Equal(t, "12.3%", FormatPercentage(Float(12.25)))
	assert.Equal(t, "-12.3%", FormatPercentage(Float(-12.25)))
	assert.Equal(t, "13%", FormatPercentageWithDecimals(Float(12.5), 0))
	assert.Equal(t, "13%", FormatPercentageWithDecimals(Float(0.125), 0))
	assert.Equal(t, "1.00%", FormatPercentageWithDecimals(Float(1.005), 2))
	assert.Equal(t, "0.0%", FormatPercentage(Float(-0.0001)))

	// Boundaries are not ratios: 1 and -1 are already percentages
	assert.Equal(t, "1.0%", FormatPercentage(Float(1)))
	assert.Equal(t, "-1.0%", FormatPercentage(Float(-1)))

	// Known ambiguity: a true half percent passed as 0.005 and a ratio of 0.5
	// both take the ratio branch
	assert.Equal(t, "0.5%", FormatPercentage(Float(0.005)))
	assert.Equal(t, "50.0%", FormatPercentage(Float(0.5)))
}

func TestCalculateYoYChange(t *testing.T) {
	change := CalculateYoYChange(Float(100), Float(80))
	require.NotNil(t, change)
	assert.InDelta(t, 25.0, *change, 1e-9)

	change = CalculateYoYChange(Float(60), Float(-80))
	require.NotNil(t, change)
	assert.InDelta(t, 175.0, *change, 1e-9, "previous is taken by magnitude")

	change = CalculateYoYChange(Float(0), Float(50))
	require.NotNil(t, change)
	assert.InDelta(t, -100.0, *change, 1e-9)

	assert.Nil(t, CalculateYoYChange(Float(100), Float(0)))
	assert.Nil(t, CalculateYoYChange(nil, Float(80)))
	assert.Nil(t, CalculateYoYChange(Float(100), nil))
}

func TestFormatPeriodDate(t *testing.T) {
	assert.Equal(t, "Sep 2024", FormatPeriodDate("2024-09-30", DateShort))
	assert.Equal(t, "September 30, 2024", FormatPeriodDate("2024-09-30", DateLong))
	assert.Equal(t, "Jan 2024", FormatPeriodDate("2024-01-01T00:00:00Z", DateShort))
	assert.Equal(t, "Dec 2023", FormatPeriodDate("2023-12-31T23:00:00-05:00", DateShort))
	assert.Equal(t, "—", FormatPeriodDate("not a date", DateShort))
}

func TestFiscalYear(t *testing.T) {
	assert.Equal(t, "FY 2024", FiscalYear("2024-09-30"))
	assert.Equal(t, "FY 2025", FiscalYear("2025-01-01"))
	assert.Equal(t, "FY 2023", FiscalYear("2023-06-30T00:00:00Z"))
	assert.Equal(t, "—", FiscalYear(""))
}

func TestFromDecimal(t *testing.T) {
	assert.Nil(t, FromDecimal(decimal.NullDecimal{}))

	v := FromDecimal(decimal.NewNullDecimal(decimal.RequireFromString("187.25")))
	require.NotNil(t, v)
	assert.Equal(t, 187.25, *v)
	assert.Equal(t, "$187", FormatCurrency(v))
}
