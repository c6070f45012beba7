package format

import (
	"strconv"

	"github.com/epeers/stocklens/internal/models"
)

// DateFormat selects the layout used by FormatPeriodDate
type DateFormat string

const (
	DateShort DateFormat = "short" // "Sep 2024"
	DateLong  DateFormat = "long"  // "September 30, 2024"
)

// FormatPeriodDate formats an ISO date ("2024-09-30" or RFC3339).
// Dates are rendered in the zone they were written in, so a date-only value
// never shifts to the previous day.
func FormatPeriodDate(dateString string, format DateFormat) string {
	d, err := models.ParseFlexibleDate(dateString)
	if err != nil {
		return Placeholder
	}

	if format == DateLong {
		return d.Format("January 2, 2006")
	}
	return d.Format("Jan 2006")
}

// FiscalYear returns the fiscal year label of an ISO date.
// Example: "2024-09-30" -> "FY 2024"
func FiscalYear(dateString string) string {
	d, err := models.ParseFlexibleDate(dateString)
	if err != nil {
		return Placeholder
	}
	return "FY " + strconv.Itoa(d.Year())
}
