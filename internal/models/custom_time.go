package models

import (
	"encoding/json"
	"strings"
	"time"
)

// DateLayout is the wire layout of date-only values such as statement period dates.
const DateLayout = "2006-01-02"

// FlexibleDate is a custom time type that can unmarshal both RFC3339 and "YYYY-MM-DD" formats
type FlexibleDate struct {
	time.Time
}

// ParseFlexibleDate parses s as an RFC3339 timestamp or, failing that, a date-only string.
func ParseFlexibleDate(s string) (FlexibleDate, error) {
	// Try parsing as RFC3339 full timestamp first
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return FlexibleDate{Time: t}, nil
	}

	// If that fails, try parsing as a date-only string
	t, err = time.Parse(DateLayout, s)
	if err != nil {
		return FlexibleDate{}, err
	}
	return FlexibleDate{Time: t}, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexibleDate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	parsed, err := ParseFlexibleDate(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalJSON writes date-only values as "YYYY-MM-DD" and anything with a time
// component as RFC3339.
func (f FlexibleDate) MarshalJSON() ([]byte, error) {
	if f.Hour() == 0 && f.Minute() == 0 && f.Second() == 0 && f.Nanosecond() == 0 {
		return json.Marshal(f.Format(DateLayout))
	}
	return json.Marshal(f.Time)
}

// ISODate returns the date portion as "YYYY-MM-DD".
func (f FlexibleDate) ISODate() string {
	return f.Format(DateLayout)
}
