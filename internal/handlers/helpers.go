package handlers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/epeers/stocklens/internal/format"
	"github.com/shopspring/decimal"
)

func orPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return format.Placeholder
	}
	return *s
}

func formatPrice(d decimal.NullDecimal) string {
	if !d.Valid {
		return format.Placeholder
	}
	if d.Decimal.IsNegative() {
		return "-$" + d.Decimal.Abs().StringFixed(2)
	}
	return "$" + d.Decimal.StringFixed(2)
}

func formatEPS(v *float64) string {
	if v == nil {
		return format.Placeholder
	}
	return formatPrice(decimal.NewNullDecimal(decimal.NewFromFloat(*v)))
}

// percentUnits rescales a value already in percent so the percentage
// formatter's ratio heuristic renders it unchanged
func percentUnits(v *float64) *float64 {
	if v == nil {
		return nil
	}
	if math.Abs(*v) < 100 {
		return format.Float(*v / 100)
	}
	return v
}

func indent(level int) string {
	return strings.Repeat("  ", level)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func optionalBool(b *bool) string {
	if b == nil {
		return format.Placeholder
	}
	return yesNo(*b)
}

func parseOptionalBool(name, s string) (*bool, error) {
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("%w: -%s must be true or false", ErrUsage, name)
	}
	return &b, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// parseRate accepts a ratio ("0.1") or a percentage ("10%")
func parseRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, err
	}
	if percent {
		v /= 100
	}
	return v, nil
}

// parseProjections reads up to ten comma-separated FCF values; empty slots are nil
func parseProjections(s string, years int) ([]*float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) > years {
		return nil, fmt.Errorf("%w: at most %d projections", ErrUsage, years)
	}
	out := make([]*float64, years)
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: projection %d: %v", ErrUsage, i+1, err)
		}
		out[i] = &v
	}
	return out, nil
}
