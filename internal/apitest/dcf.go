package apitest

import (
	"fmt"
	"math"

	"github.com/epeers/stocklens/internal/models"
	"github.com/shopspring/decimal"
)

// computeValuation fills the derived totals of v from its inputs and returns the
// per-year discounted cash flows. Totals stay nil when the inputs cannot produce
// a finite value (no projections, discount rate not above growth, no shares).
func computeValuation(v *models.Valuation) []float64 {
	v.TotalDiscountedFCF = nil
	v.PerpetuityValue = nil
	v.DiscountedPerpetuityValue = nil
	v.TotalEquityValue = nil
	v.IntrinsicValuePerShare = decimal.NullDecimal{}

	r := v.DiscountRate.InexactFloat64()
	g := v.PerpetualGrowthRate.InexactFloat64()

	discounted := make([]float64, 0, models.ProjectionYears)
	var total float64
	var lastFCF *float64
	for i, fcf := range v.Projections() {
		if fcf == nil {
			continue
		}
		d := *fcf / math.Pow(1+r, float64(i+1))
		discounted = append(discounted, d)
		total += d
		lastFCF = fcf
	}
	if lastFCF == nil {
		return discounted
	}
	v.TotalDiscountedFCF = &total

	if r <= g {
		return discounted
	}
	// Gordon growth on the last known year
	perpetuity := *lastFCF * (1 + g) / (r - g)
	discountedPerpetuity := perpetuity / math.Pow(1+r, models.ProjectionYears)
	equity := total + discountedPerpetuity
	v.PerpetuityValue = &perpetuity
	v.DiscountedPerpetuityValue = &discountedPerpetuity
	v.TotalEquityValue = &equity

	if v.SharesOutstanding > 0 {
		perShare := decimal.NewFromFloat(equity / float64(v.SharesOutstanding)).Round(2)
		v.IntrinsicValuePerShare = decimal.NewNullDecimal(perShare)
	}
	return discounted
}

// marginOfSafety is (intrinsic - price) / intrinsic, as a ratio
func marginOfSafety(v models.Valuation, price decimal.NullDecimal) decimal.NullDecimal {
	if !v.IntrinsicValuePerShare.Valid || !price.Valid || v.IntrinsicValuePerShare.Decimal.IsZero() {
		return decimal.NullDecimal{}
	}
	intrinsic := v.IntrinsicValuePerShare.Decimal
	return decimal.NewNullDecimal(intrinsic.Sub(price.Decimal).Div(intrinsic).Round(4))
}

// Offsets applied to the base rates when building a sensitivity grid
var (
	discountOffsets = []float64{-0.02, -0.01, 0, 0.01, 0.02}
	growthOffsets   = []float64{-0.01, -0.005, 0, 0.005, 0.01}
)

// sensitivityTable recomputes v's per-share value across a grid of rates.
// Combinations with no finite value are left out.
func sensitivityTable(v models.Valuation) models.SensitivityTable {
	baseR := v.DiscountRate.InexactFloat64()
	baseG := v.PerpetualGrowthRate.InexactFloat64()

	table := make(models.SensitivityTable)
	for _, dr := range discountOffsets {
		r := baseR + dr
		row := make(map[string]float64)
		for _, dg := range growthOffsets {
			g := baseG + dg
			scenario := v
			scenario.DiscountRate = decimal.NewFromFloat(r)
			scenario.PerpetualGrowthRate = decimal.NewFromFloat(g)
			computeValuation(&scenario)
			if !scenario.IntrinsicValuePerShare.Valid {
				continue
			}
			row[rateLabel(g)] = scenario.IntrinsicValuePerShare.Decimal.InexactFloat64()
		}
		table[rateLabel(r)] = row
	}
	return table
}

func rateLabel(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}
