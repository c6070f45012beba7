package apitest

import (
	"testing"

	"github.com/epeers/stocklens/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatValuation(fcf float64, r, g string, shares int64) models.Valuation {
	v := models.Valuation{
		DiscountRate:        decimal.RequireFromString(r),
		PerpetualGrowthRate: decimal.RequireFromString(g),
		SharesOutstanding:   shares,
	}
	var p [models.ProjectionYears]*float64
	for i := range p {
		p[i] = num(fcf)
	}
	v.SetProjections(p)
	return v
}

func TestComputeValuation(t *testing.T) {
	v := flatValuation(100, "0.10", "0.02", 10)

	discounted := computeValuation(&v)
	require.Len(t, discounted, models.ProjectionYears)
	assert.InDelta(t, 100/1.1, discounted[0], 1e-9)

	require.NotNil(t, v.TotalDiscountedFCF)
	// annuity of 100 for 10 years at 10%
	assert.InDelta(t, 614.4567, *v.TotalDiscountedFCF, 1e-3)

	require.NotNil(t, v.PerpetuityValue)
	assert.InDelta(t, 1275, *v.PerpetuityValue, 1e-9)
	require.True(t, v.IntrinsicValuePerShare.Valid)
	assert.Equal(t, int32(-2), v.IntrinsicValuePerShare.Decimal.Exponent())
}

func TestComputeValuation_SkipsMissingYears(t *testing.T) {
	v := flatValuation(100, "0.10", "0.02", 10)
	p := v.Projections()
	p[9] = nil
	p[4] = nil
	v.SetProjections(p)

	discounted := computeValuation(&v)
	assert.Len(t, discounted, 8)
	require.NotNil(t, v.TotalEquityValue)
}

func TestComputeValuation_NoFiniteValue(t *testing.T) {
	tests := []struct {
		name      string
		v         models.Valuation
		wantTotal bool
	}{
		{name: "growth equals discount", v: flatValuation(100, "0.05", "0.05", 10), wantTotal: true},
		{name: "growth above discount", v: flatValuation(100, "0.04", "0.05", 10), wantTotal: true},
		{name: "no projections", v: models.Valuation{DiscountRate: decimal.RequireFromString("0.1"), SharesOutstanding: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			computeValuation(&tt.v)
			assert.Equal(t, tt.wantTotal, tt.v.TotalDiscountedFCF != nil)
			assert.Nil(t, tt.v.PerpetuityValue)
			assert.False(t, tt.v.IntrinsicValuePerShare.Valid)
		})
	}
}

func TestComputeValuation_NoShares(t *testing.T) {
	v := flatValuation(100, "0.10", "0.02", 0)
	computeValuation(&v)
	assert.NotNil(t, v.TotalEquityValue)
	assert.False(t, v.IntrinsicValuePerShare.Valid)
}

func TestMarginOfSafety(t *testing.T) {
	v := models.Valuation{IntrinsicValuePerShare: decimal.NewNullDecimal(decimal.RequireFromString("200"))}

	m := marginOfSafety(v, decimal.NewNullDecimal(decimal.RequireFromString("150")))
	require.True(t, m.Valid)
	assert.Equal(t, "0.25", m.Decimal.String())

	assert.False(t, marginOfSafety(v, decimal.NullDecimal{}).Valid)
	assert.False(t, marginOfSafety(models.Valuation{}, decimal.NewNullDecimal(decimal.RequireFromString("1"))).Valid)
}

func TestSensitivityTable(t *testing.T) {
	v := flatValuation(100, "0.10", "0.02", 10)
	table := sensitivityTable(v)

	assert.Equal(t, []string{"8.0%", "9.0%", "10.0%", "11.0%", "12.0%"}, table.DiscountRates())
	assert.Equal(t, []string{"1.0%", "1.5%", "2.0%", "2.5%", "3.0%"}, table.GrowthRates())

	computeValuation(&v)
	base, ok := table.Value("10.0%", "2.0%")
	require.True(t, ok)
	assert.Equal(t, v.IntrinsicValuePerShare.Decimal.InexactFloat64(), base)
}

func TestStore_Search(t *testing.T) {
	s := NewStore()
	for _, c := range DefaultCompanies() {
		s.AddCompany(c)
	}

	assert.Len(t, s.Search("micro"), 1)
	assert.Len(t, s.Search("AAPL"), 1)
	assert.Empty(t, s.Search("zzz"))

	all := s.Search("")
	require.Len(t, all, 2)
	assert.Equal(t, "AAPL", all[0].Ticker)
}
