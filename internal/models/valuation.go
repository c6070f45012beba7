package models

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionYears is the number of free cash flow slots in every valuation
const ProjectionYears = 10

// Valuation is a discounted cash flow scenario for a company
type Valuation struct {
	ID           string `json:"id" validate:"required"`
	CompanyID    string `json:"companyId"`
	ScenarioName string `json:"scenarioName"`

	// Inputs, decimals serialized as strings
	DiscountRate        decimal.Decimal `json:"discountRate"`
	PerpetualGrowthRate decimal.Decimal `json:"perpetualGrowthRate"`
	SharesOutstanding   int64           `json:"sharesOutstanding"`

	// 10-year FCF projections, each independently nullable
	FCFYear1  *float64 `json:"fcfYear1"`
	FCFYear2  *float64 `json:"fcfYear2"`
	FCFYear3  *float64 `json:"fcfYear3"`
	FCFYear4  *float64 `json:"fcfYear4"`
	FCFYear5  *float64 `json:"fcfYear5"`
	FCFYear6  *float64 `json:"fcfYear6"`
	FCFYear7  *float64 `json:"fcfYear7"`
	FCFYear8  *float64 `json:"fcfYear8"`
	FCFYear9  *float64 `json:"fcfYear9"`
	FCFYear10 *float64 `json:"fcfYear10"`

	// Calculated results
	TotalDiscountedFCF        *float64            `json:"totalDiscountedFcf"`
	PerpetuityValue           *float64            `json:"perpetuityValue"`
	DiscountedPerpetuityValue *float64            `json:"discountedPerpetuityValue"`
	TotalEquityValue          *float64            `json:"totalEquityValue"`
	IntrinsicValuePerShare    decimal.NullDecimal `json:"intrinsicValuePerShare"`

	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Projections returns the ten projection slots in year order
func (v *Valuation) Projections() [ProjectionYears]*float64 {
	return [ProjectionYears]*float64{
		v.FCFYear1, v.FCFYear2, v.FCFYear3, v.FCFYear4, v.FCFYear5,
		v.FCFYear6, v.FCFYear7, v.FCFYear8, v.FCFYear9, v.FCFYear10,
	}
}

// SetProjections replaces all ten projection slots
func (v *Valuation) SetProjections(p [ProjectionYears]*float64) {
	v.FCFYear1, v.FCFYear2, v.FCFYear3, v.FCFYear4, v.FCFYear5 = p[0], p[1], p[2], p[3], p[4]
	v.FCFYear6, v.FCFYear7, v.FCFYear8, v.FCFYear9, v.FCFYear10 = p[5], p[6], p[7], p[8], p[9]
}

// ValuationCalculation carries the intermediate values of a computed valuation
type ValuationCalculation struct {
	DiscountedFCFs []float64           `json:"discountedFcfs"`
	MarginOfSafety decimal.NullDecimal `json:"marginOfSafety"`
}

// ValuationResponse wraps a single valuation
type ValuationResponse struct {
	Ticker      string                `json:"ticker" validate:"required"`
	CompanyName string                `json:"companyName"`
	Valuation   Valuation             `json:"valuation"`
	Calculation *ValuationCalculation `json:"calculation,omitempty"`
}

// ValuationsListResponse lists every valuation of a company
type ValuationsListResponse struct {
	Ticker      string      `json:"ticker" validate:"required"`
	CompanyName string      `json:"companyName"`
	Valuations  []Valuation `json:"valuations" validate:"required,dive"`
}

// CreateValuationPayload is the body of POST /valuations/{ticker}
type CreateValuationPayload struct {
	ScenarioName        string  `json:"scenarioName,omitempty"`
	DiscountRate        float64 `json:"discountRate"`
	PerpetualGrowthRate float64 `json:"perpetualGrowthRate"`
	SharesOutstanding   int64   `json:"sharesOutstanding"`
	FCFYear1            float64 `json:"fcfYear1"`
	FCFYear2            float64 `json:"fcfYear2"`
	FCFYear3            float64 `json:"fcfYear3"`
	FCFYear4            float64 `json:"fcfYear4"`
	FCFYear5            float64 `json:"fcfYear5"`
	FCFYear6            float64 `json:"fcfYear6"`
	FCFYear7            float64 `json:"fcfYear7"`
	FCFYear8            float64 `json:"fcfYear8"`
	FCFYear9            float64 `json:"fcfYear9"`
	FCFYear10           float64 `json:"fcfYear10"`
	Notes               string  `json:"notes,omitempty"`
}

// SetProjections fills the ten projection fields in year order
func (p *CreateValuationPayload) SetProjections(fcf [ProjectionYears]float64) {
	p.FCFYear1, p.FCFYear2, p.FCFYear3, p.FCFYear4, p.FCFYear5 = fcf[0], fcf[1], fcf[2], fcf[3], fcf[4]
	p.FCFYear6, p.FCFYear7, p.FCFYear8, p.FCFYear9, p.FCFYear10 = fcf[5], fcf[6], fcf[7], fcf[8], fcf[9]
}

// Projections returns the ten projection fields in year order
func (p *CreateValuationPayload) Projections() [ProjectionYears]float64 {
	return [ProjectionYears]float64{
		p.FCFYear1, p.FCFYear2, p.FCFYear3, p.FCFYear4, p.FCFYear5,
		p.FCFYear6, p.FCFYear7, p.FCFYear8, p.FCFYear9, p.FCFYear10,
	}
}

// UpdateValuationPayload is the body of PUT /valuations/{ticker}/{id}.
// Only the fields that are set are sent.
type UpdateValuationPayload struct {
	ScenarioName        *string  `json:"scenarioName,omitempty"`
	DiscountRate        *float64 `json:"discountRate,omitempty"`
	PerpetualGrowthRate *float64 `json:"perpetualGrowthRate,omitempty"`
	SharesOutstanding   *int64   `json:"sharesOutstanding,omitempty"`
	FCFYear1            *float64 `json:"fcfYear1,omitempty"`
	FCFYear2            *float64 `json:"fcfYear2,omitempty"`
	FCFYear3            *float64 `json:"fcfYear3,omitempty"`
	FCFYear4            *float64 `json:"fcfYear4,omitempty"`
	FCFYear5            *float64 `json:"fcfYear5,omitempty"`
	FCFYear6            *float64 `json:"fcfYear6,omitempty"`
	FCFYear7            *float64 `json:"fcfYear7,omitempty"`
	FCFYear8            *float64 `json:"fcfYear8,omitempty"`
	FCFYear9            *float64 `json:"fcfYear9,omitempty"`
	FCFYear10           *float64 `json:"fcfYear10,omitempty"`
	Notes               *string  `json:"notes,omitempty"`
}

// Projections returns the submitted projection slots in year order
func (p *UpdateValuationPayload) Projections() [ProjectionYears]*float64 {
	return [ProjectionYears]*float64{
		p.FCFYear1, p.FCFYear2, p.FCFYear3, p.FCFYear4, p.FCFYear5,
		p.FCFYear6, p.FCFYear7, p.FCFYear8, p.FCFYear9, p.FCFYear10,
	}
}

// SensitivityRequest is the body of POST /valuations/{ticker}/sensitivity
type SensitivityRequest struct {
	ValuationID string `json:"valuationId"`
}

// SensitivityTable maps a discount rate label to a map of growth rate label to
// per-share value. Neither axis has an implied order.
type SensitivityTable map[string]map[string]float64

// DiscountRates returns the discount rate labels sorted for display
func (t SensitivityTable) DiscountRates() []string {
	labels := make([]string, 0, len(t))
	for dr := range t {
		labels = append(labels, dr)
	}
	sortLabels(labels)
	return labels
}

// GrowthRates returns the union of growth rate labels across all rows, sorted for display
func (t SensitivityTable) GrowthRates() []string {
	seen := make(map[string]struct{})
	var labels []string
	for _, row := range t {
		for gr := range row {
			if _, ok := seen[gr]; ok {
				continue
			}
			seen[gr] = struct{}{}
			labels = append(labels, gr)
		}
	}
	sortLabels(labels)
	return labels
}

// Value looks up a single cell
func (t SensitivityTable) Value(discountRate, growthRate string) (float64, bool) {
	row, ok := t[discountRate]
	if !ok {
		return 0, false
	}
	v, ok := row[growthRate]
	return v, ok
}

// sortLabels orders labels numerically where they parse as numbers ("8%", "0.08")
// and lexically otherwise; numeric labels come first.
func sortLabels(labels []string) {
	sort.Slice(labels, func(i, j int) bool {
		a, aOK := labelValue(labels[i])
		b, bOK := labelValue(labels[j])
		switch {
		case aOK && bOK && a != b:
			return a < b
		case aOK != bOK:
			return aOK
		default:
			return labels[i] < labels[j]
		}
	})
}

func labelValue(label string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(label), "%"), 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// SensitivityResponse is the body returned by the sensitivity endpoint
type SensitivityResponse struct {
	Ticker           string              `json:"ticker" validate:"required"`
	CompanyName      string              `json:"companyName"`
	BaseValuation    decimal.Decimal     `json:"baseValuation"`
	CurrentPrice     decimal.NullDecimal `json:"currentPrice"`
	SensitivityTable SensitivityTable    `json:"sensitivityTable" validate:"required"`
}
