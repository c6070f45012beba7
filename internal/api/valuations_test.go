package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/epeers/stocklens/internal/api"
	"github.com/epeers/stocklens/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basePayload() *models.CreateValuationPayload {
	p := &models.CreateValuationPayload{
		ScenarioName:        "Base Case",
		DiscountRate:        0.10,
		PerpetualGrowthRate: 0.025,
		SharesOutstanding:   15_550_000_000,
	}
	p.SetProjections([models.ProjectionYears]float64{
		110e9, 115e9, 120e9, 125e9, 130e9, 135e9, 140e9, 145e9, 150e9, 155e9,
	})
	return p
}

func TestValuations_CreateAndGetByID(t *testing.T) {
	srv, client := setup(t)
	ctx := context.Background()
	payload := basePayload()

	created, err := client.Valuations.Create(ctx, "aapl", payload)
	require.NoError(t, err)
	require.NotEmpty(t, created.Valuation.ID)

	req, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/valuations/AAPL", req.Path)
	assert.Equal(t, "application/json", req.ContentType)

	fetched, err := client.Valuations.GetByID(ctx, "AAPL", created.Valuation.ID)
	require.NoError(t, err)

	projections := fetched.Valuation.Projections()
	for i, want := range payload.Projections() {
		require.NotNil(t, projections[i], "year %d", i+1)
		assert.Equal(t, want, *projections[i], "year %d", i+1)
	}
	assert.True(t, fetched.Valuation.DiscountRate.Equal(decimal.RequireFromString("0.1")))
	assert.True(t, fetched.Valuation.PerpetualGrowthRate.Equal(decimal.RequireFromString("0.025")))
	assert.Equal(t, payload.SharesOutstanding, fetched.Valuation.SharesOutstanding)
	require.True(t, fetched.Valuation.IntrinsicValuePerShare.Valid)
	assert.True(t, fetched.Valuation.IntrinsicValuePerShare.Decimal.Equal(created.Valuation.IntrinsicValuePerShare.Decimal))
	require.NotNil(t, fetched.Calculation)
	assert.Len(t, fetched.Calculation.DiscountedFCFs, models.ProjectionYears)
}

func TestValuations_ListAndLatest(t *testing.T) {
	_, client := setup(t)
	ctx := context.Background()

	_, err := client.Valuations.GetLatest(ctx, "AAPL")
	assert.True(t, api.IsNotFound(err))

	first, err := client.Valuations.Create(ctx, "AAPL", basePayload())
	require.NoError(t, err)
	bull := basePayload()
	bull.ScenarioName = "Bull"
	second, err := client.Valuations.Create(ctx, "AAPL", bull)
	require.NoError(t, err)

	list, err := client.Valuations.List(ctx, "AAPL")
	require.NoError(t, err)
	require.Len(t, list.Valuations, 2)
	assert.Equal(t, second.Valuation.ID, list.Valuations[0].ID)
	assert.Equal(t, first.Valuation.ID, list.Valuations[1].ID)

	latest, err := client.Valuations.GetLatest(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "Bull", latest.Valuation.ScenarioName)
}

func TestValuations_ListEmpty(t *testing.T) {
	_, client := setup(t)

	list, err := client.Valuations.List(context.Background(), "MSFT")
	require.NoError(t, err)
	assert.NotNil(t, list.Valuations)
	assert.Empty(t, list.Valuations)
}

func TestValuations_UpdateSendsOnlySetFields(t *testing.T) {
	srv, client := setup(t)
	ctx := context.Background()

	created, err := client.Valuations.Create(ctx, "AAPL", basePayload())
	require.NoError(t, err)

	notes := "more conservative terminal growth"
	growth := 0.02
	updated, err := client.Valuations.Update(ctx, "AAPL", created.Valuation.ID, &models.UpdateValuationPayload{
		Notes:               &notes,
		PerpetualGrowthRate: &growth,
	})
	require.NoError(t, err)

	req, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.JSONEq(t, `{"notes":"more conservative terminal growth","perpetualGrowthRate":0.02}`, string(req.Body))

	require.NotNil(t, updated.Valuation.Notes)
	assert.Equal(t, notes, *updated.Valuation.Notes)
	assert.True(t, updated.Valuation.PerpetualGrowthRate.Equal(decimal.RequireFromString("0.02")))
	// untouched fields survive
	assert.Equal(t, created.Valuation.FCFYear1, updated.Valuation.FCFYear1)
	assert.Equal(t, "Base Case", updated.Valuation.ScenarioName)
	// lower growth lowers the value
	assert.True(t, updated.Valuation.IntrinsicValuePerShare.Decimal.LessThan(created.Valuation.IntrinsicValuePerShare.Decimal))
}

func TestValuations_DeleteTwiceFails(t *testing.T) {
	srv, client := setup(t)
	ctx := context.Background()

	created, err := client.Valuations.Create(ctx, "AAPL", basePayload())
	require.NoError(t, err)

	require.NoError(t, client.Valuations.Delete(ctx, "AAPL", created.Valuation.ID))
	req, _ := srv.LastRequest()
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/valuations/AAPL/"+created.Valuation.ID, req.Path)

	err = client.Valuations.Delete(ctx, "AAPL", created.Valuation.ID)
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))

	_, err = client.Valuations.GetByID(ctx, "AAPL", created.Valuation.ID)
	assert.True(t, api.IsNotFound(err))
}

func TestValuations_Sensitivity(t *testing.T) {
	srv, client := setup(t)
	ctx := context.Background()

	created, err := client.Valuations.Create(ctx, "AAPL", basePayload())
	require.NoError(t, err)

	sensitivity, err := client.Valuations.GetSensitivity(ctx, "AAPL", created.Valuation.ID)
	require.NoError(t, err)

	req, _ := srv.LastRequest()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/valuations/AAPL/sensitivity", req.Path)
	var body map[string]string
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, created.Valuation.ID, body["valuationId"])

	assert.True(t, sensitivity.BaseValuation.Equal(created.Valuation.IntrinsicValuePerShare.Decimal))
	assert.True(t, sensitivity.CurrentPrice.Valid)

	table := sensitivity.SensitivityTable
	assert.Equal(t, []string{"8.0%", "9.0%", "10.0%", "11.0%", "12.0%"}, table.DiscountRates())
	assert.Len(t, table.GrowthRates(), 5)

	base, ok := table.Value("10.0%", "2.5%")
	require.True(t, ok)
	assert.Equal(t, sensitivity.BaseValuation.InexactFloat64(), base)

	// higher discount rate, lower value
	high, ok := table.Value("12.0%", "2.5%")
	require.True(t, ok)
	assert.Less(t, high, base)
}

func TestValuations_SensitivityUnknownID(t *testing.T) {
	_, client := setup(t)

	_, err := client.Valuations.GetSensitivity(context.Background(), "AAPL", "val-999")
	assert.True(t, api.IsNotFound(err))
}
