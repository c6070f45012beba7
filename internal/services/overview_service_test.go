package services_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/epeers/stocklens/internal/api"
	"github.com/epeers/stocklens/internal/apitest"
	"github.com/epeers/stocklens/internal/models"
	"github.com/epeers/stocklens/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOverviewService(t *testing.T) (*apitest.Server, *services.OverviewService) {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.BaseURL())
	return srv, services.NewOverviewService(client.Stocks)
}

func TestOverview_LoadsAllSections(t *testing.T) {
	srv, svc := newOverviewService(t)

	overview, err := svc.Load(context.Background(), "aapl")
	require.NoError(t, err)
	assert.Equal(t, "Apple Inc.", overview.Company.Name)
	assert.NotNil(t, overview.Analysis)
	assert.NotNil(t, overview.Financials)
	assert.NotNil(t, overview.Sector)
	assert.Empty(t, overview.Warnings)
	assert.Len(t, srv.Requests(), 4)
}

func TestOverview_SectionFailuresBecomeWarnings(t *testing.T) {
	srv, svc := newOverviewService(t)
	srv.Override(http.MethodGet, "/sectors/AAPL", http.StatusInternalServerError, `{"error":"internal"}`)
	srv.Override(http.MethodGet, "/analysis/AAPL", http.StatusServiceUnavailable, `{"error":"unavailable"}`)

	overview, err := svc.Load(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.NotNil(t, overview.Company)
	assert.NotNil(t, overview.Financials)
	assert.Nil(t, overview.Analysis)
	assert.Nil(t, overview.Sector)

	require.Len(t, overview.Warnings, 2)
	assert.Equal(t, models.WarnAnalysisUnavailable, overview.Warnings[0].Code)
	assert.Equal(t, models.WarnSectorUnavailable, overview.Warnings[1].Code)
	assert.Contains(t, overview.Warnings[1].Message, "AAPL")
}

func TestOverview_CompanyFailureIsFatal(t *testing.T) {
	_, svc := newOverviewService(t)

	_, err := svc.Load(context.Background(), "ZZZZ")
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
}

type countingSource struct {
	mu      sync.Mutex
	tickers []string
}

func (c *countingSource) record(ticker string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tickers = append(c.tickers, ticker)
}

func (c *countingSource) GetCompany(_ context.Context, ticker string) (*models.Stock, error) {
	c.record(ticker)
	return &models.Stock{ID: "1", Ticker: ticker, Name: "Test"}, nil
}

func (c *countingSource) GetAnalysis(_ context.Context, ticker string) (*models.CompanyAnalysis, error) {
	c.record(ticker)
	return &models.CompanyAnalysis{}, nil
}

func (c *countingSource) GetCompanyFinancials(_ context.Context, ticker string) (*models.FinancialsSummary, error) {
	c.record(ticker)
	return &models.FinancialsSummary{Ticker: ticker}, nil
}

func (c *countingSource) GetSectorAnalysis(_ context.Context, ticker string) (*models.SectorAnalysisResponse, error) {
	c.record(ticker)
	return &models.SectorAnalysisResponse{Ticker: ticker}, nil
}

func TestOverview_NormalizesTicker(t *testing.T) {
	src := &countingSource{}
	svc := services.NewOverviewService(src)

	overview, err := svc.Load(context.Background(), " msft ")
	require.NoError(t, err)
	assert.Equal(t, "MSFT", overview.Company.Ticker)
	assert.Equal(t, []string{"MSFT", "MSFT", "MSFT", "MSFT"}, src.tickers)
}
