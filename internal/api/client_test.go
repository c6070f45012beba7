package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/epeers/stocklens/internal/api"
	"github.com/epeers/stocklens/internal/apitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*apitest.Server, *api.Client) {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	return srv, api.NewClient(srv.BaseURL())
}

func TestNewClient_DefaultsAndTrimming(t *testing.T) {
	assert.Equal(t, api.DefaultBaseURL, api.NewClient("").BaseURL())
	assert.Equal(t, "http://example.test/api/v1", api.NewClient("http://example.test/api/v1/").BaseURL())
}

func TestClient_TickerIsUppercasedInPath(t *testing.T) {
	srv, client := setup(t)
	ctx := context.Background()

	lower, err := client.Stocks.GetCompany(ctx, "aapl")
	require.NoError(t, err)
	upper, err := client.Stocks.GetCompany(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/companies/AAPL", reqs[0].Path)
	assert.Equal(t, reqs[0].Path, reqs[1].Path)
}

func TestClient_StatusErrorCarriesStatusAndMessage(t *testing.T) {
	srv, client := setup(t)
	srv.Override(http.MethodGet, "/analysis/AAPL", http.StatusInternalServerError, `{"error":"internal","message":"analysis engine offline"}`)

	_, err := client.Stocks.GetAnalysis(context.Background(), "AAPL")
	require.Error(t, err)

	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Equal(t, "Internal Server Error", reqErr.Status)
	assert.Equal(t, "analysis engine offline", reqErr.Message)
	assert.ErrorIs(t, err, api.ErrRequestFailed)
	assert.Contains(t, err.Error(), "HTTP error! status: 500")

	// failures are never retried
	assert.Len(t, srv.Requests(), 1)
}

func TestClient_UnknownTickerIsNotFound(t *testing.T) {
	_, client := setup(t)

	_, err := client.Stocks.GetCompany(context.Background(), "ZZZZ")
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, api.StatusCode(err))
}

func TestClient_StatusErrorWithoutJSONBody(t *testing.T) {
	srv, client := setup(t)
	srv.Override(http.MethodGet, "/sectors/AAPL", http.StatusBadGateway, "<html>bad gateway</html>")

	_, err := client.Stocks.GetSectorAnalysis(context.Background(), "AAPL")

	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadGateway, reqErr.StatusCode)
	assert.Empty(t, reqErr.Message)
}

func TestClient_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"company": `},
		{name: "missing required identity", body: `{"company":{"ticker":"AAPL"}}`},
		{name: "missing company", body: `{"balanceSheets":[]}`},
		{name: "type mismatch", body: `{"company":{"id":"cmp-aapl","ticker":"AAPL","name":"Apple","shares":"many"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, client := setup(t)
			srv.Override(http.MethodGet, "/companies/AAPL", http.StatusOK, tt.body)

			_, err := client.Stocks.GetCompany(context.Background(), "AAPL")
			require.Error(t, err)
			assert.ErrorIs(t, err, api.ErrDecodeFailed)
			assert.NotErrorIs(t, err, api.ErrRequestFailed)
			assert.Equal(t, 0, api.StatusCode(err))
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := apitest.NewServer()
	client := api.NewClient(srv.BaseURL())
	srv.Close()

	_, err := client.Stocks.GetCompany(context.Background(), "AAPL")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrRequestFailed)
	assert.Equal(t, 0, api.StatusCode(err))
	assert.Contains(t, err.Error(), "request failed")
}

func TestClient_CancelledContext(t *testing.T) {
	_, client := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Stocks.GetAnalysis(ctx, "AAPL")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, api.StatusCode(err))
}

func TestClient_Timeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer slow.Close()

	client := api.NewClient(slow.URL, api.WithTimeout(50*time.Millisecond))

	start := time.Now()
	_, err := client.Stocks.GetAllSectors(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrRequestFailed)
	assert.Less(t, time.Since(start), time.Second)
}

func TestClient_WithHTTPClient(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	hc := &http.Client{Timeout: time.Second}
	client := api.NewClient(srv.BaseURL(), api.WithHTTPClient(hc))

	list, err := client.Stocks.GetAllSectors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
}

func TestClient_ErrorsAreDistinguishable(t *testing.T) {
	srv, client := setup(t)
	srv.Override(http.MethodGet, "/companies/AAPL/financials", http.StatusServiceUnavailable, `{"error":"unavailable"}`)

	_, err := client.Stocks.GetCompanyFinancials(context.Background(), "AAPL")

	var decodeErr *api.DecodeError
	assert.False(t, errors.As(err, &decodeErr))
	var reqErr *api.RequestError
	require.True(t, errors.As(err, &reqErr))
	// falls back to the error code when there is no message
	assert.Equal(t, "unavailable", reqErr.Message)
	assert.Equal(t, "fetching company financials", reqErr.Op)
}
