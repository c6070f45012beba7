package api

import (
	"context"
	"net/http"

	"github.com/epeers/stocklens/internal/models"
)

// ValuationService covers discounted cash flow scenarios
type ValuationService service

// List fetches every valuation saved for ticker
func (s *ValuationService) List(ctx context.Context, ticker string) (*models.ValuationsListResponse, error) {
	var list models.ValuationsListResponse
	if err := s.client.do(ctx, "fetching valuations", http.MethodGet, tickerPath("valuations", ticker), nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetLatest fetches the most recent valuation for ticker
func (s *ValuationService) GetLatest(ctx context.Context, ticker string) (*models.ValuationResponse, error) {
	return s.get(ctx, "fetching latest valuation", tickerPath("valuations", ticker, "latest"))
}

// GetByID fetches one valuation
func (s *ValuationService) GetByID(ctx context.Context, ticker, id string) (*models.ValuationResponse, error) {
	return s.get(ctx, "fetching valuation", tickerPath("valuations", ticker, id))
}

func (s *ValuationService) get(ctx context.Context, op, path string) (*models.ValuationResponse, error) {
	var valuation models.ValuationResponse
	if err := s.client.do(ctx, op, http.MethodGet, path, nil, nil, &valuation); err != nil {
		return nil, err
	}
	return &valuation, nil
}

// Create saves a new valuation scenario; the backend computes the derived totals
func (s *ValuationService) Create(ctx context.Context, ticker string, payload *models.CreateValuationPayload) (*models.ValuationResponse, error) {
	var valuation models.ValuationResponse
	if err := s.client.do(ctx, "creating valuation", http.MethodPost, tickerPath("valuations", ticker), nil, payload, &valuation); err != nil {
		return nil, err
	}
	return &valuation, nil
}

// Update changes the fields set in payload and returns the recomputed valuation
func (s *ValuationService) Update(ctx context.Context, ticker, id string, payload *models.UpdateValuationPayload) (*models.ValuationResponse, error) {
	var valuation models.ValuationResponse
	if err := s.client.do(ctx, "updating valuation", http.MethodPut, tickerPath("valuations", ticker, id), nil, payload, &valuation); err != nil {
		return nil, err
	}
	return &valuation, nil
}

// Delete removes a valuation. Deleting an id that no longer exists fails with
// the backend's status, so blind retries are not safe.
func (s *ValuationService) Delete(ctx context.Context, ticker, id string) error {
	return s.client.do(ctx, "deleting valuation", http.MethodDelete, tickerPath("valuations", ticker, id), nil, nil, nil)
}

// GetSensitivity asks the backend to recompute a valuation across a grid of
// discount and growth rates. Nothing is persisted.
func (s *ValuationService) GetSensitivity(ctx context.Context, ticker, valuationID string) (*models.SensitivityResponse, error) {
	body := models.SensitivityRequest{ValuationID: valuationID}

	var sensitivity models.SensitivityResponse
	if err := s.client.do(ctx, "fetching sensitivity analysis", http.MethodPost, tickerPath("valuations", ticker, "sensitivity"), nil, body, &sensitivity); err != nil {
		return nil, err
	}
	return &sensitivity, nil
}
