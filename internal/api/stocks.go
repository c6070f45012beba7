package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/epeers/stocklens/internal/models"
)

// DefaultPeerLimit is the peer count requested when no positive limit is given
const DefaultPeerLimit = 20

// StockService covers companies, analysis and sectors
type StockService service

// Search finds companies matching term. A blank term returns no results without
// contacting the backend.
func (s *StockService) Search(ctx context.Context, term string) ([]models.SearchResult, error) {
	if strings.TrimSpace(term) == "" {
		return []models.SearchResult{}, nil
	}

	params := url.Values{}
	params.Set("term", term)

	var results []models.SearchResult
	if err := s.client.do(ctx, "searching stocks", http.MethodGet, "/companies", params, nil, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.SearchResult{}
	}
	return results, nil
}

// GetCompany fetches the company record for ticker
func (s *StockService) GetCompany(ctx context.Context, ticker string) (*models.Stock, error) {
	detail, err := s.getCompanyDetail(ctx, "fetching stock", ticker)
	if err != nil {
		return nil, err
	}
	return detail.Company, nil
}

// GetCompanyDetail fetches the company record together with the raw statement
// arrays the same endpoint returns
func (s *StockService) GetCompanyDetail(ctx context.Context, ticker string) (*models.CompanyDetailResponse, error) {
	return s.getCompanyDetail(ctx, "fetching company detail", ticker)
}

func (s *StockService) getCompanyDetail(ctx context.Context, op, ticker string) (*models.CompanyDetailResponse, error) {
	var detail models.CompanyDetailResponse
	if err := s.client.do(ctx, op, http.MethodGet, tickerPath("companies", ticker), nil, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetAnalysis fetches the derived fundamentals and user inputs for ticker
func (s *StockService) GetAnalysis(ctx context.Context, ticker string) (*models.CompanyAnalysis, error) {
	var analysis models.CompanyAnalysis
	if err := s.client.do(ctx, "fetching analysis", http.MethodGet, tickerPath("analysis", ticker), nil, nil, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// UpdateMetadata submits the user classification fields set in payload.
// Fields left nil are not sent and stay unchanged on the backend.
func (s *StockService) UpdateMetadata(ctx context.Context, ticker string, payload *models.UpdateMetadataPayload) error {
	return s.client.do(ctx, "updating metadata", http.MethodPut, tickerPath("analysis", ticker), nil, payload, nil)
}

// GetCompanyFinancials fetches the share count and current free cash flow used to seed valuations
func (s *StockService) GetCompanyFinancials(ctx context.Context, ticker string) (*models.FinancialsSummary, error) {
	var summary models.FinancialsSummary
	if err := s.client.do(ctx, "fetching company financials", http.MethodGet, tickerPath("companies", ticker, "financials"), nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetFinancialStatements fetches every balance sheet, income statement and cash flow statement for ticker
func (s *StockService) GetFinancialStatements(ctx context.Context, ticker string) (*models.FinancialStatementsResponse, error) {
	var statements models.FinancialStatementsResponse
	path := tickerPath("companies", ticker, "financials", "statements")
	if err := s.client.do(ctx, "fetching financial statements", http.MethodGet, path, nil, nil, &statements); err != nil {
		return nil, err
	}
	return &statements, nil
}

// GetSectorAnalysis fetches ticker's standing within its industry
func (s *StockService) GetSectorAnalysis(ctx context.Context, ticker string) (*models.SectorAnalysisResponse, error) {
	var analysis models.SectorAnalysisResponse
	if err := s.client.do(ctx, "fetching sector analysis", http.MethodGet, tickerPath("sectors", ticker), nil, nil, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// GetPeerComparison fetches up to limit peers of ticker; limit <= 0 means DefaultPeerLimit
func (s *StockService) GetPeerComparison(ctx context.Context, ticker string, limit int) (*models.PeerComparisonResponse, error) {
	if limit <= 0 {
		limit = DefaultPeerLimit
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	var peers models.PeerComparisonResponse
	if err := s.client.do(ctx, "fetching peer comparison", http.MethodGet, tickerPath("sectors", ticker, "peers"), params, nil, &peers); err != nil {
		return nil, err
	}
	return &peers, nil
}

// GetAllSectors lists every industry the backend tracks
func (s *StockService) GetAllSectors(ctx context.Context) (*models.SectorListResponse, error) {
	var list models.SectorListResponse
	if err := s.client.do(ctx, "fetching sectors", http.MethodGet, "/sectors/list", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
