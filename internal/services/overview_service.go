package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/epeers/stocklens/internal/api"
	"github.com/epeers/stocklens/internal/models"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// CompanySource is the slice of the stock API an overview needs.
// *api.StockService satisfies it.
type CompanySource interface {
	GetCompany(ctx context.Context, ticker string) (*models.Stock, error)
	GetAnalysis(ctx context.Context, ticker string) (*models.CompanyAnalysis, error)
	GetCompanyFinancials(ctx context.Context, ticker string) (*models.FinancialsSummary, error)
	GetSectorAnalysis(ctx context.Context, ticker string) (*models.SectorAnalysisResponse, error)
}

// Overview is everything shown on a company's summary page. Only Company is
// guaranteed; the other sections are nil when their fetch failed, with a
// matching entry in Warnings.
type Overview struct {
	Company    *models.Stock
	Analysis   *models.CompanyAnalysis
	Financials *models.FinancialsSummary
	Sector     *models.SectorAnalysisResponse
	Warnings   []models.Warning
}

// OverviewService assembles company overviews
type OverviewService struct {
	stocks CompanySource
}

// NewOverviewService creates a new OverviewService
func NewOverviewService(stocks CompanySource) *OverviewService {
	return &OverviewService{stocks: stocks}
}

// Load fetches the four overview sections concurrently. A failure to fetch the
// company itself fails the whole load; the other sections degrade to warnings.
func (s *OverviewService) Load(ctx context.Context, ticker string) (*Overview, error) {
	defer api.TrackTime("LoadOverview", time.Now())

	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	ctx, wc := NewWarningContext(ctx)
	g, gctx := errgroup.WithContext(ctx)

	var overview Overview

	g.Go(func() error {
		company, err := s.stocks.GetCompany(gctx, ticker)
		if err != nil {
			return fmt.Errorf("failed to get company %s: %w", ticker, err)
		}
		overview.Company = company
		return nil
	})

	g.Go(func() error {
		analysis, err := s.stocks.GetAnalysis(gctx, ticker)
		if err != nil {
			degrade(gctx, models.WarnAnalysisUnavailable, "analysis", ticker, err)
			return nil
		}
		overview.Analysis = analysis
		return nil
	})

	g.Go(func() error {
		financials, err := s.stocks.GetCompanyFinancials(gctx, ticker)
		if err != nil {
			degrade(gctx, models.WarnFinancialsUnavailable, "financial summary", ticker, err)
			return nil
		}
		overview.Financials = financials
		return nil
	})

	g.Go(func() error {
		sector, err := s.stocks.GetSectorAnalysis(gctx, ticker)
		if err != nil {
			degrade(gctx, models.WarnSectorUnavailable, "sector analysis", ticker, err)
			return nil
		}
		overview.Sector = sector
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview.Warnings = wc.GetWarnings()
	sort.Slice(overview.Warnings, func(i, j int) bool {
		return overview.Warnings[i].Code < overview.Warnings[j].Code
	})
	return &overview, nil
}

func degrade(ctx context.Context, code models.WarningCode, section, ticker string, err error) {
	log.Warnf("Overview for %s loaded without %s: %v", ticker, section, err)
	AddWarning(ctx, models.Warning{
		Code:    code,
		Message: fmt.Sprintf("The %s for %s could not be loaded.", section, ticker),
	})
}
