package apitest

import (
	"net/http"
	"strconv"

	"github.com/epeers/stocklens/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type handler struct {
	store *Store
}

func registerRoutes(r *gin.RouterGroup, h *handler) {
	r.GET("/companies", h.searchCompanies)
	r.GET("/companies/:ticker", h.getCompany)
	r.GET("/companies/:ticker/financials", h.getFinancials)
	r.GET("/companies/:ticker/financials/statements", h.getStatements)

	r.GET("/analysis/:ticker", h.getAnalysis)
	r.PUT("/analysis/:ticker", h.updateAnalysis)

	r.GET("/sectors/list", h.listSectors)
	r.GET("/sectors/:ticker", h.getSector)
	r.GET("/sectors/:ticker/peers", h.getPeers)

	r.GET("/valuations/:ticker", h.listValuations)
	r.POST("/valuations/:ticker", h.createValuation)
	r.GET("/valuations/:ticker/latest", h.getLatestValuation)
	r.POST("/valuations/:ticker/sensitivity", h.getSensitivity)
	r.GET("/valuations/:ticker/:id", h.getValuation)
	r.PUT("/valuations/:ticker/:id", h.updateValuation)
	r.DELETE("/valuations/:ticker/:id", h.deleteValuation)

	r.GET("/stories/:ticker", h.getStory)
	r.PUT("/stories/:ticker", h.saveStory)
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: message,
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

// company resolves the :ticker param, writing a 404 if it is unknown
func (h *handler) company(c *gin.Context) (Company, bool) {
	company, exists := h.store.Company(c.Param("ticker"))
	if !exists {
		notFound(c, "company not found")
		return Company{}, false
	}
	return company, true
}

// searchCompanies handles GET /companies?term=
func (h *handler) searchCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Search(c.Query("term")))
}

// getCompany handles GET /companies/:ticker
func (h *handler) getCompany(c *gin.Context) {
	company, ok := h.company(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"company":          company.Stock,
		"balanceSheets":    company.Statements.BalanceSheets,
		"incomeStatements": company.Statements.IncomeStatements,
		"cashFlows":        company.Statements.CashFlows,
	})
}

// getFinancials handles GET /companies/:ticker/financials
func (h *handler) getFinancials(c *gin.Context) {
	company, ok := h.company(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, company.Financials)
}

// getStatements handles GET /companies/:ticker/financials/statements
func (h *handler) getStatements(c *gin.Context) {
	company, ok := h.company(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, company.Statements)
}

// getAnalysis handles GET /analysis/:ticker
func (h *handler) getAnalysis(c *gin.Context) {
	company, ok := h.company(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, company.Analysis)
}

// updateAnalysis handles PUT /analysis/:ticker
func (h *handler) updateAnalysis(c *gin.Context) {
	var req models.UpdateMetadataPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.PeterLynchCategory != nil && !req.PeterLynchCategory.Valid() {
		badRequest(c, "unknown peterLynchCategory")
		return
	}

	analysis, exists := h.store.SetUserInputs(c.Param("ticker"), req)
	if !exists {
		notFound(c, "company not found")
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// listSectors handles GET /sectors/list
func (h *handler) listSectors(c *gin.Context) {
	industries := h.store.Industries()
	c.JSON(http.StatusOK, models.SectorListResponse{
		Industries: industries,
		Total:      len(industries),
	})
}

// getSector handles GET /sectors/:ticker
func (h *handler) getSector(c *gin.Context) {
	company, ok := h.company(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, company.Sector)
}

// getPeers handles GET /sectors/:ticker/peers?limit=
func (h *handler) getPeers(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	company, ok := h.company(c)
	if !ok {
		return
	}
	peers := company.Sector.PeerComparison
	if len(peers) > limit {
		peers = peers[:limit]
	}
	if peers == nil {
		peers = []models.PeerCompany{}
	}
	industryName := company.Sector.Industry.Name
	c.JSON(http.StatusOK, models.PeerComparisonResponse{
		Ticker:       company.Stock.Ticker,
		CompanyName:  company.Stock.Name,
		IndustryName: &industryName,
		Peers:        peers,
	})
}

func (h *handler) valuationResponse(company Company, v models.Valuation) models.ValuationResponse {
	discounted := computeValuation(&v)
	return models.ValuationResponse{
		Ticker:      company.Stock.Ticker,
		CompanyName: company.Stock.Name,
		Valuation:   v,
		Calculation: &models.ValuationCalculation{
			DiscountedFCFs: discounted,
			MarginOfSafety: marginOfSafety(v, company.Stock.Price),
		},
	}
}

// listValuations handles GET /valuations/:ticker
func (h *handler) listValuations(c *gin.Context) {
	company, ok := h.company(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.ValuationsListResponse{
		Ticker:      company.Stock.Ticker,
		CompanyName: company.Stock.Name,
		Valuations:  h.store.Valuations(company.Stock.Ticker),
	})
}

// createValuation handles POST /valuations/:ticker
func (h *handler) createValuation(c *gin.Context) {
	company, ok := h.company(c)
	if !ok {
		return
	}

	var req models.CreateValuationPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	v := models.Valuation{
		CompanyID:           company.Stock.ID,
		ScenarioName:        req.ScenarioName,
		DiscountRate:        decimal.NewFromFloat(req.DiscountRate),
		PerpetualGrowthRate: decimal.NewFromFloat(req.PerpetualGrowthRate),
		SharesOutstanding:   req.SharesOutstanding,
	}
	if v.ScenarioName == "" {
		v.ScenarioName = "Base Case"
	}
	if req.Notes != "" {
		notes := req.Notes
		v.Notes = &notes
	}
	var projections [models.ProjectionYears]*float64
	for i, fcf := range req.Projections() {
		projections[i] = &fcf
	}
	v.SetProjections(projections)
	computeValuation(&v)

	v = h.store.AddValuation(company.Stock.Ticker, v)
	c.JSON(http.StatusCreated, h.valuationResponse(company, v))
}

// getLatestValuation handles GET /valuations/:ticker/latest
func (h *handler) getLatestValuation(c *gin.Context) {
	company, ok := h.company(c)
	if !ok {
		return
	}
	valuations := h.store.Valuations(company.Stock.Ticker)
	if len(valuations) == 0 {
		notFound(c, "no valuations found")
		return
	}
	c.JSON(http.StatusOK, h.valuationResponse(company, valuations[0]))
}

// getValuation handles GET /valuations/:ticker/:id
func (h *handler) getValuation(c *gin.Context) {
	company, ok := h.company(c)
	if !ok {
		return
	}
	v, exists := h.store.Valuation(company.Stock.Ticker, c.Param("id"))
	if !exists {
		notFound(c, "valuation not found")
		return
	}
	c.JSON(http.StatusOK, h.valuationResponse(company, v))
}

// updateValuation handles PUT /valuations/:ticker/:id
func (h *handler) updateValuation(c *gin.Context) {
	company, ok := h.company(c)
	if !ok {
		return
	}

	var req models.UpdateValuationPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	v, exists := h.store.Valuation(company.Stock.Ticker, c.Param("id"))
	if !exists {
		notFound(c, "valuation not found")
		return
	}

	if req.ScenarioName != nil {
		v.ScenarioName = *req.ScenarioName
	}
	if req.DiscountRate != nil {
		v.DiscountRate = decimal.NewFromFloat(*req.DiscountRate)
	}
	if req.PerpetualGrowthRate != nil {
		v.PerpetualGrowthRate = decimal.NewFromFloat(*req.PerpetualGrowthRate)
	}
	if req.SharesOutstanding != nil {
		v.SharesOutstanding = *req.SharesOutstanding
	}
	if req.Notes != nil {
		v.Notes = req.Notes
	}
	projections := v.Projections()
	for i, fcf := range req.Projections() {
		if fcf != nil {
			projections[i] = fcf
		}
	}
	v.SetProjections(projections)
	computeValuation(&v)

	v, _ = h.store.ReplaceValuation(company.Stock.Ticker, v)
	c.JSON(http.StatusOK, h.valuationResponse(company, v))
}

// deleteValuation handles DELETE /valuations/:ticker/:id
func (h *handler) deleteValuation(c *gin.Context) {
	company, ok := h.company(c)
	if !ok {
		return
	}
	if !h.store.DeleteValuation(company.Stock.Ticker, c.Param("id")) {
		notFound(c, "valuation not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// getSensitivity handles POST /valuations/:ticker/sensitivity
func (h *handler) getSensitivity(c *gin.Context) {
	company, ok := h.company(c)
	if !ok {
		return
	}

	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ValuationID == "" {
		badRequest(c, "valuationId is required")
		return
	}

	v, exists := h.store.Valuation(company.Stock.Ticker, req.ValuationID)
	if !exists {
		notFound(c, "valuation not found")
		return
	}
	computeValuation(&v)

	c.JSON(http.StatusOK, models.SensitivityResponse{
		Ticker:           company.Stock.Ticker,
		CompanyName:      company.Stock.Name,
		BaseValuation:    v.IntrinsicValuePerShare.Decimal,
		CurrentPrice:     company.Stock.Price,
		SensitivityTable: sensitivityTable(v),
	})
}

// getStory handles GET /stories/:ticker
func (h *handler) getStory(c *gin.Context) {
	company, ok := h.company(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.StoryResponse{
		Ticker:      company.Stock.Ticker,
		CompanyName: company.Stock.Name,
		Story:       h.store.Story(company.Stock.Ticker),
	})
}

// saveStory handles PUT /stories/:ticker
func (h *handler) saveStory(c *gin.Context) {
	company, ok := h.company(c)
	if !ok {
		return
	}

	var req models.SaveStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.StoryResponse{
		Ticker:      company.Stock.Ticker,
		CompanyName: company.Stock.Name,
		Story:       h.store.SaveStory(company.Stock.Ticker, req.Content),
	})
}
