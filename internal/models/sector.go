package models

import "github.com/shopspring/decimal"

// Industry identifies the industry a company belongs to
type Industry struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Sector identifies the broader sector of an industry
type Sector struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IndustryOverview holds aggregate statistics across an industry's companies
type IndustryOverview struct {
	TotalCompanies   int      `json:"totalCompanies"`
	AvgMarketCap     float64  `json:"avgMarketCap"`
	MedianMarketCap  float64  `json:"medianMarketCap"`
	TotalMarketCap   float64  `json:"totalMarketCap"`
	AvgRevenue       *float64 `json:"avgRevenue"`
	AvgProfitMargin  *float64 `json:"avgProfitMargin"`
	AvgRevenueGrowth *float64 `json:"avgRevenueGrowth"`
}

// CompanyRanking is a company's standing on one metric within its industry
type CompanyRanking struct {
	Metric     string   `json:"metric"`
	Rank       int      `json:"rank"`
	Total      int      `json:"total"`
	Percentile float64  `json:"percentile"`
	Value      *float64 `json:"value"`
}

// CompanyPosition collects a company's rankings
type CompanyPosition struct {
	MarketCapRank    CompanyRanking `json:"marketCapRank"`
	RevenueRank      CompanyRanking `json:"revenueRank"`
	ProfitMarginRank CompanyRanking `json:"profitMarginRank"`
}

// PeerCompany is one company in a peer comparison
type PeerCompany struct {
	ID            string              `json:"id"`
	Ticker        string              `json:"ticker" validate:"required"`
	Name          string              `json:"name"`
	MarketCap     *float64            `json:"marketCap"`
	Revenue       *float64            `json:"revenue"`
	ProfitMargin  *float64            `json:"profitMargin"`
	RevenueGrowth *float64            `json:"revenueGrowth"`
	Price         decimal.NullDecimal `json:"price"`
}

// SectorAnalysisResponse is the body of GET /sectors/{ticker}
type SectorAnalysisResponse struct {
	Ticker           string           `json:"ticker" validate:"required"`
	CompanyName      string           `json:"companyName"`
	Industry         Industry         `json:"industry"`
	Sector           *Sector          `json:"sector"`
	IndustryOverview IndustryOverview `json:"industryOverview"`
	CompanyPosition  CompanyPosition  `json:"companyPosition"`
	PeerComparison   []PeerCompany    `json:"peerComparison" validate:"dive"`
}

// PeerComparisonResponse is the body of GET /sectors/{ticker}/peers
type PeerComparisonResponse struct {
	Ticker       string        `json:"ticker" validate:"required"`
	CompanyName  string        `json:"companyName"`
	IndustryName *string       `json:"industryName"`
	Peers        []PeerCompany `json:"peers" validate:"required,dive"`
}

// IndustryListItem summarizes one industry
type IndustryListItem struct {
	ID             string  `json:"id" validate:"required"`
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	CompanyCount   int     `json:"companyCount"`
	TotalMarketCap float64 `json:"totalMarketCap"`
}

// SectorListResponse is the body of GET /sectors/list
type SectorListResponse struct {
	Industries []IndustryListItem `json:"industries" validate:"required,dive"`
	Total      int                `json:"total"`
}
