package models

// CompanyCategory is the Peter Lynch classification a user assigns to a company
type CompanyCategory string

const (
	CategorySlowGrower CompanyCategory = "slow-grower"
	CategoryStalwart   CompanyCategory = "stalwart"
	CategoryFastGrower CompanyCategory = "fast-grower"
	CategoryCyclical   CompanyCategory = "cyclical"
	CategoryTurnaround CompanyCategory = "turnaround"
	CategoryAssetPlay  CompanyCategory = "asset-play"
)

// CompanyCategories lists every category in display order.
var CompanyCategories = []CompanyCategory{
	CategorySlowGrower,
	CategoryStalwart,
	CategoryFastGrower,
	CategoryCyclical,
	CategoryTurnaround,
	CategoryAssetPlay,
}

// Valid reports whether c is one of the known categories.
func (c CompanyCategory) Valid() bool {
	for _, known := range CompanyCategories {
		if c == known {
			return true
		}
	}
	return false
}

// CapitalizationSize buckets a company by market cap
type CapitalizationSize string

const (
	CapMicro CapitalizationSize = "micro"
	CapSmall CapitalizationSize = "small"
	CapMid   CapitalizationSize = "mid"
	CapLarge CapitalizationSize = "large"
	CapMega  CapitalizationSize = "mega"
)

// CompanyInfo is the header block of an analysis
type CompanyInfo struct {
	Category  string  `json:"category"`
	Exchange  string  `json:"exchange"`
	MarketCap float64 `json:"marketCap"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Sector    string  `json:"sector"`
	Shares    float64 `json:"shares"`
	Ticker    string  `json:"ticker" validate:"required"`
}

// EPSPoint is one year of earnings per share
type EPSPoint struct {
	Year int     `json:"year"`
	EPS  float64 `json:"eps"`
}

// EarningsData describes the earnings history behind the consistency classification
type EarningsData struct {
	EPSHistory      []EPSPoint `json:"epsHistory"`
	GrowthRate      *float64   `json:"growthRate"`
	VolatilityScore *float64   `json:"volatilityScore"`
	// stable, growing, erratic, declining or insufficient-data
	Consistency string `json:"consistency"`
}

// QuickAnalysisMetrics holds the derived fundamentals of a company
type QuickAnalysisMetrics struct {
	// Company Classification
	CapitalizationSize CapitalizationSize `json:"capitalizationSize"`
	IPODate            *FlexibleDate      `json:"ipoDate"`
	IsRecentIPO        bool               `json:"isRecentIPO"`
	IsSpinoff          bool               `json:"isSpinoff"`

	// Profitability Checks
	HasEverMadeOperatingProfit   bool `json:"hasEverMadeOperatingProfit"`
	ConsistentCashFlowGeneration bool `json:"consistentCashFlowGeneration"`

	// Returns & Leverage
	AverageROE             float64 `json:"averageROE"`
	ROEAbove10Percent      bool    `json:"roeAbove10Percent"`
	FinancialLeverageRatio float64 `json:"financialLeverageRatio"`
	DebtToEquity           float64 `json:"debtToEquity"`
	LeverageLevel          string  `json:"leverageLevel"` // low, moderate, high, extreme

	// Earnings
	EarningsGrowthConsistency string        `json:"earningsGrowthConsistency"` // consistent, erratic, declining
	EarningsData              *EarningsData `json:"earningsData,omitempty"`

	// Balance Sheet
	TotalDebt   float64 `json:"totalDebt"`
	TotalAssets float64 `json:"totalAssets"`
	DebtTrend   string  `json:"debtTrend"` // increasing, stable, decreasing

	// Cash Flow
	OperatingCashFlow []float64 `json:"operatingCashFlow"`
	CashFlowTrend     string    `json:"cashFlowTrend"` // growing, stable, declining

	// Shares Outstanding
	SharesOutstanding  []float64 `json:"sharesOutstanding"`
	ShareDilution      string    `json:"shareDilution"` // significant-increase, stable, buyback
	DilutionPercentage float64   `json:"dilutionPercentage"`
}

// UserInputs are the judgment fields a user records against a company
type UserInputs struct {
	SelectedCategory  *CompanyCategory `json:"selectedCategory,omitempty"`
	IsBusinessStable  *bool            `json:"isBusinessStable,omitempty"`
	CanUnderstandDebt *bool            `json:"canUnderstandDebt,omitempty"`
}

// CompanyAnalysis is the body of GET /analysis/{ticker}
type CompanyAnalysis struct {
	CompanyInfo   CompanyInfo          `json:"companyInfo"`
	QuickAnalysis QuickAnalysisMetrics `json:"quickAnalysis"`
	UserInputs    *UserInputs          `json:"userInputs,omitempty"`
}

// UpdateMetadataPayload is the body of PUT /analysis/{ticker}.
// Only the fields that are set are sent.
type UpdateMetadataPayload struct {
	PeterLynchCategory *CompanyCategory `json:"peterLynchCategory,omitempty"`
	IsBusinessStable   *bool            `json:"isBusinessStable,omitempty"`
	CanUnderstandDebt  *bool            `json:"canUnderstandDebt,omitempty"`
}
