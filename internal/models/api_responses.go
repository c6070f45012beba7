package models

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// CompanyDetailResponse is the body of GET /companies/{ticker}. The statement
// arrays are left undecoded; the statements endpoint is the typed source for them.
type CompanyDetailResponse struct {
	Company          *Stock           `json:"company" validate:"required"`
	BalanceSheets    []map[string]any `json:"balanceSheets"`
	IncomeStatements []map[string]any `json:"incomeStatements"`
	CashFlows        []map[string]any `json:"cashFlows"`
}

// FinancialsSummary is the body of GET /companies/{ticker}/financials
type FinancialsSummary struct {
	Ticker       string        `json:"ticker" validate:"required"`
	CompanyName  string        `json:"companyName"`
	Shares       float64       `json:"shares"`
	CurrentFCF   *float64      `json:"currentFCF"`
	LatestPeriod *FlexibleDate `json:"latestPeriod"`
}
