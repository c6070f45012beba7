package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementBase holds the fields every financial statement shares
type StatementBase struct {
	ID         string       `json:"id" validate:"required"`
	CompanyID  string       `json:"companyId"`
	PeriodDate FlexibleDate `json:"periodDate"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// BalanceSheet is one reporting period of a balance sheet.
// Every line item is nullable; nil means the figure was not reported.
type BalanceSheet struct {
	StatementBase

	// Current Assets
	CashAndEquivalents *float64 `json:"cashAndEquivalents"`
	AccountsReceivable *float64 `json:"accountsReceivable"`
	Inventories        *float64 `json:"inventories"`
	OtherCurrentAssets *float64 `json:"otherCurrentAssets"`
	TotalCurrentAssets *float64 `json:"totalCurrentAssets"`

	// Non-Current Assets
	Investments            *float64 `json:"investiments"` // backend column keeps the misspelling
	PropertyPlantEquipment *float64 `json:"propertyPlantEquipment"`
	Goodwill               *float64 `json:"goodwill"`
	IntangibleAssets       *float64 `json:"intangibleAssets"`
	OtherAssets            *float64 `json:"otherAssets"`
	TotalAssets            *float64 `json:"totalAssets"`

	// Current Liabilities
	ShortTermDebt           *float64 `json:"shortTermDebt"`
	AccountsPayable         *float64 `json:"accountsPayable"`
	Payroll                 *float64 `json:"payroll"`
	IncomeTaxes             *float64 `json:"incomeTaxes"`
	OtherCurrentLiabilities *float64 `json:"otherCurrentLiabilities"`
	TotalCurrentLiabilities *float64 `json:"totalCurrentLiabilities"`

	// Non-Current Liabilities
	LongTermDebt     *float64 `json:"longTermDebt"`
	OtherLiabilities *float64 `json:"otherLiabilities"`
	TotalLiabilities *float64 `json:"totalLiabilities"`

	// Equity
	CommonStock                           *float64 `json:"commonStock"`
	RetainedCapital                       *float64 `json:"retainedCapital"`
	AccumulatedComprehensiveIncome        *float64 `json:"accumulatedCompreensiveIncome"` // misspelled on the wire
	TotalStakeholdersEquity               *float64 `json:"totalStakeholdersEquity"`
	TotalLiabilitiesAndStakeholdersEquity *float64 `json:"totalLiabilitiesAndStakeholdersEquity"`
}

// IncomeStatement is one reporting period of an income statement
type IncomeStatement struct {
	StatementBase

	// Revenue & Cost
	NetSales        *float64 `json:"netSales"`
	CostOfGoodsSold *float64 `json:"costOfGoodsSold"`
	GrossProfit     *float64 `json:"grossProfit"`

	// Operating Expenses
	SellingGeneralAdministrative *float64 `json:"sellingGeneralAdministrative"`
	ResearchAndDevelopment       *float64 `json:"researchAndDevelopment"`
	OtherExpensesIncome          *float64 `json:"otherExpensesIncome"`
	OperatingIncome              *float64 `json:"operatingIncome"`

	// Non-Operating Items
	InterestExpense    *float64 `json:"interestExpense"`
	OtherIncomeExpense *float64 `json:"otherIncomeExpense"`
	PretaxIncome       *float64 `json:"pretaxIncome"`

	// Net Income
	IncomeTaxes *float64 `json:"incomeTaxes"`
	NetIncome   *float64 `json:"netIncome"`

	// Per Share Data, decimals serialized as strings
	EPSBasic                            decimal.NullDecimal `json:"epsBasic"`
	EPSDiluted                          decimal.NullDecimal `json:"epsDiluted"`
	WeightedAvgSharesOutstanding        *float64            `json:"weightedAvgSharesOutstanding"`
	WeightedAvgSharesOutstandingDiluted *float64            `json:"weightedAvgSharesOutstandingDiluted"`
}

// CashFlowStatement is one reporting period of a cash flow statement
type CashFlowStatement struct {
	StatementBase

	// Operating Activities
	NetIncome                *float64 `json:"netIncome"`
	DepreciationAmortization *float64 `json:"depreciationAmortization"`
	DeferredIncomeTax        *float64 `json:"deferredIncomeTax"`
	PensionContribution      *float64 `json:"pensionContribution"`

	// Changes in Working Capital
	AccountsReceivableChange *float64 `json:"accountsReceivableChange"`
	InventoriesChange        *float64 `json:"inventoriesChange"`
	OtherCurrentAssetsChange *float64 `json:"otherCurrentAssetsChange"`
	OtherAssetsChange        *float64 `json:"otherAssetsChange"`
	AccountsPayableChange    *float64 `json:"accountsPayableChange"`
	OtherLiabilitiesChange   *float64 `json:"otherLiabilitiesChange"`
	NetCashFromOperations    *float64 `json:"netCashFromOperations"`

	// Investing Activities
	CapitalExpenditures      *float64 `json:"capitalExpenditures"`
	Acquisitions             *float64 `json:"acquisitions"`
	AssetSales               *float64 `json:"assetSales"`
	OtherInvestingActivities *float64 `json:"otherInvestingActivities"`
	NetCashFromInvesting     *float64 `json:"netCashFromInvesting"`
}

// StatementsMetadata summarizes the statement arrays of a response
type StatementsMetadata struct {
	BalanceSheetsCount    int           `json:"balanceSheetsCount"`
	IncomeStatementsCount int           `json:"incomeStatementsCount"`
	CashFlowsCount        int           `json:"cashFlowsCount"`
	OldestPeriod          *FlexibleDate `json:"oldestPeriod"`
	LatestPeriod          *FlexibleDate `json:"latestPeriod"`
}

// FinancialStatementsResponse is the body of GET /companies/{ticker}/financials/statements
type FinancialStatementsResponse struct {
	Ticker           string              `json:"ticker" validate:"required"`
	CompanyName      *string             `json:"companyName"`
	BalanceSheets    []BalanceSheet      `json:"balanceSheets" validate:"required,dive"`
	IncomeStatements []IncomeStatement   `json:"incomeStatements" validate:"required,dive"`
	CashFlows        []CashFlowStatement `json:"cashFlows" validate:"required,dive"`
	Metadata         StatementsMetadata  `json:"metadata"`
}

// StatementType identifies one of the three statement families
type StatementType string

const (
	StatementBalanceSheet    StatementType = "balance-sheet"
	StatementIncomeStatement StatementType = "income-statement"
	StatementCashFlow        StatementType = "cash-flow"
)

// StatementTab describes how a statement type is presented
type StatementTab struct {
	ID    StatementType `json:"id"`
	Label string        `json:"label"`
	Icon  string        `json:"icon"`
}

// StatementTabs lists the statement types in display order
var StatementTabs = []StatementTab{
	{ID: StatementIncomeStatement, Label: "Income Statement", Icon: "💰"},
	{ID: StatementBalanceSheet, Label: "Balance Sheet", Icon: "⚖️"},
	{ID: StatementCashFlow, Label: "Cash Flow", Icon: "💵"},
}

// FinancialRow is one line item laid out across reporting periods
type FinancialRow struct {
	Label      string     `json:"label"`
	Key        string     `json:"key"`
	Values     []*float64 `json:"values"`
	IsSubtotal bool       `json:"isSubtotal,omitempty"`
	IsTotal    bool       `json:"isTotal,omitempty"`
	IsHeader   bool       `json:"isHeader,omitempty"`
	Indent     int        `json:"indent,omitempty"`
}

// FinancialSection groups rows under a heading
type FinancialSection struct {
	Title string         `json:"title"`
	Rows  []FinancialRow `json:"rows"`
}
