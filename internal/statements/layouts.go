package statements

import (
	"github.com/epeers/stocklens/internal/format"
	"github.com/epeers/stocklens/internal/models"
)

type bs = models.BalanceSheet
type is = models.IncomeStatement
type cf = models.CashFlowStatement

var balanceSheetLayout = []section[bs]{
	{title: "Current Assets", items: []lineItem[bs]{
		{label: "Cash & Equivalents", key: "cashAndEquivalents", value: func(s *bs) *float64 { return s.CashAndEquivalents }, indent: 1},
		{label: "Accounts Receivable", key: "accountsReceivable", value: func(s *bs) *float64 { return s.AccountsReceivable }, indent: 1},
		{label: "Inventories", key: "inventories", value: func(s *bs) *float64 { return s.Inventories }, indent: 1},
		{label: "Other Current Assets", key: "otherCurrentAssets", value: func(s *bs) *float64 { return s.OtherCurrentAssets }, indent: 1},
		{label: "Total Current Assets", key: "totalCurrentAssets", value: func(s *bs) *float64 { return s.TotalCurrentAssets }, subtotal: true},
	}},
	{title: "Non-Current Assets", items: []lineItem[bs]{
		{label: "Investments", key: "investiments", value: func(s *bs) *float64 { return s.Investments }, indent: 1},
		{label: "Property, Plant & Equipment", key: "propertyPlantEquipment", value: func(s *bs) *float64 { return s.PropertyPlantEquipment }, indent: 1},
		{label: "Goodwill", key: "goodwill", value: func(s *bs) *float64 { return s.Goodwill }, indent: 1},
		{label: "Intangible Assets", key: "intangibleAssets", value: func(s *bs) *float64 { return s.IntangibleAssets }, indent: 1},
		{label: "Other Assets", key: "otherAssets", value: func(s *bs) *float64 { return s.OtherAssets }, indent: 1},
		{label: "Total Assets", key: "totalAssets", value: func(s *bs) *float64 { return s.TotalAssets }, total: true},
	}},
	{title: "Current Liabilities", items: []lineItem[bs]{
		{label: "Short-Term Debt", key: "shortTermDebt", value: func(s *bs) *float64 { return s.ShortTermDebt }, indent: 1},
		{label: "Accounts Payable", key: "accountsPayable", value: func(s *bs) *float64 { return s.AccountsPayable }, indent: 1},
		{label: "Payroll", key: "payroll", value: func(s *bs) *float64 { return s.Payroll }, indent: 1},
		{label: "Income Taxes", key: "incomeTaxes", value: func(s *bs) *float64 { return s.IncomeTaxes }, indent: 1},
		{label: "Other Current Liabilities", key: "otherCurrentLiabilities", value: func(s *bs) *float64 { return s.OtherCurrentLiabilities }, indent: 1},
		{label: "Total Current Liabilities", key: "totalCurrentLiabilities", value: func(s *bs) *float64 { return s.TotalCurrentLiabilities }, subtotal: true},
	}},
	{title: "Non-Current Liabilities", items: []lineItem[bs]{
		{label: "Long-Term Debt", key: "longTermDebt", value: func(s *bs) *float64 { return s.LongTermDebt }, indent: 1},
		{label: "Other Liabilities", key: "otherLiabilities", value: func(s *bs) *float64 { return s.OtherLiabilities }, indent: 1},
		{label: "Total Liabilities", key: "totalLiabilities", value: func(s *bs) *float64 { return s.TotalLiabilities }, total: true},
	}},
	{title: "Equity", items: []lineItem[bs]{
		{label: "Common Stock", key: "commonStock", value: func(s *bs) *float64 { return s.CommonStock }, indent: 1},
		{label: "Retained Capital", key: "retainedCapital", value: func(s *bs) *float64 { return s.RetainedCapital }, indent: 1},
		{label: "Accumulated Comprehensive Income", key: "accumulatedCompreensiveIncome", value: func(s *bs) *float64 { return s.AccumulatedComprehensiveIncome }, indent: 1},
		{label: "Total Stakeholders' Equity", key: "totalStakeholdersEquity", value: func(s *bs) *float64 { return s.TotalStakeholdersEquity }, subtotal: true},
		{label: "Total Liabilities & Equity", key: "totalLiabilitiesAndStakeholdersEquity", value: func(s *bs) *float64 { return s.TotalLiabilitiesAndStakeholdersEquity }, total: true},
	}},
}

var incomeStatementLayout = []section[is]{
	{title: "Revenue & Cost", items: []lineItem[is]{
		{label: "Net Sales", key: "netSales", value: func(s *is) *float64 { return s.NetSales }},
		{label: "Cost of Goods Sold", key: "costOfGoodsSold", value: func(s *is) *float64 { return s.CostOfGoodsSold }, indent: 1},
		{label: "Gross Profit", key: "grossProfit", value: func(s *is) *float64 { return s.GrossProfit }, subtotal: true},
	}},
	{title: "Operating Expenses", items: []lineItem[is]{
		{label: "Selling, General & Administrative", key: "sellingGeneralAdministrative", value: func(s *is) *float64 { return s.SellingGeneralAdministrative }, indent: 1},
		{label: "Research & Development", key: "researchAndDevelopment", value: func(s *is) *float64 { return s.ResearchAndDevelopment }, indent: 1},
		{label: "Other Expenses (Income)", key: "otherExpensesIncome", value: func(s *is) *float64 { return s.OtherExpensesIncome }, indent: 1},
		{label: "Operating Income", key: "operatingIncome", value: func(s *is) *float64 { return s.OperatingIncome }, subtotal: true},
	}},
	{title: "Non-Operating Items", items: []lineItem[is]{
		{label: "Interest Expense", key: "interestExpense", value: func(s *is) *float64 { return s.InterestExpense }, indent: 1},
		{label: "Other Income (Expense)", key: "otherIncomeExpense", value: func(s *is) *float64 { return s.OtherIncomeExpense }, indent: 1},
		{label: "Pretax Income", key: "pretaxIncome", value: func(s *is) *float64 { return s.PretaxIncome }, subtotal: true},
	}},
	{title: "Net Income", items: []lineItem[is]{
		{label: "Income Taxes", key: "incomeTaxes", value: func(s *is) *float64 { return s.IncomeTaxes }, indent: 1},
		{label: "Net Income", key: "netIncome", value: func(s *is) *float64 { return s.NetIncome }, total: true},
	}},
	{title: "Per Share Data", items: []lineItem[is]{
		{label: "EPS (Basic)", key: "epsBasic", value: func(s *is) *float64 { return format.FromDecimal(s.EPSBasic) }},
		{label: "EPS (Diluted)", key: "epsDiluted", value: func(s *is) *float64 { return format.FromDecimal(s.EPSDiluted) }},
		{label: "Weighted Avg Shares", key: "weightedAvgSharesOutstanding", value: func(s *is) *float64 { return s.WeightedAvgSharesOutstanding }},
		{label: "Weighted Avg Shares (Diluted)", key: "weightedAvgSharesOutstandingDiluted", value: func(s *is) *float64 { return s.WeightedAvgSharesOutstandingDiluted }},
	}},
}

var cashFlowLayout = []section[cf]{
	{title: "Operating Activities", items: []lineItem[cf]{
		{label: "Net Income", key: "netIncome", value: func(s *cf) *float64 { return s.NetIncome }},
		{label: "Depreciation & Amortization", key: "depreciationAmortization", value: func(s *cf) *float64 { return s.DepreciationAmortization }, indent: 1},
		{label: "Deferred Income Tax", key: "deferredIncomeTax", value: func(s *cf) *float64 { return s.DeferredIncomeTax }, indent: 1},
		{label: "Pension Contribution", key: "pensionContribution", value: func(s *cf) *float64 { return s.PensionContribution }, indent: 1},
	}},
	{title: "Changes in Working Capital", items: []lineItem[cf]{
		{label: "Accounts Receivable", key: "accountsReceivableChange", value: func(s *cf) *float64 { return s.AccountsReceivableChange }, indent: 1},
		{label: "Inventories", key: "inventoriesChange", value: func(s *cf) *float64 { return s.InventoriesChange }, indent: 1},
		{label: "Other Current Assets", key: "otherCurrentAssetsChange", value: func(s *cf) *float64 { return s.OtherCurrentAssetsChange }, indent: 1},
		{label: "Other Assets", key: "otherAssetsChange", value: func(s *cf) *float64 { return s.OtherAssetsChange }, indent: 1},
		{label: "Accounts Payable", key: "accountsPayableChange", value: func(s *cf) *float64 { return s.AccountsPayableChange }, indent: 1},
		{label: "Other Liabilities", key: "otherLiabilitiesChange", value: func(s *cf) *float64 { return s.OtherLiabilitiesChange }, indent: 1},
		{label: "Net Cash from Operations", key: "netCashFromOperations", value: func(s *cf) *float64 { return s.NetCashFromOperations }, subtotal: true},
	}},
	{title: "Investing Activities", items: []lineItem[cf]{
		{label: "Capital Expenditures", key: "capitalExpenditures", value: func(s *cf) *float64 { return s.CapitalExpenditures }, indent: 1},
		{label: "Acquisitions", key: "acquisitions", value: func(s *cf) *float64 { return s.Acquisitions }, indent: 1},
		{label: "Asset Sales", key: "assetSales", value: func(s *cf) *float64 { return s.AssetSales }, indent: 1},
		{label: "Other Investing Activities", key: "otherInvestingActivities", value: func(s *cf) *float64 { return s.OtherInvestingActivities }, indent: 1},
		{label: "Net Cash from Investing", key: "netCashFromInvesting", value: func(s *cf) *float64 { return s.NetCashFromInvesting }, subtotal: true},
	}},
}
