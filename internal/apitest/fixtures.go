package apitest

import (
	"time"

	"github.com/epeers/stocklens/internal/models"
	"github.com/shopspring/decimal"
)

func num(v float64) *float64 { return &v }

func str(s string) *string { return &s }

func date(s string) models.FlexibleDate {
	d, err := models.ParseFlexibleDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

var fixtureTime = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

// DefaultCompanies returns the companies a new Server is seeded with: AAPL with
// two fiscal years of statements (some line items unreported) and MSFT in a
// different industry with no statements.
func DefaultCompanies() []Company {
	return []Company{apple(), microsoft()}
}

func apple() Company {
	consumerElectronics := models.Industry{
		ID:          "ind-consumer-electronics",
		Name:        "Consumer Electronics",
		Description: str("Phones, computers and wearables"),
	}

	stock := models.Stock{
		ID:           "cmp-aapl",
		Ticker:       "AAPL",
		Exchange:     "NASDAQ",
		Name:         "Apple Inc.",
		Sector:       str("Technology"),
		Category:     str("stalwart"),
		Price:        price("189.50"),
		Shares:       num(15_550_000_000),
		Website:      str("https://www.apple.com"),
		Description:  str("Designs and sells consumer electronics and services."),
		NextEarnings: func() *models.FlexibleDate { d := date("2025-01-30"); return &d }(),
		CreatedAt:    fixtureTime,
		UpdatedAt:    fixtureTime,
	}

	base := func(id, period string) models.StatementBase {
		return models.StatementBase{
			ID:         id,
			CompanyID:  stock.ID,
			PeriodDate: date(period),
			CreatedAt:  fixtureTime,
			UpdatedAt:  fixtureTime,
		}
	}

	balanceSheets := []models.BalanceSheet{
		{
			StatementBase:           base("bs-aapl-2023", "2023-09-30"),
			CashAndEquivalents:      num(29_965_000_000),
			AccountsReceivable:      num(29_508_000_000),
			Inventories:             num(6_331_000_000),
			OtherCurrentAssets:      num(14_695_000_000),
			TotalCurrentAssets:      num(143_566_000_000),
			Investments:             num(100_544_000_000),
			PropertyPlantEquipment:  num(43_715_000_000),
			OtherAssets:             num(64_758_000_000),
			TotalAssets:             num(352_583_000_000),
			ShortTermDebt:           num(15_807_000_000),
			AccountsPayable:         num(62_611_000_000),
			OtherCurrentLiabilities: num(58_829_000_000),
			TotalCurrentLiabilities: num(145_308_000_000),
			LongTermDebt:            num(95_281_000_000),
			OtherLiabilities:        num(49_848_000_000),
			TotalLiabilities:        num(290_437_000_000),
			CommonStock:             num(73_812_000_000),
			RetainedCapital:         num(-214_000_000),
			AccumulatedComprehensiveIncome:        num(-11_452_000_000),
			TotalStakeholdersEquity:               num(62_146_000_000),
			TotalLiabilitiesAndStakeholdersEquity: num(352_583_000_000),
		},
		{
			StatementBase:           base("bs-aapl-2024", "2024-09-28"),
			CashAndEquivalents:      num(29_943_000_000),
			AccountsReceivable:      num(33_410_000_000),
			Inventories:             num(7_286_000_000),
			OtherCurrentAssets:      num(14_287_000_000),
			TotalCurrentAssets:      num(152_987_000_000),
			Investments:             num(91_479_000_000),
			PropertyPlantEquipment:  num(45_680_000_000),
			OtherAssets:             num(74_834_000_000),
			TotalAssets:             num(364_980_000_000),
			ShortTermDebt:           num(20_879_000_000),
			AccountsPayable:         num(68_960_000_000),
			OtherCurrentLiabilities: num(78_304_000_000),
			TotalCurrentLiabilities: num(176_392_000_000),
			LongTermDebt:            num(85_750_000_000),
			OtherLiabilities:        num(45_888_000_000),
			TotalLiabilities:        num(308_030_000_000),
			CommonStock:             num(83_276_000_000),
			RetainedCapital:         num(-19_154_000_000),
			AccumulatedComprehensiveIncome:        num(-7_172_000_000),
			TotalStakeholdersEquity:               num(56_950_000_000),
			TotalLiabilitiesAndStakeholdersEquity: num(364_980_000_000),
		},
	}

	incomeStatements := []models.IncomeStatement{
		{
			StatementBase:                       base("is-aapl-2023", "2023-09-30"),
			NetSales:                            num(383_285_000_000),
			CostOfGoodsSold:                     num(214_137_000_000),
			GrossProfit:                         num(169_148_000_000),
			SellingGeneralAdministrative:        num(24_932_000_000),
			ResearchAndDevelopment:              num(29_915_000_000),
			OperatingIncome:                     num(114_301_000_000),
			OtherIncomeExpense:                  num(-565_000_000),
			PretaxIncome:                        num(113_736_000_000),
			IncomeTaxes:                         num(16_741_000_000),
			NetIncome:                           num(96_995_000_000),
			EPSBasic:                            price("6.16"),
			EPSDiluted:                          price("6.13"),
			WeightedAvgSharesOutstanding:        num(15_744_231_000),
			WeightedAvgSharesOutstandingDiluted: num(15_812_547_000),
		},
		{
			StatementBase:                       base("is-aapl-2024", "2024-09-28"),
			NetSales:                            num(391_035_000_000),
			CostOfGoodsSold:                     num(210_352_000_000),
			GrossProfit:                         num(180_683_000_000),
			SellingGeneralAdministrative:        num(26_097_000_000),
			ResearchAndDevelopment:              num(31_370_000_000),
			OperatingIncome:                     num(123_216_000_000),
			OtherIncomeExpense:                  num(269_000_000),
			PretaxIncome:                        num(123_485_000_000),
			IncomeTaxes:                         num(29_749_000_000),
			NetIncome:                           num(93_736_000_000),
			EPSBasic:                            price("6.11"),
			EPSDiluted:                          price("6.08"),
			WeightedAvgSharesOutstanding:        num(15_343_783_000),
			WeightedAvgSharesOutstandingDiluted: num(15_408_095_000),
		},
	}

	cashFlows := []models.CashFlowStatement{
		{
			StatementBase:            base("cf-aapl-2023", "2023-09-30"),
			NetIncome:                num(96_995_000_000),
			DepreciationAmortization: num(11_519_000_000),
			AccountsReceivableChange: num(-1_688_000_000),
			InventoriesChange:        num(-1_618_000_000),
			AccountsPayableChange:    num(-1_889_000_000),
			NetCashFromOperations:    num(110_543_000_000),
			CapitalExpenditures:      num(-10_959_000_000),
			OtherInvestingActivities: num(14_544_000_000),
			NetCashFromInvesting:     num(3_705_000_000),
		},
		{
			StatementBase:            base("cf-aapl-2024", "2024-09-28"),
			NetIncome:                num(93_736_000_000),
			DepreciationAmortization: num(11_445_000_000),
			AccountsReceivableChange: num(-3_651_000_000),
			InventoriesChange:        num(-1_046_000_000),
			AccountsPayableChange:    num(6_020_000_000),
			NetCashFromOperations:    num(118_254_000_000),
			CapitalExpenditures:      num(-9_447_000_000),
			OtherInvestingActivities: num(12_362_000_000),
			NetCashFromInvesting:     num(2_935_000_000),
		},
	}

	oldest, latest := date("2023-09-30"), date("2024-09-28")
	statements := models.FinancialStatementsResponse{
		Ticker:           stock.Ticker,
		CompanyName:      str(stock.Name),
		BalanceSheets:    balanceSheets,
		IncomeStatements: incomeStatements,
		CashFlows:        cashFlows,
		Metadata: models.StatementsMetadata{
			BalanceSheetsCount:    len(balanceSheets),
			IncomeStatementsCount: len(incomeStatements),
			CashFlowsCount:        len(cashFlows),
			OldestPeriod:          &oldest,
			LatestPeriod:          &latest,
		},
	}

	ipo := date("1980-12-12")
	analysis := models.CompanyAnalysis{
		CompanyInfo: models.CompanyInfo{
			Category:  "stalwart",
			Exchange:  stock.Exchange,
			MarketCap: 2_946_725_000_000,
			Name:      stock.Name,
			Price:     189.50,
			Sector:    "Technology",
			Shares:    15_550_000_000,
			Ticker:    stock.Ticker,
		},
		QuickAnalysis: models.QuickAnalysisMetrics{
			CapitalizationSize:           models.CapMega,
			IPODate:                      &ipo,
			HasEverMadeOperatingProfit:   true,
			ConsistentCashFlowGeneration: true,
			AverageROE:                   1.56,
			ROEAbove10Percent:            true,
			FinancialLeverageRatio:       6.41,
			DebtToEquity:                 1.87,
			LeverageLevel:                "high",
			EarningsGrowthConsistency:    "consistent",
			EarningsData: &models.EarningsData{
				EPSHistory:      []models.EPSPoint{{Year: 2023, EPS: 6.13}, {Year: 2024, EPS: 6.08}},
				GrowthRate:      num(-0.0082),
				VolatilityScore: num(0.04),
				Consistency:     "stable",
			},
			TotalDebt:          106_629_000_000,
			TotalAssets:        364_980_000_000,
			DebtTrend:          "decreasing",
			OperatingCashFlow:  []float64{110_543_000_000, 118_254_000_000},
			CashFlowTrend:      "growing",
			SharesOutstanding:  []float64{15_812_547_000, 15_408_095_000},
			ShareDilution:      "buyback",
			DilutionPercentage: -2.56,
		},
	}

	financials := models.FinancialsSummary{
		Ticker:       stock.Ticker,
		CompanyName:  stock.Name,
		Shares:       15_550_000_000,
		CurrentFCF:   num(108_807_000_000),
		LatestPeriod: &latest,
	}

	peers := []models.PeerCompany{
		{ID: "cmp-aapl", Ticker: "AAPL", Name: "Apple Inc.", MarketCap: num(2_946_725_000_000), Revenue: num(391_035_000_000), ProfitMargin: num(0.2397), RevenueGrowth: num(0.0202), Price: price("189.50")},
		{ID: "cmp-sony", Ticker: "SONY", Name: "Sony Group Corporation", MarketCap: num(112_400_000_000), Revenue: num(88_500_000_000), ProfitMargin: num(0.0712), RevenueGrowth: num(0.0410), Price: price("91.20")},
		{ID: "cmp-gpro", Ticker: "GPRO", Name: "GoPro, Inc.", MarketCap: num(210_000_000), Revenue: num(801_000_000), ProfitMargin: num(-0.54), RevenueGrowth: nil, Price: price("1.35")},
	}

	sector := models.SectorAnalysisResponse{
		Ticker:      stock.Ticker,
		CompanyName: stock.Name,
		Industry:    consumerElectronics,
		Sector:      &models.Sector{ID: "sec-technology", Name: "Technology"},
		IndustryOverview: models.IndustryOverview{
			TotalCompanies:   3,
			AvgMarketCap:     1_019_778_333_333,
			MedianMarketCap:  112_400_000_000,
			TotalMarketCap:   3_059_335_000_000,
			AvgRevenue:       num(160_112_000_000),
			AvgProfitMargin:  num(-0.0764),
			AvgRevenueGrowth: nil,
		},
		CompanyPosition: models.CompanyPosition{
			MarketCapRank:    models.CompanyRanking{Metric: "marketCap", Rank: 1, Total: 3, Percentile: 100, Value: num(2_946_725_000_000)},
			RevenueRank:      models.CompanyRanking{Metric: "revenue", Rank: 1, Total: 3, Percentile: 100, Value: num(391_035_000_000)},
			ProfitMarginRank: models.CompanyRanking{Metric: "profitMargin", Rank: 1, Total: 3, Percentile: 100, Value: num(0.2397)},
		},
		PeerComparison: peers,
	}

	return Company{
		Stock:      stock,
		Analysis:   analysis,
		Financials: financials,
		Statements: statements,
		Sector:     sector,
		Industry: models.IndustryListItem{
			ID:             consumerElectronics.ID,
			Name:           consumerElectronics.Name,
			Description:    consumerElectronics.Description,
			CompanyCount:   3,
			TotalMarketCap: 3_059_335_000_000,
		},
	}
}

func microsoft() Company {
	software := models.Industry{ID: "ind-software", Name: "Software - Infrastructure"}

	stock := models.Stock{
		ID:        "cmp-msft",
		Ticker:    "MSFT",
		Exchange:  "NASDAQ",
		Name:      "Microsoft Corporation",
		Sector:    str("Technology"),
		Price:     price("415.10"),
		Shares:    num(7_430_000_000),
		CreatedAt: fixtureTime,
		UpdatedAt: fixtureTime,
	}

	return Company{
		Stock: stock,
		Analysis: models.CompanyAnalysis{
			CompanyInfo: models.CompanyInfo{
				Exchange:  stock.Exchange,
				MarketCap: 3_084_193_000_000,
				Name:      stock.Name,
				Price:     415.10,
				Sector:    "Technology",
				Shares:    7_430_000_000,
				Ticker:    stock.Ticker,
			},
			QuickAnalysis: models.QuickAnalysisMetrics{
				CapitalizationSize:        models.CapMega,
				EarningsGrowthConsistency: "consistent",
			},
		},
		Financials: models.FinancialsSummary{
			Ticker:      stock.Ticker,
			CompanyName: stock.Name,
			Shares:      7_430_000_000,
		},
		Statements: models.FinancialStatementsResponse{
			Ticker:           stock.Ticker,
			CompanyName:      str(stock.Name),
			BalanceSheets:    []models.BalanceSheet{},
			IncomeStatements: []models.IncomeStatement{},
			CashFlows:        []models.CashFlowStatement{},
		},
		Sector: models.SectorAnalysisResponse{
			Ticker:         stock.Ticker,
			CompanyName:    stock.Name,
			Industry:       software,
			PeerComparison: []models.PeerCompany{},
		},
		Industry: models.IndustryListItem{
			ID:             software.ID,
			Name:           software.Name,
			CompanyCount:   1,
			TotalMarketCap: 3_084_193_000_000,
		},
	}
}
