package handlers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/epeers/stocklens/internal/api"
	"github.com/epeers/stocklens/internal/format"
	"github.com/epeers/stocklens/internal/models"
	"github.com/epeers/stocklens/internal/statements"
	"github.com/epeers/stocklens/internal/util"
)

// Search handles `search <term>`
func (h *Handler) Search(ctx context.Context, args []string) error {
	fs := h.flags("search")
	rest, err := h.parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	results, err := h.client.Stocks.Search(ctx, rest[0])
	if err != nil {
		return err
	}
	if len(results) == 0 {
		h.out.Muted("No companies match %q", rest[0])
		return nil
	}

	widths := []int{8, 10, 36, 20}
	h.out.HeaderRow(widths, "Ticker", "Exchange", "Name", "Sector")
	for _, r := range results {
		h.out.Row(widths, r.Ticker, r.Exchange, r.Name, orPlaceholder(r.Sector))
	}
	return nil
}

// Company handles `company <ticker>`
func (h *Handler) Company(ctx context.Context, args []string) error {
	fs := h.flags("company")
	rest, err := h.parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	overview, err := h.overview.Load(ctx, rest[0])
	if err != nil {
		return err
	}

	c := overview.Company
	h.out.Heading(fmt.Sprintf("%s (%s)", c.Name, c.Ticker))
	h.out.Field("Exchange", c.Exchange)
	h.out.Field("Sector", orPlaceholder(c.Sector))
	now := h.now()
	h.out.Field("Price", formatPrice(c.Price))
	h.out.Field("Next Price Update", util.NextPriceUpdate(now).In(util.MarketLocation()).Format("Mon Jan 2, 3:04 PM MST"))
	h.out.Field("Shares Outstanding", format.FormatNumber(c.Shares))
	if c.NextEarnings != nil {
		h.out.Field("Next Earnings", format.FormatPeriodDate(c.NextEarnings.ISODate(), format.DateLong)+countdown(now, c.NextEarnings.Time))
	}
	if c.Website != nil {
		h.out.Field("Website", *c.Website)
	}
	if c.Description != nil {
		h.out.Printf("\n  %s\n", *c.Description)
	}

	if a := overview.Analysis; a != nil {
		h.out.Section("Analysis")
		h.out.Field("Market Cap", format.FormatCurrency(format.Float(a.CompanyInfo.MarketCap)))
		h.out.Field("Size", string(a.QuickAnalysis.CapitalizationSize))
		h.out.Field("Leverage", a.QuickAnalysis.LeverageLevel)
		h.out.Field("Earnings", a.QuickAnalysis.EarningsGrowthConsistency)
		if a.UserInputs != nil && a.UserInputs.SelectedCategory != nil {
			h.out.Field("Your Category", string(*a.UserInputs.SelectedCategory))
		}
	}

	if f := overview.Financials; f != nil {
		h.out.Section("Financials")
		h.out.Field("Current FCF", format.FormatCurrency(f.CurrentFCF))
		if f.LatestPeriod != nil {
			h.out.Field("Latest Period", format.FiscalYear(f.LatestPeriod.ISODate()))
		}
	}

	if s := overview.Sector; s != nil {
		h.out.Section("Industry")
		h.out.Field("Industry", s.Industry.Name)
		rank := s.CompanyPosition.MarketCapRank
		if rank.Total > 0 {
			h.out.Field("Market Cap Rank", fmt.Sprintf("%d of %d", rank.Rank, rank.Total))
		}
	}

	for _, w := range overview.Warnings {
		h.out.Muted("warning %s: %s", w.Code, w.Message)
	}
	return nil
}

// Statements handles `statements [-type t] <ticker>`
func (h *Handler) Statements(ctx context.Context, args []string) error {
	fs := h.flags("statements")
	typeFlag := fs.String("type", string(models.StatementIncomeStatement), "statement type: income-statement, balance-sheet or cash-flow")
	rest, err := h.parse(fs, args, 1, 1)
	if err != nil {
		return err
	}
	typ, err := statements.ParseType(*typeFlag)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	resp, err := h.client.Stocks.GetFinancialStatements(ctx, rest[0])
	if err != nil {
		return err
	}
	table, err := statements.Build(resp, typ)
	if err != nil {
		return err
	}

	for _, tab := range models.StatementTabs {
		if tab.ID == typ {
			h.out.Heading(fmt.Sprintf("%s: %s", resp.Ticker, tab.Label))
		}
	}
	if len(table.Periods) == 0 {
		h.out.Muted("No statements reported")
		return nil
	}

	widths := make([]int, 0, len(table.Periods)+2)
	widths = append(widths, 36)
	header := []string{""}
	for _, p := range table.Periods {
		widths = append(widths, 10)
		header = append(header, p)
	}
	widths = append(widths, 8)
	header = append(header, "YoY")

	for _, sec := range table.Sections {
		h.out.Section(sec.Title)
		h.out.HeaderRow(widths, header...)
		for _, row := range sec.Rows {
			cells := []string{indent(row.Indent) + row.Label}
			for _, v := range row.Values {
				if row.Key == "epsBasic" || row.Key == "epsDiluted" {
					cells = append(cells, formatEPS(v))
					continue
				}
				cells = append(cells, format.FormatCurrency(v))
			}
			change := statements.LatestChange(row)
			cells = append(cells, h.out.Signed(change, format.FormatPercentage(percentUnits(change))))
			h.out.Row(widths, cells...)
		}
	}
	return nil
}

// Analysis handles `analysis <ticker>`
func (h *Handler) Analysis(ctx context.Context, args []string) error {
	fs := h.flags("analysis")
	rest, err := h.parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	a, err := h.client.Stocks.GetAnalysis(ctx, rest[0])
	if err != nil {
		return err
	}

	info, q := a.CompanyInfo, a.QuickAnalysis
	h.out.Heading(fmt.Sprintf("%s (%s) Quick Analysis", info.Name, info.Ticker))
	h.out.Field("Category", info.Category)
	h.out.Field("Market Cap", format.FormatCurrency(format.Float(info.MarketCap)))
	h.out.Field("Size", string(q.CapitalizationSize))
	if q.IPODate != nil {
		h.out.Field("IPO", format.FormatPeriodDate(q.IPODate.ISODate(), format.DateShort))
	}

	h.out.Section("Profitability")
	h.out.Field("Operating Profit Ever", yesNo(q.HasEverMadeOperatingProfit))
	h.out.Field("Consistent Cash Flow", yesNo(q.ConsistentCashFlowGeneration))
	h.out.Field("Average ROE", format.FormatPercentage(format.Float(q.AverageROE)))

	h.out.Section("Leverage")
	h.out.Field("Debt to Equity", format.FormatNumber(format.Float(q.DebtToEquity)))
	h.out.Field("Leverage Level", q.LeverageLevel)
	h.out.Field("Total Debt", format.FormatCurrency(format.Float(q.TotalDebt)))
	h.out.Field("Debt Trend", q.DebtTrend)

	h.out.Section("Earnings & Shares")
	h.out.Field("Earnings Consistency", q.EarningsGrowthConsistency)
	if q.EarningsData != nil && q.EarningsData.GrowthRate != nil {
		h.out.Field("EPS Growth", h.out.Signed(q.EarningsData.GrowthRate, format.FormatPercentage(q.EarningsData.GrowthRate)))
	}
	h.out.Field("Cash Flow Trend", q.CashFlowTrend)
	h.out.Field("Share Dilution", q.ShareDilution)

	h.out.Section("Your Inputs")
	var inputs models.UserInputs
	if a.UserInputs != nil {
		inputs = *a.UserInputs
	}
	category := format.Placeholder
	if inputs.SelectedCategory != nil {
		category = string(*inputs.SelectedCategory)
	}
	h.out.Field("Category", category)
	h.out.Field("Business Stable", optionalBool(inputs.IsBusinessStable))
	h.out.Field("Understand Debt", optionalBool(inputs.CanUnderstandDebt))
	return nil
}

// Classify handles `classify [-category c] [-stable b] [-debt b] <ticker>`.
// Only the flags given are submitted.
func (h *Handler) Classify(ctx context.Context, args []string) error {
	fs := h.flags("classify")
	categoryFlag := fs.String("category", "", "Peter Lynch category (slow-grower, stalwart, fast-grower, cyclical, turnaround, asset-play)")
	stableFlag := fs.String("stable", "", "is the business stable (true/false)")
	debtFlag := fs.String("debt", "", "can you understand the debt (true/false)")
	rest, err := h.parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	var payload models.UpdateMetadataPayload
	if *categoryFlag != "" {
		category := models.CompanyCategory(*categoryFlag)
		if !category.Valid() {
			return fmt.Errorf("%w: unknown category %q", ErrUsage, *categoryFlag)
		}
		payload.PeterLynchCategory = &category
	}
	if payload.IsBusinessStable, err = parseOptionalBool("stable", *stableFlag); err != nil {
		return err
	}
	if payload.CanUnderstandDebt, err = parseOptionalBool("debt", *debtFlag); err != nil {
		return err
	}
	if payload.PeterLynchCategory == nil && payload.IsBusinessStable == nil && payload.CanUnderstandDebt == nil {
		return fmt.Errorf("%w: nothing to update", ErrUsage)
	}

	if err := h.client.Stocks.UpdateMetadata(ctx, rest[0], &payload); err != nil {
		return err
	}
	h.out.Printf("Updated %s\n", ticker(rest[0]))
	return nil
}

// Sectors handles `sectors`
func (h *Handler) Sectors(ctx context.Context, args []string) error {
	fs := h.flags("sectors")
	if _, err := h.parse(fs, args, 0, 0); err != nil {
		return err
	}

	list, err := h.client.Stocks.GetAllSectors(ctx)
	if err != nil {
		return err
	}

	widths := []int{32, 10, 12}
	h.out.HeaderRow(widths, "Industry", "Companies", "Market Cap")
	for _, ind := range list.Industries {
		h.out.Row(widths, ind.Name, strconv.Itoa(ind.CompanyCount), format.FormatCurrency(format.Float(ind.TotalMarketCap)))
	}
	h.out.Muted("%d industries", list.Total)
	return nil
}

// Peers handles `peers [-limit n] <ticker>`
func (h *Handler) Peers(ctx context.Context, args []string) error {
	fs := h.flags("peers")
	limit := fs.Int("limit", api.DefaultPeerLimit, "maximum number of peers")
	rest, err := h.parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	resp, err := h.client.Stocks.GetPeerComparison(ctx, rest[0], *limit)
	if err != nil {
		return err
	}

	title := resp.CompanyName + " peers"
	if resp.IndustryName != nil {
		title += " in " + *resp.IndustryName
	}
	h.out.Heading(title)

	widths := []int{8, 28, 12, 12, 9, 9, 10}
	h.out.HeaderRow(widths, "Ticker", "Name", "Market Cap", "Revenue", "Margin", "Growth", "Price")
	for _, p := range resp.Peers {
		h.out.Row(widths,
			p.Ticker,
			truncate(p.Name, 28),
			format.FormatCurrency(p.MarketCap),
			format.FormatCurrency(p.Revenue),
			h.out.Signed(p.ProfitMargin, format.FormatPercentage(p.ProfitMargin)),
			h.out.Signed(p.RevenueGrowth, format.FormatPercentage(p.RevenueGrowth)),
			formatPrice(p.Price),
		)
	}
	return nil
}

func countdown(now, date time.Time) string {
	switch days := util.DaysUntil(now, date); {
	case days == 0:
		return " (today)"
	case days == 1:
		return " (tomorrow)"
	case days > 1:
		return fmt.Sprintf(" (in %d days)", days)
	default:
		return ""
	}
}
