package handlers

import (
	"context"
	"flag"
	"fmt"

	"github.com/epeers/stocklens/internal/format"
	"github.com/epeers/stocklens/internal/models"
	"github.com/shopspring/decimal"
)

// Valuations handles `valuations <ticker>`
func (h *Handler) Valuations(ctx context.Context, args []string) error {
	fs := h.flags("valuations")
	rest, err := h.parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	list, err := h.client.Valuations.List(ctx, rest[0])
	if err != nil {
		return err
	}

	h.out.Heading(fmt.Sprintf("%s (%s) Valuations", list.CompanyName, list.Ticker))
	if len(list.Valuations) == 0 {
		h.out.Muted("No valuations saved")
		return nil
	}

	widths := []int{10, 20, 9, 9, 12, 12}
	h.out.HeaderRow(widths, "ID", "Scenario", "Discount", "Growth", "Per Share", "Updated")
	for _, v := range list.Valuations {
		h.out.Row(widths,
			v.ID,
			truncate(v.ScenarioName, 20),
			formatRate(v.DiscountRate),
			formatRate(v.PerpetualGrowthRate),
			formatPrice(v.IntrinsicValuePerShare),
			format.FormatPeriodDate(v.UpdatedAt.Format(models.DateLayout), format.DateShort),
		)
	}
	return nil
}

// Valuation handles `valuation <ticker> [id|latest]`
func (h *Handler) Valuation(ctx context.Context, args []string) error {
	fs := h.flags("valuation")
	rest, err := h.parse(fs, args, 1, 2)
	if err != nil {
		return err
	}

	var resp *models.ValuationResponse
	if len(rest) == 1 || rest[1] == "latest" {
		resp, err = h.client.Valuations.GetLatest(ctx, rest[0])
	} else {
		resp, err = h.client.Valuations.GetByID(ctx, rest[0], rest[1])
	}
	if err != nil {
		return err
	}

	h.printValuation(resp)
	return nil
}

func (h *Handler) printValuation(resp *models.ValuationResponse) {
	v := resp.Valuation
	h.out.Heading(fmt.Sprintf("%s (%s): %s", resp.CompanyName, resp.Ticker, v.ScenarioName))
	h.out.Field("ID", v.ID)
	h.out.Field("Discount Rate", formatRate(v.DiscountRate))
	h.out.Field("Perpetual Growth", formatRate(v.PerpetualGrowthRate))
	shares := float64(v.SharesOutstanding)
	h.out.Field("Shares Outstanding", format.FormatNumber(&shares))

	h.out.Section("Free Cash Flow Projections")
	var discounted []float64
	if resp.Calculation != nil {
		discounted = resp.Calculation.DiscountedFCFs
	}
	widths := []int{8, 12, 12}
	h.out.HeaderRow(widths, "Year", "FCF", "Discounted")
	next := 0
	for i, fcf := range v.Projections() {
		present := format.Placeholder
		if fcf != nil && next < len(discounted) {
			present = format.FormatCurrency(&discounted[next])
			next++
		}
		h.out.Row(widths, fmt.Sprintf("%d", i+1), format.FormatCurrency(fcf), present)
	}

	h.out.Section("Result")
	h.out.Field("Discounted FCF", format.FormatCurrency(v.TotalDiscountedFCF))
	h.out.Field("Terminal Value", format.FormatCurrency(v.PerpetuityValue))
	h.out.Field("Discounted Terminal", format.FormatCurrency(v.DiscountedPerpetuityValue))
	h.out.Field("Equity Value", format.FormatCurrency(v.TotalEquityValue))
	h.out.Field("Intrinsic Value / Share", formatPrice(v.IntrinsicValuePerShare))
	if resp.Calculation != nil && resp.Calculation.MarginOfSafety.Valid {
		margin := format.FromDecimal(resp.Calculation.MarginOfSafety)
		h.out.Field("Margin of Safety", h.out.Signed(margin, format.FormatPercentage(margin)))
	}
	if v.Notes != nil {
		h.out.Field("Notes", *v.Notes)
	}
}

// CreateValuation handles `valuation-create`
func (h *Handler) CreateValuation(ctx context.Context, args []string) error {
	fs := h.flags("valuation-create")
	name := fs.String("name", "", "scenario name")
	discount := fs.String("discount", "", "discount rate, e.g. 0.1 or 10%")
	growth := fs.String("growth", "", "perpetual growth rate, e.g. 0.025 or 2.5%")
	shares := fs.Int64("shares", 0, "shares outstanding (default: from company financials)")
	fcf := fs.String("fcf", "", "comma-separated FCF projections for years 1-10 (default: current FCF held flat)")
	notes := fs.String("notes", "", "notes")
	rest, err := h.parse(fs, args, 1, 1)
	if err != nil {
		return err
	}
	if *discount == "" || *growth == "" {
		return fmt.Errorf("%w: -discount and -growth are required", ErrUsage)
	}

	payload := models.CreateValuationPayload{
		ScenarioName:      *name,
		SharesOutstanding: *shares,
		Notes:             *notes,
	}
	if payload.DiscountRate, err = parseRate(*discount); err != nil {
		return fmt.Errorf("%w: -discount: %v", ErrUsage, err)
	}
	if payload.PerpetualGrowthRate, err = parseRate(*growth); err != nil {
		return fmt.Errorf("%w: -growth: %v", ErrUsage, err)
	}

	var projections [models.ProjectionYears]float64
	if *fcf != "" {
		parsed, err := parseProjections(*fcf, models.ProjectionYears)
		if err != nil {
			return err
		}
		for i, p := range parsed {
			if p != nil {
				projections[i] = *p
			}
		}
	}

	// seed whatever was not given from the company's reported figures
	if payload.SharesOutstanding == 0 || *fcf == "" {
		summary, err := h.client.Stocks.GetCompanyFinancials(ctx, rest[0])
		if err != nil {
			return err
		}
		if payload.SharesOutstanding == 0 {
			payload.SharesOutstanding = int64(summary.Shares)
		}
		if *fcf == "" {
			if summary.CurrentFCF == nil {
				return fmt.Errorf("%w: %s reports no current FCF; pass -fcf", ErrUsage, ticker(rest[0]))
			}
			for i := range projections {
				projections[i] = *summary.CurrentFCF
			}
		}
	}
	payload.SetProjections(projections)

	resp, err := h.client.Valuations.Create(ctx, rest[0], &payload)
	if err != nil {
		return err
	}
	h.printValuation(resp)
	return nil
}

// UpdateValuation handles `valuation-update`. Only the flags given are submitted.
func (h *Handler) UpdateValuation(ctx context.Context, args []string) error {
	fs := h.flags("valuation-update")
	fs.String("name", "", "scenario name")
	fs.String("discount", "", "discount rate, e.g. 0.1 or 10%")
	fs.String("growth", "", "perpetual growth rate")
	fs.Int64("shares", 0, "shares outstanding")
	fs.String("fcf", "", "comma-separated FCF projections; empty slots are left unchanged")
	fs.String("notes", "", "notes")
	rest, err := h.parse(fs, args, 2, 2)
	if err != nil {
		return err
	}

	payload, err := updatePayload(fs)
	if err != nil {
		return err
	}

	resp, err := h.client.Valuations.Update(ctx, rest[0], rest[1], payload)
	if err != nil {
		return err
	}
	h.printValuation(resp)
	return nil
}

// updatePayload builds the payload from the flags that were explicitly set
func updatePayload(fs *flag.FlagSet) (*models.UpdateValuationPayload, error) {
	var payload models.UpdateValuationPayload
	var setErr error
	set := 0

	fs.Visit(func(f *flag.Flag) {
		if setErr != nil {
			return
		}
		set++
		value := f.Value.String()
		switch f.Name {
		case "name":
			payload.ScenarioName = &value
		case "notes":
			payload.Notes = &value
		case "discount":
			r, err := parseRate(value)
			if err != nil {
				setErr = fmt.Errorf("%w: -discount: %v", ErrUsage, err)
				return
			}
			payload.DiscountRate = &r
		case "growth":
			g, err := parseRate(value)
			if err != nil {
				setErr = fmt.Errorf("%w: -growth: %v", ErrUsage, err)
				return
			}
			payload.PerpetualGrowthRate = &g
		case "shares":
			n := f.Value.(flag.Getter).Get().(int64)
			payload.SharesOutstanding = &n
		case "fcf":
			parsed, err := parseProjections(value, models.ProjectionYears)
			if err != nil {
				setErr = err
				return
			}
			payload.FCFYear1, payload.FCFYear2, payload.FCFYear3, payload.FCFYear4, payload.FCFYear5 = parsed[0], parsed[1], parsed[2], parsed[3], parsed[4]
			payload.FCFYear6, payload.FCFYear7, payload.FCFYear8, payload.FCFYear9, payload.FCFYear10 = parsed[5], parsed[6], parsed[7], parsed[8], parsed[9]
		}
	})
	if setErr != nil {
		return nil, setErr
	}
	if set == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrUsage)
	}
	return &payload, nil
}

// DeleteValuation handles `valuation-delete <ticker> <id>`
func (h *Handler) DeleteValuation(ctx context.Context, args []string) error {
	fs := h.flags("valuation-delete")
	rest, err := h.parse(fs, args, 2, 2)
	if err != nil {
		return err
	}

	if err := h.client.Valuations.Delete(ctx, rest[0], rest[1]); err != nil {
		return err
	}
	h.out.Printf("Deleted valuation %s of %s\n", rest[1], ticker(rest[0]))
	return nil
}

// Sensitivity handles `sensitivity <ticker> <id>`
func (h *Handler) Sensitivity(ctx context.Context, args []string) error {
	fs := h.flags("sensitivity")
	rest, err := h.parse(fs, args, 2, 2)
	if err != nil {
		return err
	}

	resp, err := h.client.Valuations.GetSensitivity(ctx, rest[0], rest[1])
	if err != nil {
		return err
	}

	h.out.Heading(fmt.Sprintf("%s (%s) Sensitivity", resp.CompanyName, resp.Ticker))
	h.out.Field("Base Value / Share", formatPrice(decimal.NewNullDecimal(resp.BaseValuation)))
	h.out.Field("Current Price", formatPrice(resp.CurrentPrice))
	h.out.Muted("rows: discount rate, columns: perpetual growth rate")

	table := resp.SensitivityTable
	growthRates := table.GrowthRates()
	widths := []int{10}
	header := []string{""}
	for _, gr := range growthRates {
		widths = append(widths, 10)
		header = append(header, gr)
	}
	h.out.HeaderRow(widths, header...)

	for _, dr := range table.DiscountRates() {
		cells := []string{dr}
		for _, gr := range growthRates {
			v, ok := table.Value(dr, gr)
			if !ok {
				cells = append(cells, format.Placeholder)
				continue
			}
			cell := formatPrice(decimal.NewNullDecimal(decimal.NewFromFloat(v)))
			if resp.CurrentPrice.Valid {
				diff := v - resp.CurrentPrice.Decimal.InexactFloat64()
				cell = h.out.Signed(&diff, cell)
			}
			cells = append(cells, cell)
		}
		h.out.Row(widths, cells...)
	}
	return nil
}

func formatRate(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
