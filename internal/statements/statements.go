// Package statements lays out financial statements as labelled rows with one
// value column per reporting period, oldest period first.
package statements

import (
	"errors"
	"fmt"
	"sort"

	"github.com/epeers/stocklens/internal/format"
	"github.com/epeers/stocklens/internal/models"
)

var ErrUnknownStatementType = errors.New("unknown statement type")

// Table is one statement type laid out for display
type Table struct {
	Type     models.StatementType
	Periods  []string // "FY 2024" labels, one per value column
	Sections []models.FinancialSection
}

type lineItem[T any] struct {
	label    string
	key      string
	value    func(*T) *float64
	subtotal bool
	total    bool
	indent   int
}

type section[T any] struct {
	title string
	items []lineItem[T]
}

// Build lays out the statements of typ from resp
func Build(resp *models.FinancialStatementsResponse, typ models.StatementType) (Table, error) {
	switch typ {
	case models.StatementBalanceSheet:
		return build(typ, resp.BalanceSheets, func(s *models.BalanceSheet) models.FlexibleDate { return s.PeriodDate }, balanceSheetLayout), nil
	case models.StatementIncomeStatement:
		return build(typ, resp.IncomeStatements, func(s *models.IncomeStatement) models.FlexibleDate { return s.PeriodDate }, incomeStatementLayout), nil
	case models.StatementCashFlow:
		return build(typ, resp.CashFlows, func(s *models.CashFlowStatement) models.FlexibleDate { return s.PeriodDate }, cashFlowLayout), nil
	default:
		return Table{}, fmt.Errorf("%w: %q", ErrUnknownStatementType, typ)
	}
}

// ParseType matches s against the statement type ids
func ParseType(s string) (models.StatementType, error) {
	for _, tab := range models.StatementTabs {
		if string(tab.ID) == s {
			return tab.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatementType, s)
}

func build[T any](typ models.StatementType, periods []T, periodDate func(*T) models.FlexibleDate, layout []section[T]) Table {
	ordered := make([]*T, len(periods))
	for i := range periods {
		ordered[i] = &periods[i]
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return periodDate(ordered[i]).Before(periodDate(ordered[j]).Time)
	})

	table := Table{
		Type:     typ,
		Periods:  make([]string, len(ordered)),
		Sections: make([]models.FinancialSection, 0, len(layout)),
	}
	for i, p := range ordered {
		table.Periods[i] = format.FiscalYear(periodDate(p).ISODate())
	}

	for _, sec := range layout {
		out := models.FinancialSection{Title: sec.title, Rows: make([]models.FinancialRow, 0, len(sec.items))}
		for _, item := range sec.items {
			row := models.FinancialRow{
				Label:      item.label,
				Key:        item.key,
				Values:     make([]*float64, len(ordered)),
				IsSubtotal: item.subtotal,
				IsTotal:    item.total,
				Indent:     item.indent,
			}
			for i, p := range ordered {
				row.Values[i] = item.value(p)
			}
			out.Rows = append(out.Rows, row)
		}
		table.Sections = append(table.Sections, out)
	}
	return table
}

// LatestChange is the year-over-year change between the last two values of row,
// or nil when there are fewer than two periods or either value is missing.
func LatestChange(row models.FinancialRow) *float64 {
	n := len(row.Values)
	if n < 2 {
		return nil
	}
	return format.CalculateYoYChange(row.Values[n-1], row.Values[n-2])
}
