package statements_test

import (
	"testing"

	"github.com/epeers/stocklens/internal/apitest"
	"github.com/epeers/stocklens/internal/models"
	"github.com/epeers/stocklens/internal/statements"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appleStatements(t *testing.T) *models.FinancialStatementsResponse {
	t.Helper()
	for _, c := range apitest.DefaultCompanies() {
		if c.Stock.Ticker == "AAPL" {
			return &c.Statements
		}
	}
	t.Fatal("AAPL fixture missing")
	return nil
}

func findRow(t *testing.T, table statements.Table, key string) models.FinancialRow {
	t.Helper()
	for _, sec := range table.Sections {
		for _, row := range sec.Rows {
			if row.Key == key {
				return row
			}
		}
	}
	t.Fatalf("row %q not found", key)
	return models.FinancialRow{}
}

func TestBuild_BalanceSheet(t *testing.T) {
	resp := appleStatements(t)
	// newest first on the wire must still come out oldest first
	resp.BalanceSheets[0], resp.BalanceSheets[1] = resp.BalanceSheets[1], resp.BalanceSheets[0]

	table, err := statements.Build(resp, models.StatementBalanceSheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"FY 2023", "FY 2024"}, table.Periods)
	assert.Equal(t, "Current Assets", table.Sections[0].Title)

	total := findRow(t, table, "totalAssets")
	assert.True(t, total.IsTotal)
	require.Len(t, total.Values, 2)
	assert.Equal(t, 352_583_000_000.0, *total.Values[0])
	assert.Equal(t, 364_980_000_000.0, *total.Values[1])

	goodwill := findRow(t, table, "goodwill")
	assert.Equal(t, []*float64{nil, nil}, goodwill.Values)
}

func TestBuild_IncomeStatementDecimals(t *testing.T) {
	table, err := statements.Build(appleStatements(t), models.StatementIncomeStatement)
	require.NoError(t, err)

	eps := findRow(t, table, "epsDiluted")
	require.NotNil(t, eps.Values[1])
	assert.InDelta(t, 6.08, *eps.Values[1], 1e-9)
}

func TestBuild_CashFlowEmpty(t *testing.T) {
	table, err := statements.Build(&models.FinancialStatementsResponse{Ticker: "MSFT"}, models.StatementCashFlow)
	require.NoError(t, err)
	assert.Empty(t, table.Periods)
	require.NotEmpty(t, table.Sections)
	assert.Empty(t, table.Sections[0].Rows[0].Values)
}

func TestBuild_UnknownType(t *testing.T) {
	_, err := statements.Build(appleStatements(t), models.StatementType("equity"))
	assert.ErrorIs(t, err, statements.ErrUnknownStatementType)
}

func TestParseType(t *testing.T) {
	for _, tab := range models.StatementTabs {
		got, err := statements.ParseType(string(tab.ID))
		require.NoError(t, err)
		assert.Equal(t, tab.ID, got)
	}
	_, err := statements.ParseType("ledger")
	assert.ErrorIs(t, err, statements.ErrUnknownStatementType)
}

func TestLatestChange(t *testing.T) {
	table, err := statements.Build(appleStatements(t), models.StatementIncomeStatement)
	require.NoError(t, err)

	change := statements.LatestChange(findRow(t, table, "netSales"))
	require.NotNil(t, change)
	assert.InDelta(t, 2.02, *change, 0.01)

	assert.Nil(t, statements.LatestChange(findRow(t, table, "interestExpense")))
	assert.Nil(t, statements.LatestChange(models.FinancialRow{Values: []*float64{nil}}))
}
