package models

// WarningCode categorizes warnings by the section of an overview they affect.
// W1xxx = analysis, W2xxx = financials, W3xxx = sector.
type WarningCode string

const (
	WarnAnalysisUnavailable   WarningCode = "W1001" // analysis could not be fetched; overview shows company data only
	WarnFinancialsUnavailable WarningCode = "W2001" // financial summary could not be fetched
	WarnSectorUnavailable     WarningCode = "W3001" // sector analysis could not be fetched
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
