package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock represents a tracked public company
type Stock struct {
	ID            string              `json:"id" validate:"required"`
	Ticker        string              `json:"ticker" validate:"required"`
	Exchange      string              `json:"exchange"`
	Name          string              `json:"name" validate:"required"`
	Sector        *string             `json:"sector,omitempty"`
	Category      *string             `json:"category,omitempty"`
	Price         decimal.NullDecimal `json:"price"`  // decimal serialized as a string
	Shares        *float64            `json:"shares,omitempty"`
	Website       *string             `json:"website,omitempty"`
	Description   *string             `json:"description,omitempty"`
	NextEarnings  *FlexibleDate       `json:"nextEarnings,omitempty"`
	LastFullFetch *time.Time          `json:"lastFullFetch,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// SearchResult is one match returned by the company search endpoint
type SearchResult struct {
	ID       string  `json:"id"`
	Ticker   string  `json:"ticker" validate:"required"`
	Name     string  `json:"name"`
	Exchange string  `json:"exchange"`
	Sector   *string `json:"sector,omitempty"`
}
