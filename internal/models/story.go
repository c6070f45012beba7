package models

import "time"

// StorySections holds the named narrative sections about a company
type StorySections struct {
	Overview              *string `json:"overview,omitempty"`
	BusinessModel         *string `json:"businessModel,omitempty"`
	CompetitiveAdvantages *string `json:"competitiveAdvantages,omitempty"`
	Risks                 *string `json:"risks,omitempty"`
	InvestmentThesis      *string `json:"investmentThesis,omitempty"`
	RecentDevelopments    *string `json:"recentDevelopments,omitempty"`
	Outlook               *string `json:"outlook,omitempty"`
}

// StorySection pairs a section's title with its text
type StorySection struct {
	Title string
	Text  *string
}

// Ordered returns the sections in display order
func (s StorySections) Ordered() []StorySection {
	return []StorySection{
		{Title: "Overview", Text: s.Overview},
		{Title: "Business Model", Text: s.BusinessModel},
		{Title: "Competitive Advantages", Text: s.CompetitiveAdvantages},
		{Title: "Risks", Text: s.Risks},
		{Title: "Investment Thesis", Text: s.InvestmentThesis},
		{Title: "Recent Developments", Text: s.RecentDevelopments},
		{Title: "Outlook", Text: s.Outlook},
	}
}

// StoryContent is the full narrative of a company; saving it replaces every section
type StoryContent struct {
	Sections StorySections `json:"sections"`
}

// StoryRecord is the stored story with its bookkeeping fields
type StoryRecord struct {
	ID         *string      `json:"id,omitempty"`
	Content    StoryContent `json:"content"`
	LastEdited *time.Time   `json:"lastEdited"`
	CreatedAt  *time.Time   `json:"createdAt,omitempty"`
}

// StoryResponse is the body of GET and PUT /stories/{ticker}
type StoryResponse struct {
	Ticker      string      `json:"ticker" validate:"required"`
	CompanyName string      `json:"companyName"`
	Story       StoryRecord `json:"story"`
}

// SaveStoryRequest is the body of PUT /stories/{ticker}
type SaveStoryRequest struct {
	Content StoryContent `json:"content"`
}
