package apitest

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/epeers/stocklens/internal/models"
)

// Company bundles every resource the backend serves for one ticker
type Company struct {
	Stock      models.Stock
	Analysis   models.CompanyAnalysis
	Financials models.FinancialsSummary
	Statements models.FinancialStatementsResponse
	Sector     models.SectorAnalysisResponse
	Industry   models.IndustryListItem
}

// Store is the in-memory state behind the fake backend.
// Tickers are matched exactly as stored (uppercase).
type Store struct {
	companies map[string]*Company
	companyMu sync.RWMutex

	valuations  map[string][]models.Valuation
	stories     map[string]models.StoryRecord
	nextID      int
	valuationMu sync.RWMutex

	now func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		companies:  make(map[string]*Company),
		valuations: make(map[string][]models.Valuation),
		stories:    make(map[string]models.StoryRecord),
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

// AddCompany registers (or replaces) a company
func (s *Store) AddCompany(c Company) {
	s.companyMu.Lock()
	defer s.companyMu.Unlock()

	s.companies[c.Stock.Ticker] = &c
}

// Company returns a copy of the company registered under ticker
func (s *Store) Company(ticker string) (Company, bool) {
	s.companyMu.RLock()
	defer s.companyMu.RUnlock()

	c, exists := s.companies[ticker]
	if !exists {
		return Company{}, false
	}
	return *c, true
}

// Search matches term case-insensitively against tickers and names
func (s *Store) Search(term string) []models.SearchResult {
	s.companyMu.RLock()
	defer s.companyMu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(term))
	results := []models.SearchResult{}
	for _, c := range s.companies {
		if strings.Contains(strings.ToLower(c.Stock.Ticker), needle) || strings.Contains(strings.ToLower(c.Stock.Name), needle) {
			results = append(results, models.SearchResult{
				ID:       c.Stock.ID,
				Ticker:   c.Stock.Ticker,
				Name:     c.Stock.Name,
				Exchange: c.Stock.Exchange,
				Sector:   c.Stock.Sector,
			})
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Ticker < results[j].Ticker })
	return results
}

// Industries lists the distinct industries of all companies
func (s *Store) Industries() []models.IndustryListItem {
	s.companyMu.RLock()
	defer s.companyMu.RUnlock()

	byID := make(map[string]models.IndustryListItem)
	for _, c := range s.companies {
		byID[c.Industry.ID] = c.Industry
	}
	items := make([]models.IndustryListItem, 0, len(byID))
	for _, item := range byID {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

// SetUserInputs merges the submitted classification fields into a company's analysis
func (s *Store) SetUserInputs(ticker string, payload models.UpdateMetadataPayload) (models.CompanyAnalysis, bool) {
	s.companyMu.Lock()
	defer s.companyMu.Unlock()

	c, exists := s.companies[ticker]
	if !exists {
		return models.CompanyAnalysis{}, false
	}
	inputs := models.UserInputs{}
	if c.Analysis.UserInputs != nil {
		inputs = *c.Analysis.UserInputs
	}
	if payload.PeterLynchCategory != nil {
		inputs.SelectedCategory = payload.PeterLynchCategory
	}
	if payload.IsBusinessStable != nil {
		inputs.IsBusinessStable = payload.IsBusinessStable
	}
	if payload.CanUnderstandDebt != nil {
		inputs.CanUnderstandDebt = payload.CanUnderstandDebt
	}
	c.Analysis.UserInputs = &inputs
	return c.Analysis, true
}

// Valuations returns ticker's valuations, newest first
func (s *Store) Valuations(ticker string) []models.Valuation {
	s.valuationMu.RLock()
	defer s.valuationMu.RUnlock()

	stored := s.valuations[ticker]
	out := make([]models.Valuation, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
	}
	return out
}

// Valuation returns one valuation by id
func (s *Store) Valuation(ticker, id string) (models.Valuation, bool) {
	s.valuationMu.RLock()
	defer s.valuationMu.RUnlock()

	for _, v := range s.valuations[ticker] {
		if v.ID == id {
			return v, true
		}
	}
	return models.Valuation{}, false
}

// AddValuation assigns an id and timestamps to v and stores it
func (s *Store) AddValuation(ticker string, v models.Valuation) models.Valuation {
	s.valuationMu.Lock()
	defer s.valuationMu.Unlock()

	s.nextID++
	v.ID = fmt.Sprintf("val-%d", s.nextID)
	v.CreatedAt = s.now()
	v.UpdatedAt = v.CreatedAt
	s.valuations[ticker] = append(s.valuations[ticker], v)
	return v
}

// ReplaceValuation overwrites a stored valuation, keeping its creation time
func (s *Store) ReplaceValuation(ticker string, v models.Valuation) (models.Valuation, bool) {
	s.valuationMu.Lock()
	defer s.valuationMu.Unlock()

	for i, existing := range s.valuations[ticker] {
		if existing.ID == v.ID {
			v.CreatedAt = existing.CreatedAt
			v.UpdatedAt = s.now()
			s.valuations[ticker][i] = v
			return v, true
		}
	}
	return models.Valuation{}, false
}

// DeleteValuation removes a valuation; it reports false if the id is unknown
func (s *Store) DeleteValuation(ticker, id string) bool {
	s.valuationMu.Lock()
	defer s.valuationMu.Unlock()

	stored := s.valuations[ticker]
	for i, v := range stored {
		if v.ID == id {
			s.valuations[ticker] = append(stored[:i:i], stored[i+1:]...)
			return true
		}
	}
	return false
}

// Story returns ticker's story, or an empty record if none was saved
func (s *Store) Story(ticker string) models.StoryRecord {
	s.valuationMu.RLock()
	defer s.valuationMu.RUnlock()

	return s.stories[ticker]
}

// SaveStory replaces ticker's story content
func (s *Store) SaveStory(ticker string, content models.StoryContent) models.StoryRecord {
	s.valuationMu.Lock()
	defer s.valuationMu.Unlock()

	now := s.now()
	record, exists := s.stories[ticker]
	if !exists {
		id := "story-" + ticker
		record.ID = &id
		record.CreatedAt = &now
	}
	record.Content = content
	record.LastEdited = &now
	s.stories[ticker] = record
	return record
}

// Clear removes all valuations and stories
func (s *Store) Clear() {
	s.valuationMu.Lock()
	s.valuations = make(map[string][]models.Valuation)
	s.stories = make(map[string]models.StoryRecord)
	s.valuationMu.Unlock()
}
