package api

import (
	"context"
	"net/http"

	"github.com/epeers/stocklens/internal/models"
)

// StoryService covers the narrative write-ups about a company
type StoryService service

// Get fetches the story for ticker
func (s *StoryService) Get(ctx context.Context, ticker string) (*models.StoryResponse, error) {
	var story models.StoryResponse
	if err := s.client.do(ctx, "fetching story", http.MethodGet, tickerPath("stories", ticker), nil, nil, &story); err != nil {
		return nil, err
	}
	return &story, nil
}

// Save replaces the whole story for ticker with content. Sections left nil are
// cleared, not preserved.
func (s *StoryService) Save(ctx context.Context, ticker string, content models.StoryContent) (*models.StoryResponse, error) {
	body := models.SaveStoryRequest{Content: content}

	var story models.StoryResponse
	if err := s.client.do(ctx, "saving story", http.MethodPut, tickerPath("stories", ticker), nil, body, &story); err != nil {
		return nil, err
	}
	return &story, nil
}
