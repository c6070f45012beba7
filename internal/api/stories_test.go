package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/epeers/stocklens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStories_SaveReplacesContent(t *testing.T) {
	srv, client := setup(t)
	ctx := context.Background()

	empty, err := client.Stories.Get(ctx, "AAPL")
	require.NoError(t, err)
	assert.Nil(t, empty.Story.ID)
	assert.Nil(t, empty.Story.Content.Sections.Overview)

	overview := "Hardware plus a growing services business."
	risks := "Regulatory pressure on the App Store."
	saved, err := client.Stories.Save(ctx, "aapl", models.StoryContent{
		Sections: models.StorySections{Overview: &overview, Risks: &risks},
	})
	require.NoError(t, err)
	require.NotNil(t, saved.Story.LastEdited)

	req, _ := srv.LastRequest()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/stories/AAPL", req.Path)
	assert.Equal(t, "application/json", req.ContentType)
	var body map[string]map[string]map[string]string
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, overview, body["content"]["sections"]["overview"])

	// a second save without risks clears it
	outlook := "Steady."
	_, err = client.Stories.Save(ctx, "AAPL", models.StoryContent{
		Sections: models.StorySections{Overview: &overview, Outlook: &outlook},
	})
	require.NoError(t, err)

	got, err := client.Stories.Get(ctx, "AAPL")
	require.NoError(t, err)
	require.NotNil(t, got.Story.Content.Sections.Overview)
	assert.Equal(t, overview, *got.Story.Content.Sections.Overview)
	assert.Nil(t, got.Story.Content.Sections.Risks)
	require.NotNil(t, got.Story.Content.Sections.Outlook)
	assert.Equal(t, saved.Story.ID, got.Story.ID)
}
