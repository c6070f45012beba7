package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/epeers/stocklens/internal/format"
	"github.com/epeers/stocklens/internal/models"
)

// Story handles `story <ticker>`
func (h *Handler) Story(ctx context.Context, args []string) error {
	fs := h.flags("story")
	rest, err := h.parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	resp, err := h.client.Stories.Get(ctx, rest[0])
	if err != nil {
		return err
	}
	h.printStory(resp)
	return nil
}

func (h *Handler) printStory(resp *models.StoryResponse) {
	h.out.Heading(fmt.Sprintf("%s (%s) Story", resp.CompanyName, resp.Ticker))
	if resp.Story.LastEdited != nil {
		h.out.Muted("last edited %s", format.FormatPeriodDate(resp.Story.LastEdited.Format(models.DateLayout), format.DateLong))
	}

	written := 0
	for _, sec := range resp.Story.Content.Sections.Ordered() {
		if sec.Text == nil || strings.TrimSpace(*sec.Text) == "" {
			continue
		}
		written++
		h.out.Section(sec.Title)
		h.out.Printf("  %s\n", *sec.Text)
	}
	if written == 0 {
		h.out.Muted("No story written yet")
	}
}

// SaveStory handles `story-save`. The story is replaced as a whole, so sections
// without a flag are cleared.
func (h *Handler) SaveStory(ctx context.Context, args []string) error {
	fs := h.flags("story-save")
	overview := fs.String("overview", "", "company overview")
	businessModel := fs.String("business-model", "", "how the company makes money")
	advantages := fs.String("competitive-advantages", "", "competitive advantages")
	risks := fs.String("risks", "", "risks")
	thesis := fs.String("thesis", "", "investment thesis")
	recent := fs.String("recent", "", "recent developments")
	outlook := fs.String("outlook", "", "outlook")
	rest, err := h.parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	content := models.StoryContent{Sections: models.StorySections{
		Overview:              section(*overview),
		BusinessModel:         section(*businessModel),
		CompetitiveAdvantages: section(*advantages),
		Risks:                 section(*risks),
		InvestmentThesis:      section(*thesis),
		RecentDevelopments:    section(*recent),
		Outlook:               section(*outlook),
	}}

	resp, err := h.client.Stories.Save(ctx, rest[0], content)
	if err != nil {
		return err
	}
	h.printStory(resp)
	return nil
}

func section(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
