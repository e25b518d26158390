package news

import (
	"time"

	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/markdown"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/scrape"
)

const summaryLen = 200

type CreateNewsDTO struct {
	Title       string     `json:"title" binding:"required"`
	Text        string     `json:"text"`
	ImageURL    string     `json:"image_url"`
	PublishedAt *time.Time `json:"published_at"`
}

type UpdateNewsDTO struct {
	Title       *string    `json:"title"`
	Text        *string    `json:"text"`
	ImageURL    *string    `json:"image_url"`
	PublishedAt *time.Time `json:"published_at"`
}

type newsResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Text        string    `json:"text,omitempty"`
	HTML        string    `json:"html,omitempty"`
	Summary     string    `json:"summary"`
	ImageURL    string    `json:"image_url"`
	PublishedAt time.Time `json:"published_at"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
}

// toResponse renders the full article; toListResponse keeps list
// payloads small by carrying only the summary.
func toResponse(n *models.NewsModel) newsResponse {
	r := toListResponse(n)
	r.Text = n.Text
	r.HTML = markdown.Render(n.Text)
	return r
}

func toListResponse(n *models.NewsModel) newsResponse {
	return newsResponse{
		ID:          n.ID,
		Title:       n.Title,
		Summary:     scrape.Truncate(n.Text, summaryLen),
		ImageURL:    n.ImageURL,
		PublishedAt: n.PublishedAt,
		Created:     n.CreatedAt,
		Modified:    n.UpdatedAt,
	}
}
