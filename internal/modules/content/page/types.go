package page

import (
	"time"

	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/markdown"
)

type CreatePageDTO struct {
	Slug     string `json:"slug"  binding:"required"`
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle"`
	Text     string `json:"text"`
	Order    int    `json:"order"`
}

type UpdatePageDTO struct {
	Slug     *string `json:"slug"`
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Text     *string `json:"text"`
	Order    *int    `json:"order"`
}

type pageResponse struct {
	ID       string    `json:"id"`
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Text     string    `json:"text"`
	HTML     string    `json:"html"`
	Order    int       `json:"order"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

func toResponse(p *models.PageModel) pageResponse {
	return pageResponse{
		ID:       p.ID,
		Slug:     p.Slug,
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Text:     p.Text,
		HTML:     markdown.Render(p.Text),
		Order:    p.Order,
		Created:  p.CreatedAt,
		Modified: p.UpdatedAt,
	}
}
