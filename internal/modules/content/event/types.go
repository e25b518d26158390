package event

import (
	"time"

	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/markdown"
)

type CreateEventDTO struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Date        time.Time `json:"date"  binding:"required"`
}

type UpdateEventDTO struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"image_url"`
	Date        *time.Time `json:"date"`
}

type eventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	HTML        string    `json:"html"`
	ImageURL    string    `json:"image_url"`
	Date        time.Time `json:"date"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
}

func toResponse(e *models.EventModel) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		HTML:        markdown.Render(e.Description),
		ImageURL:    e.ImageURL,
		Date:        e.Date,
		Created:     e.CreatedAt,
		Modified:    e.UpdatedAt,
	}
}
