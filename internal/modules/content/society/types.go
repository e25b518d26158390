package society

import (
	"time"

	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/markdown"
)

// Recognised categories.
const (
	CategoryOrganization = "Organization"
	CategoryPiousSociety = "Pious Society"
)

type CreateSocietyDTO struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
	Category string `json:"category"`
	Patron   string `json:"patron"`
	History  string `json:"history"`
	Purpose  string `json:"purpose"`
}

type UpdateSocietyDTO struct {
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	Category *string `json:"category"`
	Patron   *string `json:"patron"`
	History  *string `json:"history"`
	Purpose  *string `json:"purpose"`
}

type societyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Category    string    `json:"category"`
	Patron      string    `json:"patron"`
	History     string    `json:"history"`
	HistoryHTML string    `json:"history_html"`
	Purpose     string    `json:"purpose"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
}

func toResponse(s *models.SocietyModel) societyResponse {
	return societyResponse{
		ID:          s.ID,
		Name:        s.Name,
		Slug:        s.Slug,
		Category:    s.Category,
		Patron:      s.Patron,
		History:     s.History,
		HistoryHTML: markdown.Render(s.History),
		Purpose:     s.Purpose,
		Created:     s.CreatedAt,
		Modified:    s.UpdatedAt,
	}
}
