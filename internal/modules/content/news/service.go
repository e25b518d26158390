package news

import (
	"errors"
	"time"

	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/pagination"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/response"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List(q pagination.Query) ([]models.NewsModel, response.Pagination, error) {
	tx := s.db.Model(&models.NewsModel{}).Order("published_at DESC")
	var items []models.NewsModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) GetByID(id string) (*models.NewsModel, error) {
	var n models.NewsModel
	if err := s.db.First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (s *Service) Create(dto *CreateNewsDTO) (*models.NewsModel, error) {
	publishedAt := time.Now().UTC()
	if dto.PublishedAt != nil {
		publishedAt = *dto.PublishedAt
	}
	n := models.NewsModel{
		Title:       dto.Title,
		Text:        dto.Text,
		ImageURL:    dto.ImageURL,
		PublishedAt: publishedAt,
	}
	return &n, s.db.Create(&n).Error
}

func (s *Service) Update(id string, dto *UpdateNewsDTO) (*models.NewsModel, error) {
	n, err := s.GetByID(id)
	if err != nil || n == nil {
		return n, err
	}
	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Text != nil {
		updates["text"] = *dto.Text
	}
	if dto.ImageURL != nil {
		updates["image_url"] = *dto.ImageURL
	}
	if dto.PublishedAt != nil {
		updates["published_at"] = *dto.PublishedAt
	}
	if len(updates) == 0 {
		return n, nil
	}
	if err := s.db.Model(n).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.NewsModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// Count is used by the admin summary.
func (s *Service) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.NewsModel{}).Count(&n).Error
	return n, err
}
