package event

import (
	"errors"
	"time"

	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/pagination"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/response"
	"gorm.io/gorm"
)

// List scopes.
const (
	ScopeUpcoming = "upcoming"
	ScopePast     = "past"
	ScopeAll      = "all"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List(q pagination.Query, scope string) ([]models.EventModel, response.Pagination, error) {
	now := time.Now().UTC()
	tx := s.db.Model(&models.EventModel{})
	switch scope {
	case ScopePast:
		tx = tx.Where("date < ?", now).Order("date DESC")
	case ScopeAll:
		tx = tx.Order("date DESC")
	default:
		tx = tx.Where("date >= ?", now).Order("date ASC")
	}
	var items []models.EventModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) GetByID(id string) (*models.EventModel, error) {
	var e models.EventModel
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (s *Service) Create(dto *CreateEventDTO) (*models.EventModel, error) {
	e := models.EventModel{
		Title:       dto.Title,
		Description: dto.Description,
		ImageURL:    dto.ImageURL,
		Date:        dto.Date,
	}
	return &e, s.db.Create(&e).Error
}

func (s *Service) Update(id string, dto *UpdateEventDTO) (*models.EventModel, error) {
	e, err := s.GetByID(id)
	if err != nil || e == nil {
		return e, err
	}
	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.ImageURL != nil {
		updates["image_url"] = *dto.ImageURL
	}
	if dto.Date != nil {
		updates["date"] = *dto.Date
	}
	if len(updates) == 0 {
		return e, nil
	}
	if err := s.db.Model(e).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.EventModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// CountUpcoming is used by the admin summary.
func (s *Service) CountUpcoming() (int64, error) {
	var n int64
	err := s.db.Model(&models.EventModel{}).
		Where("date >= ?", time.Now().UTC()).
		Count(&n).Error
	return n, err
}
