package page

import (
	"errors"

	"github.com/omph-chaplaincy/parish-core/internal/models"
	"gorm.io/gorm"
)

var errDuplicateSlug = errors.New("a page with this slug already exists")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.PageModel, error) {
	var items []models.PageModel
	err := s.db.Order("order_num ASC, created_at ASC").Find(&items).Error
	return items, err
}

func (s *Service) GetBySlug(slug string) (*models.PageModel, error) {
	var p models.PageModel
	if err := s.db.First(&p, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *Service) getByID(id string) (*models.PageModel, error) {
	var p models.PageModel
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *Service) Create(dto *CreatePageDTO) (*models.PageModel, error) {
	if existing, err := s.GetBySlug(dto.Slug); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errDuplicateSlug
	}
	p := models.PageModel{
		Slug:     dto.Slug,
		Title:    dto.Title,
		Subtitle: dto.Subtitle,
		Text:     dto.Text,
		Order:    dto.Order,
	}
	return &p, s.db.Create(&p).Error
}

func (s *Service) Update(id string, dto *UpdatePageDTO) (*models.PageModel, error) {
	p, err := s.getByID(id)
	if err != nil || p == nil {
		return p, err
	}
	updates := map[string]interface{}{}
	if dto.Slug != nil {
		updates["slug"] = *dto.Slug
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Subtitle != nil {
		updates["subtitle"] = *dto.Subtitle
	}
	if dto.Text != nil {
		updates["text"] = *dto.Text
	}
	if dto.Order != nil {
		updates["order_num"] = *dto.Order
	}
	if len(updates) == 0 {
		return p, nil
	}
	if err := s.db.Model(p).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.getByID(id)
}

func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.PageModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
