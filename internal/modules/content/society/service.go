package society

import (
	"errors"

	"github.com/omph-chaplaincy/parish-core/internal/models"
	"gorm.io/gorm"
)

var errDuplicateSlug = errors.New("a society with this slug already exists")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List(category string) ([]models.SocietyModel, error) {
	tx := s.db.Order("name ASC")
	if category != "" {
		tx = tx.Where("category = ?", category)
	}
	var items []models.SocietyModel
	err := tx.Find(&items).Error
	return items, err
}

func (s *Service) GetBySlug(slug string) (*models.SocietyModel, error) {
	var m models.SocietyModel
	if err := s.db.First(&m, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) getByID(id string) (*models.SocietyModel, error) {
	var m models.SocietyModel
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Create(dto *CreateSocietyDTO) (*models.SocietyModel, error) {
	if existing, err := s.GetBySlug(dto.Slug); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errDuplicateSlug
	}
	m := models.SocietyModel{
		Name:     dto.Name,
		Slug:     dto.Slug,
		Category: dto.Category,
		Patron:   dto.Patron,
		History:  dto.History,
		Purpose:  dto.Purpose,
	}
	return &m, s.db.Create(&m).Error
}

func (s *Service) Update(id string, dto *UpdateSocietyDTO) (*models.SocietyModel, error) {
	m, err := s.getByID(id)
	if err != nil || m == nil {
		return m, err
	}
	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Slug != nil {
		updates["slug"] = *dto.Slug
	}
	if dto.Category != nil {
		updates["category"] = *dto.Category
	}
	if dto.Patron != nil {
		updates["patron"] = *dto.Patron
	}
	if dto.History != nil {
		updates["history"] = *dto.History
	}
	if dto.Purpose != nil {
		updates["purpose"] = *dto.Purpose
	}
	if len(updates) == 0 {
		return m, nil
	}
	if err := s.db.Model(m).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.getByID(id)
}

func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.SocietyModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
