// Package prayer handles publicly submitted prayer intentions and
// their moderation flow.
package prayer

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/pagination"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/response"
)

const anonymousName = "Anonymous"

var errInvalidStatus = errors.New("status must be approved or rejected")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Submit stores a new intention in pending state. An empty name is
// published as Anonymous.
func (s *Service) Submit(name, intention string) (*models.PrayerRequestModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = anonymousName
	}
	m := models.PrayerRequestModel{
		Name:      name,
		Intention: strings.TrimSpace(intention),
		Status:    models.SubmissionPending,
	}
	return &m, s.db.Create(&m).Error
}

// ListApproved returns the public prayer wall, newest first.
func (s *Service) ListApproved(q pagination.Query) ([]models.PrayerRequestModel, response.Pagination, error) {
	return s.listByStatus(q, models.SubmissionApproved)
}

// ListPending returns the moderation queue, oldest first so nothing
// waits forever.
func (s *Service) ListPending(q pagination.Query) ([]models.PrayerRequestModel, response.Pagination, error) {
	tx := s.db.Model(&models.PrayerRequestModel{}).
		Where("status = ?", models.SubmissionPending).
		Order("created_at ASC")
	var items []models.PrayerRequestModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) listByStatus(q pagination.Query, status string) ([]models.PrayerRequestModel, response.Pagination, error) {
	tx := s.db.Model(&models.PrayerRequestModel{}).
		Where("status = ?", status).
		Order("created_at DESC")
	var items []models.PrayerRequestModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

// Moderate moves a pending request to approved or rejected.
func (s *Service) Moderate(id, status string) (*models.PrayerRequestModel, error) {
	if status != models.SubmissionApproved && status != models.SubmissionRejected {
		return nil, errInvalidStatus
	}
	var m models.PrayerRequestModel
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := s.db.Model(&m).Update("status", status).Error; err != nil {
		return nil, err
	}
	m.Status = status
	return &m, nil
}

func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.PrayerRequestModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// PurgeRejected permanently removes rejected intentions older than the
// cutoff. Rejected entries are never shown anywhere; they are kept
// briefly so moderators can revisit a decision, then dropped.
func (s *Service) PurgeRejected(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	res := s.db.Unscoped().
		Where("status = ? AND created_at < ?", models.SubmissionRejected, cutoff).
		Delete(&models.PrayerRequestModel{})
	return res.RowsAffected, res.Error
}

// CountPending is used by the admin summary.
func (s *Service) CountPending() (int64, error) {
	var n int64
	err := s.db.Model(&models.PrayerRequestModel{}).
		Where("status = ?", models.SubmissionPending).
		Count(&n).Error
	return n, err
}
