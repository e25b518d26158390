// Package donation records donation pledges made through the site.
// No card processing happens here: the donor receives a reference to
// quote on their bank transfer, and an admin marks the pledge received
// once the transfer shows up.
package donation

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/omph-chaplaincy/parish-core/internal/middleware"
	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/pagination"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/response"
)

const defaultCurrency = "NGN"

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

type PledgeDTO struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"   binding:"omitempty,email"`
	Amount  float64 `json:"amount"  binding:"required,gt=0"`
	Purpose string  `json:"purpose"`
	Message string  `json:"message"`
}

// Pledge records a donation pledge and assigns its transfer reference.
func (s *Service) Pledge(dto *PledgeDTO) (*models.DonationModel, error) {
	m := models.DonationModel{
		Name:      strings.TrimSpace(dto.Name),
		Email:     strings.TrimSpace(dto.Email),
		Amount:    dto.Amount,
		Currency:  defaultCurrency,
		Purpose:   strings.TrimSpace(dto.Purpose),
		Message:   strings.TrimSpace(dto.Message),
		Reference: "OMPH-" + uuid.New().String()[:8],
	}
	return &m, s.db.Create(&m).Error
}

func (s *Service) List(q pagination.Query, receivedOnly bool) ([]models.DonationModel, response.Pagination, error) {
	tx := s.db.Model(&models.DonationModel{}).Order("created_at DESC")
	if receivedOnly {
		tx = tx.Where("received = ?", true)
	}
	var items []models.DonationModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

// MarkReceived flags a pledge as settled.
func (s *Service) MarkReceived(id string) (*models.DonationModel, error) {
	var m models.DonationModel
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := s.db.Model(&m).Update("received", true).Error; err != nil {
		return nil, err
	}
	m.Received = true
	return &m, nil
}

// TotalReceived sums settled pledges for the admin summary.
func (s *Service) TotalReceived() (float64, error) {
	var total float64
	err := s.db.Model(&models.DonationModel{}).
		Where("received = ?", true).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/donations")

	g.POST("", h.pledge)

	a := g.Group("", authMW, middleware.RequireRole(models.RoleAdmin))
	a.GET("", h.list)
	a.PATCH("/:id/received", h.markReceived)
}

func (h *Handler) pledge(c *gin.Context) {
	var dto PledgeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Pledge(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{
		"reference": m.Reference,
		"amount":    m.Amount,
		"currency":  m.Currency,
	})
}

// GET /donations?received=true
func (h *Handler) list(c *gin.Context) {
	items, pag, err := h.svc.List(pagination.FromContext(c), c.Query("received") == "true")
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}

func (h *Handler) markReceived(c *gin.Context) {
	m, err := h.svc.MarkReceived(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, m)
}
