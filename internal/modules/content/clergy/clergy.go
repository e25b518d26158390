// Package clergy manages the clergy profiles shown on the site.
package clergy

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/omph-chaplaincy/parish-core/internal/middleware"
	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/response"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.ClergyModel, error) {
	var items []models.ClergyModel
	err := s.db.Order("display_order ASC, name ASC").Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id string) (*models.ClergyModel, error) {
	var m models.ClergyModel
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

type upsertClergyDTO struct {
	Name         string `json:"name" binding:"required"`
	Role         string `json:"role"`
	Bio          string `json:"bio"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/clergy")

	g.GET("", h.list)

	a := g.Group("", authMW, middleware.RequireRole(models.RoleAdmin))
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) create(c *gin.Context) {
	var dto upsertClergyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m := models.ClergyModel{
		Name:         dto.Name,
		Role:         dto.Role,
		Bio:          dto.Bio,
		ImageURL:     dto.ImageURL,
		DisplayOrder: dto.DisplayOrder,
	}
	if err := h.svc.db.Create(&m).Error; err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) update(c *gin.Context) {
	var dto upsertClergyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFound(c)
		return
	}
	err = h.svc.db.Model(m).Updates(map[string]interface{}{
		"name":          dto.Name,
		"role":          dto.Role,
		"bio":           dto.Bio,
		"image_url":     dto.ImageURL,
		"display_order": dto.DisplayOrder,
	}).Error
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, m)
}

func (h *Handler) delete(c *gin.Context) {
	res := h.svc.db.Delete(&models.ClergyModel{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		response.InternalError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c)
		return
	}
	response.NoContent(c)
}
