// Package schedule manages the recurring Mass and devotion timetable.
package schedule

import (
	"errors"
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/omph-chaplaincy/parish-core/internal/middleware"
	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/response"
)

// dayOrder sorts timetable rows Sunday-first, matching the printed
// parish bulletin.
var dayOrder = map[string]int{
	"Sunday":    0,
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
	"Saturday":  6,
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// DayGroup is one day of the timetable with its Masses in time order.
type DayGroup struct {
	Day    string                     `json:"day"`
	Masses []models.MassScheduleModel `json:"masses"`
}

// List returns the timetable grouped by day, days in bulletin order.
func (s *Service) List() ([]DayGroup, error) {
	var items []models.MassScheduleModel
	if err := s.db.Order("time ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	byDay := make(map[string][]models.MassScheduleModel)
	for _, item := range items {
		byDay[item.Day] = append(byDay[item.Day], item)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sortDays(days)

	out := make([]DayGroup, 0, len(days))
	for _, day := range days {
		out = append(out, DayGroup{Day: day, Masses: byDay[day]})
	}
	return out, nil
}

func sortDays(days []string) {
	sort.Slice(days, func(i, j int) bool { return rank(days[i]) < rank(days[j]) })
}

func rank(day string) int {
	if r, ok := dayOrder[day]; ok {
		return r
	}
	return len(dayOrder)
}

func (s *Service) GetByID(id string) (*models.MassScheduleModel, error) {
	var m models.MassScheduleModel
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

type upsertScheduleDTO struct {
	Day  string `json:"day"  binding:"required"`
	Time string `json:"time" binding:"required"`
	Type string `json:"type"`
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/mass-schedules")

	g.GET("", h.list)

	a := g.Group("", authMW, middleware.RequireRole(models.RoleEditor))
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, out)
}

func (h *Handler) create(c *gin.Context) {
	var dto upsertScheduleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if _, ok := dayOrder[dto.Day]; !ok {
		response.UnprocessableEntity(c, "unknown day: "+dto.Day)
		return
	}
	m := models.MassScheduleModel{Day: dto.Day, Time: dto.Time, Type: dto.Type}
	if err := h.svc.db.Create(&m).Error; err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) update(c *gin.Context) {
	var dto upsertScheduleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if _, ok := dayOrder[dto.Day]; !ok {
		response.UnprocessableEntity(c, "unknown day: "+dto.Day)
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
		"day": dto.Day, "time": dto.Time, "type": dto.Type,
	}).Error
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, m)
}

func (h *Handler) delete(c *gin.Context) {
	res := h.svc.db.Delete(&models.MassScheduleModel{}, "id = ?", c.Param("id"))
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
