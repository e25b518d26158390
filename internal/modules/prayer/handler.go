package prayer

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/omph-chaplaincy/parish-core/internal/middleware"
	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/pagination"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/prayer-requests")

	g.GET("", h.listApproved)
	g.POST("", h.submit)

	a := g.Group("", authMW, middleware.RequireRole(models.RoleModerator))
	a.GET("/pending", h.listPending)
	a.PATCH("/:id", h.moderate)
	a.DELETE("/:id", h.delete)
}

type submitDTO struct {
	Name      string `json:"name"`
	Intention string `json:"intention" binding:"required"`
}

func (h *Handler) submit(c *gin.Context) {
	var dto submitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Submit(dto.Name, dto.Intention)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) listApproved(c *gin.Context) {
	items, pag, err := h.svc.ListApproved(pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}

func (h *Handler) listPending(c *gin.Context) {
	items, pag, err := h.svc.ListPending(pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}

type moderateDTO struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) moderate(c *gin.Context) {
	var dto moderateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Moderate(c.Param("id"), dto.Status)
	if err != nil {
		if errors.Is(err, errInvalidStatus) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, m)
}

func (h *Handler) delete(c *gin.Context) {
	ok, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !ok {
		response.NotFound(c)
		return
	}
	response.NoContent(c)
}
