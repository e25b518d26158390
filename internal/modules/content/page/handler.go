package page

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/omph-chaplaincy/parish-core/internal/middleware"
	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/pages")

	g.GET("", h.list)
	g.GET("/:slug", h.get)

	a := g.Group("", authMW, middleware.RequireRole(models.RoleEditor))
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
	out := make([]pageResponse, len(items))
	for i := range items {
		out[i] = toResponse(&items[i])
	}
	response.OK(c, out)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(p))
}

func (h *Handler) create(c *gin.Context) {
	var dto CreatePageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, errDuplicateSlug) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(p))
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdatePageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(p))
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
