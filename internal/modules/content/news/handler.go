package news

import (
	"github.com/gin-gonic/gin"

	"github.com/omph-chaplaincy/parish-core/internal/middleware"
	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/pagination"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/news")

	g.GET("", h.list)
	g.GET("/:id", h.get)

	a := g.Group("", authMW, middleware.RequireRole(models.RoleEditor))
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, pag, err := h.svc.List(pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	out := make([]newsResponse, len(items))
	for i := range items {
		out[i] = toListResponse(&items[i])
	}
	response.Paged(c, out, pag)
}

func (h *Handler) get(c *gin.Context) {
	n, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if n == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(n))
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateNewsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	n, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(n))
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateNewsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	n, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if n == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(n))
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
