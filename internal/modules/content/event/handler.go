package event

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
	g := rg.Group("/events")

	g.GET("", h.list)
	g.GET("/:id", h.get)

	a := g.Group("", authMW, middleware.RequireRole(models.RoleEditor))
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// GET /events?scope=upcoming|past|all
func (h *Handler) list(c *gin.Context) {
	items, pag, err := h.svc.List(pagination.FromContext(c), c.DefaultQuery("scope", ScopeUpcoming))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	out := make([]eventResponse, len(items))
	for i := range items {
		out[i] = toResponse(&items[i])
	}
	response.Paged(c, out, pag)
}

func (h *Handler) get(c *gin.Context) {
	e, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if e == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(e))
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateEventDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	e, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(e))
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateEventDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	e, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if e == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(e))
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
