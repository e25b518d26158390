package auth

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
	rg.POST("/auth/login", h.login)
	rg.GET("/auth/me", authMW, h.me)

	u := rg.Group("/users", authMW, middleware.RequireRole(models.RoleSuperAdmin))
	u.GET("", h.listUsers)
	u.POST("", h.createUser)
	u.PUT("/:id", h.updateUser)
	u.DELETE("/:id", h.deleteUser)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.svc.Login(dto.Email, dto.Password, c.ClientIP())
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"token": token, "user": user})
}

func (h *Handler) me(c *gin.Context) {
	user, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if user == nil {
		response.Unauthorized(c)
		return
	}
	response.OK(c, user)
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.svc.ListUsers()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, users)
}

func (h *Handler) createUser(c *gin.Context) {
	var dto CreateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.CreateUser(&dto)
	if err != nil {
		switch {
		case errors.Is(err, errDuplicateEmail):
			response.Conflict(c, err.Error())
		case errors.Is(err, errInvalidRole):
			response.UnprocessableEntity(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, user)
}

func (h *Handler) updateUser(c *gin.Context) {
	var dto UpdateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.UpdateUser(c.Param("id"), &dto)
	if err != nil {
		switch {
		case errors.Is(err, errInvalidRole), errors.Is(err, errLastSuperAdmin):
			response.UnprocessableEntity(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	if user == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, user)
}

func (h *Handler) deleteUser(c *gin.Context) {
	ok, err := h.svc.DeleteUser(c.Param("id"))
	if err != nil {
		if errors.Is(err, errLastSuperAdmin) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if !ok {
		response.NotFound(c)
		return
	}
	response.NoContent(c)
}
