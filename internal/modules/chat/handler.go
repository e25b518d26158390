package chat

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler exposes the public chat endpoint. Like the daily content
// endpoint, the response shape is consumed directly by the site widget.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.ask)
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *Handler) ask(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	answer, source := h.svc.Respond(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, gin.H{
		"response":  answer,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"source":    source,
	})
}
