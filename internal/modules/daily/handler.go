package daily

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// publicCacheControl lets the CDN serve the day's content for an hour
// and revalidate stale copies for a day.
const publicCacheControl = "s-maxage=3600, stale-while-revalidate=86400"

// Handler exposes the daily content endpoints. The GET shape is
// consumed directly by the site frontend, so it returns the record as a
// bare JSON object rather than the admin API envelope.
type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/daily-content", h.get)
	rg.POST("/daily-content", h.refresh)
}

func (h *Handler) get(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = h.svc.Today()
	} else if _, err := ParseCivilDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.svc.GetContent(c.Request.Context(), date)
	if err != nil {
		h.logger.Error("daily content lookup failed", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch daily content"})
		return
	}

	c.Header("Cache-Control", publicCacheControl)
	c.JSON(http.StatusOK, content)
}

func (h *Handler) refresh(c *gin.Context) {
	if _, err := h.svc.Refresh(c.Request.Context()); err != nil {
		h.logger.Error("daily content refresh failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update daily content"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Daily content updated successfully",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
