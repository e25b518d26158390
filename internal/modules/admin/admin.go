// Package admin exposes the dashboard summary for the admin surface.
package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/omph-chaplaincy/parish-core/internal/middleware"
	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/modules/auth"
	"github.com/omph-chaplaincy/parish-core/internal/modules/content/event"
	"github.com/omph-chaplaincy/parish-core/internal/modules/content/news"
	"github.com/omph-chaplaincy/parish-core/internal/modules/donation"
	"github.com/omph-chaplaincy/parish-core/internal/modules/prayer"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/response"
)

// Summary is the admin dashboard snapshot.
type Summary struct {
	PendingPrayerRequests int64   `json:"pending_prayer_requests"`
	NewsArticles          int64   `json:"news_articles"`
	UpcomingEvents        int64   `json:"upcoming_events"`
	DonationsReceived     float64 `json:"donations_received"`
	Accounts              int64   `json:"accounts"`
}

type Handler struct {
	prayers   *prayer.Service
	news      *news.Service
	events    *event.Service
	donations *donation.Service
	users     *auth.Service
}

func NewHandler(prayers *prayer.Service, newsSvc *news.Service, events *event.Service, donations *donation.Service, users *auth.Service) *Handler {
	return &Handler{
		prayers:   prayers,
		news:      newsSvc,
		events:    events,
		donations: donations,
		users:     users,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/admin/summary", authMW, middleware.RequireRole(models.RoleAdmin), h.summary)
}

func (h *Handler) summary(c *gin.Context) {
	var (
		summary Summary
		err     error
	)
	if summary.PendingPrayerRequests, err = h.prayers.CountPending(); err != nil {
		response.InternalError(c, err)
		return
	}
	if summary.NewsArticles, err = h.news.Count(); err != nil {
		response.InternalError(c, err)
		return
	}
	if summary.UpcomingEvents, err = h.events.CountUpcoming(); err != nil {
		response.InternalError(c, err)
		return
	}
	if summary.DonationsReceived, err = h.donations.TotalReceived(); err != nil {
		response.InternalError(c, err)
		return
	}
	if summary.Accounts, err = h.users.CountUsers(); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, summary)
}
