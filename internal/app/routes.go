package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/omph-chaplaincy/parish-core/internal/middleware"
	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/modules/admin"
	"github.com/omph-chaplaincy/parish-core/internal/modules/auth"
	"github.com/omph-chaplaincy/parish-core/internal/modules/chat"
	"github.com/omph-chaplaincy/parish-core/internal/modules/content/clergy"
	"github.com/omph-chaplaincy/parish-core/internal/modules/content/event"
	"github.com/omph-chaplaincy/parish-core/internal/modules/content/news"
	"github.com/omph-chaplaincy/parish-core/internal/modules/content/page"
	"github.com/omph-chaplaincy/parish-core/internal/modules/content/society"
	"github.com/omph-chaplaincy/parish-core/internal/modules/daily"
	"github.com/omph-chaplaincy/parish-core/internal/modules/donation"
	"github.com/omph-chaplaincy/parish-core/internal/modules/prayer"
	"github.com/omph-chaplaincy/parish-core/internal/modules/schedule"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	a.router.GET("/api/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})

	// OptionalAuth runs first: both the rate limiter and the response
	// cache exempt authenticated requests.
	api := a.router.Group("/api")
	api.Use(middleware.OptionalAuth(a.db))
	api.Use(middleware.RateLimit(a.rc.Raw()))
	api.Use(middleware.HTTPCache(a.rc.Raw(), middleware.HTTPCacheOptions{
		TTL: time.Hour,
		SkipPaths: []string{
			"/api/auth",
			"/api/users",
			"/api/admin",
			"/api/donations",
			"/api/prayer-requests/pending",
		},
	}))

	authMW := middleware.Auth(a.db)

	// Public pipeline endpoints.
	daily.NewHandler(daily.NewService(a.db, a.cfg, a.logger), a.logger).RegisterRoutes(api)
	chat.NewHandler(chat.NewService(a.cfg.ChatAI, a.logger)).RegisterRoutes(api)

	// Content collections.
	page.NewHandler(page.NewService(a.db)).RegisterRoutes(api, authMW)
	newsSvc := news.NewService(a.db)
	news.NewHandler(newsSvc).RegisterRoutes(api, authMW)
	eventSvc := event.NewService(a.db)
	event.NewHandler(eventSvc).RegisterRoutes(api, authMW)
	society.NewHandler(society.NewService(a.db)).RegisterRoutes(api, authMW)
	clergy.NewHandler(clergy.NewService(a.db)).RegisterRoutes(api, authMW)
	schedule.NewHandler(schedule.NewService(a.db)).RegisterRoutes(api, authMW)

	// Visitor submissions.
	prayerSvc := prayer.NewService(a.db)
	prayer.NewHandler(prayerSvc).RegisterRoutes(api, authMW)
	donationSvc := donation.NewService(a.db)
	donation.NewHandler(donationSvc).RegisterRoutes(api, authMW)

	// Admin surface.
	authSvc := auth.NewService(a.db, a.logger)
	auth.NewHandler(authSvc).RegisterRoutes(api, authMW)
	admin.NewHandler(prayerSvc, newsSvc, eventSvc, donationSvc, authSvc).RegisterRoutes(api, authMW)

	a.registerOpsRoutes(api, authMW)
}

// registerOpsRoutes exposes the operational endpoints of the admin
// surface: cache purge and cron inspection.
func (a *App) registerOpsRoutes(api *gin.RouterGroup, authMW gin.HandlerFunc) {
	ops := api.Group("/admin", authMW, middleware.RequireRole(models.RoleAdmin))

	ops.DELETE("/cache", func(c *gin.Context) {
		deleted, err := middleware.PurgeHTTPCache(c.Request.Context(), a.rc.Raw())
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, gin.H{"deleted": deleted})
	})

	ops.GET("/cron", func(c *gin.Context) {
		response.OK(c, a.sched.List())
	})

	ops.POST("/cron/:name/run", func(c *gin.Context) {
		// Detached context: the job outlives the triggering request.
		if err := a.sched.Run(context.Background(), c.Param("name")); err != nil {
			response.NotFoundMsg(c, err.Error())
			return
		}
		response.OK(c, gin.H{"triggered": c.Param("name")})
	})
}
