package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/omph-chaplaincy/parish-core/internal/config"
	"github.com/omph-chaplaincy/parish-core/internal/database"
	"github.com/omph-chaplaincy/parish-core/internal/middleware"
	"github.com/omph-chaplaincy/parish-core/internal/modules/auth"
	pkgcron "github.com/omph-chaplaincy/parish-core/internal/pkg/cron"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/jwt"
	pkgredis "github.com/omph-chaplaincy/parish-core/internal/pkg/redis"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	rc     *pkgredis.Client
	logger *zap.Logger
	cancel context.CancelFunc
	sched  *pkgcron.Scheduler
}

// New initializes the application: config → DB → Redis → routes → cron.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	jwt.SetSecret(cfg.JWTSecret)

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	rc, err := pkgredis.Connect(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(buildCORSConfig(cfg)))

	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		cfg:    cfg,
		router: router,
		db:     db,
		rc:     rc,
		logger: logger,
		cancel: cancel,
		sched:  pkgcron.New(),
	}

	if err := auth.NewService(db, logger).EnsureDefaultAdmin(cfg.Admin); err != nil {
		cancel()
		return nil, fmt.Errorf("seeding admin: %w", err)
	}

	app.registerRoutes()
	app.registerCronJobs()
	go app.sched.Start(ctx)

	return app, nil
}

func buildCORSConfig(cfg *config.AppConfig) cors.Config {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "x-parish-cache"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	return corsConfig
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown stops background goroutines.
func (a *App) Shutdown() { a.cancel() }
