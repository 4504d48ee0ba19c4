package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"workshop-service/internal/config"
	"workshop-service/internal/http/middleware"
	"workshop-service/internal/metrics"
)

func NewRouter(handler *Handler, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(metrics.Middleware())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		ExposeHeaders:   []string{"Content-Type", "X-Import-Success"},
		MaxAge:          12 * time.Hour,
	}))

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("workshop_session", store))

	router.LoadHTMLGlob("web/templates/**/*.html")
	router.Static("/static", "web/static")
	router.Static("/uploads/vehicles", cfg.UploadDir)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/status", func(c *gin.Context) {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"host":   c.ClientIP(),
			"port":   cfg.HTTP.Port,
			"scheme": scheme,
			"path":   c.Request.URL.Path,
		})
	})

	router.GET("/metrics", metrics.Handler())

	handler.Register(router, middleware.Auth())

	return router
}
