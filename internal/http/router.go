package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/profile-backend/internal/http/handlers"
	httpMW "github.com/yungbote/profile-backend/internal/http/middleware"
	"github.com/yungbote/profile-backend/internal/observability"
	"github.com/yungbote/profile-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AllowedOrigins []string
	Metrics        *observability.Metrics
	// TracingService enables otelgin spans under this service name when set.
	TracingService string
	// MaxMultipartMemory caps in-memory multipart parsing; 0 keeps gin's default.
	MaxMultipartMemory int64

	ProfileHandler *httpH.ProfileHandler
	ThemeHandler   *httpH.ThemeHandler
	HealthHandler  *httpH.HealthHandler

	// UploadDir serves /uploads straight from disk. Otherwise UploadsHandler streams.
	UploadDir      string
	UploadsHandler *httpH.UploadsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.MaxMultipartMemory > 0 {
		r.MaxMultipartMemory = cfg.MaxMultipartMemory
	}
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	// Stored assets
	switch {
	case cfg.UploadDir != "":
		r.Static("/uploads", cfg.UploadDir)
	case cfg.UploadsHandler != nil:
		r.GET("/uploads/*filepath", cfg.UploadsHandler.Serve)
	}

	api := r.Group("/api")

	// Themes
	if cfg.ThemeHandler != nil {
		api.GET("/themes", cfg.ThemeHandler.ListThemes)
		api.GET("/themes/:themeId", cfg.ThemeHandler.GetTheme)
	}

	// Profile
	if cfg.ProfileHandler != nil {
		profile := api.Group("/profile/:userId", httpMW.AttachPrincipal())
		profile.GET("", cfg.ProfileHandler.GetProfile)
		profile.POST("/initialize-profile", cfg.ProfileHandler.InitializeProfile)
		profile.POST("/background-image", cfg.ProfileHandler.UploadBackgroundImage)
		profile.POST("/avatar", cfg.ProfileHandler.UploadAvatar)
		profile.PUT("/button-style", cfg.ProfileHandler.UpdateButtonStyle)
		profile.PUT("/theme", cfg.ProfileHandler.UpdateTheme)
	}

	return r
}
