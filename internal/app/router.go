package app

import (
	"github.com/yungbote/profile-backend/internal/assets"
	apphttp "github.com/yungbote/profile-backend/internal/http"
	"github.com/yungbote/profile-backend/internal/observability"
	"github.com/yungbote/profile-backend/internal/platform/logger"
)

func wireRouterConfig(log *logger.Logger, cfg Config, handlerset Handlers, clients Clients, metrics *observability.Metrics) apphttp.RouterConfig {
	rc := apphttp.RouterConfig{
		Log:            log,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Metrics:        metrics,
		ProfileHandler: handlerset.Profile,
		ThemeHandler:   handlerset.Theme,
		HealthHandler:  handlerset.Health,
		UploadsHandler: handlerset.Uploads,
	}
	if cfg.OtelEnabled {
		rc.TracingService = cfg.OtelServiceName
	}
	if cfg.MaxUploadBytes > 0 {
		rc.MaxMultipartMemory = cfg.MaxUploadBytes
	}
	if dir, ok := assets.RootDir(clients.Assets); ok {
		rc.UploadDir = dir
	}
	return rc
}
