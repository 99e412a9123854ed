package app

import (
	"database/sql"

	"github.com/yungbote/profile-backend/internal/clients/redis"
	httpH "github.com/yungbote/profile-backend/internal/http/handlers"
)

type Handlers struct {
	Profile *httpH.ProfileHandler
	Theme   *httpH.ThemeHandler
	Health  *httpH.HealthHandler
	Uploads *httpH.UploadsHandler
}

func wireHandlers(cfg Config, serviceset Services, clients Clients, sqlDB *sql.DB) Handlers {
	deps := map[string]httpH.Pinger{}
	if sqlDB != nil {
		deps["database"] = sqlDB
	}
	if clients.Redis != nil {
		deps["redis"] = redis.Pinger{Client: clients.Redis}
	}
	return Handlers{
		Profile: httpH.NewProfileHandler(serviceset.Profile, cfg.MaxUploadBytes),
		Theme:   httpH.NewThemeHandler(serviceset.Theme),
		Health:  httpH.NewHealthHandler(deps),
		Uploads: httpH.NewUploadsHandler(clients.Assets),
	}
}
