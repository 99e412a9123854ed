package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/profile-backend/internal/platform/logger"
	"github.com/yungbote/profile-backend/internal/services"
)

type Services struct {
	Profile services.ProfileService
	Theme   services.ThemeService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")
	return Services{
		Profile: services.NewProfileService(db, log, reposet.Profile, reposet.Theme, clients.Assets),
		Theme:   services.NewThemeService(db, log, reposet.Theme),
	}
}
