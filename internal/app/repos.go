package app

import (
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/profile-backend/internal/data/repos"
	"github.com/yungbote/profile-backend/internal/platform/logger"
)

type Repos struct {
	Theme   repos.ThemeRepo
	Profile repos.ProfileRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger, cfg Config, rdb *goredis.Client) Repos {
	log.Info("Wiring repos...")
	themes := repos.NewThemeRepo(db, log)
	if rdb != nil {
		themes = repos.NewCachedThemeRepo(themes, rdb, cfg.ThemeCacheTTL, log)
	}
	return Repos{
		Theme:   themes,
		Profile: repos.NewProfileRepo(db, log),
	}
}
