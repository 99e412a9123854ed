package repos

import (
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/profile-backend/internal/data/repos/profile"
	"github.com/yungbote/profile-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ThemeRepo = profile.ThemeRepo
type ProfileRepo = profile.ProfileRepo

func NewThemeRepo(db *gorm.DB, baseLog *logger.Logger) ThemeRepo {
	return profile.NewThemeRepo(db, baseLog)
}

func NewCachedThemeRepo(next ThemeRepo, rdb goredis.Cmdable, ttl time.Duration, baseLog *logger.Logger) ThemeRepo {
	return profile.NewCachedThemeRepo(next, rdb, ttl, baseLog)
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return profile.NewProfileRepo(db, baseLog)
}
