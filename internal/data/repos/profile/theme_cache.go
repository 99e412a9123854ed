package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	types "github.com/yungbote/profile-backend/internal/domain"
	"github.com/yungbote/profile-backend/internal/observability"
	"github.com/yungbote/profile-backend/internal/platform/logger"
	"gorm.io/gorm"
)

const (
	themeCachePrefix     = "theme:"
	DefaultThemeCacheTTL = 10 * time.Minute
)

type cachedThemeRepo struct {
	ThemeRepo
	rdb goredis.Cmdable
	ttl time.Duration
	log *logger.Logger
}

// NewCachedThemeRepo puts a Redis read-through cache in front of GetByID and
// GetByName. Only hits are cached. Redis failures are logged and the call
// falls through to next. Lookups made inside a transaction skip the cache, so
// write paths always see the current catalog; plain reads may lag an external
// change by up to ttl.
func NewCachedThemeRepo(next ThemeRepo, rdb goredis.Cmdable, ttl time.Duration, baseLog *logger.Logger) ThemeRepo {
	if rdb == nil {
		return next
	}
	if ttl <= 0 {
		ttl = DefaultThemeCacheTTL
	}
	return &cachedThemeRepo{
		ThemeRepo: next,
		rdb:       rdb,
		ttl:       ttl,
		log:       baseLog.With("repo", "CachedThemeRepo"),
	}
}

func themeIDKey(id int64) string      { return fmt.Sprintf("%sid:%d", themeCachePrefix, id) }
func themeNameKey(name string) string { return themeCachePrefix + "name:" + name }

func (r *cachedThemeRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Theme, error) {
	if inTransaction(tx) {
		return r.ThemeRepo.GetByID(ctx, tx, id)
	}
	return r.readThrough(ctx, themeIDKey(id), func() (*types.Theme, error) {
		return r.ThemeRepo.GetByID(ctx, tx, id)
	})
}

func (r *cachedThemeRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Theme, error) {
	if inTransaction(tx) {
		return r.ThemeRepo.GetByName(ctx, tx, name)
	}
	return r.readThrough(ctx, themeNameKey(name), func() (*types.Theme, error) {
		return r.ThemeRepo.GetByName(ctx, tx, name)
	})
}

func (r *cachedThemeRepo) Create(ctx context.Context, tx *gorm.DB, themes []*types.Theme) ([]*types.Theme, error) {
	created, err := r.ThemeRepo.Create(ctx, tx, themes)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(created)*2)
	for _, t := range created {
		keys = append(keys, themeIDKey(t.ID), themeNameKey(t.Name))
	}
	if len(keys) > 0 {
		if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
			r.log.Warn("Theme cache invalidation failed", "error", err)
		}
	}
	return created, nil
}

func inTransaction(tx *gorm.DB) bool {
	if tx == nil || tx.Statement == nil {
		return false
	}
	committer, ok := tx.Statement.ConnPool.(gorm.TxCommitter)
	return ok && committer != nil
}

func (r *cachedThemeRepo) readThrough(ctx context.Context, key string, load func() (*types.Theme, error)) (*types.Theme, error) {
	metrics := observability.Current()
	raw, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var theme types.Theme
		jerr := json.Unmarshal(raw, &theme)
		if jerr == nil {
			metrics.ObserveThemeCache("hit")
			return &theme, nil
		}
		r.log.Warn("Dropping undecodable theme cache entry", "key", key, "error", jerr)
		_ = r.rdb.Del(ctx, key).Err()
		metrics.ObserveThemeCache("error")
	case errors.Is(err, goredis.Nil):
		metrics.ObserveThemeCache("miss")
	default:
		r.log.Warn("Theme cache read failed", "key", key, "error", err)
		metrics.ObserveThemeCache("error")
	}

	theme, err := load()
	if err != nil || theme == nil {
		return theme, err
	}
	if enc, jerr := json.Marshal(theme); jerr == nil {
		if serr := r.rdb.Set(ctx, key, enc, r.ttl).Err(); serr != nil {
			r.log.Warn("Theme cache write failed", "key", key, "error", serr)
		}
	}
	return theme, nil
}
