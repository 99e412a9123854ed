package app

import (
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/profile-backend/internal/assets"
	"github.com/yungbote/profile-backend/internal/clients/redis"
	"github.com/yungbote/profile-backend/internal/platform/gcp"
	"github.com/yungbote/profile-backend/internal/platform/logger"
)

type Clients struct {
	// Redis is nil when REDIS_ADDR is unset.
	Redis *goredis.Client
	// Bucket is nil for local asset storage.
	Bucket gcp.BucketService
	Assets assets.Store
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	var rdb *goredis.Client
	if strings.TrimSpace(cfg.RedisAddr) != "" {
		c, err := redis.NewClient(log, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis client: %w", err)
		}
		rdb = c
	}

	store, bucket, err := resolveAssetStore(log, cfg)
	if err != nil {
		if rdb != nil {
			_ = rdb.Close()
		}
		return Clients{}, fmt.Errorf("init asset store: %w", err)
	}

	return Clients{
		Redis:  rdb,
		Bucket: bucket,
		Assets: store,
	}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Bucket != nil {
		_ = c.Bucket.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
