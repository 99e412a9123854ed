package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/profile-backend/internal/platform/logger"
)

const pingTimeout = 5 * time.Second

// NewClient dials addr and verifies it with a ping before returning.
func NewClient(log *logger.Logger, addr, password string, db int) (*goredis.Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: pingTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.With("client", "Redis").Info("Redis connected", "addr", addr, "db", db)
	return rdb, nil
}

// Pinger exposes a redis client to readiness checks.
type Pinger struct {
	Client goredis.Cmdable
}

func (p Pinger) PingContext(ctx context.Context) error {
	if p.Client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	return p.Client.Ping(ctx).Err()
}
