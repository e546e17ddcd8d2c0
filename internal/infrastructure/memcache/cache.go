package memcache

import (
	"context"
	"errors"
	"time"

	"github.com/bradfitz/gomemcache/memcache"

	"msgboard/internal/domain/repository/cache"
	"msgboard/pkg/logger"
)

// ThumbCache keeps rendered thumbnail bytes in memcached.
type ThumbCache struct {
	client *memcache.Client
	ttl    int32
}

// New returns a memcached backed cache, or a no-op cache when no address is
// configured.
func New(cfg Config) cache.ThumbCache {
	if cfg.Address == "" {
		logger.Info("memcache address not set, thumbnail hot cache disabled")

		return Noop{}
	}

	client := memcache.New(cfg.Address)
	if cfg.MaxIdleConns > 0 {
		client.MaxIdleConns = cfg.MaxIdleConns
	}

	if cfg.Timeout > 0 {
		client.Timeout = time.Duration(cfg.Timeout) * time.Millisecond
	}

	logger.Info("using memcached thumbnail cache", "address", cfg.Address)

	return &ThumbCache{
		client: client,
		ttl:    cfg.TTL,
	}
}

func (c *ThumbCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	item, err := c.client.Get(key)
	if err != nil {
		if errors.Is(err, memcache.ErrCacheMiss) {
			return nil, false, nil
		}

		return nil, false, err
	}

	return item.Value, true, nil
}

func (c *ThumbCache) Set(_ context.Context, key string, data []byte) error {
	return c.client.Set(&memcache.Item{
		Key:        key,
		Value:      data,
		Expiration: c.ttl,
	})
}

// Noop never holds anything.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, string, []byte) error {
	return nil
}
