package broker

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"msgboard/pkg/logger"
)

const defaultBlockTime = 5 * time.Second

type Client struct {
	redis     *redis.Client
	stream    string
	group     string
	blockTime time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)
	ctx := context.Background()

	err = rdb.XGroupCreateMkStream(ctx, cfg.StreamName, cfg.GroupName, "$").Err()
	if err != nil && !isBusyGroup(err) {
		_ = rdb.Close()

		return nil, err
	}

	blockTime := time.Duration(cfg.BlockTimeMS) * time.Millisecond
	if blockTime <= 0 {
		blockTime = defaultBlockTime
	}

	logger.Info("connected to redis stream", "stream", cfg.StreamName, "group", cfg.GroupName)

	return &Client{
		redis:     rdb,
		stream:    cfg.StreamName,
		group:     cfg.GroupName,
		blockTime: blockTime,
	}, nil
}

func (c *Client) Close() error {
	return c.redis.Close()
}

func isBusyGroup(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP")
}
