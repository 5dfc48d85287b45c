package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Options struct {
	Addr      string
	Password  string
	DB        int
	NoticeTTL time.Duration
}

// Client wraps the shared Redis connection used by the unread store and the notice ledger.
type Client struct {
	rdb       *redis.Client
	noticeTTL time.Duration
}

func New(ctx context.Context, opts Options) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	ttl := opts.NoticeTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	return &Client{rdb: rdb, noticeTTL: ttl}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	if err := c.rdb.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}
	return nil
}

// MarkOnce records key and reports whether this call was the first to do so.
func (c *Client) MarkOnce(ctx context.Context, key string) (bool, error) {
	first, err := c.rdb.SetNX(ctx, "notice:"+key, time.Now().UTC().Format(time.RFC3339), c.noticeTTL).Result()
	if err != nil {
		return false, fmt.Errorf("set notice %s: %w", key, err)
	}
	return first, nil
}
