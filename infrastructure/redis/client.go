package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Madhavladani/adeptjs64/domain/ports"
	"github.com/Madhavladani/adeptjs64/pkg/config"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
)

const (
	lockTTL        = 10 * time.Second
	lockRetryDelay = 100 * time.Millisecond
	lockMaxWaits   = 20
)

// Client wraps the Redis client
type Client struct {
	rdb *redis.Client
}

var _ ports.CachePort = (*Client)(nil)

func NewClient(cfg *config.RedisConfig) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.Password != "" {
		opt.Password = cfg.Password
	}
	if cfg.DB > 0 {
		opt.DB = cfg.DB
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}

	logger.Info("Redis connected", "addr", opt.Addr, "db", opt.DB)
	return &Client{rdb: rdb}, nil
}

// ScanAndDelete ลบทุก key ที่ match pattern
func (c *Client) ScanAndDelete(ctx context.Context, pattern string) (int64, error) {
	var deleted int64
	var cursor uint64

	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := c.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += n
		}
		cursor = next
		if cursor == 0 {
			return deleted, nil
		}
	}
}

// generationKey อยู่นอก pattern ของ ScanAndDelete เช่น "gen:catalog"
func generationKey(namespace string) string {
	return "gen:" + namespace
}

func (c *Client) Generation(ctx context.Context, namespace string) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationKey(namespace)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *Client) BumpGeneration(ctx context.Context, namespace string) (int64, error) {
	return c.rdb.Incr(ctx, generationKey(namespace)).Result()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// ─── JSON cache ───

func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, ttl).Err()
}

// GetJSON คืน redis.Nil ถ้าไม่มี key
func (c *Client) GetJSON(ctx context.Context, key string, target interface{}) error {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

// GetOrSet อ่าน cache ก่อน ถ้า miss จะจับ lock "lock:<key>" ให้มีแค่ request เดียวที่ไปอ่าน store
// ถ้ารอ lock นานเกินก็เรียก getter เองโดยไม่ cache
func (c *Client) GetOrSet(ctx context.Context, key string, target interface{}, ttl time.Duration, getter func() (interface{}, error)) error {
	lockKey := "lock:" + key

	for attempt := 0; attempt <= lockMaxWaits; attempt++ {
		err := c.GetJSON(ctx, key, target)
		if err == nil {
			return nil
		}
		if !errors.Is(err, redis.Nil) {
			return err
		}

		locked, err := c.rdb.SetNX(ctx, lockKey, "1", lockTTL).Result()
		if err != nil {
			return err
		}
		if locked {
			defer c.rdb.Del(context.WithoutCancel(ctx), lockKey)

			// อาจมีคนเติม cache ระหว่างรอ lock
			if err := c.GetJSON(ctx, key, target); err == nil {
				return nil
			}
			return c.fill(ctx, key, target, ttl, getter)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}

	logger.WarnContext(ctx, "Cache lock wait exceeded, reading through", "key", key)
	result, err := getter()
	if err != nil {
		return err
	}
	return copyJSON(result, target)
}

func (c *Client) fill(ctx context.Context, key string, target interface{}, ttl time.Duration, getter func() (interface{}, error)) error {
	result, err := getter()
	if err != nil {
		return err
	}
	if err := c.SetJSON(ctx, key, result, ttl); err != nil {
		logger.WarnContext(ctx, "Failed to cache result", "key", key, "error", err)
	}
	return copyJSON(result, target)
}

func copyJSON(src, dst interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
