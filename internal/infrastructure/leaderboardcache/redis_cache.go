package leaderboardcache

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/team-manager/internal/platform/logging"
	"github.com/riskibarqy/team-manager/internal/platform/resilience"
)

const (
	defaultTTL    = 10 * time.Minute
	defaultPrefix = "team-manager:"
)

// Client is the subset of go-redis used by the cache.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

type Config struct {
	URL            string
	TTL            time.Duration
	KeyPrefix      string
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Cache stores rendered leaderboards as JSON strings with a TTL.
type Cache struct {
	client  Client
	closer  func() error
	ttl     time.Duration
	prefix  string
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

// New dials nothing; go-redis connects lazily on the first command.
func New(cfg Config) (*Cache, error) {
	raw := strings.TrimSpace(cfg.URL)
	if raw == "" {
		return nil, crerr.New("redis url is required")
	}
	opts, err := redis.ParseURL(raw)
	if err != nil {
		return nil, crerr.Wrap(err, "parse REDIS_URL")
	}

	client := redis.NewClient(opts)
	c := NewWithClient(client, cfg)
	c.closer = client.Close
	return c, nil
}

func NewWithClient(client Client, cfg Config) *Cache {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultPrefix
	}

	breaker := resilience.NewCircuitBreaker(cfg.CircuitBreaker)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("leaderboard cache circuit changed", "from", from, "to", to)
	})

	return &Cache{
		client:  client,
		ttl:     ttl,
		prefix:  prefix,
		breaker: breaker,
		logger:  logger,
	}
}

// Load decodes the value at key into dst. A missing key is a miss, not an error.
func (c *Cache) Load(ctx context.Context, key string, dst any) (bool, error) {
	var raw string
	err := c.breaker.Execute(func() error {
		var getErr error
		raw, getErr = c.client.Get(ctx, c.prefix+key).Result()
		return getErr
	}, isMiss)
	switch {
	case isMiss(err):
		return false, nil
	case stderrors.Is(err, resilience.ErrCircuitOpen):
		c.logger.WarnContext(ctx, "leaderboard cache circuit open", "key", key, "state", c.breaker.State())
		return false, crerr.Wrap(err, "redis get")
	case err != nil:
		return false, crerr.Wrapf(err, "redis get %s", key)
	}

	if err := sonic.UnmarshalString(raw, dst); err != nil {
		return false, crerr.Wrapf(err, "decode cached %s", key)
	}
	return true, nil
}

func (c *Cache) Store(ctx context.Context, key string, value any) error {
	encoded, err := sonic.MarshalString(value)
	if err != nil {
		return crerr.Wrapf(err, "encode %s", key)
	}

	err = c.breaker.Execute(func() error {
		return c.client.Set(ctx, c.prefix+key, encoded, c.ttl).Err()
	}, nil)
	if err != nil {
		return crerr.Wrapf(err, "redis set %s", key)
	}
	return nil
}

func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return crerr.Wrap(err, "redis ping")
	}
	return nil
}

func (c *Cache) Close() error {
	if c == nil || c.closer == nil {
		return nil
	}
	return c.closer()
}

func isMiss(err error) bool {
	return stderrors.Is(err, redis.Nil)
}
