package sellers

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"agenda/backend/internal/store"
)

const (
	DefaultTTL    = 5 * time.Minute
	defaultPrefix = "agenda:seller"
)

type cacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

type lookupRecorder interface {
	RecordSellerLookup(result string)
}

// CachedDirectory answers seller existence from Redis and falls back to the
// underlying lookup. Only positive answers are cached: sellers referenced by
// appointments cannot be removed, so a cached "exists" never goes stale in a
// way that admits a booking for a missing seller.
type CachedDirectory struct {
	source store.SellerLookup
	cache  cacheClient
	ttl    time.Duration
	prefix string
	log    *slog.Logger
	rec    lookupRecorder
}

type Option func(*CachedDirectory)

func WithTTL(ttl time.Duration) Option {
	return func(d *CachedDirectory) {
		if ttl > 0 {
			d.ttl = ttl
		}
	}
}

func WithPrefix(prefix string) Option {
	return func(d *CachedDirectory) {
		if p := strings.TrimSpace(prefix); p != "" {
			d.prefix = p
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(d *CachedDirectory) {
		if log != nil {
			d.log = log
		}
	}
}

func WithRecorder(rec lookupRecorder) Option {
	return func(d *CachedDirectory) {
		d.rec = rec
	}
}

func NewCachedDirectory(source store.SellerLookup, cache cacheClient, opts ...Option) *CachedDirectory {
	d := &CachedDirectory{
		source: source,
		cache:  cache,
		ttl:    DefaultTTL,
		prefix: defaultPrefix,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.With(slog.String("component", "sellers.cache"))
	return d
}

func (d *CachedDirectory) SellerExists(ctx context.Context, sellerID string) (bool, error) {
	if sellerID == "" {
		return false, nil
	}
	key := d.prefix + ":" + sellerID

	_, err := d.cache.Get(ctx, key).Result()
	switch {
	case err == nil:
		d.record("hit")
		return true, nil
	case errors.Is(err, redis.Nil):
		d.record("miss")
	default:
		d.record("error")
		d.log.Warn("seller cache read failed", slog.Any("err", err), slog.String("seller_id", sellerID))
	}

	ok, err := d.source.SellerExists(ctx, sellerID)
	if err != nil || !ok {
		return ok, err
	}

	if err := d.cache.Set(ctx, key, "1", d.ttl).Err(); err != nil {
		d.log.Warn("seller cache write failed", slog.Any("err", err), slog.String("seller_id", sellerID))
	}
	return true, nil
}

func (d *CachedDirectory) record(result string) {
	if d.rec != nil {
		d.rec.RecordSellerLookup(result)
	}
}
