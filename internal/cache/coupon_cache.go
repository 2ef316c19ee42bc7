package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	zlog "github.com/rs/zerolog/log"

	"github.com/Cheertaboi/facility-pricing-service/internal/models"
)

const keyPrefix = "coupon:"

// CouponCache keeps coupon records in Redis keyed by their exact code.
type CouponCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewCouponCache(rdb redis.Cmdable, ttl time.Duration) *CouponCache {
	return &CouponCache{rdb: rdb, ttl: ttl}
}

func Key(code string) string {
	return keyPrefix + code
}

// Get reports false on a cache miss.
func (c *CouponCache) Get(ctx context.Context, code string) (*models.Coupon, bool, error) {
	raw, err := c.rdb.Get(ctx, Key(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "redis get coupon")
	}

	var coupon models.Coupon
	if err := json.Unmarshal([]byte(raw), &coupon); err != nil {
		return nil, false, errors.Wrap(err, "decode cached coupon")
	}
	return &coupon, true, nil
}

func (c *CouponCache) Set(ctx context.Context, coupon *models.Coupon) error {
	raw, err := json.Marshal(coupon)
	if err != nil {
		return errors.Wrap(err, "encode coupon")
	}
	return errors.Wrap(c.rdb.Set(ctx, Key(coupon.Code), string(raw), c.ttl).Err(), "redis set coupon")
}

func (c *CouponCache) Invalidate(ctx context.Context, code string) error {
	return errors.Wrap(c.rdb.Del(ctx, Key(code)).Err(), "redis del coupon")
}

type CouponSource interface {
	FindByCode(ctx context.Context, code string) (*models.Coupon, error)
}

// ReadThrough serves coupons from the cache and falls back to src.
// Cache failures are logged and never fail a lookup; misses are not cached.
type ReadThrough struct {
	src   CouponSource
	cache *CouponCache
}

func NewReadThrough(src CouponSource, cache *CouponCache) *ReadThrough {
	return &ReadThrough{src: src, cache: cache}
}

func (r *ReadThrough) FindByCode(ctx context.Context, code string) (*models.Coupon, error) {
	if c, ok, err := r.cache.Get(ctx, code); err != nil {
		zlog.Ctx(ctx).Warn().Err(err).Str("coupon", code).Msg("coupon cache read failed")
	} else if ok {
		return c, nil
	}

	c, err := r.src.FindByCode(ctx, code)
	if err != nil || c == nil {
		return c, err
	}

	if err := r.cache.Set(ctx, c); err != nil {
		zlog.Ctx(ctx).Warn().Err(err).Str("coupon", code).Msg("coupon cache write failed")
	}
	return c, nil
}

func (r *ReadThrough) Invalidate(ctx context.Context, code string) error {
	return r.cache.Invalidate(ctx, code)
}
