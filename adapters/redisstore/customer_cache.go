package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SeaCloudHub/enquiry/domain/customer"
	"github.com/SeaCloudHub/enquiry/pkg/pagination"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	customerKeyPrefix = "customer:id:"
	emailKeyPrefix    = "customer:email:"
	customerListKey   = "customers:all"
)

// CustomerCache is a read-through cache in front of a customer.Store. Redis
// failures are logged and never fail a read.
type CustomerCache struct {
	base   customer.Store
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewCustomerCache(base customer.Store, rdb *redis.Client, ttl time.Duration, logger *zap.SugaredLogger) *CustomerCache {
	if ttl < 0 {
		ttl = 0
	}

	return &CustomerCache{
		base:   base,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func customerKey(id uint64) string {
	return customerKeyPrefix + strconv.FormatUint(id, 10)
}

func emailKey(email string) string {
	return emailKeyPrefix + strings.ToLower(email)
}

func (c *CustomerCache) GetByID(ctx context.Context, id uint64) (*customer.Customer, error) {
	var cached customer.Customer
	if c.load(ctx, customerKey(id), &cached) {
		return &cached, nil
	}

	result, err := c.base.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, customerKey(id), result)

	return result, nil
}

// GetByEmail resolves the email through an email -> id index so that evicting
// a customer by id is enough to refresh email lookups.
func (c *CustomerCache) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	idStr, err := c.rdb.Get(ctx, emailKey(email)).Result()
	if err == nil {
		if id, perr := strconv.ParseUint(idStr, 10, 64); perr == nil {
			result, err := c.GetByID(ctx, id)
			if err == nil && result.MatchesEmail(email) {
				return result, nil
			}
		}
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warnw("customer cache read failed", zap.String("key", emailKey(email)), zap.Error(err))
	}

	result, err := c.base.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := c.rdb.Set(ctx, emailKey(email), strconv.FormatUint(result.ID, 10), c.ttl).Err(); err != nil {
		c.logger.Warnw("customer cache write failed", zap.String("key", emailKey(email)), zap.Error(err))
	}
	c.store(ctx, customerKey(result.ID), result)

	return result, nil
}

// List only caches the unpaged listing.
func (c *CustomerCache) List(ctx context.Context, paging *pagination.Paging) ([]customer.Customer, error) {
	if paging.IsPaged() {
		return c.base.List(ctx, paging)
	}

	var cached []customer.Customer
	if c.load(ctx, customerListKey, &cached) {
		return cached, nil
	}

	result, err := c.base.List(ctx, paging)
	if err != nil {
		return nil, err
	}

	c.store(ctx, customerListKey, result)

	return result, nil
}

func (c *CustomerCache) Evict(ctx context.Context, id uint64) error {
	return c.del(ctx, customerKey(id))
}

func (c *CustomerCache) EvictEmail(ctx context.Context, email string) error {
	return c.del(ctx, emailKey(email))
}

func (c *CustomerCache) EvictList(ctx context.Context) error {
	return c.del(ctx, customerListKey)
}

func (c *CustomerCache) del(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cannot evict %s: %w", key, err)
	}

	return nil
}

func (c *CustomerCache) load(ctx context.Context, key string, v interface{}) bool {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warnw("customer cache read failed", zap.String("key", key), zap.Error(err))
		}

		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		c.logger.Warnw("customer cache entry is corrupted", zap.String("key", key), zap.Error(err))
		return false
	}

	return true
}

func (c *CustomerCache) store(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Warnw("customer cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warnw("customer cache write failed", zap.String("key", key), zap.Error(err))
	}
}
