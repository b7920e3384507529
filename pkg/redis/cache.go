package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/bytebury/ctrunner/pkg/logger"
	"github.com/redis/go-redis/v9"
)

//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mock/cache.go -package=mock github.com/bytebury/ctrunner/pkg/redis IRedisCache

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = errors.New("redis: cache miss")

type IRedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

type iRedisCacheImpl struct {
	client *redis.Client
	log    logger.Interface
}

func NewRedisCache(client *redis.Client, log logger.Interface) IRedisCache {
	return &iRedisCacheImpl{
		client: client,
		log:    log,
	}
}

// Clear removes every key matching prefix followed by anything.
func (i *iRedisCacheImpl) Clear(ctx context.Context, prefix string) error {
	iter := i.client.Scan(ctx, 0, prefix+"*", 0).Iterator()

	for iter.Next(ctx) {
		if err := i.client.Del(ctx, iter.Val()).Err(); err != nil {
			i.log.Error("redis - clear - failed to delete cache: %v", err)

			return err
		}
	}

	return iter.Err()
}

// Delete implements IRedisCache.
func (i *iRedisCacheImpl) Delete(ctx context.Context, key string) error {
	if err := i.client.Del(ctx, key).Err(); err != nil {
		i.log.Error("redis - delete - failed to delete cache: %v", err)

		return err
	}

	return nil
}

// Get decodes the cached JSON under key into value. A missing key yields ErrCacheMiss.
func (i *iRedisCacheImpl) Get(ctx context.Context, key string, value any) error {
	cacheValue, err := i.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}

	if err != nil {
		return err
	}

	switch v := value.(type) {
	case *string:
		*v = cacheValue
	default:
		if err = json.Unmarshal([]byte(cacheValue), value); err != nil {
			i.log.Error("redis - get - failed to unmarshal value: %v", err)

			return err
		}
	}

	return nil
}

// Save stores value as JSON for duration seconds. Zero keeps it forever.
func (i *iRedisCacheImpl) Save(ctx context.Context, key string, value any, duration int) (err error) {
	var strValue []byte

	switch v := value.(type) {
	case string:
		strValue = []byte(v)
	default:
		strValue, err = json.Marshal(v)
		if err != nil {
			i.log.Error("redis - save - failed to marshal value: %v", err)

			return err
		}
	}

	err = i.client.Set(ctx, key, strValue, time.Second*time.Duration(duration)).Err()
	if err != nil {
		i.log.Error("redis - save - failed to save value: %v", err)

		return err
	}

	i.log.Debug("redis - save - saved value %s", key)

	return nil
}
