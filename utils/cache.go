package utils

import (
	"DocVault/internal/dto"
	"DocVault/internal/repo"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis cache client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client: client,
	}
}

// Get reads a cached value.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Set writes a cached value.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, string(data), expiration).Err()
}

// Delete removes a cache entry.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// DeleteByPattern deletes cache entries by pattern.
func (c *RedisCache) DeleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	return nil
}

// Exists checks whether a cache key exists.
func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	count, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type CacheManager struct {
	cache Cache
}

var globalCacheManager *CacheManager
var cacheManagerOnce sync.Once

// InitCacheManager initializes the cache manager.
func InitCacheManager() {
	cacheManagerOnce.Do(func() {
		if repo.Redis == nil {
			return
		}
		globalCacheManager = &CacheManager{
			cache: NewRedisCache(repo.Redis),
		}
	})
}

// GetCacheManager returns the cache manager, or nil when Redis is not
// configured; callers treat nil as a permanent cache miss.
func GetCacheManager() *CacheManager {
	if globalCacheManager == nil {
		InitCacheManager()
	}
	return globalCacheManager
}

// BuildCacheKey builds a cache key.
func BuildCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += fmt.Sprintf(":%v", param)
	}
	return key
}

const CacheKeyDocumentList = "document:list"

func documentListKey(q *dto.ListDocumentsQuery) string {
	return BuildCacheKey(CacheKeyDocumentList, q.Page, q.Limit, q.SortBy, q.SortOrder, q.Search)
}

// GetDocumentListFromCache reads a cached listing page.
func GetDocumentListFromCache(ctx context.Context, q *dto.ListDocumentsQuery) (*dto.PaginationResponse, bool) {
	manager := GetCacheManager()
	if manager == nil {
		return nil, false
	}
	var result dto.PaginationResponse
	if err := manager.cache.Get(ctx, documentListKey(q), &result); err != nil {
		return nil, false
	}
	return &result, true
}

// SetDocumentListToCache writes a cached listing page.
func SetDocumentListToCache(ctx context.Context, q *dto.ListDocumentsQuery, data *dto.PaginationResponse, expiration time.Duration) error {
	manager := GetCacheManager()
	if manager == nil {
		return nil
	}
	return manager.cache.Set(ctx, documentListKey(q), data, expiration)
}

// InvalidateDocumentListCache clears every cached listing page. Any write to
// the catalog can shift pagination, so all pages go at once.
func InvalidateDocumentListCache(ctx context.Context) error {
	manager := GetCacheManager()
	if manager == nil {
		return nil
	}
	pattern := CacheKeyDocumentList + ":*"
	cache, ok := manager.cache.(*RedisCache)
	if !ok {
		return manager.cache.Delete(ctx, pattern)
	}
	return cache.DeleteByPattern(ctx, pattern)
}
