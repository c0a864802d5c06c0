package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
)

type cacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// CacheService is a thin wrapper over the cache backend that downgrades
// cache failures to misses, so a flaky Redis never fails a request.
type CacheService struct {
	cache  cacheRepository
	logger *zap.Logger
}

// NewCacheService constructs the cache service.
func NewCacheService(cache cacheRepository, logger *zap.Logger) *CacheService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheService{cache: cache, logger: logger}
}

// Get loads a cached value into dest. Any backend error reads as a miss.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) bool {
	if err := s.cache.Get(ctx, key, dest); err != nil {
		if err != appErrors.ErrCacheMiss {
			s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	return true
}

// Set stores a value. Failures are logged and swallowed.
func (s *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if err := s.cache.Set(ctx, key, value, ttl); err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops a key. Failures are logged and swallowed.
func (s *CacheService) Invalidate(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("cache delete failed", zap.String("key", key), zap.Error(err))
	}
}
