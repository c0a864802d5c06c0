package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
)

const statsCacheKey = "stats:platform"

type statsRepository interface {
	Counts(ctx context.Context) (*models.Statistics, error)
}

// StatsService serves the platform statistics snapshot, optionally behind a
// short-lived cache.
type StatsService struct {
	stats    statsRepository
	cache    *CacheService
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewStatsService constructs the statistics service. A nil cache disables
// caching entirely.
func NewStatsService(stats statsRepository, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &StatsService{stats: stats, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Snapshot returns the current platform counts.
func (s *StatsService) Snapshot(ctx context.Context) (*models.Statistics, error) {
	if s.cache != nil {
		var cached models.Statistics
		if s.cache.Get(ctx, statsCacheKey, &cached) {
			return &cached, nil
		}
	}
	stats, err := s.stats.Counts(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute statistics")
	}
	if s.cache != nil {
		s.cache.Set(ctx, statsCacheKey, stats, s.cacheTTL)
	}
	return stats, nil
}
