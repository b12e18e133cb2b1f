package membership

import (
	"context"

	"mediadex/config"
	redisRepo "mediadex/internal/database/redis/repository"

	"go.uber.org/zap"
)

// CachedGate fronts another Gate with the redis verdict cache. Cache failures
// fall through to the inner gate; a broken cache must not make the gate lie.
type CachedGate struct {
	inner      Gate
	cache      *redisRepo.GateCacheRepository
	ttlSeconds int64
	logger     *zap.Logger
}

func NewCachedGate(
	logger *zap.Logger,
	conf *config.Configuration,
	cache *redisRepo.GateCacheRepository,
	inner *HTTPGate,
) Gate {
	ttl := conf.Catalog.GateCacheTTLSec
	if ttl <= 0 {
		// cache disabled
		return inner
	}
	return &CachedGate{inner: inner, cache: cache, ttlSeconds: ttl, logger: logger}
}

func (g *CachedGate) IsMember(ctx context.Context, channelRef string, userID int64) (bool, error) {
	verdict, found, err := g.cache.GetVerdict(ctx, channelRef, userID)
	if err == nil && found {
		return verdict, nil
	}
	if err != nil {
		g.logger.Warn("gate cache read failed", zap.Error(err))
	}

	verdict, err = g.inner.IsMember(ctx, channelRef, userID)
	if err != nil {
		return false, err
	}
	if cacheErr := g.cache.SetVerdict(ctx, channelRef, userID, verdict, g.ttlSeconds); cacheErr != nil {
		g.logger.Warn("gate cache write failed", zap.Error(cacheErr))
	}
	return verdict, nil
}
