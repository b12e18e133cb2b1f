package repository

import (
	"context"
	"fmt"
	"time"

	"mediadex/internal/core"
	client "mediadex/internal/database/client"
	"mediadex/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

// GateCacheRepository caches membership-gate verdicts so search fan-out does
// not ask the chat platform about the same (channel, user) pair on every
// query. Only a short TTL keeps revoked memberships from lingering.
type GateCacheRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewGateCacheRepository(trace *telemetry.Trace, client *client.RedisClient) *GateCacheRepository {
	return &GateCacheRepository{trace: trace, client: client.Client()}
}

// GetVerdict returns the cached verdict and whether one was present.
func (repository *GateCacheRepository) GetVerdict(
	contextValue context.Context,
	channelRef string,
	userID int64,
) (verdict bool, found bool, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	redisKey := repository.buildKey(channelRef, userID)
	value, getError := repository.client.Get(contextValue, redisKey).Result()
	if getError == redis.Nil {
		return false, false, nil
	}
	if getError != nil {
		returnedError = getError
		return false, false, returnedError
	}

	verdict = value == "1"
	repository.trace.ApplyTraceAttributes(span, core.TraceGateMeta{
		UserID:     userID,
		ChannelRef: channelRef,
		Verdict:    value,
		Cached:     true,
	})
	return verdict, true, nil
}

// SetVerdict stores a verdict for ttl seconds.
func (repository *GateCacheRepository) SetVerdict(
	contextValue context.Context,
	channelRef string,
	userID int64,
	verdict bool,
	ttlSeconds int64,
) (returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	value := "0"
	if verdict {
		value = "1"
	}
	redisKey := repository.buildKey(channelRef, userID)
	returnedError = repository.client.Set(contextValue, redisKey, value, time.Duration(ttlSeconds)*time.Second).Err()
	repository.trace.ApplyTraceAttributes(span, core.TraceGateMeta{
		UserID:     userID,
		ChannelRef: channelRef,
		Verdict:    value,
		Cached:     false,
	})
	return returnedError
}

func (r *GateCacheRepository) buildKey(channelRef string, userID int64) string {
	return fmt.Sprintf("%s:%s:%d", core.RedisKeyGateVerdict, channelRef, userID)
}
