package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mediadex/internal/core"
	client "mediadex/internal/database/client"
	"mediadex/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

// RateLimiterRepository holds a fixed-window counter per actor. Used to cap
// how often an actor may file a tenancy request.
type RateLimiterRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewRateLimiterRepository(trace *telemetry.Trace, client *client.RedisClient) *RateLimiterRepository {
	return &RateLimiterRepository{trace: trace, client: client.Client()}
}

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// Consume spends one unit of the actor's window quota, initializing the
// window on first use. Returns remaining units, the window's remaining TTL
// in seconds, and ErrRateLimitExceeded once the quota is gone.
func (repository *RateLimiterRepository) Consume(
	contextValue context.Context,
	actorID int64,
	windowSeconds int64,
	limitCount int,
) (remainingCount int, timeToLiveSeconds int64, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() {
		endSpan(returnedError)
	}()

	traceMetadata := core.TraceRateLimitMeta{
		ActorID:   actorID,
		Limit:     limitCount,
		WindowSec: windowSeconds,
		Op:        "consume",
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	redisKey := repository.buildKey(actorID)
	expirationDuration := time.Duration(windowSeconds) * time.Second

	// SETNX initializes the window; the initial value already accounts for
	// this consumption
	wasSet, setError := repository.client.SetNX(
		contextValue,
		redisKey,
		limitCount-1,
		expirationDuration,
	).Result()
	if setError != nil {
		returnedError = setError
		return 0, 0, returnedError
	}
	if wasSet {
		remainingCount = limitCount - 1
		if remainingCount < 0 {
			remainingCount = 0
			returnedError = ErrRateLimitExceeded
		}
		timeToLiveSeconds = windowSeconds
		traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		return remainingCount, timeToLiveSeconds, returnedError
	}

	newValue, decrError := repository.client.Decr(contextValue, redisKey).Result()
	if decrError != nil {
		returnedError = decrError
		return 0, 0, returnedError
	}

	ttlDuration, _ := repository.client.TTL(contextValue, redisKey).Result()
	if ttlDuration > 0 {
		timeToLiveSeconds = int64(ttlDuration.Seconds())
	}

	if newValue < 0 {
		remainingCount = 0
		traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		returnedError = ErrRateLimitExceeded
		return remainingCount, timeToLiveSeconds, returnedError
	}

	remainingCount = int(newValue)
	traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return remainingCount, timeToLiveSeconds, nil
}

// Reset clears an actor's window (admin use).
func (repository *RateLimiterRepository) Reset(
	contextValue context.Context,
	actorID int64,
) (returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceRateLimitMeta{
		ActorID: actorID,
		Op:      "reset",
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	redisKey := repository.buildKey(actorID)
	returnedError = repository.client.Del(contextValue, redisKey).Err()
	return returnedError
}

func (r *RateLimiterRepository) buildKey(actorID int64) string {
	return fmt.Sprintf("%s:%d", core.RedisKeyTenancyLimiter, actorID)
}
