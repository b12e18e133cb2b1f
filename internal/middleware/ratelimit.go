package middleware

import (
	"errors"

	"mediadex/config"
	"mediadex/internal/core"
	"mediadex/internal/database/redis/repository"
	cErr "mediadex/internal/pkg/error"
	"mediadex/internal/pkg/response"
	"mediadex/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// RateLimit caps how often an actor may file a tenancy request. Applied to
// that one route only; reads and searches are never limited here.
type RateLimit struct {
	trace                 *telemetry.Trace
	conf                  *config.Configuration
	rateLimiterRepository *repository.RateLimiterRepository
}

func NewRateLimit(
	trace *telemetry.Trace,
	conf *config.Configuration,
	rateLimiterRepository *repository.RateLimiterRepository,
) *RateLimit {
	return &RateLimit{
		trace:                 trace,
		conf:                  conf,
		rateLimiterRepository: rateLimiterRepository,
	}
}

func (middleware *RateLimit) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := middleware.conf.Catalog.RequestLimitCount
		window := middleware.conf.Catalog.RequestLimitWindowSec
		if limit <= 0 || window <= 0 {
			c.Next()
			return
		}

		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRateLimitMiddleware))

		actorID, ok := ActorID(c)
		if !ok {
			err := cErr.Unauthorized("missing session context")
			response.AbortWithError(c, err)
			end(err)
			return
		}

		remaining, ttl, err := middleware.rateLimiterRepository.Consume(ctx, actorID, window, limit)
		if err != nil {
			if errors.Is(err, repository.ErrRateLimitExceeded) {
				middleware.trace.ApplyTraceAttributes(span, core.TraceRateLimitMeta{
					ActorID: actorID, Limit: limit, WindowSec: window,
					Remaining: remaining, TTL: ttl, Op: "denied",
				})
				cause := cErr.RateLimitExceeded("too many tenancy requests")
				response.AbortWithError(c, cause)
				end(cause)
				return
			}
			// a broken limiter must not block the command path
			end(err)
			c.Next()
			return
		}

		middleware.trace.ApplyTraceAttributes(span, core.TraceRateLimitMeta{
			ActorID: actorID, Limit: limit, WindowSec: window,
			Remaining: remaining, TTL: ttl, Op: "consume",
		})
		end(nil)
		c.Next()
	}
}
