package middleware

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"
	"unicode/utf8"

	"mediadex/config"
	"mediadex/internal/core"
	"mediadex/internal/database/fluentd/model"
	"mediadex/internal/database/fluentd/repository"
	cErr "mediadex/internal/pkg/error"
	res "mediadex/internal/pkg/response"
	"mediadex/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recovery isolates each command: a panic or a typed error in one command is
// rendered as that command's reply and never takes the process down.
type Recovery struct {
	logger            *zap.Logger
	metric            *telemetry.Metric
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewRecovery(
	logger *zap.Logger,
	metric *telemetry.Metric,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Recovery {
	return &Recovery{
		logger:            logger,
		metric:            metric,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

func (middleware *Recovery) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestTime := time.Now()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		}
		requestID, err := uuid.NewV7()
		if err != nil {
			requestID = uuid.New()
		}
		// panic recover must be registered before c.Next()
		defer func() {
			if rec := recover(); rec != nil {
				duration := time.Since(requestTime)

				meta := core.TracePanicMeta{
					Path:       c.Request.URL.Path,
					Method:     c.Request.Method,
					ClientIP:   c.ClientIP(),
					UserAgent:  c.Request.UserAgent(),
					DurationMs: float64(duration.Milliseconds()),
					Message:    toSafeString(fmt.Sprint(rec)),
					Stack:      toSafeStack(debug.Stack()),
					Status:     http.StatusInternalServerError,
				}

				middleware.logger.Error("[PANIC] Recovered",
					zap.String("path", meta.Path),
					zap.String("method", meta.Method),
					zap.String("client_ip", meta.ClientIP),
					zap.String("user_agent", meta.UserAgent),
					zap.Duration("duration", duration),
					zap.String("panic", meta.Message),
					zap.String("stacktrace", meta.Stack),
					zap.String("requestId", requestID.String()),
				)

				if middleware.metric.CommandFailTotal != nil {
					middleware.metric.CommandFailTotal.WithLabelValues("panic").Inc()
				}
				if !c.Writer.Written() {
					res.FailByErr(c, requestID.String(), cErr.InternalServer("unexpected panic"))
				}
			}
		}()

		c.Next()

		// typed gin errors, rendered here if nothing was written yet
		if len(c.Errors) > 0 && !c.Writer.Written() {
			duration := time.Since(requestTime)
			actorID, _ := ActorID(c)

			for _, e := range c.Errors {
				if appErr, ok := e.Err.(*cErr.Error); ok {
					middleware.logger.Warn(appErr.Error(),
						zap.Int("code", appErr.ErrorCode()),
						zap.String("data", appErr.ErrorDesc()),
						zap.Duration("duration", duration),
						zap.String("requestId", requestID.String()),
					)
					middleware.fluentdRepository.LogOutcome(c.Request.Context(), model.OutcomeLog{
						RequestID:  requestID.String(),
						ActorID:    actorID,
						Code:       appErr.ErrorCode(),
						StatusCode: appErr.HttpCode(),
						Error:      appErr.Error(),
						ResponseTS: time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
						Version:    middleware.config.App.Version,
					})
					if middleware.metric.CommandFailTotal != nil {
						middleware.metric.CommandFailTotal.WithLabelValues(appErr.Error()).Inc()
					}
					res.FailByErr(c, requestID.String(), appErr)
					c.Abort()
					return
				}
			}

			unknown := c.Errors.String()
			middleware.logger.Warn("[ERROR] unknown",
				zap.String("error", unknown),
				zap.Duration("duration", duration),
				zap.String("requestId", requestID.String()),
			)
			middleware.fluentdRepository.LogOutcome(c.Request.Context(), model.OutcomeLog{
				RequestID:  requestID.String(),
				ActorID:    actorID,
				Code:       cErr.INTERNAL_ERROR,
				StatusCode: http.StatusInternalServerError,
				Error:      toSafeString(unknown),
				ResponseTS: time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
				Version:    middleware.config.App.Version,
			})
			if middleware.metric.CommandFailTotal != nil {
				middleware.metric.CommandFailTotal.WithLabelValues("unknown").Inc()
			}
			res.Fail(c, requestID.String(), http.StatusInternalServerError, cErr.INTERNAL_ERROR, "unknown-error", unknown)
			c.Abort()
			return
		}
	}
}

// ---- helpers ----

func toSafeString(s string) string {
	const max = 8000
	if utf8.ValidString(s) {
		if len(s) > max {
			return s[:max] + "…"
		}
		return s
	}
	b := []byte(s)
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}

func toSafeStack(b []byte) string {
	const max = 16000
	if utf8.Valid(b) {
		if len(b) > max {
			return string(b[:max]) + "…"
		}
		return string(b)
	}
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}
