package middleware

import (
	"strings"

	"mediadex/config"
	"mediadex/internal/core"
	cErr "mediadex/internal/pkg/error"
	"mediadex/internal/pkg/response"
	"mediadex/internal/service"
	"mediadex/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth carries the two identity checks: the shared-secret gateway check for
// the transport bridge, and bearer-session verification for everything else.
// Role authorization is NOT done here; handlers call the role gate service
// themselves.
type Auth struct {
	logger         *zap.Logger
	trace          *telemetry.Trace
	conf           *config.Configuration
	sessionService *service.SessionService
}

func NewAuth(
	logger *zap.Logger,
	trace *telemetry.Trace,
	conf *config.Configuration,
	sessionService *service.SessionService,
) *Auth {
	return &Auth{
		logger:         logger,
		trace:          trace,
		conf:           conf,
		sessionService: sessionService,
	}
}

// GatewayHandler admits only the trusted transport bridge (X-API-Key must
// match the shared secret). Guards session/start.
func (middleware *Auth) GatewayHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanAuthMiddleware))

		key := strings.TrimSpace(c.GetHeader("X-API-Key"))
		if key == "" || key != middleware.conf.App.SecretKey {
			meta := core.TraceAuthMeta{Where: "x-api-key", Status: "gateway_denied"}
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause := cErr.UnauthorizedGateway("invalid gateway key")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		middleware.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{Where: "x-api-key", Status: "ok"})
		end(nil)
		c.Next()
	}
}

// SessionHandler verifies the bearer session token and puts the actor id and
// role on the gin context for downstream handlers.
func (middleware *Auth) SessionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanAuthMiddleware))

		raw, from := middleware.readBearer(c)
		if raw == "" {
			meta := core.TraceAuthMeta{Status: "missing_token"}
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause := cErr.Unauthorized("missing session token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		claims, err := middleware.sessionService.VerifySession(raw)
		if err != nil {
			meta := core.TraceAuthMeta{Where: from, Status: "invalid_session"}
			middleware.trace.ApplyTraceAttributes(span, meta)
			response.AbortWithError(c, err)
			end(err)
			return
		}

		middleware.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{
			ActorID: claims.ActorID,
			Role:    string(claims.Role),
			Where:   from,
			Status:  "ok",
		})
		end(nil)

		c.Set(core.ContextActorKey, claims.ActorID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func (middleware *Auth) readBearer(c *gin.Context) (token string, from string) {
	if auth := strings.TrimSpace(c.GetHeader("Authorization")); auth != "" {
		if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return strings.TrimSpace(auth[len("Bearer "):]), "bearer"
		}
	}
	return "", ""
}

// ActorID reads the authenticated actor id a SessionHandler put on the
// context.
func ActorID(c *gin.Context) (int64, bool) {
	raw, ok := c.Get(core.ContextActorKey)
	if !ok {
		return 0, false
	}
	id, ok := raw.(int64)
	return id, ok
}
