package router

import (
	"mediadex/internal/handler"
	"mediadex/internal/middleware"

	"github.com/gin-gonic/gin"
)

// PublicRouter mounts the routes every authenticated actor may call, plus the
// session bootstrap route guarded by the gateway key.
type PublicRouter struct {
	auth           *middleware.Auth
	rateLimit      *middleware.RateLimit
	sessionHandler *handler.SessionHandler
	tenancyHandler *handler.TenancyHandler
	searchHandler  *handler.SearchHandler
}

func NewPublicRouter(
	auth *middleware.Auth,
	rateLimit *middleware.RateLimit,
	sessionHandler *handler.SessionHandler,
	tenancyHandler *handler.TenancyHandler,
	searchHandler *handler.SearchHandler,
) *PublicRouter {
	return &PublicRouter{
		auth:           auth,
		rateLimit:      rateLimit,
		sessionHandler: sessionHandler,
		tenancyHandler: tenancyHandler,
		searchHandler:  searchHandler,
	}
}

func (publicRouter *PublicRouter) RegisterRoutes(r *gin.Engine) {
	// session start is called by the transport bridge, not an end user
	r.POST("/v1/session/start", publicRouter.auth.GatewayHandler(), publicRouter.sessionHandler.Start)

	g := r.Group("/v1", publicRouter.auth.SessionHandler())
	{
		g.GET("/me", publicRouter.sessionHandler.Me)
		g.GET("/search", publicRouter.searchHandler.Search)
		g.POST("/tenancy/requests", publicRouter.rateLimit.Guard(), publicRouter.tenancyHandler.Request)
	}
}
